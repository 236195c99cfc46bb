package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sells-group/intake-cli/internal/answers"
	"github.com/sells-group/intake-cli/internal/model"
	"github.com/sells-group/intake-cli/internal/schema"
	"github.com/sells-group/intake-cli/internal/store"
)

// createdResponse spreads the id into the record body, matching what the
// frontend expects from POST /api/clients.
type createdResponse struct {
	ID string `json:"id"`
	*model.ClientRecord
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.ListClients(r.Context())
	if err != nil {
		// Degrade to an empty list rather than failing the client picker.
		zap.L().Warn("server: list clients failed", zap.Error(err))
		entries = []model.IndexEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, rec, err := s.store.CreateClient(r.Context(), req.Name)
	if err != nil {
		if store.IsValidation(err) {
			writeError(w, http.StatusBadRequest, "Name required")
			return
		}
		s.internalError(w, "create client", err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{ID: id, ClientRecord: rec})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.fetch(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var rec model.ClientRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	updated, err := s.store.UpdateClient(r.Context(), id, &rec)
	if err != nil {
		if store.IsValidation(err) {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		s.internalError(w, "update client", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteClient(r.Context(), id); err != nil {
		if store.IsValidation(err) {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		s.internalError(w, "delete client", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// schemaProgress reports completion for one questionnaire.
type schemaProgress struct {
	Answered        int     `json:"answered"`
	Total           int     `json:"total"`
	Percent         float64 `json:"percent"`
	FirstUnanswered string  `json:"firstUnanswered,omitempty"`
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.fetch(w, r)
	if !ok {
		return
	}

	out := map[string]schemaProgress{}
	for _, sc := range []*schema.Schema{schema.IPS(), schema.CPS()} {
		p := schemaProgress{
			Answered: answers.Answered(sc, rec.Answers),
			Total:    sc.QuestionCount(),
			Percent:  answers.Progress(sc, rec.Answers),
		}
		if qid, found := answers.FirstUnanswered(sc, rec.Answers); found {
			p.FirstUnanswered = qid
		}
		out[sc.Name] = p
	}
	writeJSON(w, http.StatusOK, out)
}

// fetch loads the record for the route id, writing the 404 response on
// any miss (invalid id included).
func (s *Server) fetch(w http.ResponseWriter, r *http.Request) (*model.ClientRecord, bool) {
	id := chi.URLParam(r, "id")

	rec, err := s.store.GetClient(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || store.IsValidation(err) {
			writeError(w, http.StatusNotFound, "Not found")
			return nil, false
		}
		s.internalError(w, "get client", err)
		return nil, false
	}
	return rec, true
}

func (s *Server) internalError(w http.ResponseWriter, action string, err error) {
	zap.L().Error("server: "+action, zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

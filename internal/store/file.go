package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/intake-cli/internal/model"
)

// FileStore implements Store with one JSON file per client plus a JSON
// array index, matching the layout the browser frontend was built against:
//
//	<dir>/clients.json       — client index, most-recently-created first
//	<dir>/clients/<id>.json  — per-client record
//
// Writes are whole-file overwrites with no cross-process locking; a mutex
// serializes writers within this process.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFile creates a FileStore rooted at dir. Directories are created
// lazily by Migrate or the first write.
func NewFile(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) indexPath() string { return filepath.Join(s.dir, "clients.json") }

func (s *FileStore) clientPath(id string) string {
	return filepath.Join(s.dir, "clients", id+".json")
}

// Migrate creates the data directories and an empty index if absent.
func (s *FileStore) Migrate(_ context.Context) error {
	if err := s.ensureDirs(); err != nil {
		return err
	}
	if _, err := os.Stat(s.indexPath()); os.IsNotExist(err) {
		return s.writeIndex(nil)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) ensureDirs() error {
	if err := os.MkdirAll(filepath.Join(s.dir, "clients"), 0o755); err != nil {
		return eris.Wrap(err, "file: create data dirs")
	}
	return nil
}

// ListClients returns the index. Read failures (missing file, corrupt
// JSON) degrade to an empty list so the client list always renders.
func (s *FileStore) ListClients(_ context.Context) ([]model.IndexEntry, error) {
	entries, err := s.readIndex()
	if err != nil {
		zap.L().Warn("file: index unreadable, returning empty list", zap.Error(err))
		return []model.IndexEntry{}, nil
	}
	return entries, nil
}

func (s *FileStore) CreateClient(_ context.Context, name string) (string, *model.ClientRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, &ValidationError{Msg: "client name is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureDirs(); err != nil {
		return "", nil, err
	}

	id := model.NewClientID()
	rec := model.NewClientRecord(name)
	if err := s.writeClient(id, rec); err != nil {
		return "", nil, err
	}

	entries, err := s.readIndex()
	if err != nil {
		entries = nil
	}
	entries = append([]model.IndexEntry{model.IndexEntryFor(id, rec)}, entries...)
	if err := s.writeIndex(entries); err != nil {
		return "", nil, err
	}
	return id, rec, nil
}

func (s *FileStore) GetClient(_ context.Context, id string) (*model.ClientRecord, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.clientPath(id))
	if err != nil {
		return nil, eris.Wrapf(ErrNotFound, "file: %s", id)
	}
	var rec model.ClientRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		// A corrupt record is indistinguishable from a missing one for
		// callers; surface it the same way the reference backend does.
		return nil, eris.Wrapf(ErrNotFound, "file: %s", id)
	}
	if rec.Answers == nil {
		rec.Answers = map[string]model.Answer{}
	}
	return &rec, nil
}

// UpdateClient overwrites the record, refreshing updatedAt, and syncs the
// matching index entry when one exists. Updates with no index entry still
// succeed (permissive upsert).
func (s *FileStore) UpdateClient(_ context.Context, id string, rec *model.ClientRecord) (*model.ClientRecord, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureDirs(); err != nil {
		return nil, err
	}

	updated := *rec
	updated.UpdatedAt = model.NowMillis()
	if updated.Answers == nil {
		updated.Answers = map[string]model.Answer{}
	}
	if err := s.writeClient(id, &updated); err != nil {
		return nil, err
	}

	entries, err := s.readIndex()
	if err == nil {
		for i := range entries {
			if entries[i].ID == id {
				entries[i].Name = updated.ClientName
				entries[i].UpdatedAt = updated.UpdatedAt
				if err := s.writeIndex(entries); err != nil {
					return nil, err
				}
				break
			}
		}
	}
	return &updated, nil
}

// DeleteClient removes the record and its index entry. Missing records
// are a no-op.
func (s *FileStore) DeleteClient(_ context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.clientPath(id)); err != nil && !os.IsNotExist(err) {
		return eris.Wrapf(err, "file: delete client %s", id)
	}

	entries, err := s.readIndex()
	if err != nil {
		return nil
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return s.writeIndex(kept)
}

func (s *FileStore) readIndex() ([]model.IndexEntry, error) {
	data, err := os.ReadFile(s.indexPath())
	if err != nil {
		return nil, eris.Wrap(err, "file: read index")
	}
	var entries []model.IndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, eris.Wrap(err, "file: parse index")
	}
	return entries, nil
}

func (s *FileStore) writeIndex(entries []model.IndexEntry) error {
	if entries == nil {
		entries = []model.IndexEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return eris.Wrap(err, "file: marshal index")
	}
	return eris.Wrap(os.WriteFile(s.indexPath(), data, 0o644), "file: write index")
}

func (s *FileStore) writeClient(id string, rec *model.ClientRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return eris.Wrapf(err, "file: marshal client %s", id)
	}
	return eris.Wrapf(os.WriteFile(s.clientPath(id), data, 0o644), "file: write client %s", id)
}

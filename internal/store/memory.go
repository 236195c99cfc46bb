package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sells-group/intake-cli/internal/model"
)

// MemoryStore is an in-process Store for tests and ephemeral runs.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*model.ClientRecord
}

func NewMemory() *MemoryStore {
	return &MemoryStore{records: map[string]*model.ClientRecord{}}
}

func (s *MemoryStore) Migrate(_ context.Context) error { return nil }
func (s *MemoryStore) Close() error                    { return nil }

func (s *MemoryStore) ListClients(_ context.Context) ([]model.IndexEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]model.IndexEntry, 0, len(s.records))
	for id, rec := range s.records {
		entries = append(entries, model.IndexEntryFor(id, rec))
	}
	// Most recently created first, id as tiebreaker for determinism.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt != entries[j].CreatedAt {
			return entries[i].CreatedAt > entries[j].CreatedAt
		}
		return entries[i].ID > entries[j].ID
	})
	return entries, nil
}

func (s *MemoryStore) CreateClient(_ context.Context, name string) (string, *model.ClientRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, &ValidationError{Msg: "client name is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := model.NewClientID()
	rec := model.NewClientRecord(name)
	s.records[id] = rec
	return id, cloneRecord(rec), nil
}

func (s *MemoryStore) GetClient(_ context.Context, id string) (*model.ClientRecord, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneRecord(rec), nil
}

func (s *MemoryStore) UpdateClient(_ context.Context, id string, rec *model.ClientRecord) (*model.ClientRecord, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := cloneRecord(rec)
	updated.UpdatedAt = model.NowMillis()
	if prev, ok := s.records[id]; ok {
		updated.CreatedAt = prev.CreatedAt
	}
	s.records[id] = updated
	return cloneRecord(updated), nil
}

func (s *MemoryStore) DeleteClient(_ context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, id)
	return nil
}

func cloneRecord(rec *model.ClientRecord) *model.ClientRecord {
	out := *rec
	out.Answers = make(map[string]model.Answer, len(rec.Answers))
	for k, v := range rec.Answers {
		out.Answers[k] = v
	}
	return &out
}

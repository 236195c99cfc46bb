// Package autosave batches record edits behind a debounce window so a
// burst of changes produces a single store write, the way the
// questionnaire frontend autosaves while the advisor types.
package autosave

import (
	"context"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/intake-cli/internal/model"
	"github.com/sells-group/intake-cli/internal/store"
)

// Saver debounces UpdateClient calls. Each Queue resets the timer; the
// pending records are persisted once the edits go quiet for the debounce
// interval. Close flushes anything still pending.
type Saver struct {
	store    store.Store
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]*model.ClientRecord
	timer   *time.Timer
	closed  bool
}

func New(st store.Store, debounce time.Duration) *Saver {
	if debounce <= 0 {
		debounce = 800 * time.Millisecond
	}
	return &Saver{
		store:    st,
		debounce: debounce,
		pending:  map[string]*model.ClientRecord{},
	}
}

// Queue records the latest state of a client and re-arms the debounce
// timer. Later queues for the same id replace earlier ones.
func (s *Saver) Queue(id string, rec *model.ClientRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.pending[id] = rec
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.fire)
}

func (s *Saver) fire() {
	if err := s.Flush(context.Background()); err != nil {
		zap.L().Error("autosave: flush failed", zap.Error(err))
	}
}

// Flush persists all pending records immediately.
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	batch := s.pending
	s.pending = map[string]*model.ClientRecord{}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	var firstErr error
	for id, rec := range batch {
		if _, err := s.store.UpdateClient(ctx, id, rec); err != nil {
			zap.L().Error("autosave: save client failed",
				zap.String("id", id), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return eris.Wrap(firstErr, "autosave: flush")
}

// Close stops the timer and flushes pending edits. The saver accepts no
// further queues after Close.
func (s *Saver) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	return s.Flush(context.Background())
}

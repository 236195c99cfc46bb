package autosave

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/intake-cli/internal/model"
	"github.com/sells-group/intake-cli/internal/store"
)

// countingStore counts UpdateClient calls.
type countingStore struct {
	store.Store
	updates atomic.Int64
}

func (c *countingStore) UpdateClient(ctx context.Context, id string, rec *model.ClientRecord) (*model.ClientRecord, error) {
	c.updates.Add(1)
	return c.Store.UpdateClient(ctx, id, rec)
}

func newCountingStore(t *testing.T) (*countingStore, string) {
	t.Helper()
	cs := &countingStore{Store: store.NewMemory()}
	id, _, err := cs.CreateClient(context.Background(), "Jordan Blake")
	require.NoError(t, err)
	return cs, id
}

func TestSaver_DebouncesBurstToSingleWrite(t *testing.T) {
	cs, id := newCountingStore(t)
	s := New(cs, 30*time.Millisecond)
	defer s.Close()

	for i := 0; i < 5; i++ {
		rec := model.NewClientRecord("Jordan Blake")
		rec.Advisor = "Edit"
		s.Queue(id, rec)
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return cs.updates.Load() == 1
	}, time.Second, 10*time.Millisecond)

	// No further writes after the quiet period.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int64(1), cs.updates.Load())
}

func TestSaver_LastQueuedStateWins(t *testing.T) {
	cs, id := newCountingStore(t)
	s := New(cs, 20*time.Millisecond)
	defer s.Close()

	first := model.NewClientRecord("Jordan Blake")
	first.Advisor = "Old"
	s.Queue(id, first)

	second := model.NewClientRecord("Jordan Blake")
	second.Advisor = "New"
	s.Queue(id, second)

	require.Eventually(t, func() bool {
		return cs.updates.Load() == 1
	}, time.Second, 5*time.Millisecond)

	got, err := cs.GetClient(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Advisor)
}

func TestSaver_CloseFlushesPending(t *testing.T) {
	cs, id := newCountingStore(t)
	s := New(cs, time.Hour)

	rec := model.NewClientRecord("Jordan Blake")
	rec.Advisor = "Unsaved"
	s.Queue(id, rec)

	require.NoError(t, s.Close())
	assert.Equal(t, int64(1), cs.updates.Load())

	got, err := cs.GetClient(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Unsaved", got.Advisor)
}

func TestSaver_QueueAfterCloseIsIgnored(t *testing.T) {
	cs, id := newCountingStore(t)
	s := New(cs, 10*time.Millisecond)
	require.NoError(t, s.Close())

	s.Queue(id, model.NewClientRecord("Jordan Blake"))
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int64(0), cs.updates.Load())
}

func TestSaver_FlushWithNothingPending(t *testing.T) {
	cs, _ := newCountingStore(t)
	s := New(cs, time.Hour)
	defer s.Close()

	assert.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, int64(0), cs.updates.Load())
}

package main

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/intake-cli/internal/autosave"
	"github.com/sells-group/intake-cli/internal/model"
	"github.com/sells-group/intake-cli/internal/schema"
	"github.com/sells-group/intake-cli/internal/store"
)

func TestEditAnswer_Text(t *testing.T) {
	q := schema.Question{ID: "q1", Type: schema.TypeText}
	a := editAnswer(q, model.Answer{}, "Jordan Blake, 1980-01-01")
	assert.Equal(t, "Jordan Blake, 1980-01-01", a.Value)
}

func TestEditAnswer_ComboTogglesOptions(t *testing.T) {
	q := schema.Question{Type: schema.TypeCombo, Options: []string{"Single", "Married"}}

	a := editAnswer(q, model.Answer{}, "Married")
	assert.Equal(t, []string{"Married"}, a.Selections)

	// A second edit with the same option deselects it.
	a = editAnswer(q, a, "Married")
	assert.Empty(t, a.Selections)

	// Non-option text goes to the follow-up value.
	a = editAnswer(q, a, "It's complicated")
	assert.Equal(t, "It's complicated", a.Value)
}

func TestEditAnswer_CheckValRecordsBalance(t *testing.T) {
	q := schema.Question{
		Type:    schema.TypeCheckVal,
		Options: []string{"401(k)/403(b)", "Roth IRA", "None"},
	}

	a := editAnswer(q, model.Answer{}, "401(k)/403(b)=250,000")
	assert.Equal(t, []string{"401(k)/403(b)"}, a.Selections)
	assert.Equal(t, "250,000", a.AccountValues["401(k)/403(b)"])

	a = editAnswer(q, a, "Roth IRA")
	assert.Equal(t, []string{"401(k)/403(b)", "Roth IRA"}, a.Selections)
}

func TestEditAnswer_GoalsFillRowsInOrder(t *testing.T) {
	q := schema.Question{Type: schema.TypeGoals}

	a := editAnswer(q, model.Answer{}, "Retire comfortably|$2M|2045")
	require.Len(t, a.Goals, 1)
	assert.Equal(t, model.Goal{Goal: "Retire comfortably", Amount: "$2M", Timeline: "2045"}, a.Goals[0])

	a = editAnswer(q, a, "College fund")
	require.Len(t, a.Goals, 2)
	assert.Equal(t, "College fund", a.Goals[1].Goal)
	assert.Empty(t, a.Goals[1].Amount)
}

func TestEditAnswer_AssetsLiabilitiesSplit(t *testing.T) {
	q := schema.Question{Type: schema.TypeAssetsLiabilities}
	a := editAnswer(q, model.Answer{}, "$900k | $150k mortgage")
	assert.Equal(t, "$900k", a.Assets)
	assert.Equal(t, "$150k mortgage", a.Liabilities)
}

// savingStore counts UpdateClient calls so coalescing is observable.
type savingStore struct {
	store.Store
	updates atomic.Int64
}

func (s *savingStore) UpdateClient(ctx context.Context, id string, rec *model.ClientRecord) (*model.ClientRecord, error) {
	s.updates.Add(1)
	return s.Store.UpdateClient(ctx, id, rec)
}

func TestApplyEditStream_PersistsThroughAutosaver(t *testing.T) {
	ctx := context.Background()
	st := &savingStore{Store: store.NewMemory()}

	id, rec, err := st.CreateClient(ctx, "Jordan Blake")
	require.NoError(t, err)

	saver := autosave.New(st, time.Hour) // only the Close flush may write

	in := strings.NewReader(
		"q1\tJordan Blake, 1980-01-01\n" +
			"\n" +
			"q6\t$900k|$150k mortgage\n",
	)
	require.NoError(t, applyEditStream(saver, id, rec, in))
	require.NoError(t, saver.Close())

	got, err := st.GetClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Blake, 1980-01-01", got.Answers["q1"].Value)
	assert.Equal(t, "$900k", got.Answers["q6"].Assets)
	assert.Equal(t, "$150k mortgage", got.Answers["q6"].Liabilities)

	// Both edits coalesce into a single store write.
	assert.Equal(t, int64(1), st.updates.Load())
}

func TestApplyEdit_UnknownQuestionID(t *testing.T) {
	st := store.NewMemory()
	saver := autosave.New(st, time.Hour)
	defer saver.Close() //nolint:errcheck

	rec := model.NewClientRecord("Jordan Blake")
	err := applyEdit(saver, "c_1_ab12cd34", rec, "q999", "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown question id")
}

func TestApplyEditStream_MalformedLine(t *testing.T) {
	st := store.NewMemory()
	saver := autosave.New(st, time.Hour)
	defer saver.Close() //nolint:errcheck

	rec := model.NewClientRecord("Jordan Blake")
	err := applyEditStream(saver, "c_1_ab12cd34", rec, strings.NewReader("q1 no tab here\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed line")
}

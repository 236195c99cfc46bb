package intakeapi

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/intake-cli/internal/model"
	"github.com/sells-group/intake-cli/internal/server"
	"github.com/sells-group/intake-cli/internal/store"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(server.New(store.NewMemory()).Router())
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestClient_RoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := t.Context()

	id, rec, err := c.CreateClient(ctx, "Jordan Blake")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, "Jordan Blake", rec.ClientName)

	rec.Advisor = "Sam Advisor"
	rec.Answers["q1"] = model.Answer{Value: "Jordan and Casey Blake"}
	updated, err := c.UpdateClient(ctx, id, rec)
	require.NoError(t, err)
	assert.Equal(t, "Sam Advisor", updated.Advisor)

	got, err := c.GetClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jordan and Casey Blake", got.Answers["q1"].Value)

	entries, err := c.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ID)

	require.NoError(t, c.DeleteClient(ctx, id))
	_, err = c.GetClient(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestClient_CreateBlankName(t *testing.T) {
	c := newTestClient(t)

	_, _, err := c.CreateClient(t.Context(), "  ")
	require.Error(t, err)
	assert.True(t, store.IsValidation(err))
}

func TestClient_GetNotFound(t *testing.T) {
	c := newTestClient(t)

	_, err := c.GetClient(t.Context(), "c_0_deadbeef")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestClient_RejectsUnsafeIDLocally(t *testing.T) {
	c := newTestClient(t)

	_, err := c.GetClient(t.Context(), "../escape")
	require.Error(t, err)
	assert.True(t, store.IsValidation(err))
}

func TestClient_Progress(t *testing.T) {
	c := newTestClient(t)
	ctx := t.Context()

	id, rec, err := c.CreateClient(ctx, "Morgan Lee")
	require.NoError(t, err)

	rec.Answers["q1"] = model.Answer{Value: "Morgan Lee"}
	_, err = c.UpdateClient(ctx, id, rec)
	require.NoError(t, err)

	progress, err := c.ProgressFor(ctx, id)
	require.NoError(t, err)

	ips, ok := progress["IPS"]
	require.True(t, ok)
	assert.Equal(t, 1, ips.Answered)
	assert.Equal(t, 54, ips.Total)
	assert.Equal(t, "q2", ips.FirstUnanswered)
}

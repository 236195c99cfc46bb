package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_CorruptIndexDegradesToEmptyList(t *testing.T) {
	dir := t.TempDir()
	s := NewFile(dir)
	require.NoError(t, s.Migrate(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "clients.json"), []byte("{not json"), 0o644))

	entries, err := s.ListClients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStore_CorruptRecordReportsNotFound(t *testing.T) {
	dir := t.TempDir()
	s := NewFile(dir)
	ctx := context.Background()
	require.NoError(t, s.Migrate(ctx))

	id, _, err := s.CreateClient(ctx, "Broken Record")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "clients", id+".json"), []byte("<<<"), 0o644))

	_, err = s.GetClient(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_LazyDirectoryCreation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewFile(dir)

	// No Migrate call: the first create builds the directories itself.
	id, _, err := s.CreateClient(context.Background(), "Lazy Init")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "clients", id+".json"))
	assert.NoError(t, err)
}

func TestFileStore_CreatePrependsIndexEntry(t *testing.T) {
	s := NewFile(t.TempDir())
	ctx := context.Background()
	require.NoError(t, s.Migrate(ctx))

	_, _, err := s.CreateClient(ctx, "Older")
	require.NoError(t, err)
	newer, _, err := s.CreateClient(ctx, "Newer")
	require.NoError(t, err)

	entries, err := s.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer, entries[0].ID)
	assert.Equal(t, "Newer", entries[0].Name)
}

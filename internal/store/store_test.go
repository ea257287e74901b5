package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseKV(t *testing.T, kv KV) {
	ctx := context.Background()

	_, err := kv.Get(ctx, "level_Planet Earth")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, kv.Set(ctx, "level_Planet Earth", "2"))
	v, err := kv.Get(ctx, "level_Planet Earth")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	require.NoError(t, kv.Set(ctx, "level_Planet Earth", "3"))
	v, err = kv.Get(ctx, "level_Planet Earth")
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestMemory(t *testing.T) {
	exerciseKV(t, NewMemory())
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "wordy.db")
	db, err := OpenSQLite(path)
	require.NoError(t, err)
	exerciseKV(t, db)
	require.NoError(t, db.Close())

	// Reopen: migrations are skipped and data persists.
	db, err = OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()
	v, err := db.Get(context.Background(), "level_Planet Earth")
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}

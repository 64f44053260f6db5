package counter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "visitor_count.json"))
}

func TestFileStore_MissingFileReadsAsZero(t *testing.T) {
	store := newTestFileStore(t)

	count, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestFileStore_IncrementCreatesAndPersists(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	count, err := store.Increment(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Increment(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// A fresh store over the same file sees the persisted value.
	reopened := NewFileStore(store.path)
	count, err = reopened.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The record on disk is the single {"count": N} document.
	data, err := os.ReadFile(store.path)
	require.NoError(t, err)
	var rec map[string]int64
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, map[string]int64{"count": 2}, rec)
}

func TestFileStore_GetDoesNotMutate(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	_, err := store.Increment(ctx)
	require.NoError(t, err)

	for range 5 {
		count, err := store.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	}
}

func TestFileStore_CorruptFileSelfHeals(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(store.path, []byte("not json{"), 0644))

	count, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// The next increment rewrites a well-formed record.
	count, err = store.Increment(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFileStore_ConcurrentIncrementsLoseNoUpdates(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			_, err := store.Increment(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(n), count)
}

func TestFileStore_WriteErrorPropagates(t *testing.T) {
	// Pointing the store at a directory makes the write fail.
	dir := t.TempDir()
	store := NewFileStore(dir)

	_, err := store.Increment(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write visitor count file")
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	count, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	count, err = store.Increment(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	const n = 25
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			_, _ = store.Increment(ctx)
		}()
	}
	wg.Wait()

	count, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(n+1), count)
}

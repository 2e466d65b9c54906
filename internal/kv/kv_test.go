// ABOUTME: Shared conformance tests for every Store implementation.
// ABOUTME: Badger and SQLite run against throwaway directories; memory is free.
package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreTests exercises the Store contract against any implementation.
func runStoreTests(t *testing.T, store Store) {
	t.Helper()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("alpha", []byte("one")))
	require.NoError(t, store.Set("beta", []byte("two")))

	got, err := store.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), got)

	// Overwrite.
	require.NoError(t, store.Set("alpha", []byte("uno")))
	got, err = store.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, []byte("uno"), got)

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, keys)

	require.NoError(t, store.Delete("alpha"))
	_, err = store.Get("alpha")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete("alpha"))
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, NewMemory())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemory()
	value := []byte("original")
	require.NoError(t, store.Set("k", value))

	value[0] = 'X'
	got, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	got[0] = 'Y'
	again, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestBadgerStore(t *testing.T) {
	store, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
	require.NoError(t, err)
	defer store.Close()

	runStoreTests(t, store)
}

func TestBadgerStorePersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "badger")

	store, err := OpenBadger(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", []byte("v")))
	require.NoError(t, store.Close())

	reopened, err := OpenBadger(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestSQLiteStore(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "vish.db"))
	require.NoError(t, err)
	defer store.Close()

	runStoreTests(t, store)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vish.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", []byte("v")))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

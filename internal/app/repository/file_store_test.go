package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStoreTest(t *testing.T) *FileStore {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStore_GetMissingKey(t *testing.T) {
	store := setupFileStoreTest(t)

	data, ok, err := store.Get("cart")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestFileStore_SetAndGet(t *testing.T) {
	store := setupFileStoreTest(t)

	require.NoError(t, store.Set("cart", []byte(`[{"id":"a"}]`)))

	data, ok, err := store.Get("cart")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, string(data))
}

func TestFileStore_Overwrite(t *testing.T) {
	store := setupFileStoreTest(t)

	require.NoError(t, store.Set("theme", []byte("dark")))
	require.NoError(t, store.Set("theme", []byte("light")))

	data, ok, err := store.Get("theme")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", string(data))
}

func TestFileStore_Delete(t *testing.T) {
	store := setupFileStoreTest(t)

	require.NoError(t, store.Set("theme", []byte("dark")))
	require.NoError(t, store.Delete("theme"))

	_, ok, err := store.Get("theme")
	assert.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is not an error
	assert.NoError(t, store.Delete("theme"))
}

func TestFileStore_SetLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("cart", []byte("[]")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cart.json", entries[0].Name())
	assert.Equal(t, filepath.Ext(entries[0].Name()), ".json")
}

func TestNewFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndRead(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	name, err := store.Save("winners.json", []byte(`{"next_id":1}`))
	require.NoError(t, err)
	assert.Equal(t, "winners.json", name)

	data, err := store.Read("winners.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"next_id":1}`, string(data))

	_, err = store.Save("winners.json", []byte(`{"next_id":2}`))
	require.NoError(t, err)
	data, err = store.Read("winners.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"next_id":2}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestLocalStorageReadMissing(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Read("missing.json")
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestLocalStorageSaveStreamAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	_, err = store.SaveStream("winners/photo.png", strings.NewReader("png"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "winners", "photo.png"))
	require.NoError(t, err)

	f, err := store.Open("winners/photo.png")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, store.Delete("winners/photo.png"))
	require.NoError(t, store.Delete("winners/photo.png"))
}

func TestLocalStorageRejectsEscapingPaths(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("../outside.json", []byte("x"))
	assert.Error(t, err)
	_, err = store.Read("/etc/passwd")
	assert.Error(t, err)
}

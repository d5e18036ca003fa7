package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["file"][0]
}

func TestLocalStorageSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "/uploads/")
	require.NoError(t, err)

	f, err := store.Save(newFileHeader(t, "floorplan.PDF", []byte("pdf-bytes")))
	require.NoError(t, err)

	assert.Equal(t, "floorplan.PDF", f.OriginalName)
	assert.True(t, strings.HasPrefix(f.URL, "/uploads/"), "URL: %s", f.URL)
	assert.True(t, strings.HasSuffix(f.Key, ".pdf"), "extension is normalized: %s", f.Key)
	assert.NotContains(t, f.Key, "floorplan", "keys are generated, not caller-controlled")

	data, err := os.ReadFile(filepath.Join(dir, f.Key))
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-bytes"), data)
}

func TestLocalStorageSaveGeneratesUniqueKeys(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	a, err := store.Save(newFileHeader(t, "same.jpg", []byte("one")))
	require.NoError(t, err)
	b, err := store.Save(newFileHeader(t, "same.jpg", []byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, a.Key, b.Key)
}

func TestLocalStorageRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	f, err := store.Save(newFileHeader(t, "img.jpg", []byte("x")))
	require.NoError(t, err)

	require.NoError(t, store.Remove(f.Key))
	_, statErr := os.Stat(filepath.Join(dir, f.Key))
	assert.True(t, os.IsNotExist(statErr))

	// Removing an already-gone key stays quiet.
	assert.NoError(t, store.Remove(f.Key))
}

func TestLocalStorageRemoveRejectsPathTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.Error(t, store.Remove("../outside.txt"))
	assert.Error(t, store.Remove(""))
}

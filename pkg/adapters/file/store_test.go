package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/aretw0/nbserve/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)
	ports.RunDocumentStoreContract(t, store)
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "documentos")

	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStore_ListSkipsDirectoriesAndOtherFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ipynb"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ipynb.bak"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.ipynb"), 0755))

	names, err := store.List(context.Background(), domain.NotebookExt)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.ipynb"}, names)
}

func TestStore_OpenDirectoryIsNotFound(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "images"), 0755))

	_, err = store.Open(context.Background(), "images")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, store.Write(context.Background(), "tree.dot", []byte("digraph Tree {}")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tree.dot", entries[0].Name())
}

func TestStore_WriteOverwriteNeverRemovesDestination(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, store.Write(ctx, "tree.png", []byte("v0")))

	path := filepath.Join(dir, "tree.png")
	done := make(chan struct{})
	var missing int
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			if _, err := os.Stat(path); os.IsNotExist(err) {
				missing++
			}
		}
	}()

	for i := 0; i < 200; i++ {
		require.NoError(t, store.Write(ctx, "tree.png", []byte("v1")))
	}
	close(done)
	wg.Wait()

	assert.Zero(t, missing, "destination disappeared during overwrite")
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))
}

package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/nbserve/pkg/adapters/file"
	"github.com/stretchr/testify/require"
)

// SetupDocumentStore creates a temporary document directory seeded with files
// (name to content) and returns its absolute path and a store over it.
// It fails the test immediately on error.
func SetupDocumentStore(t *testing.T, files map[string]string) (string, *file.Store) {
	t.Helper()

	store, err := file.New(t.TempDir())
	require.NoError(t, err, "Failed to create document store")

	for name, body := range files {
		WriteFile(t, store.BasePath, name, body)
	}
	return store.BasePath, store
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write %s", name)
}

package ports

import (
	"context"
	"io"
	"testing"

	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDocumentStoreContract runs a suite of tests to verify that a DocumentStore
// implementation adheres to the defined interface contract. The store must be
// empty when passed in.
func RunDocumentStoreContract(t *testing.T, store DocumentStore) {
	ctx := context.Background()

	t.Run("List Empty", func(t *testing.T) {
		names, err := store.List(ctx, domain.NotebookExt)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("Write and Open", func(t *testing.T) {
		err := store.Write(ctx, "contract.ipynb", []byte(`{"nbformat":4}`))
		require.NoError(t, err, "Write should not return error")

		f, err := store.Open(ctx, "contract.ipynb")
		require.NoError(t, err, "Open should not return error")
		defer f.Close()

		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, `{"nbformat":4}`, string(data))
	})

	t.Run("Write Overwrites", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "artifact.png", []byte("first")))
		require.NoError(t, store.Write(ctx, "artifact.png", []byte("second")))

		f, err := store.Open(ctx, "artifact.png")
		require.NoError(t, err)
		defer f.Close()

		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})

	t.Run("List Filters By Extension", func(t *testing.T) {
		names, err := store.List(ctx, domain.NotebookExt)
		require.NoError(t, err)
		assert.Equal(t, []string{"contract.ipynb"}, names)
	})

	t.Run("Open Non-Existent", func(t *testing.T) {
		_, err := store.Open(ctx, "missing.ipynb")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Open Rejects Paths", func(t *testing.T) {
		for _, name := range []string{"../contract.ipynb", "sub/contract.ipynb", "..", "."} {
			_, err := store.Open(ctx, name)
			assert.ErrorIs(t, err, domain.ErrNotFound, "name %q", name)
		}
	})
}

package tree

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/nbserve/internal/logging"
	"github.com/aretw0/nbserve/pkg/adapters/file"
	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRenderer writes a numbered marker instead of a real PNG.
type countingRenderer struct {
	calls int
	err   error
}

func (r *countingRenderer) Render(ctx context.Context, dotPath, pngPath string) error {
	if r.err != nil {
		return r.err
	}
	r.calls++
	return os.WriteFile(pngPath, []byte(fmt.Sprintf("png-%d", r.calls)), 0644)
}

type recordingRunner struct {
	inv domain.Invocation
}

func (r *recordingRunner) Execute(ctx context.Context, inv domain.Invocation) (domain.InvocationResult, error) {
	r.inv = inv
	return domain.InvocationResult{Name: inv.Name}, nil
}

func TestGenerator_OverwritesFixedArtifacts(t *testing.T) {
	dir := t.TempDir()
	store, err := file.New(dir)
	require.NoError(t, err)

	renderer := &countingRenderer{}
	gen := NewGenerator(store, renderer, WithLogger(logging.NewNop()))

	for i := 0; i < 2; i++ {
		tree, err := gen.Generate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.RenderedTree{DOTFile: domain.TreeDOTFile, ImageFile: domain.TreeImageFile}, tree)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	png, err := os.ReadFile(filepath.Join(dir, domain.TreeImageFile))
	require.NoError(t, err)
	assert.Equal(t, "png-2", string(png))

	dot, err := os.ReadFile(filepath.Join(dir, domain.TreeDOTFile))
	require.NoError(t, err)
	assert.Contains(t, string(dot), "digraph Tree {")
}

func TestGenerator_WithClassifier(t *testing.T) {
	dir := t.TempDir()
	store, err := file.New(dir)
	require.NoError(t, err)

	gen := NewGenerator(store, &countingRenderer{}, WithClassifier(sampleTree()), WithLogger(logging.NewNop()))
	_, err = gen.Generate(context.Background())
	require.NoError(t, err)

	dot, err := os.ReadFile(filepath.Join(dir, domain.TreeDOTFile))
	require.NoError(t, err)
	assert.Contains(t, string(dot), "feature1 <= 0.5")
}

func TestGenerator_RenderFailure(t *testing.T) {
	store, err := file.New(t.TempDir())
	require.NoError(t, err)

	boom := errors.New("dot: not found")
	gen := NewGenerator(store, &countingRenderer{err: boom}, WithLogger(logging.NewNop()))

	_, err = gen.Generate(context.Background())
	assert.ErrorIs(t, err, boom)
}

// inspectingRenderer checks the published image while a render is in flight.
type inspectingRenderer struct {
	t         *testing.T
	published string
}

func (r *inspectingRenderer) Render(ctx context.Context, dotPath, pngPath string) error {
	assert.NotEqual(r.t, r.published, pngPath)
	current, err := os.ReadFile(r.published)
	require.NoError(r.t, err)
	assert.Equal(r.t, "old-png", string(current))
	return os.WriteFile(pngPath, []byte("new-png"), 0644)
}

func TestGenerator_PublishedImageIntactDuringRender(t *testing.T) {
	dir := t.TempDir()
	store, err := file.New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Write(context.Background(), domain.TreeImageFile, []byte("old-png")))

	published := filepath.Join(dir, domain.TreeImageFile)
	gen := NewGenerator(store, &inspectingRenderer{t: t, published: published}, WithLogger(logging.NewNop()))
	_, err = gen.Generate(context.Background())
	require.NoError(t, err)

	png, err := os.ReadFile(published)
	require.NoError(t, err)
	assert.Equal(t, "new-png", string(png))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestGenerator_RenderFailureKeepsPreviousImage(t *testing.T) {
	dir := t.TempDir()
	store, err := file.New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Write(context.Background(), domain.TreeImageFile, []byte("old-png")))

	gen := NewGenerator(store, &countingRenderer{err: errors.New("boom")}, WithLogger(logging.NewNop()))
	_, err = gen.Generate(context.Background())
	require.Error(t, err)

	png, err := os.ReadFile(filepath.Join(dir, domain.TreeImageFile))
	require.NoError(t, err)
	assert.Equal(t, "old-png", string(png))
}

func TestExecRenderer_Args(t *testing.T) {
	runner := &recordingRunner{}
	err := ExecRenderer{Runner: runner}.Render(context.Background(), "in.dot", "out.png")
	require.NoError(t, err)

	assert.Equal(t, DotCommand, runner.inv.Name)
	assert.Equal(t, []string{"-Tpng", "in.dot", "-o", "out.png"}, runner.inv.Args)
}

func TestGraphvizRenderer(t *testing.T) {
	dir := t.TempDir()
	dotPath := filepath.Join(dir, "tree.dot")
	pngPath := filepath.Join(dir, "tree.png")
	require.NoError(t, os.WriteFile(dotPath, []byte(`digraph Tree { 0 [label="leaf"] ; }`), 0644))

	require.NoError(t, GraphvizRenderer{}.Render(context.Background(), dotPath, pngPath))

	png, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

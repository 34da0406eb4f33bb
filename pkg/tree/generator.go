package tree

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/aretw0/nbserve/pkg/ports"
)

// Generator exports a classifier into the document store and renders it.
type Generator struct {
	store    ports.DocumentStore
	renderer Renderer
	model    Classifier
	opts     ExportOptions
	logger   *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithClassifier sets the tree to export. Without one the export is degenerate.
func WithClassifier(clf Classifier) GeneratorOption {
	return func(g *Generator) {
		g.model = clf
	}
}

// WithExportOptions overrides the fixed labels and flags.
func WithExportOptions(opts ExportOptions) GeneratorOption {
	return func(g *Generator) {
		g.opts = opts
	}
}

// WithLogger sets the logger used by the generator.
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a Generator writing into store with renderer.
func NewGenerator(store ports.DocumentStore, renderer Renderer, opts ...GeneratorOption) *Generator {
	g := &Generator{
		store:    store,
		renderer: renderer,
		opts:     DefaultExportOptions(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes TreeDOTFile and renders it to TreeImageFile, replacing both.
func (g *Generator) Generate(ctx context.Context) (domain.RenderedTree, error) {
	if g.model == nil {
		g.logger.Warn("No trained classifier supplied, exporting an empty tree")
	}

	var buf bytes.Buffer
	if err := ExportDOT(&buf, g.model, g.opts); err != nil {
		return domain.RenderedTree{}, fmt.Errorf("export DOT: %w", err)
	}
	if err := g.store.Write(ctx, domain.TreeDOTFile, buf.Bytes()); err != nil {
		return domain.RenderedTree{}, fmt.Errorf("write DOT: %w", err)
	}

	dotPath, err := g.store.Path(domain.TreeDOTFile)
	if err != nil {
		return domain.RenderedTree{}, err
	}
	pngPath, err := g.store.Path(domain.TreeImageFile)
	if err != nil {
		return domain.RenderedTree{}, err
	}

	// Render off to the side and publish through the store, so readers of
	// TreeImageFile never see a partially written image.
	scratch, err := os.MkdirTemp("", "nbserve-render-*")
	if err != nil {
		return domain.RenderedTree{}, fmt.Errorf("create render dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	tmpPNG := filepath.Join(scratch, domain.TreeImageFile)
	if err := g.renderer.Render(ctx, dotPath, tmpPNG); err != nil {
		return domain.RenderedTree{}, err
	}
	png, err := os.ReadFile(tmpPNG)
	if err != nil {
		return domain.RenderedTree{}, fmt.Errorf("read rendered png: %w", err)
	}
	if err := g.store.Write(ctx, domain.TreeImageFile, png); err != nil {
		return domain.RenderedTree{}, fmt.Errorf("write png: %w", err)
	}

	g.logger.Info("Tree rendered", "dot", dotPath, "image", pngPath)
	return domain.RenderedTree{DOTFile: domain.TreeDOTFile, ImageFile: domain.TreeImageFile}, nil
}

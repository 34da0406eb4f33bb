package nbserve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/aretw0/nbserve/pkg/notebook"
	"github.com/aretw0/nbserve/pkg/ports"
)

// Version is the release of the nbserve service and API.
const Version = "0.3.0"

// TreeGenerator renders the decision-tree artifacts.
type TreeGenerator interface {
	Generate(ctx context.Context) (domain.RenderedTree, error)
}

// Service is the high-level entry point of nbserve.
// It holds no state of its own besides its collaborators; every call reads
// the document store afresh.
type Service struct {
	store         ports.DocumentStore
	generator     TreeGenerator
	renderTimeout time.Duration
	logger        *slog.Logger
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithTreeGenerator sets the generator behind GenerateTree.
func WithTreeGenerator(g TreeGenerator) Option {
	return func(s *Service) {
		s.generator = g
	}
}

// WithRenderTimeout bounds each GenerateTree call. Zero means no limit.
func WithRenderTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.renderTimeout = d
	}
}

// WithLogger sets a custom structured logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a Service over store.
func New(store ports.DocumentStore, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// ListNotebooks returns the notebook file names in the store.
// An empty store is reported as domain.ErrNotFound rather than an empty list.
func (s *Service) ListNotebooks(ctx context.Context) ([]string, error) {
	names, err := s.store.List(ctx, domain.NotebookExt)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no %s files in the document store", domain.ErrNotFound, domain.NotebookExt)
	}
	return names, nil
}

// ReadNotebook decodes the named notebook and returns its cells in order.
func (s *Service) ReadNotebook(ctx context.Context, name string) ([]domain.Cell, error) {
	if !strings.HasSuffix(name, domain.NotebookExt) {
		return nil, fmt.Errorf("%w: %s is not a notebook", domain.ErrNotFound, name)
	}

	f, err := s.store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := notebook.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	cells := notebook.Extract(doc)
	s.logger.Debug("Notebook extracted", "name", name, "nbformat", doc.Format, "cells", len(cells))
	return cells, nil
}

// GenerateTree renders the decision tree into the store.
func (s *Service) GenerateTree(ctx context.Context) (domain.RenderedTree, error) {
	if s.generator == nil {
		return domain.RenderedTree{}, errors.New("no tree generator configured")
	}
	if s.renderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.renderTimeout)
		defer cancel()
	}
	return s.generator.Generate(ctx)
}

// OpenImage opens a stored file for streaming back to the caller.
// The caller must close the returned file.
func (s *Service) OpenImage(ctx context.Context, name string) (ports.File, error) {
	return s.store.Open(ctx, name)
}

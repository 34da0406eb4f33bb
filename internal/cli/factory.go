package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/nbserve"
	"github.com/aretw0/nbserve/internal/config"
	"github.com/aretw0/nbserve/pkg/adapters/file"
	"github.com/aretw0/nbserve/pkg/adapters/process"
	"github.com/aretw0/nbserve/pkg/tree"
)

// App bundles the wired components a command needs.
type App struct {
	Config  config.Config
	Store   *file.Store
	Runner  *process.Runner
	Service *nbserve.Service
	Model   tree.Classifier // nil unless render.model is set
	Logger  *slog.Logger
}

// NewApp wires the document store, tree renderer and service from cfg.
// The document directory is created if missing.
func NewApp(cfg config.Config, logger *slog.Logger) (*App, error) {
	store, err := file.New(cfg.Paths.DocumentsDir)
	if err != nil {
		return nil, err
	}

	runner := process.NewRunner(
		process.WithRegistry(cfg.ToolRegistry()),
		process.WithBaseDir(store.BasePath),
		process.WithLogger(logger),
	)

	renderer, err := newRenderer(cfg.Render, runner)
	if err != nil {
		return nil, err
	}

	genOpts := []tree.GeneratorOption{tree.WithLogger(logger)}
	var model tree.Classifier
	if cfg.Render.Model != "" {
		loaded, err := loadModel(cfg.Render.Model)
		if err != nil {
			return nil, err
		}
		model = loaded
		genOpts = append(genOpts, tree.WithClassifier(model))
	}

	gen := tree.NewGenerator(store, renderer, genOpts...)
	svc := nbserve.New(store,
		nbserve.WithTreeGenerator(gen),
		nbserve.WithRenderTimeout(cfg.Render.Timeout),
		nbserve.WithLogger(logger),
	)

	return &App{
		Config:  cfg,
		Store:   store,
		Runner:  runner,
		Service: svc,
		Model:   model,
		Logger:  logger,
	}, nil
}

func newRenderer(cfg config.Render, runner *process.Runner) (tree.Renderer, error) {
	switch cfg.Engine {
	case config.EngineExec, "":
		return tree.ExecRenderer{Runner: runner}, nil
	case config.EngineGraphviz:
		return tree.GraphvizRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown render engine %q", cfg.Engine)
	}
}

func loadModel(path string) (tree.Classifier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tree model: %w", err)
	}
	defer f.Close()
	return tree.LoadModel(f)
}

package tree

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/aretw0/nbserve/pkg/ports"
	"github.com/goccy/go-graphviz"
)

// Renderer converts a DOT file into a PNG file. The source file is left in place.
// pngPath is a scratch location; Generator moves the result into the store.
type Renderer interface {
	Render(ctx context.Context, dotPath, pngPath string) error
}

// DotCommand is the registry name of the Graphviz command used by ExecRenderer.
const DotCommand = "dot"

// ExecRenderer shells out to the Graphviz "dot" command through a CommandRunner.
// The runner must have DotCommand registered.
type ExecRenderer struct {
	Runner ports.CommandRunner
}

// Render runs `dot -Tpng <dotPath> -o <pngPath>`.
func (r ExecRenderer) Render(ctx context.Context, dotPath, pngPath string) error {
	_, err := r.Runner.Execute(ctx, domain.Invocation{
		Name: DotCommand,
		Args: []string{"-Tpng", dotPath, "-o", pngPath},
	})
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}

// GraphvizRenderer renders in-process with the Graphviz library.
type GraphvizRenderer struct{}

// Render parses dotPath and writes the PNG to pngPath.
func (GraphvizRenderer) Render(ctx context.Context, dotPath, pngPath string) error {
	src, err := os.ReadFile(dotPath)
	if err != nil {
		return fmt.Errorf("read DOT: %w", err)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(src)
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := os.WriteFile(pngPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

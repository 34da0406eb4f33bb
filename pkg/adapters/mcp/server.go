package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/nbserve"
	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// TreeResponse mirrors the HTTP render response.
type TreeResponse struct {
	Mensaje string `json:"mensaje" jsonschema_description:"Outcome message"`
	Imagen  string `json:"imagen" jsonschema_description:"Name of the rendered PNG in the document store"`
	DOT     string `json:"dot" jsonschema_description:"Name of the Graphviz source in the document store"`
}

// Service defines the operations the MCP server exposes as tools.
type Service interface {
	ListNotebooks(ctx context.Context) ([]string, error)
	ReadNotebook(ctx context.Context, name string) ([]domain.Cell, error)
	GenerateTree(ctx context.Context) (domain.RenderedTree, error)
}

// Server wraps the nbserve Service and exposes it as an MCP Server.
type Server struct {
	svc       Service
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// NewServer creates a new MCP Server instance.
func NewServer(svc Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		svc:       svc,
		logger:    logger,
		mcpServer: server.NewMCPServer("nbserve-mcp", strings.TrimSpace(nbserve.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: list_notebooks
	s.mcpServer.AddTool(mcp.NewTool("list_notebooks",
		mcp.WithDescription("List the .ipynb notebooks in the document directory."),
	), s.handleListNotebooks)

	// TOOL: read_notebook
	s.mcpServer.AddTool(mcp.NewTool("read_notebook",
		mcp.WithDescription("Extract the cells and recorded outputs of a notebook as JSON."),
		mcp.WithString("nombre", mcp.Required(), mcp.Description("Notebook file name, e.g. analysis.ipynb")),
	), s.handleReadNotebook)

	// TOOL: generate_tree
	treeTool := mcp.NewTool("generate_tree",
		mcp.WithDescription("Render the decision-tree visualization into the document directory."),
		mcp.WithOutputSchema[TreeResponse](),
	)
	s.mcpServer.AddTool(treeTool, mcp.NewStructuredToolHandler(s.handleGenerateTree))
}

func (s *Server) handleListNotebooks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.svc.ListNotebooks(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return mcp.NewToolResultError("no .ipynb files in the document directory"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}
	jsonBytes, _ := json.Marshal(names)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleReadNotebook(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("nombre")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cells, err := s.svc.ReadNotebook(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("notebook %q not found", name)), nil
		}
		s.logger.Error("MCP read_notebook failed", "name", name, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("read failed: %v", err)), nil
	}
	jsonBytes, err := json.Marshal(cells)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleGenerateTree(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TreeResponse, error) {
	tree, err := s.svc.GenerateTree(ctx)
	if err != nil {
		s.logger.Error("MCP generate_tree failed", "error", err)
		return TreeResponse{}, fmt.Errorf("render failed: %w", err)
	}
	return TreeResponse{
		Mensaje: "Árbol generado correctamente.",
		Imagen:  tree.ImageFile,
		DOT:     tree.DOTFile,
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: nbserve://documentos
	s.mcpServer.AddResource(mcp.NewResource("nbserve://documentos", "Notebook Listing",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.svc.ListNotebooks(ctx)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("failed to list notebooks: %w", err)
		}
		if names == nil {
			names = []string{}
		}
		jsonBytes, _ := json.Marshal(names)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "nbserve://documentos",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

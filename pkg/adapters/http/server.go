package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/nbserve"
	"github.com/aretw0/nbserve/api"
	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/aretw0/nbserve/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// Service defines the operations the HTTP adapter exposes.
type Service interface {
	ListNotebooks(ctx context.Context) ([]string, error)
	ReadNotebook(ctx context.Context, name string) ([]domain.Cell, error)
	GenerateTree(ctx context.Context) (domain.RenderedTree, error)
	OpenImage(ctx context.Context, name string) (ports.File, error)
}

// Server implements the generated ServerInterface on top of a Service.
type Server struct {
	Service   Service
	StaticDir string
	Metrics   *Metrics
	logger    *slog.Logger
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithStaticDir sets the directory holding index.html and front-end assets.
func WithStaticDir(dir string) Option {
	return func(s *Server) {
		s.StaticDir = dir
	}
}

// WithMetrics sets the metrics collector; NewHandler creates one otherwise.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.Metrics = m
	}
}

// WithLogger sets the logger used for request and failure logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// Response messages.
const (
	msgNoNotebooks     = "No hay archivos .ipynb en el directorio."
	msgListFailed      = "Error al listar los documentos: %v"
	msgNotebookMissing = "Archivo no encontrado o formato incorrecto"
	msgReadFailed      = "Error al leer el contenido del archivo: %v"
	msgTreeGenerated   = "Árbol generado correctamente."
	msgTreeFailed      = "Error al generar el árbol: %v"
	msgImageMissing    = "Imagen no encontrada."
	msgImageFailed     = "Error al servir la imagen: %v"
	msgBadParameter    = "Parámetro inválido: %v"
)

// NewHandler creates a new HTTP handler for the service.
func NewHandler(svc Service, opts ...Option) http.Handler {
	s := &Server{
		Service:   svc,
		StaticDir: "static",
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Metrics == nil {
		s.Metrics = NewMetrics()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)
	r.Use(s.Metrics.Middleware)

	r.Get("/", s.GetIndex)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.StaticDir))))

	r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(api.Spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	// API routes come from api/openapi.yaml.
	HandlerWithOptions(s, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			writeMessage(w, http.StatusBadRequest, fmt.Sprintf(msgBadParameter, err))
		},
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>nbserve API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetIndex handles the GET / request.
func (s *Server) GetIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.StaticDir, "index.html"))
}

// ListNotebooks handles the GET /documentos request.
func (s *Server) ListNotebooks(w http.ResponseWriter, r *http.Request) {
	names, err := s.Service.ListNotebooks(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, msgNoNotebooks)
			return
		}
		s.logger.Error("ListNotebooks failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, fmt.Sprintf(msgListFailed, err))
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// ReadNotebook handles the GET /documentos/contenido/{nombre} request.
func (s *Server) ReadNotebook(w http.ResponseWriter, r *http.Request, name Nombre) {
	cells, err := s.Service.ReadNotebook(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("ReadNotebook: not found", "name", name)
			writeMessage(w, http.StatusNotFound, msgNotebookMissing)
			return
		}
		s.logger.Error("ReadNotebook failed", "name", name, "error", err)
		writeMessage(w, http.StatusInternalServerError, fmt.Sprintf(msgReadFailed, err))
		return
	}
	writeJSON(w, http.StatusOK, cells)
}

// GenerateTree handles the POST /generar-arbol request.
func (s *Server) GenerateTree(w http.ResponseWriter, r *http.Request) {
	tree, err := s.Service.GenerateTree(r.Context())
	if err != nil {
		s.Metrics.ObserveRender(false)
		s.logger.Error("GenerateTree failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, fmt.Sprintf(msgTreeFailed, err))
		return
	}
	s.Metrics.ObserveRender(true)
	writeJSON(w, http.StatusOK, TreeResult{Mensaje: msgTreeGenerated, Imagen: tree.ImageFile})
}

// GetImage handles the GET /documentos/imagen/{nombre} request.
func (s *Server) GetImage(w http.ResponseWriter, r *http.Request, name Nombre) {
	f, err := s.Service.OpenImage(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("GetImage: not found", "name", name)
			writeMessage(w, http.StatusNotFound, msgImageMissing)
			return
		}
		s.logger.Error("GetImage failed", "name", name, "error", err)
		writeMessage(w, http.StatusInternalServerError, fmt.Sprintf(msgImageFailed, err))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.logger.Error("GetImage stat failed", "name", name, "error", err)
		writeMessage(w, http.StatusInternalServerError, fmt.Sprintf(msgImageFailed, err))
		return
	}
	http.ServeContent(w, r, name, info.ModTime(), f)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	} else if err != nil {
		s.logger.Error("Failed to load OpenAPI spec", "error", err)
	}

	writeJSON(w, http.StatusOK, Info{
		App:        "nbserve-http",
		Version:    strings.TrimSpace(nbserve.Version),
		ApiVersion: apiVersion,
	})
}

// -- Helpers --

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Message{Mensaje: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}

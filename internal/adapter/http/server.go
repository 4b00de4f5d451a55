// Package http serves the heatmap page, its alternate renditions, and the
// health, readiness, and metrics endpoints.
package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/temperature-heatmap/internal/heatmap"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
)

// Page renders the full HTML document.
type Page interface {
	Render(w io.Writer) error
}

// Chart is the heatmap view as seen by the HTTP layer.
type Chart interface {
	sharedobs.ReadinessChecker
	RenderSVG(w io.Writer) error
	RenderInteractive(w io.Writer) error
	Cells() ([]render.Cell, error)
}

// Server exposes the page, chart, health, readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	page       Page
	chart      Chart
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server bound to addr.
func NewServer(addr string, page Page, chart Chart, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		page:    page,
		chart:   chart,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /chart.svg", s.handleSVG)
	mux.HandleFunc("GET /interactive", s.handleInteractive)
	mux.HandleFunc("GET /api/cells", s.handleCells)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(chart))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// The page is served whatever the canvas currently holds, including nothing.
func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	s.metrics.RenderRequests.WithLabelValues("page").Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Render(w); err != nil {
		s.logger.Error("page render failed", "error", err)
	}
}

func (s *Server) handleSVG(w http.ResponseWriter, _ *http.Request) {
	s.metrics.RenderRequests.WithLabelValues("svg").Inc()
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := s.chart.RenderSVG(w); err != nil {
		s.logger.Error("svg render failed", "error", err)
	}
}

func (s *Server) handleInteractive(w http.ResponseWriter, _ *http.Request) {
	s.metrics.RenderRequests.WithLabelValues("interactive").Inc()
	if err := s.chart.CheckReadiness(context.Background()); err != nil {
		sharedobs.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.chart.RenderInteractive(w); err != nil {
		s.logger.Error("interactive render failed", "error", err)
	}
}

func (s *Server) handleCells(w http.ResponseWriter, _ *http.Request) {
	s.metrics.RenderRequests.WithLabelValues("cells").Inc()
	cells, err := s.chart.Cells()
	if errors.Is(err, heatmap.ErrNotLoaded) {
		sharedobs.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		s.logger.Error("cell listing failed", "error", err)
		sharedobs.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, cells)
}

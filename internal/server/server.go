// Package server exposes the catalog, filtering, launching and the export
// namespace over a small JSON HTTP API, alongside health and metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/studioutils/studioutils/internal/aggregate"
	"github.com/studioutils/studioutils/internal/catalog"
	"github.com/studioutils/studioutils/internal/filter"
	"github.com/studioutils/studioutils/internal/launcher"
	"github.com/studioutils/studioutils/internal/metrics"
)

// DefaultAddr is used when Options.Addr is empty.
const DefaultAddr = "127.0.0.1:3434"

// Options wires the server to its collaborators. Registry and Launcher are
// required.
type Options struct {
	Addr      string
	Registry  *catalog.Registry
	Launcher  *launcher.Launcher
	Namespace *aggregate.Namespace
	Gatherer  prometheus.Gatherer
	Metrics   metrics.Recorder
	Logger    *zap.Logger
}

// Server serves the HTTP API.
type Server struct {
	opts   Options
	logger *zap.Logger
}

// New returns a server for opts.
func New(opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{opts: opts, logger: logger.Named("server")}
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /api/tools", s.handleTools)
	mux.HandleFunc("POST /api/tools/{id}/launch", s.handleLaunch)
	mux.HandleFunc("GET /api/exports", s.handleExports)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("api server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("api server failed to start: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("api server shutdown error", zap.Error(err))
			return err
		}
		s.logger.Info("api server stopped")
		return nil
	}
}

type categoryResponse struct {
	catalog.CategoryInfo
	Count int `json:"count"`
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	reg := s.opts.Registry
	cats := reg.Categories()
	out := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		n := reg.Len()
		if c.ID != catalog.All {
			n = reg.CountFor(c.ID)
		}
		out = append(out, categoryResponse{CategoryInfo: c, Count: n})
	}
	writeJSON(w, http.StatusOK, out)
}

type toolsResponse struct {
	Category catalog.Category `json:"category"`
	Heading  string           `json:"heading"`
	Tools    []catalog.Tool   `json:"tools"`
	Empty    bool             `json:"empty"`
}

func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	// each request is its own dashboard instance
	f := filter.New(s.opts.Registry, filter.WithObserver(s.opts.Metrics.ObserveSelection))
	if c := r.URL.Query().Get("category"); c != "" && !f.Select(c) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown category %q", c))
		return
	}
	tools := f.Visible()
	if tools == nil {
		tools = []catalog.Tool{}
	}
	writeJSON(w, http.StatusOK, toolsResponse{
		Category: f.Selected(),
		Heading:  f.Heading(),
		Tools:    tools,
		Empty:    f.Empty(),
	})
}

func (s *Server) handleLaunch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := s.opts.Launcher.Launch(id)
	switch {
	case errors.Is(err, launcher.ErrUnknownTool):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, launcher.ErrInvalidState):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		s.logger.Error("launch failed", zap.String("tool_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	target, _ := s.opts.Launcher.Resolve(id)
	writeJSON(w, http.StatusAccepted, map[string]string{"tool_id": id, "target": target})
}

type exportResponse struct {
	ID      string   `json:"id"`
	Version string   `json:"version"`
	Symbols []string `json:"symbols"`
}

func (s *Server) handleExports(w http.ResponseWriter, _ *http.Request) {
	ns := s.opts.Namespace
	if ns == nil {
		writeError(w, http.StatusServiceUnavailable, "export namespace not composed")
		return
	}
	pkgs := ns.Packages()
	out := make([]exportResponse, 0, len(pkgs))
	for _, id := range pkgs {
		out = append(out, exportResponse{ID: id, Version: ns.Version(id), Symbols: ns.SymbolsIn(id)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "tools": s.opts.Registry.Len()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Package server exposes the layout resolver over HTTP: the compiled
// stylesheet, per-width snapshots, and single (width, region) queries.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/buildinfo"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/cache"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/errors"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/observability"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/pipeline"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/resolve"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/sheet"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/style"
)

// Server serves one validated sheet. The sheet is loaded at startup, so
// every request handler works from an immutable resolver and can never hit
// a validation error at request time.
type Server struct {
	cfg      Config
	runner   *pipeline.Runner
	resolver *resolve.Resolver
	logger   *log.Logger
	router   chi.Router
}

// New loads the configured sheet and builds the request router.
func New(ctx context.Context, cfg Config, c cache.Cache, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}

	runner := pipeline.NewRunner(c, nil, logger)
	if cfg.TTL() > 0 {
		runner.TTL = cfg.TTL()
	}
	s, err := runner.Load(ctx, pipeline.Options{SheetPath: cfg.SheetPath})
	if err != nil {
		return nil, err
	}
	res, err := resolve.New(s)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		cfg:      cfg,
		runner:   runner,
		resolver: res,
		logger:   logger,
	}
	srv.router = srv.routes()
	return srv, nil
}

// Handler returns the HTTP handler, for tests and custom listeners.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the service until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr, "sheet", s.resolver.Sheet().Name)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(s.recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/styles.css", s.handleCSS)
	r.Route("/api", func(r chi.Router) {
		r.Get("/regions", s.handleRegions)
		r.Get("/snapshot", s.handleSnapshot)
		r.Get("/resolve", s.handleResolve)
	})
	return r
}

// =============================================================================
// Middleware
// =============================================================================

type ctxKey int

const requestIDKey ctxKey = 0

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.status, elapsed)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"duration", elapsed,
			"request_id", r.Context().Value(requestIDKey))
	})
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic in handler", "path", r.URL.Path, "panic", rec)
				s.writeError(w, errors.New(errors.ErrCodeInternal, "internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
		"sheet":   s.resolver.Sheet().Hash(),
	})
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	artifacts, _, err := s.runner.RenderWithCacheInfo(r.Context(), s.resolver.Sheet(), nil, pipeline.Options{
		Formats: []string{pipeline.FormatCSS},
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("ETag", `"`+s.resolver.Sheet().Hash()+`"`)
	_, _ = w.Write(artifacts[pipeline.FormatCSS])
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	tree := s.resolver.Sheet().Tree
	regions := make([]sheet.Region, 0, tree.Len())
	for _, id := range tree.IDs() {
		reg, _ := tree.Get(id)
		regions = append(regions, reg)
	}
	s.writeJSON(w, http.StatusOK, regions)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	width, err := queryWidth(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	snap, _, err := s.runner.SnapshotWithCacheInfo(r.Context(), s.resolver, width, false)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	width, err := queryWidth(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	region := sheet.RegionID(r.URL.Query().Get("region"))
	if region == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "region parameter is required"))
		return
	}

	styles, err := s.resolver.Region(width, region)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make(map[style.Property]string, len(styles))
	for p, v := range styles {
		out[p] = v.CSS()
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"width":  width,
		"region": region,
		"styles": out,
	})
}

// =============================================================================
// Helpers
// =============================================================================

func queryWidth(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("width")
	if raw == "" {
		return 0, errors.New(errors.ErrCodeInvalidInput, "width parameter is required")
	}
	width, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidWidth, "width must be an integer, got %q", raw)
	}
	if err := errors.ValidateWidth(width); err != nil {
		return 0, err
	}
	return width, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	body := map[string]string{
		"code":    string(errors.GetCode(err)),
		"message": errors.UserMessage(err),
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

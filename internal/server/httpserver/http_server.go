// Package httpserver wires the site download service: routes, middleware
// and server lifecycle.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/localsite/internal/config"
	derrors "git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/generator"
	"git.home.luguber.info/inful/localsite/internal/logfields"
	"git.home.luguber.info/inful/localsite/internal/metrics"
	handlers "git.home.luguber.info/inful/localsite/internal/server/handlers"
	smw "git.home.luguber.info/inful/localsite/internal/server/middleware"
)

const shutdownTimeout = 10 * time.Second

// Options carries optional dependencies.
type Options struct {
	// Registry receives the Prometheus collectors when metrics are enabled.
	// A nil registry gets a private one.
	Registry *prom.Registry
	Logger   *slog.Logger
}

// Server serves the generation API.
type Server struct {
	cfg          *config.Config
	logger       *slog.Logger
	registry     *prom.Registry
	recorder     metrics.Recorder
	errorAdapter *derrors.HTTPErrorAdapter

	siteHandlers       *handlers.SiteHandlers
	monitoringHandlers *handlers.MonitoringHandlers

	mchain     func(http.Handler) http.Handler
	httpServer *http.Server
}

// New constructs the server and its generator.
func New(cfg *config.Config, opts Options) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		cfg:          cfg,
		logger:       logger,
		recorder:     metrics.NoopRecorder{},
		errorAdapter: derrors.NewHTTPErrorAdapter(logger),
	}
	if cfg.Metrics.Enabled {
		s.registry = opts.Registry
		if s.registry == nil {
			s.registry = prom.NewRegistry()
		}
		s.recorder = metrics.NewPrometheusRecorder(s.registry)
	}

	gen := generator.New(cfg, generator.WithRecorder(s.recorder), generator.WithLogger(logger))
	s.siteHandlers = handlers.NewSiteHandlers(gen, cfg.Server.MaxBodyBytes, logger)
	s.monitoringHandlers = handlers.NewMonitoringHandlers(time.Now(), logger)
	s.mchain = smw.Chain(logger, s.errorAdapter, s.recorder)
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/sites", s.siteHandlers.HandleGenerate)
	mux.HandleFunc("POST /api/v1/sites/validate", s.siteHandlers.HandleValidate)
	mux.HandleFunc("GET /healthz", s.monitoringHandlers.HandleHealthCheck)
	if s.registry != nil {
		mux.Handle("GET "+s.cfg.Metrics.Path, metrics.HTTPHandler(s.registry))
	}
	return s.mchain(mux)
}

// ListenAndServe binds addr and serves until ctx is canceled, then shuts
// down gracefully. An empty addr uses the configured one.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = s.cfg.Server.Addr
	}
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return derrors.WrapError(err, derrors.CategoryRuntime, "failed to bind HTTP listener").
			WithContext("addr", addr).
			Build()
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout(),
		ReadTimeout:       s.cfg.ReadTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()
	s.logger.Info("HTTP server started", slog.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("HTTP server shutdown", logfields.Error(err))
		return fmt.Errorf("http server shutdown: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

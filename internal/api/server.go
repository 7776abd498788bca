// internal/api/server.go
package api

import (
	"context"
	"net/http"
	"time"

	"globalmind/internal/common/config"
	"globalmind/internal/common/logger"
	"globalmind/internal/history"
	"globalmind/internal/pipeline"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the HTTP gateway in front of the query pipeline.
type Server struct {
	cfg         *config.Config
	coordinator *pipeline.Coordinator
	store       history.Store
	logger      logger.Logger
	httpServer  *http.Server
	startedAt   time.Time
}

func NewServer(cfg *config.Config, coordinator *pipeline.Coordinator, store history.Store, log logger.Logger) *Server {
	s := &Server{
		cfg:         cfg,
		coordinator: coordinator,
		store:       store,
		logger:      log.With(map[string]interface{}{"component": "api"}),
		startedAt:   time.Now(),
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the route tree. Exposed separately so tests can drive the
// handler without binding a port.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))
	r.Use(corsMiddleware(s.cfg.Server.AllowedOrigins))
	r.Use(middleware.Timeout(time.Duration(s.cfg.Server.RequestTimeout) * time.Millisecond))

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/query", s.handleQuery)
		r.Get("/languages", s.handleLanguages)
		r.Get("/examples", s.handleExamples)
		r.Get("/federation/status", s.handleFederationStatus)
	})

	return r
}

func (s *Server) Start() error {
	s.logger.Info("http server starting", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down", nil)
	return s.httpServer.Shutdown(ctx)
}

// SPDX-License-Identifier: MIT

// Package server exposes the search engine over HTTP with gin.
//
//	GET  /v1/health
//	GET  /v1/path?source=&target=&strategy=
//	POST /v1/paths
//	GET  /metrics
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/degrees/config"
	"github.com/katalvlaran/degrees/engine"
	"github.com/katalvlaran/degrees/logging"
)

// shutdownGrace bounds how long Run waits for in-flight requests.
const shutdownGrace = 10 * time.Second

// NewRouter builds the gin engine with recovery, request logging, the v1
// API and the Prometheus endpoint.
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(h.logger))

	v1 := router.Group("/v1")
	RegisterRoutes(v1, h)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// requestLogger logs one line per request.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("took", time.Since(start)))
	}
}

// Server is an http.Server bound to the API router.
type Server struct {
	http   *http.Server
	logger *slog.Logger
}

// New returns a server for eng configured by cfg.
func New(cfg config.ServerConfig, batch config.BatchConfig, eng *engine.Engine, logger *slog.Logger) *Server {
	logger = logging.OrDefault(logger)
	gin.SetMode(gin.ReleaseMode)
	h := NewHandlers(eng, batch.Parallelism, logger)

	return &Server{
		http: &http.Server{
			Addr:         cfg.Addr,
			Handler:      NewRouter(h),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("addr", s.http.Addr))
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")

	return nil
}

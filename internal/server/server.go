// SPDX-License-Identifier: MIT

// Package server is the JSON HTTP API over a frozen campus graph.
//
// Routes:
//
//	GET /healthz
//	GET /v1/locations
//	GET /v1/route?algorithm=dijkstra&from=A&to=B
//	GET /v1/compare?from=A&to=B
//	GET /metrics            (when a metrics collector is configured)
//
// Endpoints are location names from the table; matching is exact first,
// then case-insensitive.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/campusroute/core"
	"github.com/katalvlaran/campusroute/internal/metrics"
	"github.com/katalvlaran/campusroute/locations"
	"github.com/katalvlaran/campusroute/route"
)

const shutdownGrace = 5 * time.Second

// Server answers route queries for one graph and location table.
type Server struct {
	g       *core.Graph
	tbl     *locations.Table
	log     *zap.Logger
	metrics *metrics.Collector
	algo    route.Algorithm
	speed   float64
	engine  *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and query logger. Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithMetrics records every query in c and serves it on /metrics.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Server) { s.metrics = c }
}

// WithDefaultAlgorithm sets the algorithm used when a request names none.
func WithDefaultAlgorithm(a route.Algorithm) Option {
	return func(s *Server) { s.algo = a }
}

// WithWalkingSpeed sets the speed behind walking_minutes, in m/s.
func WithWalkingSpeed(mps float64) Option {
	return func(s *Server) { s.speed = mps }
}

// New builds the gin engine. g must be frozen.
func New(g *core.Graph, tbl *locations.Table, opts ...Option) *Server {
	s := &Server{
		g:     g,
		tbl:   tbl,
		log:   zap.NewNop(),
		algo:  route.Dijkstra,
		speed: route.DefaultWalkingSpeed,
	}
	for _, fn := range opts {
		fn(s)
	}
	if s.metrics != nil {
		s.metrics.SetGraph(g.Stats())
	}

	e := gin.New()
	e.Use(gin.Recovery(), requestID(), accessLog(s.log), cors.New(corsConfig()))
	e.GET("/healthz", s.health)
	v1 := e.Group("/v1")
	v1.GET("/locations", s.listLocations)
	v1.GET("/route", s.findRoute)
	v1.GET("/compare", s.compareRoutes)
	if s.metrics != nil {
		e.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
	s.engine = e

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("http server stopped")

	return nil
}

func corsConfig() cors.Config {
	c := cors.DefaultConfig()
	c.AllowAllOrigins = true
	c.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", headerRequestID}
	c.ExposeHeaders = []string{headerRequestID}

	return c
}

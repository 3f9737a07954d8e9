// SPDX-License-Identifier: MIT

// Package metrics exposes campusroute query metrics in the Prometheus format.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/campusroute/core"
	"github.com/katalvlaran/campusroute/route"
)

// Query outcomes.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Collector owns a private registry so tests and multiple servers never
// share global state.
type Collector struct {
	registry      *prometheus.Registry
	queriesTotal  *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	pathHops      *prometheus.HistogramVec
	graphSize     *prometheus.GaugeVec
}

// NewCollector initializes a new metrics registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	c := &Collector{
		registry: registry,
		queriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "campusroute_queries_total", Help: "Route queries by algorithm and outcome"},
			[]string{"algorithm", "outcome"},
		),
		queryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campusroute_query_duration_seconds",
				Help:    "Engine time per answered query",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"algorithm"},
		),
		pathHops: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campusroute_path_hops",
				Help:    "Edges on found paths",
				Buckets: prometheus.LinearBuckets(0, 10, 10),
			},
			[]string{"algorithm"},
		),
		graphSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "campusroute_graph_size", Help: "Vertices and edges of the loaded graph"},
			[]string{"kind"},
		),
	}

	registry.MustRegister(c.queriesTotal, c.queryDuration, c.pathHops, c.graphSize)
	return c
}

// Outcome classifies a finished query.
func Outcome(r route.Route, err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidEndpoint), errors.Is(err, route.ErrUnknownAlgorithm):
		return OutcomeInvalid
	case err != nil:
		return OutcomeError
	case r.Result.Found:
		return OutcomeFound
	default:
		return OutcomeNotFound
	}
}

// ObserveRoute records one query. Its signature matches route.WithObserver
// and it is safe for concurrent use.
func (c *Collector) ObserveRoute(r route.Route, err error) {
	outcome := Outcome(r, err)
	algo := string(r.Algorithm)
	c.queriesTotal.WithLabelValues(algo, outcome).Inc()
	if outcome == OutcomeInvalid {
		return
	}
	c.queryDuration.WithLabelValues(algo).Observe(r.Elapsed.Seconds())
	if outcome == OutcomeFound {
		c.pathHops.WithLabelValues(algo).Observe(float64(r.Result.Hops()))
	}
}

// SetGraph records the size of the graph being served.
func (c *Collector) SetGraph(s core.GraphStats) {
	c.graphSize.WithLabelValues("vertices").Set(float64(s.Vertices))
	c.graphSize.WithLabelValues("edges").Set(float64(s.Edges))
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

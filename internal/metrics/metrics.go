// Package metrics exposes store activity as Prometheus metrics.
//
// Metrics:
//
//	gridboard_store_operations_total{collection,op,outcome}
//	gridboard_store_operation_duration_seconds{collection,op}
//	gridboard_store_inflight
//	gridboard_store_stale_responses_total{collection}
//	gridboard_collection_size{collection}
//
// outcome is one of ok, error, rejected, stale.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/gridboard/internal/ports/secondary"
)

// Collector implements secondary.StoreMetrics on a Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	inflight   prometheus.Gauge
	stale      *prometheus.CounterVec
	size       *prometheus.GaugeVec
}

// NewCollector creates a collector and registers its metrics on reg.
// A nil reg gets a fresh registry.
func NewCollector(reg *prometheus.Registry) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: reg,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridboard_store_operations_total",
			Help: "Store operations by collection, operation, and outcome",
		}, []string{"collection", "op", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridboard_store_operation_duration_seconds",
			Help:    "Store operation latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"collection", "op"}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gridboard_store_inflight",
			Help: "Store operations currently in flight",
		}),
		stale: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridboard_store_stale_responses_total",
			Help: "Fetch responses discarded because a newer fetch was issued",
		}, []string{"collection"}),
		size: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gridboard_collection_size",
			Help: "Records held by the store per collection",
		}, []string{"collection"}),
	}

	reg.MustRegister(c.operations, c.duration, c.inflight, c.stale, c.size)
	return c
}

var _ secondary.StoreMetrics = (*Collector)(nil)

// ObserveOperation records one finished store operation.
func (c *Collector) ObserveOperation(collection, op, outcome string, elapsed time.Duration) {
	c.operations.WithLabelValues(collection, op, outcome).Inc()
	c.duration.WithLabelValues(collection, op).Observe(elapsed.Seconds())
}

// SetInflight sets the number of operations in flight.
func (c *Collector) SetInflight(n int) {
	c.inflight.Set(float64(n))
}

// RecordStale counts a discarded fetch response.
func (c *Collector) RecordStale(collection string) {
	c.stale.WithLabelValues(collection).Inc()
}

// SetCollectionSize records how many records a collection holds.
func (c *Collector) SetCollectionSize(collection string, n int) {
	c.size.WithLabelValues(collection).Set(float64(n))
}

// Registry returns the registry the metrics are registered on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

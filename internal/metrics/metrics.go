/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/metrics/metrics.go
*/

// Package metrics exposes the server's Prometheus counters and gauges, and
// the HTTP handler that serves them. This is the home SPEC_FULL.md §3
// (Domain Stack) gives prometheus/client_golang.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles every metric the server updates. A nil *Registry is
// valid and every method is then a no-op, so callers can wire metrics
// optionally without littering nil-checks through the hot path.
type Registry struct {
	ConnectionsTotal   prometheus.Counter
	ConnectionsActive  prometheus.Gauge
	CommandsTotal      *prometheus.CounterVec
	CommandDuration    *prometheus.HistogramVec
	KeyspaceSize       prometheus.GaugeFunc
}

// New registers a fresh set of collectors against a new prometheus.Registry
// and returns both.
func New(sizeFn func() float64) (*Registry, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	r := &Registry{
		ConnectionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "redisclone_connections_total",
			Help: "Total accepted client connections.",
		}),
		ConnectionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "redisclone_connections_active",
			Help: "Currently open client connections.",
		}),
		CommandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "redisclone_commands_total",
			Help: "Commands processed, by command name and outcome.",
		}, []string{"command", "outcome"}),
		CommandDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "redisclone_command_duration_seconds",
			Help:    "Command dispatch latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),
	}
	if sizeFn != nil {
		r.KeyspaceSize = factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "redisclone_keyspace_keys",
			Help: "Number of live keys in the database.",
		}, sizeFn)
	}
	return r, reg
}

// Handler returns the HTTP handler to mount at the metrics endpoint.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func (r *Registry) connOpened() {
	if r == nil {
		return
	}
	r.ConnectionsTotal.Inc()
	r.ConnectionsActive.Inc()
}

func (r *Registry) connClosed() {
	if r == nil {
		return
	}
	r.ConnectionsActive.Dec()
}

// ConnOpened records a newly accepted connection.
func (r *Registry) ConnOpened() { r.connOpened() }

// ConnClosed records a closed connection.
func (r *Registry) ConnClosed() { r.connClosed() }

// ObserveCommand records one dispatched command's outcome and latency.
func (r *Registry) ObserveCommand(name, outcome string, seconds float64) {
	if r == nil {
		return
	}
	r.CommandsTotal.WithLabelValues(name, outcome).Inc()
	r.CommandDuration.WithLabelValues(name).Observe(seconds)
}

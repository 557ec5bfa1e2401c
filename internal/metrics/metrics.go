// Package metrics declares the Prometheus instruments of the georouted
// daemon.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the query-side instruments: one counter and one latency
// histogram per query kind, plus gauges describing the loaded graph.
type Metrics struct {
	QueriesTotal  *prometheus.CounterVec
	QuerySeconds  *prometheus.HistogramVec
	GraphVertices prometheus.Gauge
	GraphEdges    prometheus.Gauge
}

// NewMetrics registers the instruments on reg and returns them.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		QueriesTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "georoute_queries_total",
			Help: "Total number of graph queries served, by kind and status.",
		}, []string{"kind", "status"}),
		QuerySeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "georoute_query_duration_seconds",
			Help:    "Duration of graph queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		GraphVertices: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "georoute_graph_vertices",
			Help: "Number of vertices in the loaded graph.",
		}),
		GraphEdges: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "georoute_graph_edges",
			Help: "Number of edges in the loaded graph.",
		}),
	}
}

// SPDX-License-Identifier: MIT
// File: metrics.go
// Role: Prometheus collectors describing one Graph's activity.
// Policy:
//   - Collectors are created per Metrics value; share one Metrics only between
//     graphs whose gauges may overwrite each other.
//   - A nil *Metrics is valid and records nothing.

package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "heavyhood"

// Rejection reasons used as the "reason" label of RejectedOps.
const (
	reasonSelfLoop   = "self_loop"
	reasonNotFound   = "not_found"
	reasonEdgeExists = "edge_exists"
)

// Metrics groups the collectors a Graph updates.
type Metrics struct {
	EdgesAdded      prometheus.Counter
	VerticesRemoved prometheus.Counter
	RejectedOps     *prometheus.CounterVec // labels: op, reason

	Nodes           prometheus.Gauge
	Edges           prometheus.Gauge
	MaxNeighborhood prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		EdgesAdded: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "edges_added_total",
			Help:      "Total number of edges added.",
		}),
		VerticesRemoved: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "vertices_removed_total",
			Help:      "Total number of vertices removed.",
		}),
		RejectedOps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rejected_ops_total",
			Help:      "Mutations rejected without changing the graph.",
		}, []string{"op", "reason"}),
		Nodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "nodes",
			Help:      "Live vertices.",
		}),
		Edges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "edges",
			Help:      "Live undirected edges.",
		}),
		MaxNeighborhood: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "max_neighborhood_weight",
			Help:      "Heaviest live neighborhood weight, 0 for an empty graph.",
		}),
	}
}

// observe refreshes the gauges from g.
func (m *Metrics) observe(g *Graph) {
	if m == nil {
		return
	}
	m.Nodes.Set(float64(g.numNodes))
	m.Edges.Set(float64(g.numEdges))
	if top, ok := g.heap.PeekMax(); ok {
		m.MaxNeighborhood.Set(float64(top.Weight))
	} else {
		m.MaxNeighborhood.Set(0)
	}
}

func (m *Metrics) edgeAdded(g *Graph) {
	if m == nil {
		return
	}
	m.EdgesAdded.Inc()
	m.observe(g)
}

func (m *Metrics) vertexRemoved(g *Graph) {
	if m == nil {
		return
	}
	m.VerticesRemoved.Inc()
	m.observe(g)
}

func (m *Metrics) rejected(op, reason string) {
	if m == nil {
		return
	}
	m.RejectedOps.WithLabelValues(op, reason).Inc()
}

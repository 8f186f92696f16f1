// SPDX-License-Identifier: MIT
// File: types.go
// Role: Vertex, half-edge and Graph types, graph options and sentinel errors.
// Ownership:
//   - A Vertex belongs to at most one Graph; NewGraph claims it, RemoveVertex releases it.
//   - Half-edges live in their owner's adjacency list and hold the handle of their mirror.
// Concurrency:
//   - None. A Graph must not be used from several goroutines without external locking.

package core

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/heavyhood/dll"
	"github.com/katalvlaran/heavyhood/hashindex"
	"github.com/katalvlaran/heavyhood/nbheap"
)

// NotFound is the neighborhood weight reported for an absent vertex.
const NotFound int64 = -1

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates a nil *Vertex in the construction set.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrNegativeWeight indicates a vertex with weight < 0.
	ErrNegativeWeight = errors.New("core: vertex weight is negative")

	// ErrDuplicateVertex indicates two vertices sharing one identifier.
	ErrDuplicateVertex = errors.New("core: duplicate vertex id")

	// ErrVertexOwned indicates a vertex that already belongs to a graph.
	ErrVertexOwned = errors.New("core: vertex already belongs to a graph")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEdgeExists indicates a second edge between the same pair.
	// Reported only by graphs built WithEdgeCheck.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrInvariant indicates that the index, adjacency lists and heap disagree.
	ErrInvariant = errors.New("core: invariant violated")
)

// Vertex is a weighted vertex. Its identifier and weight never change.
type Vertex struct {
	id     int
	weight int64

	g     *Graph               // owner; nil while detached
	edges *dll.List[*halfEdge] // incident half-edges, most recent first
	nbhd  *nbheap.Record       // live neighborhood weight + heap slot
}

// NewVertex returns a detached vertex ready to be passed to NewGraph.
func NewVertex(id int, weight int64) *Vertex {
	return &Vertex{id: id, weight: weight}
}

// ID returns the vertex identifier.
func (v *Vertex) ID() int { return v.id }

// Weight returns the vertex weight.
func (v *Vertex) Weight() int64 { return v.weight }

// halfEdge is one direction of an undirected edge, stored in the list of
// the vertex it leaves from.
type halfEdge struct {
	to     *Vertex
	mirror *dll.Element[*halfEdge] // the reverse half, inside to.edges
}

// GraphOption configures a Graph before its structures are built.
type GraphOption func(g *Graph)

// WithRand supplies the random source for the index hash parameters.
// Panics on nil.
func WithRand(r *rand.Rand) GraphOption {
	if r == nil {
		panic("core: WithRand(nil)")
	}
	return func(g *Graph) { g.rng = r }
}

// WithSeed seeds the index hash parameters deterministically.
func WithSeed(seed int64) GraphOption {
	return func(g *Graph) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithEdgeCheck makes Connect reject a second edge between the same pair
// with ErrEdgeExists. The check scans the shorter adjacency list, so adding
// an edge costs O(min(d1,d2) + log n) instead of O(log n).
func WithEdgeCheck() GraphOption {
	return func(g *Graph) { g.edgeCheck = true }
}

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) GraphOption {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(g *Graph) { g.log = l }
}

// WithMetrics reports graph activity to m.
func WithMetrics(m *Metrics) GraphOption {
	return func(g *Graph) { g.metrics = m }
}

// Graph maintains the vertex with the heaviest neighborhood under edge
// insertion and vertex deletion.
//
// index resolves ids to vertices, each vertex keeps its incident half-edges,
// and heap orders the per-vertex neighborhood records by weight.
type Graph struct {
	index *hashindex.Table[*Vertex]
	heap  *nbheap.Heap

	numNodes int
	numEdges int

	// configuration
	rng       *rand.Rand
	edgeCheck bool
	log       *slog.Logger
	metrics   *Metrics
}

func defaultGraph() *Graph {
	return &Graph{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func vertexKey(v *Vertex) int { return v.id }

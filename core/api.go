// SPDX-License-Identifier: MIT
// File: api.go
// Role: Graph construction and read-only queries.
// Policy:
//   - Queries never mutate; repeated calls without mutation return the same result.
//   - Absent ids are reported through NotFound, nil or ok=false, never a panic.

package core

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/heavyhood/dll"
	"github.com/katalvlaran/heavyhood/hashindex"
	"github.com/katalvlaran/heavyhood/nbheap"
)

const methodNewGraph = "NewGraph"

// NewGraph builds an edgeless graph over vertices.
//
// Implementation:
//   - Stage 1: Apply options (random source, edge check, logger, metrics).
//   - Stage 2: Validate each vertex and insert it into an index sized len(vertices);
//     the index lookup doubles as the duplicate-id check.
//   - Stage 3: Claim the vertices, give each an empty adjacency list and a
//     neighborhood record of weight 0, and heapify all records at once.
//
// Errors:
//   - ErrNilVertex, ErrNegativeWeight, ErrVertexOwned, ErrDuplicateVertex,
//     wrapped with the offending position. On error no vertex is claimed.
//
// Complexity:
//   - Time O(n) expected, Space O(n).
func NewGraph(vertices []*Vertex, opts ...GraphOption) (*Graph, error) {
	g := defaultGraph()
	for _, opt := range opts {
		opt(g)
	}

	g.index = hashindex.New(len(vertices), vertexKey, g.rng)
	for i, v := range vertices {
		switch {
		case v == nil:
			return nil, fmt.Errorf("%s: vertices[%d]: %w", methodNewGraph, i, ErrNilVertex)
		case v.weight < 0:
			return nil, fmt.Errorf("%s: vertex %d weight %d: %w", methodNewGraph, v.id, v.weight, ErrNegativeWeight)
		case v.g != nil:
			return nil, fmt.Errorf("%s: vertex %d: %w", methodNewGraph, v.id, ErrVertexOwned)
		}
		if _, dup := g.index.Get(v.id); dup {
			return nil, fmt.Errorf("%s: vertex %d: %w", methodNewGraph, v.id, ErrDuplicateVertex)
		}
		g.index.Insert(v)
	}

	records := make([]*nbheap.Record, len(vertices))
	for i, v := range vertices {
		v.g = g
		v.edges = dll.New[*halfEdge]()
		v.nbhd = nbheap.NewRecord(v.id, 0)
		records[i] = v.nbhd
	}
	g.heap = nbheap.New(records)
	g.numNodes = len(vertices)

	g.log.Debug("graph built", "vertices", g.numNodes, "buckets", g.index.Capacity())
	g.metrics.observe(g)

	return g, nil
}

// NumNodes returns the number of live vertices. O(1).
func (g *Graph) NumNodes() int { return g.numNodes }

// NumEdges returns the number of live undirected edges. O(1).
func (g *Graph) NumEdges() int { return g.numEdges }

// Vertex returns the live vertex with the given id.
func (g *Graph) Vertex(id int) (*Vertex, bool) {
	return g.index.Get(id)
}

// HasVertex reports whether id is a live vertex.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.index.Get(id)

	return ok
}

// Vertices yields every live vertex in index order (unspecified but stable
// while the graph is not mutated). The graph must not be mutated during iteration.
func (g *Graph) Vertices() iter.Seq[*Vertex] { return g.index.All() }

// MaxNeighborhoodWeight returns the vertex whose live neighbors weigh the
// most, or nil when the graph has no vertices. Ties are broken arbitrarily.
// The root record is resolved through the index by id. O(1) expected.
func (g *Graph) MaxNeighborhoodWeight() *Vertex {
	top, ok := g.heap.PeekMax()
	if !ok {
		return nil
	}
	v, _ := g.index.Get(top.ID)

	return v
}

// NeighborhoodWeight returns the sum of the weights of id's live neighbors,
// or NotFound when id is not a live vertex. O(1) expected.
func (g *Graph) NeighborhoodWeight(id int) int64 {
	w, ok := g.LookupNeighborhoodWeight(id)
	if !ok {
		return NotFound
	}

	return w
}

// LookupNeighborhoodWeight is the comma-ok form of NeighborhoodWeight.
func (g *Graph) LookupNeighborhoodWeight(id int) (int64, bool) {
	v, ok := g.index.Get(id)
	if !ok {
		return 0, false
	}

	return v.nbhd.Weight, true
}

// Neighbors returns the ids adjacent to id, most recently connected first.
// Complexity: O(d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	v, ok := g.index.Get(id)
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrVertexNotFound)
	}
	out := make([]int, 0, v.edges.Len())
	for he := range v.edges.All() {
		out = append(out, he.to.id)
	}

	return out, nil
}

// Degree returns the number of edges incident to id. O(1) expected.
func (g *Graph) Degree(id int) (int, error) {
	v, ok := g.index.Get(id)
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}

	return v.edges.Len(), nil
}

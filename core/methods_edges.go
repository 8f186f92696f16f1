// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge insertion (Connect/AddEdge) and neighborhood weight shifts.
// Invariants kept by every successful call:
//   - Half-edges come in mirrored pairs, each holding the other's list handle.
//   - A vertex's record weight equals the summed weight of its live neighbors.

package core

import "fmt"

const (
	methodConnect = "Connect"
	opAddEdge     = "add_edge"
)

// Connect adds an undirected edge between id1 and id2.
//
// Implementation:
//   - Stage 1: Reject self-loops and absent endpoints (no mutation).
//   - Stage 2: With WithEdgeCheck, reject an existing edge between the pair.
//   - Stage 3: Push one half-edge into each endpoint's list and cross-link the
//     returned handles.
//   - Stage 4: Raise each endpoint's neighborhood record by the other's weight.
//
// Errors:
//   - ErrSelfLoop, ErrVertexNotFound, ErrEdgeExists (edge-checked graphs only).
//
// Notes:
//   - Without WithEdgeCheck a second Connect for the same pair stores a
//     parallel edge and counts the neighbor twice; avoiding that is up to the caller.
//
// Complexity:
//   - Time O(log n) expected, O(min(d1,d2) + log n) with WithEdgeCheck.
func (g *Graph) Connect(id1, id2 int) error {
	if id1 == id2 {
		g.metrics.rejected(opAddEdge, reasonSelfLoop)
		return fmt.Errorf("%s(%d,%d): %w", methodConnect, id1, id2, ErrSelfLoop)
	}
	v1, ok1 := g.index.Get(id1)
	v2, ok2 := g.index.Get(id2)
	if !ok1 || !ok2 {
		g.metrics.rejected(opAddEdge, reasonNotFound)
		return fmt.Errorf("%s(%d,%d): %w", methodConnect, id1, id2, ErrVertexNotFound)
	}
	if g.edgeCheck && adjacent(v1, v2) {
		g.metrics.rejected(opAddEdge, reasonEdgeExists)
		return fmt.Errorf("%s(%d,%d): %w", methodConnect, id1, id2, ErrEdgeExists)
	}

	h12 := &halfEdge{to: v2}
	h21 := &halfEdge{to: v1}
	h21.mirror = v1.edges.PushFront(h12)
	h12.mirror = v2.edges.PushFront(h21)

	if err := g.shift(v1, v2.weight); err != nil {
		return fmt.Errorf("%s(%d,%d): %w", methodConnect, id1, id2, err)
	}
	if err := g.shift(v2, v1.weight); err != nil {
		return fmt.Errorf("%s(%d,%d): %w", methodConnect, id1, id2, err)
	}
	g.numEdges++
	g.metrics.edgeAdded(g)

	return nil
}

// AddEdge adds an undirected edge between id1 and id2 and reports success.
// It returns false, leaving the graph unchanged, when id1 == id2, when
// either id is absent, or when Connect rejects the pair for any other reason.
func (g *Graph) AddEdge(id1, id2 int) bool {
	return g.Connect(id1, id2) == nil
}

// adjacent scans the shorter of the two adjacency lists for the other endpoint.
func adjacent(v1, v2 *Vertex) bool {
	if v1.edges.Len() > v2.edges.Len() {
		v1, v2 = v2, v1
	}
	for he := range v1.edges.All() {
		if he.to == v2 {
			return true
		}
	}

	return false
}

// shift adds delta to v's neighborhood record through its cached heap slot.
func (g *Graph) shift(v *Vertex, delta int64) error {
	if err := g.heap.ChangeKey(v.nbhd.Pos(), delta); err != nil {
		return fmt.Errorf("vertex %d: %v: %w", v.id, err, ErrInvariant)
	}

	return nil
}

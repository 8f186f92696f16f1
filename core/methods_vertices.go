// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex deletion (RemoveVertex/DeleteNode).
// Invariants kept by every successful call:
//   - The removed vertex leaves the index, the heap and every neighbor's list together.
//   - Each neighbor's record drops by exactly the removed vertex's weight per shared edge.

package core

import "fmt"

const (
	methodRemoveVertex = "RemoveVertex"
	opDeleteNode       = "delete_node"
)

// RemoveVertex deletes id together with all of its incident edges.
//
// Implementation:
//   - Stage 1: Resolve id through the index (ErrVertexNotFound if absent).
//   - Stage 2: For every incident half-edge, unlink the mirror from the neighbor's
//     list through the stored handle, lower the neighbor's record by the removed
//     vertex's weight, and drop the own half.
//   - Stage 3: Delete the vertex's record from the heap and the vertex from the index,
//     then release it.
//
// Errors:
//   - ErrVertexNotFound: id is not a live vertex.
//
// Complexity:
//   - Time O((d+1)·log n) expected, Space O(1).
func (g *Graph) RemoveVertex(id int) error {
	v, ok := g.index.Get(id)
	if !ok {
		g.metrics.rejected(opDeleteNode, reasonNotFound)
		return fmt.Errorf("%s(%d): %w", methodRemoveVertex, id, ErrVertexNotFound)
	}

	degree := v.edges.Len()
	for e := v.edges.Front(); e != nil; e = v.edges.Front() {
		he := e.Value
		u := he.to
		if !u.edges.Remove(he.mirror) {
			return fmt.Errorf("%s(%d): mirror of edge to %d not in its list: %w",
				methodRemoveVertex, id, u.id, ErrInvariant)
		}
		if err := g.shift(u, -v.weight); err != nil {
			return fmt.Errorf("%s(%d): %w", methodRemoveVertex, id, err)
		}
		v.edges.Remove(e)
		g.numEdges--
	}

	if _, err := g.heap.Delete(v.nbhd.Pos()); err != nil {
		return fmt.Errorf("%s(%d): %v: %w", methodRemoveVertex, id, err, ErrInvariant)
	}
	g.index.Delete(id)
	g.numNodes--
	v.g = nil

	g.log.Debug("vertex removed", "id", id, "degree", degree)
	g.metrics.vertexRemoved(g)

	return nil
}

// DeleteNode deletes id and its incident edges, reporting whether id existed.
func (g *Graph) DeleteNode(id int) bool {
	return g.RemoveVertex(id) == nil
}

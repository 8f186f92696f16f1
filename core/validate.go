// SPDX-License-Identifier: MIT
// File: validate.go
// Role: Whole-structure consistency check used by tests and debugging sessions.

package core

import "fmt"

// Validate walks every structure and reports the first broken invariant,
// wrapped around ErrInvariant. It checks that:
//   - index, heap and the node counter agree on the number of live vertices;
//   - the heap keeps the max property and every cached slot;
//   - each live vertex owns exactly the record found at its slot;
//   - every half-edge points at a live vertex whose list holds its mirror;
//   - every record weight equals the summed weight of the live neighbors;
//   - the edge counter equals half the number of half-edges.
//
// Complexity: O(n + m).
func (g *Graph) Validate() error {
	if g.index.Len() != g.numNodes || g.heap.Len() != g.numNodes {
		return fmt.Errorf("index=%d heap=%d nodes=%d: %w",
			g.index.Len(), g.heap.Len(), g.numNodes, ErrInvariant)
	}
	if err := g.heap.Valid(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvariant)
	}

	halves := 0
	for v := range g.index.All() {
		if v.g != g {
			return fmt.Errorf("vertex %d not owned by this graph: %w", v.id, ErrInvariant)
		}
		if g.heap.At(v.nbhd.Pos()) != v.nbhd || v.nbhd.ID != v.id {
			return fmt.Errorf("vertex %d record not at its slot %d: %w", v.id, v.nbhd.Pos(), ErrInvariant)
		}

		var sum int64
		for he := range v.edges.All() {
			u := he.to
			if live, ok := g.index.Get(u.id); !ok || live != u {
				return fmt.Errorf("edge %d-%d points at a removed vertex: %w", v.id, u.id, ErrInvariant)
			}
			if u == v {
				return fmt.Errorf("self-loop at %d: %w", v.id, ErrInvariant)
			}
			if !u.edges.Holds(he.mirror) {
				return fmt.Errorf("edge %d-%d mirror not in %d's list: %w", v.id, u.id, u.id, ErrInvariant)
			}
			back := he.mirror.Value
			if back.to != v || back.mirror.Value != he {
				return fmt.Errorf("edge %d-%d has no reciprocal half: %w", v.id, u.id, ErrInvariant)
			}
			sum += u.weight
			halves++
		}
		if sum != v.nbhd.Weight {
			return fmt.Errorf("vertex %d neighborhood %d, neighbors weigh %d: %w",
				v.id, v.nbhd.Weight, sum, ErrInvariant)
		}
	}
	if halves != 2*g.numEdges {
		return fmt.Errorf("%d half-edges for %d edges: %w", halves, g.numEdges, ErrInvariant)
	}

	return nil
}

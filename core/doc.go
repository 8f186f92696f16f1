// SPDX-License-Identifier: MIT
// Package core maintains a dynamic undirected vertex-weighted graph that can
// always answer "which vertex has the heaviest neighborhood?", where the
// neighborhood weight of v is the summed weight of v's live neighbors.
//
// Three structures are kept in lockstep:
//
//   - a randomized hash index (hashindex) resolving ids to vertices;
//   - one adjacency list (dll) per vertex holding half-edges, where each half
//     keeps the list handle of its mirror so either side unlinks in O(1);
//   - a position-tracking max-heap (nbheap) of neighborhood records.
//
// Core Methods:
//
//	NewGraph(vertices, opts...) (*Graph, error) // O(n) expected
//	MaxNeighborhoodWeight() *Vertex            // O(1) expected, nil if empty
//	NeighborhoodWeight(id) int64               // O(1) expected, NotFound if absent
//	AddEdge(id1, id2) bool                     // O(log n)
//	Connect(id1, id2) error                    // O(log n), error form of AddEdge
//	DeleteNode(id) bool                        // O((d+1)·log n)
//	RemoveVertex(id) error                     // error form of DeleteNode
//	NumNodes(), NumEdges() int                 // O(1)
//
// The vertex set is fixed at construction: vertices only leave (RemoveVertex),
// edges only arrive (Connect) or leave with an endpoint. The index never grows.
//
// Configuration Options (GraphOption):
//
//	WithSeed(seed) / WithRand(r)  source of the index hash parameters
//	WithEdgeCheck()               reject parallel edges with ErrEdgeExists
//	WithLogger(l)                 *slog.Logger for debug records
//	WithMetrics(m)                Prometheus collectors from NewMetrics
//
// Errors:
//
//	ErrNilVertex        – nil vertex at construction
//	ErrNegativeWeight   – vertex weight below zero
//	ErrDuplicateVertex  – two vertices with one id
//	ErrVertexOwned      – vertex already claimed by a graph
//	ErrVertexNotFound   – absent id
//	ErrSelfLoop         – Connect(x, x)
//	ErrEdgeExists       – parallel edge on a WithEdgeCheck graph
//	ErrInvariant        – structures disagree (reported by Validate)
//
// A Graph is not safe for concurrent use; serialize all calls on one instance.
package core

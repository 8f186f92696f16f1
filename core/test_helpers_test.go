// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heavyhood/core"
)

// Common vertex ids used across core tests.
const (
	V1 = 1
	V2 = 2
	V3 = 3
	V4 = 4

	VMissing = 404
)

// Common weights used across core tests.
const (
	Weight0 int64 = 0
	Weight1 int64 = 1
	Weight2 int64 = 2
	Weight5 int64 = 5
	Weight7 int64 = 7
)

// testSeed fixes the index hash parameters so failures reproduce.
const testSeed = 20240601

// newGraph builds a graph over (id, weight) pairs given as id1, w1, id2, w2, ….
func newGraph(t testing.TB, opts []core.GraphOption, idWeight ...int64) *core.Graph {
	t.Helper()
	require.Zero(t, len(idWeight)%2, "newGraph wants id/weight pairs")
	vs := make([]*core.Vertex, 0, len(idWeight)/2)
	for i := 0; i < len(idWeight); i += 2 {
		vs = append(vs, core.NewVertex(int(idWeight[i]), idWeight[i+1]))
	}
	g, err := core.NewGraph(vs, append([]core.GraphOption{core.WithSeed(testSeed)}, opts...)...)
	require.NoError(t, err)

	return g
}

// threeUnit is the three-vertex, unit-weight fixture {1:1, 2:1, 3:1}.
func threeUnit(t testing.TB) *core.Graph {
	return newGraph(t, nil, V1, Weight1, V2, Weight1, V3, Weight1)
}

// snapshot captures every observable number of g for no-change assertions.
type snapshot struct {
	nodes, edges int
	weights      map[int]int64
}

func takeSnapshot(g *core.Graph) snapshot {
	s := snapshot{nodes: g.NumNodes(), edges: g.NumEdges(), weights: map[int]int64{}}
	for v := range g.Vertices() {
		s.weights[v.ID()] = g.NeighborhoodWeight(v.ID())
	}

	return s
}

// mustValid fails the test when any cross-structure invariant is broken.
func mustValid(t testing.TB, g *core.Graph) {
	t.Helper()
	require.NoError(t, g.Validate())
}

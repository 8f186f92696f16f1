// SPDX-License-Identifier: MIT
// Package: heavyhood/builder
//
// api.go — vertex sets, edge population and the one-call BuildGraph.
//
// Determinism:
//   - Vertices are produced in index order 0..n-1.
//   - Populate connects pairs in slice order, so the adjacency order of the
//     resulting graph is a pure function of the pair list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/heavyhood/core"
)

const (
	methodVertices   = "Vertices"
	methodPopulate   = "Populate"
	methodBuildGraph = "BuildGraph"
)

// Vertices returns n detached vertices with ids cfg.idFn(0..n-1) and weights
// drawn from cfg.weightFn. n == 0 yields an empty, non-nil slice.
//
// Errors:
//   - ErrTooFewVertices: n < 0.
//
// Complexity: O(n).
func Vertices(n int, opts ...BuilderOption) ([]*core.Vertex, error) {
	if n < 0 {
		return nil, builderErrorf(methodVertices, ErrTooFewVertices, "n=%d < 0", n)
	}
	cfg := newBuilderConfig(opts...)

	return vertices(n, cfg), nil
}

func vertices(n int, cfg builderConfig) []*core.Vertex {
	out := make([]*core.Vertex, n)
	for i := range out {
		out[i] = core.NewVertex(cfg.idFn(i), cfg.weightFn(cfg.rng))
	}

	return out
}

// Populate connects every pair on g in order and stops at the first failure.
// The returned count is the number of edges added before it.
//
// Errors:
//   - ErrNilGraph, or the core error of the failing Connect (errors.Is works
//     against core.ErrSelfLoop, core.ErrVertexNotFound, core.ErrEdgeExists).
func Populate(g *core.Graph, pairs [][2]int) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%s: %w", methodPopulate, ErrNilGraph)
	}
	for i, p := range pairs {
		if err := g.Connect(p[0], p[1]); err != nil {
			return i, fmt.Errorf("%s: pair %d: %w", methodPopulate, i, err)
		}
	}

	return len(pairs), nil
}

// BuildGraph creates n vertices, builds a core.Graph over them with gopts and
// connects m random pairs sampled as RandomPairs does. The same builder RNG
// feeds weights and pairs, so a seed fixes the whole workload.
//
// Errors:
//   - Any error of Vertices, core.NewGraph, RandomPairs or Populate, wrapped
//     with "BuildGraph:".
func BuildGraph(n, m int, gopts []core.GraphOption, opts ...BuilderOption) (*core.Graph, error) {
	if n < 0 {
		return nil, builderErrorf(methodBuildGraph, ErrTooFewVertices, "n=%d < 0", n)
	}
	cfg := newBuilderConfig(opts...)

	g, err := core.NewGraph(vertices(n, cfg), gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
	}
	if m == 0 {
		return g, nil
	}
	pairs, err := randomPairs(n, m, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
	}
	if _, err = Populate(g, pairs); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
	}

	return g, nil
}

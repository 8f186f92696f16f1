// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heavyhood/builder"
	"github.com/katalvlaran/heavyhood/core"
)

func TestVertices_Defaults(t *testing.T) {
	vs, err := builder.Vertices(4)
	require.NoError(t, err)
	require.Len(t, vs, 4)
	for i, v := range vs {
		assert.Equal(t, i+1, v.ID())
		assert.Equal(t, builder.DefaultVertexWeight, v.Weight())
	}

	empty, err := builder.Vertices(0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = builder.Vertices(-1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestVertices_SchemesAndWeights(t *testing.T) {
	vs, err := builder.Vertices(3,
		builder.WithIDScheme(builder.StrideIDFn(-10, 7)),
		builder.WithWeightFn(builder.ConstantWeightFn(5)))
	require.NoError(t, err)
	assert.Equal(t, []int{-10, -3, 4}, ids(vs))
	for _, v := range vs {
		assert.Equal(t, int64(5), v.Weight())
	}

	vs, err = builder.Vertices(50,
		builder.WithSeed(9),
		builder.WithIDScheme(builder.OffsetIDFn(100)),
		builder.WithWeightFn(builder.UniformWeightFn(2, 4)))
	require.NoError(t, err)
	assert.Equal(t, 100, vs[0].ID())
	for _, v := range vs {
		assert.GreaterOrEqual(t, v.Weight(), int64(2))
		assert.LessOrEqual(t, v.Weight(), int64(4))
	}
}

func TestWeightFn_Fallbacks(t *testing.T) {
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 9)(nil), "nil rng yields min")
	assert.Equal(t, int64(6), builder.UniformWeightFn(6, 6)(rand.New(rand.NewSource(1))))
	assert.Equal(t, builder.DefaultVertexWeight, builder.DefaultWeightFn(nil))
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.StrideIDFn(0, 0) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
}

func TestRandomPairs_Contract(t *testing.T) {
	const n, m = 64, 64
	pairs, err := builder.RandomPairs(n, m, builder.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, pairs, m)

	seen := map[[2]int]bool{}
	for _, p := range pairs {
		assert.Less(t, p[0], p[1], "first id drawn at a lower index")
		assert.GreaterOrEqual(t, p[0], 1)
		assert.LessOrEqual(t, p[1], n)
		assert.False(t, seen[p], "pair %v repeated", p)
		seen[p] = true
	}
}

func TestRandomPairs_Deterministic(t *testing.T) {
	a, err := builder.RandomPairs(100, 80, builder.WithSeed(77))
	require.NoError(t, err)
	b, err := builder.RandomPairs(100, 80, builder.WithSeed(77))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRandomPairs_Saturated(t *testing.T) {
	// every pair of 5 vertices
	pairs, err := builder.RandomPairs(5, 10, builder.WithSeed(3))
	require.NoError(t, err)
	assert.Len(t, pairs, 10)
}

func TestRandomPairs_Errors(t *testing.T) {
	_, err := builder.RandomPairs(1, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.RandomPairs(4, 7, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooManyPairs)

	_, err = builder.RandomPairs(4, -1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooManyPairs)

	_, err = builder.RandomPairs(4, 2)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestPopulate(t *testing.T) {
	vs, err := builder.Vertices(3)
	require.NoError(t, err)
	g, err := core.NewGraph(vs, core.WithSeed(1))
	require.NoError(t, err)

	n, err := builder.Populate(g, [][2]int{{1, 2}, {2, 3}, {3, 3}, {1, 3}})
	assert.ErrorIs(t, err, core.ErrSelfLoop)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, g.NumEdges())

	_, err = builder.Populate(nil, nil)
	assert.ErrorIs(t, err, builder.ErrNilGraph)
}

func TestBuildGraph(t *testing.T) {
	g, err := builder.BuildGraph(128, 128, []core.GraphOption{core.WithSeed(5)}, builder.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, 128, g.NumNodes())
	assert.Equal(t, 128, g.NumEdges())
	require.NoError(t, g.Validate())

	g, err = builder.BuildGraph(0, 0, nil)
	require.NoError(t, err)
	assert.Nil(t, g.MaxNeighborhoodWeight())

	_, err = builder.BuildGraph(10, 5, nil)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(3, 0, nil, builder.WithIDScheme(func(int) int { return 7 }))
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)
}

func TestSummarize_Star(t *testing.T) {
	vs, err := builder.Vertices(5)
	require.NoError(t, err)
	g, err := core.NewGraph(vs, core.WithSeed(2))
	require.NoError(t, err)
	_, err = builder.Populate(g, [][2]int{{1, 2}, {1, 3}, {1, 4}, {1, 5}})
	require.NoError(t, err)

	s, err := builder.Summarize(g)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Vertices)
	assert.Equal(t, 4, s.Edges)
	assert.Equal(t, 1, s.Heaviest)
	assert.InDelta(t, 1.6, s.Mean, 1e-9)
	assert.InDelta(t, 1.0, s.Median, 1e-9)
	assert.InDelta(t, 4.0, s.Max, 1e-9)
	assert.LessOrEqual(t, s.P90, s.Max)
	assert.LessOrEqual(t, s.P99, s.Max)
}

func TestSummarize_Errors(t *testing.T) {
	_, err := builder.Summarize(nil)
	assert.ErrorIs(t, err, builder.ErrNilGraph)

	g, err := core.NewGraph(nil)
	require.NoError(t, err)
	_, err = builder.Summarize(g)
	assert.ErrorIs(t, err, builder.ErrEmptyGraph)
}

func ids(vs []*core.Vertex) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = v.ID()
	}

	return out
}

// SPDX-License-Identifier: MIT
package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heavyhood/builder"
	"github.com/katalvlaran/heavyhood/core"
)

// model is a naive map-based mirror of the graph used as an oracle.
type model struct {
	weight map[int]int64
	adj    map[int]map[int]bool
	edges  int
}

func newModel(vs []*core.Vertex) *model {
	m := &model{weight: map[int]int64{}, adj: map[int]map[int]bool{}}
	for _, v := range vs {
		m.weight[v.ID()] = v.Weight()
		m.adj[v.ID()] = map[int]bool{}
	}

	return m
}

func (m *model) connect(a, b int) {
	m.adj[a][b] = true
	m.adj[b][a] = true
	m.edges++
}

func (m *model) remove(id int) {
	for n := range m.adj[id] {
		delete(m.adj[n], id)
		m.edges--
	}
	delete(m.adj, id)
	delete(m.weight, id)
}

func (m *model) neighborhood(id int) int64 {
	var sum int64
	for n := range m.adj[id] {
		sum += m.weight[n]
	}

	return sum
}

func (m *model) max() int64 {
	best := int64(-1)
	for id := range m.weight {
		if w := m.neighborhood(id); w > best {
			best = w
		}
	}

	return best
}

// checkAgainst compares every observable of g with the oracle.
func checkAgainst(t *testing.T, g *core.Graph, m *model, step int) {
	t.Helper()
	require.NoError(t, g.Validate(), "step %d", step)
	require.Equal(t, len(m.weight), g.NumNodes(), "step %d nodes", step)
	require.Equal(t, m.edges, g.NumEdges(), "step %d edges", step)

	halves := 0
	for id := range m.weight {
		require.Equal(t, m.neighborhood(id), g.NeighborhoodWeight(id), "step %d vertex %d", step, id)
		d, err := g.Degree(id)
		require.NoError(t, err)
		halves += d
	}
	require.Equal(t, 2*g.NumEdges(), halves, "step %d half-edges", step)

	top := g.MaxNeighborhoodWeight()
	if len(m.weight) == 0 {
		require.Nil(t, top)
		return
	}
	require.NotNil(t, top)
	require.Equal(t, m.max(), g.NeighborhoodWeight(top.ID()), "step %d max", step)
}

func TestGraph_RandomOperationsMatchModel(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		rng := rand.New(rand.NewSource(seed))
		const n = 60
		vs, err := builder.Vertices(n,
			builder.WithRand(rng),
			builder.WithIDScheme(builder.StrideIDFn(-300, 11)),
			builder.WithWeightFn(builder.UniformWeightFn(0, 9)))
		require.NoError(t, err)
		m := newModel(vs)
		ids := make([]int, n)
		for i, v := range vs {
			ids[i] = v.ID()
		}

		g, err := core.NewGraph(vs, core.WithRand(rng))
		require.NoError(t, err)
		checkAgainst(t, g, m, -1)

		for step := 0; step < 600; step++ {
			a, b := ids[rng.Intn(n)], ids[rng.Intn(n)]
			switch {
			case rng.Intn(8) == 0:
				_, live := m.weight[a]
				require.Equal(t, live, g.DeleteNode(a), "seed %d step %d delete %d", seed, step, a)
				if live {
					m.remove(a)
				}
			default:
				_, liveA := m.weight[a]
				_, liveB := m.weight[b]
				if liveA && liveB && m.adj[a][b] {
					continue // parallel edges are outside the contract
				}
				want := a != b && liveA && liveB
				require.Equal(t, want, g.AddEdge(a, b), "seed %d step %d add %d-%d", seed, step, a, b)
				if want {
					m.connect(a, b)
				}
			}
			checkAgainst(t, g, m, step)
		}
	}
}

func TestGraph_SymmetryAfterAddEdge(t *testing.T) {
	g, err := builder.BuildGraph(40, 120, []core.GraphOption{core.WithSeed(testSeed)}, builder.WithSeed(8))
	require.NoError(t, err)

	for v := range g.Vertices() {
		ns, err := g.Neighbors(v.ID())
		require.NoError(t, err)
		for _, u := range ns {
			back, err := g.Neighbors(u)
			require.NoError(t, err)
			require.Contains(t, back, v.ID(), "%d lists %d but not the reverse", v.ID(), u)
		}
	}
}

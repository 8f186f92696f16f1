// SPDX-License-Identifier: MIT
// Package: heavyhood/builder
//
// stats.go — distribution summary of live neighborhood weights.

package builder

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/heavyhood/core"
)

const methodSummarize = "Summarize"

// Summary describes the neighborhood weights of a graph's live vertices.
type Summary struct {
	Vertices int
	Edges    int

	Mean   float64
	Median float64
	P90    float64
	P99    float64
	Max    float64

	// Heaviest is the id reported by core.Graph.MaxNeighborhoodWeight.
	Heaviest int
}

// Summarize collects the neighborhood weight of every live vertex of g.
//
// Errors:
//   - ErrNilGraph, ErrEmptyGraph, or a wrapped error from the stats package.
//
// Complexity: O(n log n) (percentiles sort a copy of the data).
func Summarize(g *core.Graph) (Summary, error) {
	if g == nil {
		return Summary{}, fmt.Errorf("%s: %w", methodSummarize, ErrNilGraph)
	}
	if g.NumNodes() == 0 {
		return Summary{}, fmt.Errorf("%s: %w", methodSummarize, ErrEmptyGraph)
	}

	data := make(stats.Float64Data, 0, g.NumNodes())
	for v := range g.Vertices() {
		data = append(data, float64(g.NeighborhoodWeight(v.ID())))
	}

	s := Summary{
		Vertices: g.NumNodes(),
		Edges:    g.NumEdges(),
		Heaviest: g.MaxNeighborhoodWeight().ID(),
	}
	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, fmt.Errorf("%s: mean: %w", methodSummarize, err)
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, fmt.Errorf("%s: median: %w", methodSummarize, err)
	}
	if s.P90, err = stats.Percentile(data, 90); err != nil {
		return Summary{}, fmt.Errorf("%s: p90: %w", methodSummarize, err)
	}
	if s.P99, err = stats.Percentile(data, 99); err != nil {
		return Summary{}, fmt.Errorf("%s: p99: %w", methodSummarize, err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, fmt.Errorf("%s: max: %w", methodSummarize, err)
	}

	return s, nil
}

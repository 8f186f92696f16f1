// SPDX-License-Identifier: MIT
// Package builder produces deterministic workloads for core.Graph: vertex
// sets, random edge lists and ready-made graphs, plus a statistical summary
// of the resulting neighborhood weights. Tests, examples and benchmarks use it
// to reproduce the "heaviest neighborhood over 2^k vertices" experiment.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme and vertex weight function.
//   - Vertex-ID schemes (IDFn):
//     – DefaultIDFn:       1, 2, 3, … (idx+1).
//     – OffsetIDFn:        base, base+1, ….
//     – StrideIDFn:        base, base+step, … (spreads keys across the hash range).
//   - Vertex-weight distributions (WeightFn):
//     – DefaultWeightFn:   constant DefaultVertexWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer in [min,max].
//   - Workloads:
//     – Vertices:          n detached vertices.
//     – RandomPairs:       m distinct pairs {i<j}, sampled by rejection.
//     – Populate:          Connect every pair on a graph.
//     – BuildGraph:        Vertices + core.NewGraph + RandomPairs + Populate.
//     – Summarize:         mean/median/p90/p99/max of live neighborhood weights.
//
// Guarantees:
//
//   - Same inputs, options and seed ⇒ identical vertex sets and pair lists.
//   - Option constructors panic on meaningless input; workload functions never
//     panic and return sentinel errors wrapped with the method name.
package builder

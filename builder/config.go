// SPDX-License-Identifier: MIT
// Package: heavyhood/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn      (1, 2, 3, …)
//   • rng      = nil              (RandomPairs requires WithSeed/WithRand)
//   • weightFn = DefaultWeightFn  (every vertex weighs 1)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by workloads.
// It is passed by value so callers cannot mutate a resolved config.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig starts from the defaults and applies opts in order
// (later options win).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

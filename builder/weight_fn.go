// SPDX-License-Identifier: MIT
// Package builder provides helper types for configuring vertex-weight
// distributions in workload constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultVertexWeight is the weight given to every vertex when no custom
// WeightFn is provided.
const DefaultVertexWeight int64 = 1

// WeightFn produces a vertex weight from an optional *rand.Rand source.
// It must be deterministic for a given RNG state and never return a negative value.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultVertexWeight. Never panics.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultVertexWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn returns a WeightFn sampling an integer uniformly in [min, max].
// Panics if min < 0 or max < min.
// If rng is nil it yields min, keeping the fallback deterministic.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// SPDX-License-Identifier: MIT
// Package: heavyhood/builder
//
// impl_random_pairs.go — RandomPairs(n, m): m distinct vertex pairs {i<j}.
//
// Sampling model:
//   - Draw i uniformly from [0, n-2], then j uniformly from [i+1, n-1].
//   - Reject pairs already drawn until m distinct pairs exist.
//   - Map both indices through cfg.idFn.
//   The pair distribution is skewed toward large i (small i has more partners);
//   that matches the measurement workload this package reproduces.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ m ≤ n·(n-1)/2 (else ErrTooManyPairs).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Expected O(m) draws while m is a small fraction of n·(n-1)/2;
//     grows as m approaches that bound.
//
// Determinism:
//   - Output order is draw order; fixed seed ⇒ identical list.

package builder

const (
	methodRandomPairs   = "RandomPairs"
	minRandomPairsNodes = 2
)

// RandomPairs returns m distinct pairs of vertex ids with the first id drawn
// at a lower index than the second. No pair is a self-loop and no pair repeats,
// so the result can be fed to core.Graph.Connect without violating its contract.
func RandomPairs(n, m int, opts ...BuilderOption) ([][2]int, error) {
	return randomPairs(n, m, newBuilderConfig(opts...))
}

func randomPairs(n, m int, cfg builderConfig) ([][2]int, error) {
	if n < minRandomPairsNodes {
		return nil, builderErrorf(methodRandomPairs, ErrTooFewVertices, "n=%d < min=%d", n, minRandomPairsNodes)
	}
	if limit := int64(n) * int64(n-1) / 2; m < 0 || int64(m) > limit {
		return nil, builderErrorf(methodRandomPairs, ErrTooManyPairs, "m=%d not in [0,%d]", m, limit)
	}
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomPairs, ErrNeedRandSource, "n=%d m=%d", n, m)
	}

	seen := make(map[[2]int]struct{}, m)
	out := make([][2]int, 0, m)
	for len(out) < m {
		i := cfg.rng.Intn(n - 1)
		j := i + 1 + cfg.rng.Intn(n-1-i)
		key := [2]int{i, j}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, [2]int{cfg.idFn(i), cfg.idFn(j)})
	}

	return out, nil
}

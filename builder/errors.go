// SPDX-License-Identifier: MIT
// Package: heavyhood/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX); messages are not a contract.
//   • Implementations attach method context with builderErrorf and %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a vertex count below what the workload needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyPairs indicates more distinct pairs than n vertices admit (n·(n-1)/2).
var ErrTooManyPairs = errors.New("builder: more pairs than vertex pairs")

// ErrNeedRandSource indicates a stochastic workload without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilGraph indicates a nil *core.Graph argument.
var ErrNilGraph = errors.New("builder: graph is nil")

// ErrEmptyGraph indicates a summary requested over a graph with no vertices.
var ErrEmptyGraph = errors.New("builder: graph has no vertices")

// builderErrorf prefixes err with the method name and a formatted detail,
// keeping err reachable through errors.Is.
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

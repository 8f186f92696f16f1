// SPDX-License-Identifier: MIT
package builder

import "fmt"

// IDFn maps a zero-based vertex index to its identifier.
// It must be pure and injective over the indices it is used with.
type IDFn func(idx int) int

// DefaultIDFn numbers vertices from 1, e.g. 0→1, 41→42.
func DefaultIDFn(idx int) int { return idx + 1 }

// OffsetIDFn returns an IDFn numbering vertices from base.
func OffsetIDFn(base int) IDFn {
	return func(idx int) int { return base + idx }
}

// StrideIDFn returns an IDFn yielding base, base+step, base+2·step, ….
// Panics if step == 0 (ids would collide).
func StrideIDFn(base, step int) IDFn {
	if step == 0 {
		panic(fmt.Sprintf("StrideIDFn: step must be non-zero, got %d", step))
	}

	return func(idx int) int { return base + idx*step }
}

// SPDX-License-Identifier: MIT
// Package hashindex implements a fixed-capacity hash table keyed by int,
// with external chaining over dll lists and a randomized linear hash.
//
// Hash family:
//
//	h(x) = ((a·x + b) mod P) mod m,   P = 1_000_000_009
//
// with a ∈ [1, P-1] and b ∈ [0, P-1] drawn from the caller's *rand.Rand at
// construction. The randomization keeps lookups expected O(1) against any
// fixed sequence of keys. Capacity m is fixed for the lifetime of the table;
// there is no rehashing.
//
// Complexity:
//
//   - Insert: O(1).
//   - Get, Delete: expected O(1).
//   - All: O(m + n).
package hashindex

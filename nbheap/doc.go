// SPDX-License-Identifier: MIT
// Package nbheap is an array-backed binary max-heap of neighborhood records.
//
// Every Record caches its own slot in the heap array. The cache is rewritten
// inside Swap, so it always matches the record's true position and owners can
// update or delete their record by position without searching:
//
//	h := nbheap.New(records)        // O(n) bottom-up heapify
//	h.ChangeKey(r.Pos(), +5)        // O(log n), sifts up
//	h.ChangeKey(r.Pos(), -3)        // O(log n), sifts down
//	h.Delete(r.Pos())               // O(log n), re-heapifies the vacated slot
//	top, ok := h.PeekMax()          // O(1)
//
// Among records of equal weight no particular one is guaranteed to surface
// at the root.
//
// Errors:
//
//   - ErrPosition: a position outside [0, Len()).
//   - ErrInvariant: Valid found a broken heap property or a stale position.
package nbheap

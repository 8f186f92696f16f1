// SPDX-License-Identifier: MIT
package hashindex

// Slot exposes the bucket index of id for tests.
func (t *Table[V]) Slot(id int) int { return t.slot(id) }

// BucketAllocated reports whether the chain for id's bucket exists.
func (t *Table[V]) BucketAllocated(id int) bool { return t.buckets[t.slot(id)] != nil }

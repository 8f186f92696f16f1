// SPDX-License-Identifier: MIT
// Package: heavyhood/nbheap
//
// heap.go — position-tracking max-heap over Record.Weight, built on container/heap.

package nbheap

import (
	"container/heap"
	"errors"
	"fmt"
)

var (
	// ErrPosition indicates a heap position outside the live range.
	ErrPosition = errors.New("nbheap: position out of range")

	// ErrInvariant indicates the heap property or a cached position is broken.
	ErrInvariant = errors.New("nbheap: invariant violated")
)

// Record is one vertex's entry: its identifier, the live neighborhood
// weight, and its current slot in the heap array.
type Record struct {
	ID     int
	Weight int64

	pos int // -1 once deleted
}

// NewRecord returns a detached record with the given id and weight.
func NewRecord(id int, weight int64) *Record {
	return &Record{ID: id, Weight: weight, pos: -1}
}

// Pos returns the record's current heap slot, or -1 if it is not in a heap.
func (r *Record) Pos() int { return r.pos }

// records implements heap.Interface as a max-heap on Weight.
type records []*Record

func (rs records) Len() int { return len(rs) }

func (rs records) Less(i, j int) bool { return rs[i].Weight > rs[j].Weight }

// Swap moves both records and rewrites their cached positions.
func (rs records) Swap(i, j int) {
	rs[i], rs[j] = rs[j], rs[i]
	rs[i].pos = i
	rs[j].pos = j
}

func (rs *records) Push(x any) {
	r := x.(*Record)
	r.pos = len(*rs)
	*rs = append(*rs, r)
}

func (rs *records) Pop() any {
	old := *rs
	n := len(old)
	r := old[n-1]
	old[n-1] = nil // release the slot; capacity is kept
	r.pos = -1
	*rs = old[:n-1]

	return r
}

// Heap is a max-heap of *Record.
type Heap struct {
	items records
}

// New takes ownership of rs, assigns every record its slot and heapifies
// bottom-up in O(n).
func New(rs []*Record) *Heap {
	h := &Heap{items: records(rs)}
	for i, r := range h.items {
		r.pos = i
	}
	heap.Init(&h.items)

	return h
}

// Len returns the number of live records.
func (h *Heap) Len() int { return h.items.Len() }

// Push inserts a detached record in O(log n).
func (h *Heap) Push(r *Record) { heap.Push(&h.items, r) }

// ChangeKey adds delta to the weight of the record at pos and restores the
// heap order: a positive delta sifts it up, a negative one sifts it down,
// zero is a no-op. O(log n).
func (h *Heap) ChangeKey(pos int, delta int64) error {
	if pos < 0 || pos >= h.items.Len() {
		return fmt.Errorf("ChangeKey(%d): %w", pos, ErrPosition)
	}
	if delta == 0 {
		return nil
	}
	h.items[pos].Weight += delta
	// the sign of delta fixes the direction; Fix picks it from the neighbors
	heap.Fix(&h.items, pos)

	return nil
}

// Delete removes and returns the record at pos. The last live record is
// moved into the vacated slot and sifted up or down as needed. O(log n).
func (h *Heap) Delete(pos int) (*Record, error) {
	if pos < 0 || pos >= h.items.Len() {
		return nil, fmt.Errorf("Delete(%d): %w", pos, ErrPosition)
	}

	return heap.Remove(&h.items, pos).(*Record), nil
}

// At returns the record living at pos, or nil when pos is out of range.
func (h *Heap) At(pos int) *Record {
	if pos < 0 || pos >= h.items.Len() {
		return nil
	}

	return h.items[pos]
}

// PeekMax returns the record at the root without removing it.
// ok is false when the heap is empty.
func (h *Heap) PeekMax() (r *Record, ok bool) {
	if h.items.Len() == 0 {
		return nil, false
	}

	return h.items[0], true
}

// Valid checks the max-heap property and every cached position. O(n).
func (h *Heap) Valid() error {
	for i, r := range h.items {
		if r == nil {
			return fmt.Errorf("slot %d is nil: %w", i, ErrInvariant)
		}
		if r.pos != i {
			return fmt.Errorf("record %d caches pos %d, lives at %d: %w", r.ID, r.pos, i, ErrInvariant)
		}
		for _, c := range [2]int{2*i + 1, 2*i + 2} {
			if c < len(h.items) && h.items[c].Weight > r.Weight {
				return fmt.Errorf("child %d (w=%d) outweighs parent %d (w=%d): %w",
					c, h.items[c].Weight, i, r.Weight, ErrInvariant)
			}
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: heavyhood/hashindex
//
// index.go — chained buckets and the multiply-add-mod-prime hash.

package hashindex

import (
	"iter"
	"math/rand"

	"github.com/katalvlaran/heavyhood/dll"
)

// Prime is the modulus P of the hash family.
const Prime int64 = 1_000_000_009

// Table maps int keys to values of type V.
// Keys are extracted from stored values by the key function given to New.
type Table[V any] struct {
	buckets []*dll.List[V] // nil bucket == empty chain
	key     func(V) int
	a, b    int64
	n       int
}

// New allocates a table with capacity buckets (at least one) and draws the
// hash parameters from rng. Panics if key or rng is nil.
func New[V any](capacity int, key func(V) int, rng *rand.Rand) *Table[V] {
	if key == nil {
		panic("hashindex: New with nil key function")
	}
	if rng == nil {
		panic("hashindex: New with nil rng")
	}
	if capacity < 1 {
		capacity = 1
	}

	return &Table[V]{
		buckets: make([]*dll.List[V], capacity),
		key:     key,
		a:       rng.Int63n(Prime-1) + 1,
		b:       rng.Int63n(Prime),
	}
}

// slot computes ((a·x + b) mod P) mod m with floor-mod semantics.
// x is reduced mod P first so a·x stays below 2^63.
func (t *Table[V]) slot(x int) int {
	r := floorMod(int64(x), Prime)
	r = (t.a*r + t.b) % Prime

	return int(r % int64(len(t.buckets)))
}

func floorMod(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m
	}

	return r
}

// Insert prepends v to its bucket. It does not check for an existing key;
// use Get first when duplicates matter.
func (t *Table[V]) Insert(v V) {
	h := t.slot(t.key(v))
	if t.buckets[h] == nil {
		t.buckets[h] = dll.New[V]()
	}
	t.buckets[h].PushFront(v)
	t.n++
}

// find returns the chain element holding id, or nil.
func (t *Table[V]) find(id int) (*dll.List[V], *dll.Element[V]) {
	bucket := t.buckets[t.slot(id)]
	if bucket == nil {
		return nil, nil
	}
	for e := bucket.Front(); e != nil; e = e.Next() {
		if t.key(e.Value) == id {
			return bucket, e
		}
	}

	return bucket, nil
}

// Get returns the value stored under id.
func (t *Table[V]) Get(id int) (V, bool) {
	if _, e := t.find(id); e != nil {
		return e.Value, true
	}
	var zero V

	return zero, false
}

// Delete removes the value stored under id and reports whether one existed.
// A bucket that becomes empty is released.
func (t *Table[V]) Delete(id int) bool {
	bucket, e := t.find(id)
	if e == nil {
		return false
	}
	bucket.Remove(e)
	if bucket.Len() == 0 {
		t.buckets[t.slot(id)] = nil
	}
	t.n--

	return true
}

// Len returns the number of stored values.
func (t *Table[V]) Len() int { return t.n }

// Capacity returns the fixed bucket count m.
func (t *Table[V]) Capacity() int { return len(t.buckets) }

// All yields every stored value in bucket order.
func (t *Table[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, bucket := range t.buckets {
			if bucket == nil {
				continue
			}
			for v := range bucket.All() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// SPDX-License-Identifier: MIT
// Package: heavyhood/dll
//
// list.go — sentinel-based doubly linked list and its position handles.

package dll

import "iter"

// Element is a position handle inside a List.
type Element[T any] struct {
	next, prev *Element[T]

	// list is the owner; nil once the element has been removed.
	list *List[T]

	// Value is the item stored at this position.
	Value T
}

// Next returns the element after e, or nil when e is the last one
// or no longer belongs to a list.
func (e *Element[T]) Next() *Element[T] {
	if e.list == nil {
		return nil
	}
	if n := e.next; n != &e.list.root {
		return n
	}

	return nil
}

// List is a doubly linked list with a sentinel root.
// The zero value is an empty list ready to use.
type List[T any] struct {
	root Element[T] // sentinel; root.next is the front
	len  int
}

// New returns an initialized empty list.
func New[T any]() *List[T] { return new(List[T]).init() }

func (l *List[T]) init() *List[T] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0

	return l
}

// lazyInit makes the zero value usable.
func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.init()
	}
}

// Len returns the number of live elements. O(1).
func (l *List[T]) Len() int { return l.len }

// Front returns the first element or nil for an empty list.
func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}

	return l.root.next
}

// Holds reports whether e is a live element of l. O(1).
func (l *List[T]) Holds(e *Element[T]) bool { return e != nil && e.list == l }

// PushFront inserts v at the front and returns its handle. O(1).
func (l *List[T]) PushFront(v T) *Element[T] {
	l.lazyInit()
	e := &Element[T]{Value: v, list: l}
	e.prev = &l.root
	e.next = l.root.next
	l.root.next = e
	e.next.prev = e
	l.len++

	return e
}

// Remove unlinks e in O(1) and reports whether it did so.
// A nil handle, a handle owned by another list, or one that was
// already removed leaves the list untouched and returns false.
func (l *List[T]) Remove(e *Element[T]) bool {
	if e == nil || e.list != l {
		return false
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	// drop links so a stale handle cannot reach live elements
	e.next = nil
	e.prev = nil
	e.list = nil
	l.len--

	return true
}

// All yields the stored values front to back.
// The element being yielded may be removed during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.len == 0 {
			return
		}
		for e := l.root.next; e != &l.root; {
			next := e.next
			if !yield(e.Value) {
				return
			}
			e = next
		}
	}
}

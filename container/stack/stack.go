// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package stack provides a slice backed LIFO stack.
package stack

import "iter"

// T is a LIFO stack. The zero value is an empty stack ready for use.
type T[V any] struct {
	elems []V
}

// New creates a stack with capacity preallocated for size elements.
func New[V any](size int) *T[V] {
	return &T[V]{elems: make([]V, 0, size)}
}

// Len returns the number of elements on the stack.
func (s *T[V]) Len() int {
	return len(s.elems)
}

// Push places v on top of the stack.
func (s *T[V]) Push(v V) {
	s.elems = append(s.elems, v)
}

// Pop removes and returns the element on top of the stack. The second
// return value is false iff the stack is empty.
func (s *T[V]) Pop() (V, bool) {
	var v V
	if len(s.elems) == 0 {
		return v, false
	}
	n := len(s.elems) - 1
	v, s.elems[n] = s.elems[n], v
	s.elems = s.elems[:n]
	return v, true
}

// Peek returns the element on top of the stack without removing it.
// The second return value is false iff the stack is empty.
func (s *T[V]) Peek() (V, bool) {
	if len(s.elems) == 0 {
		var v V
		return v, false
	}
	return s.elems[len(s.elems)-1], true
}

// Drain returns an iterator that pops elements until the stack is
// empty or the caller stops early.
func (s *T[V]) Drain() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := s.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

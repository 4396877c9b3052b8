// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides an array-backed binary heap that supports both
// min and max orderings from a single implementation, together with an
// in-place heap sort.
package heap

import "iter"

// Ordered represents the set of types that can be used as heap keys.
type Ordered interface {
	~string | ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Order determines whether the smallest (Min) or largest (Max) key is
// kept at the root of the heap.
type Order bool

// Values for Order.
const (
	Min Order = false
	Max Order = true
)

// T implements a binary heap of key/value pairs laid out over parallel
// slices, with the root at index 0, children of i at 2i+1 and 2i+2 and
// the parent of i at (i-1)/2. The comparison direction is chosen at
// construction time via NewMin or NewMax rather than by duplicating the
// implementation per ordering.
//
// The logical size of the heap may be smaller than the length of the
// underlying slices; slots at and beyond the logical size are never
// read by any heap operation. T is not safe for concurrent use.
type T[K Ordered, V any] struct {
	order  Order
	keys   []K
	vals   []V
	size   int
	sorted bool
}

// NewMin returns a heap that keeps its smallest key at the root.
func NewMin[K Ordered, V any](opts ...Option[K, V]) *T[K, V] {
	return newHeap(Min, opts)
}

// NewMax returns a heap that keeps its largest key at the root.
func NewMax[K Ordered, V any](opts ...Option[K, V]) *T[K, V] {
	return newHeap(Max, opts)
}

func newHeap[K Ordered, V any](order Order, opts []Option[K, V]) *T[K, V] {
	var o options[K, V]
	o.sliceCap = 1
	for _, fn := range opts {
		fn(&o)
	}
	h := &T[K, V]{order: order}
	if o.keys != nil {
		// An empty initial slice yields an empty heap rather than
		// a panic.
		h.keys = o.keys
		h.vals = o.vals
		h.size = len(o.keys)
		h.Build()
		return h
	}
	h.keys = make([]K, 0, o.sliceCap)
	h.vals = make([]V, 0, o.sliceCap)
	return h
}

// Order returns the ordering the heap was created with.
func (h *T[K, V]) Order() Order {
	return h.order
}

// Len returns the number of items currently in the heap.
func (h *T[K, V]) Len() int {
	return h.size
}

// Cap returns the capacity of the heap's backing storage.
func (h *T[K, V]) Cap() int {
	return cap(h.keys)
}

// less reports whether the key at i dominates the key at j under the
// configured order, ie. whether i belongs closer to the root.
func (h *T[K, V]) less(i, j int) bool {
	if h.order == Max {
		return h.keys[i] > h.keys[j]
	}
	return h.keys[i] < h.keys[j]
}

func (h *T[K, V]) swap(i, j int) {
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
	h.vals[i], h.vals[j] = h.vals[j], h.vals[i]
}

// Build restores the heap property over all items in O(n) time using
// Floyd's algorithm: every internal node is sifted down in decreasing
// index order so that both subtrees of a node already satisfy the heap
// property by the time the node itself is repaired.
func (h *T[K, V]) Build() {
	for i := h.size/2 - 1; i >= 0; i-- {
		h.siftDown(i, h.size)
	}
	h.sorted = false
}

// rebuild re-establishes the heap property if a prior Sort destroyed it.
func (h *T[K, V]) rebuild() {
	if h.sorted {
		h.Build()
	}
}

// Push adds the key/value pair to the heap.
func (h *T[K, V]) Push(k K, v V) {
	h.rebuild()
	if h.size < len(h.keys) {
		// Reuse a stale slot left behind by ExtractRoot or DeleteAt.
		h.keys[h.size] = k
		h.vals[h.size] = v
	} else {
		h.keys = append(h.keys, k)
		h.vals = append(h.vals, v)
	}
	h.size++
	h.siftUp(h.size - 1)
}

// PeekRoot returns the root key/value pair without removing it. The
// boolean return is false for an empty heap.
func (h *T[K, V]) PeekRoot() (K, V, bool) {
	if h.size == 0 {
		var k K
		var v V
		return k, v, false
	}
	h.rebuild()
	return h.keys[0], h.vals[0], true
}

// ExtractRoot removes and returns the root key/value pair, ie. the
// minimum for a Min heap and the maximum for a Max heap. The boolean
// return is false for an empty heap. It runs in O(log n) time.
func (h *T[K, V]) ExtractRoot() (K, V, bool) {
	if h.size == 0 {
		var k K
		var v V
		return k, v, false
	}
	h.rebuild()
	k, v := h.keys[0], h.vals[0]
	h.size--
	if h.size > 0 {
		h.keys[0], h.vals[0] = h.keys[h.size], h.vals[h.size]
		h.siftDown(0, h.size)
	}
	return k, v, true
}

// Pop is shorthand for ExtractRoot for use in drain loops where the
// caller has already checked Len.
func (h *T[K, V]) Pop() (K, V) {
	k, v, _ := h.ExtractRoot()
	return k, v
}

// IncreaseKey raises the key of the item at index i to k and restores
// the heap property by walking the item towards the root. It applies to
// Max ordered heaps only; the previous key is returned on success. It
// returns false, leaving the heap unchanged, if the heap is Min
// ordered, if i is out of range, or if k is smaller than the current
// key.
func (h *T[K, V]) IncreaseKey(i int, k K) (K, bool) {
	h.rebuild()
	var zero K
	if h.order != Max || i < 0 || i >= h.size || k < h.keys[i] {
		return zero, false
	}
	return h.promote(i, k), true
}

// DecreaseKey lowers the key of the item at index i to k and restores
// the heap property by walking the item towards the root. It applies to
// Min ordered heaps only; the previous key is returned on success. It
// returns false, leaving the heap unchanged, if the heap is Max
// ordered, if i is out of range, or if k is larger than the current
// key.
func (h *T[K, V]) DecreaseKey(i int, k K) (K, bool) {
	h.rebuild()
	var zero K
	if h.order != Min || i < 0 || i >= h.size || k > h.keys[i] {
		return zero, false
	}
	return h.promote(i, k), true
}

// promote overwrites the key at i with one that dominates it and sifts
// the item up. Validation has already happened.
func (h *T[K, V]) promote(i int, k K) K {
	prev := h.keys[i]
	h.keys[i] = k
	h.siftUp(i)
	return prev
}

// DeleteAt removes the item at index i, returning its key and value.
// It returns false, leaving the heap unchanged, if i is out of range.
// The vacated slot is filled with the last item which is then sifted
// down or, if it already dominates its parent chain, sifted up; at most
// one of the two repairs runs.
func (h *T[K, V]) DeleteAt(i int) (K, V, bool) {
	if i < 0 || i >= h.size {
		var k K
		var v V
		return k, v, false
	}
	h.rebuild()
	k, v := h.keys[i], h.vals[i]
	h.size--
	if i != h.size {
		h.swap(i, h.size)
		if !h.siftDown(i, h.size) {
			h.siftUp(i)
		}
	}
	return k, v, true
}

// Keys returns a copy of the keys currently in the heap, in storage
// order.
func (h *T[K, V]) Keys() []K {
	out := make([]K, h.size)
	copy(out, h.keys[:h.size])
	return out
}

// Vals returns a copy of the values currently in the heap, in storage
// order.
func (h *T[K, V]) Vals() []V {
	out := make([]V, h.size)
	copy(out, h.vals[:h.size])
	return out
}

// All returns an iterator over the key/value pairs in the heap in
// storage order, not in sorted order.
func (h *T[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < h.size; i++ {
			if !yield(h.keys[i], h.vals[i]) {
				return
			}
		}
	}
}

func (h *T[K, V]) siftUp(i int) {
	for {
		p := (i - 1) / 2
		if p == i || !h.less(i, p) {
			break
		}
		h.swap(p, i)
		i = p
	}
}

// siftDown is iterative so that its stack usage is constant rather
// than proportional to the heap depth. It reports whether the item at
// p moved.
func (h *T[K, V]) siftDown(p, n int) bool {
	i := p
	for {
		l := (2 * i) + 1
		if l >= n || l < 0 { // l < 0 after int overflow
			break
		}
		// chose either the left or right sub-tree, depending on
		// which dominates.
		t := l
		if r := l + 1; r < n && h.less(r, l) {
			t = r
		}
		if !h.less(t, i) {
			break
		}
		h.swap(i, t)
		i = t
	}
	return i > p
}

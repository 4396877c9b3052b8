// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options[K Ordered, V any] struct {
	sliceCap int
	keys     []K
	vals     []V
}

// Option represents the options that can be passed to NewMin and NewMax.
type Option[K Ordered, V any] func(*options[K, V])

// WithSliceCap sets the initial capacity of the slices used to hold keys
// and values.
func WithSliceCap[K Ordered, V any](n int) Option[K, V] {
	return func(o *options[K, V]) {
		o.sliceCap = n
	}
}

// WithData sets the initial data for the heap. The heap takes ownership
// of the supplied slices and heap-orders them in O(n) time; they need
// not be heap-ordered (or sorted) beforehand. Empty slices produce an
// empty heap.
func WithData[K Ordered, V any](keys []K, vals []V) Option[K, V] {
	return func(o *options[K, V]) {
		if len(keys) != len(vals) {
			panic("keys and vals must be the same length")
		}
		o.keys = keys
		o.vals = vals
	}
}

// WithKeys is like WithData for heaps whose values carry no information.
func WithKeys[K Ordered, V any](keys []K) Option[K, V] {
	return func(o *options[K, V]) {
		o.keys = keys
		o.vals = make([]V, len(keys))
	}
}

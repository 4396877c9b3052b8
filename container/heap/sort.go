// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// Sort reorders the heap's backing storage in place: ascending by key
// for a Max ordered heap, descending for a Min ordered heap. The sorted
// data can be retrieved via Keys and Vals.
//
// Sorting works by repeatedly swapping the root into the vacated tail
// of the shrinking heap and hence destroys the heap property. The heap
// remembers that it has been sorted and the next heap operation will
// re-establish the property with an O(n) Build; Len is unaffected.
func (h *T[K, V]) Sort() {
	h.rebuild()
	n := h.size
	for i := n - 1; i >= 1; i-- {
		h.swap(0, i)
		h.size--
		h.siftDown(0, h.size)
	}
	h.size = n
	h.sorted = true
}

// SortedKeys is shorthand for a Sort followed by Keys.
func (h *T[K, V]) SortedKeys() []K {
	h.Sort()
	return h.Keys()
}

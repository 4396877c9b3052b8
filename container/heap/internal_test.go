// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "testing"

// Verify checks the heap property for every node with in-range children.
func (h *T[K, V]) Verify(t *testing.T) {
	t.Helper()
	h.verify(t, 0)
}

func (h *T[K, V]) verify(t *testing.T, p int) {
	t.Helper()
	n := h.size
	l, r := (2*p)+1, (2*p)+2
	if l < n {
		if h.less(l, p) {
			t.Errorf("heap inconsistent: left sub tree for %v (%v vs [%v]: %v)", p, h.keys[p], l, h.keys[l])
			return
		}
		h.verify(t, l)
	}
	if r < n {
		if h.less(r, p) {
			t.Errorf("heap inconsistent: right sub tree for %v (%v vs [%v]: %v)", p, h.keys[p], r, h.keys[r])
			return
		}
		h.verify(t, r)
	}
}

// StaleLen reports the length of the backing storage, which may exceed
// Len after extractions.
func (h *T[K, V]) StaleLen() int {
	return len(h.keys)
}

// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package merge implements a k-way merge of sorted sequences using a
// min heap keyed by the next pending value of each sequence.
package merge

import (
	"iter"

	"github.com/styvane/alda/container/heap"
)

// cursor tracks the unconsumed suffix of one input sequence.
type cursor[K heap.Ordered] struct {
	src []K
	pos int
}

func (c *cursor[K]) next() (K, bool) {
	if c.pos >= len(c.src) {
		var k K
		return k, false
	}
	k := c.src[c.pos]
	c.pos++
	return k, true
}

// Ascending merges the supplied sequences, each of which must already
// be sorted in ascending order, into a single newly allocated ascending
// slice whose length is the sum of the input lengths.
//
// One entry per non-empty input seeds a min heap whose key is the
// input's next pending value and whose value is the input's index;
// draining the root always yields the globally smallest pending value
// and the drained input is refilled from its sequence until exhausted.
// For n inputs totalling m values this costs O(m log n). The relative
// order of equal values drawn from different inputs is unspecified.
func Ascending[K heap.Ordered](inputs ...[]K) []K {
	total := 0
	for _, in := range inputs {
		total += len(in)
	}
	cursors := make([]cursor[K], len(inputs))
	keys := make([]K, 0, len(inputs))
	srcs := make([]int, 0, len(inputs))
	for i, in := range inputs {
		cursors[i] = cursor[K]{src: in}
		if k, ok := cursors[i].next(); ok {
			keys = append(keys, k)
			srcs = append(srcs, i)
		}
	}
	h := heap.NewMin[K, int](heap.WithData(keys, srcs))

	out := make([]K, 0, total)
	for h.Len() > 0 {
		k, src, _ := h.ExtractRoot()
		out = append(out, k)
		if nk, ok := cursors[src].next(); ok {
			h.Push(nk, src)
		}
	}
	return out
}

// Values is the lazy form of Ascending: it merges the supplied
// iterators, each of which must yield values in ascending order, into a
// single ascending iterator. Inputs are consumed one value ahead of the
// output.
func Values[K heap.Ordered](seqs ...iter.Seq[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		nexts := make([]func() (K, bool), len(seqs))
		stops := make([]func(), len(seqs))
		for i, seq := range seqs {
			nexts[i], stops[i] = iter.Pull(seq)
		}
		defer func() {
			for _, stop := range stops {
				stop()
			}
		}()
		keys := make([]K, 0, len(seqs))
		srcs := make([]int, 0, len(seqs))
		for i, next := range nexts {
			if k, ok := next(); ok {
				keys = append(keys, k)
				srcs = append(srcs, i)
			}
		}
		h := heap.NewMin[K, int](heap.WithData(keys, srcs))
		for h.Len() > 0 {
			k, src, _ := h.ExtractRoot()
			if !yield(k) {
				return
			}
			if nk, ok := nexts[src](); ok {
				h.Push(nk, src)
			}
		}
	}
}

// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bits

import (
	"encoding/json"
	"iter"
	"math"
	mathbits "math/bits"
	"strconv"
	"strings"
)

// Set is a fixed size set of bits backed by a slice of uint64. Out of
// range indices are ignored by Add and Remove and are never members.
type Set []uint64

// NewSet creates a set able to hold bits 0 through size-1. The size
// is rounded up to the nearest multiple of 64.
func NewSet(size int) Set {
	if size <= 0 {
		return nil
	}
	return make(Set, (size+63)/64)
}

// Size returns the number of bits the set can hold.
func (s Set) Size() int {
	return len(s) * 64
}

// Add adds bit i to the set.
func (s Set) Add(i int) {
	if i < 0 || i >= len(s)*64 {
		return
	}
	s[i/64] |= 1 << (i % 64)
}

// Remove removes bit i from the set.
func (s Set) Remove(i int) {
	if i < 0 || i >= len(s)*64 {
		return
	}
	s[i/64] &^= 1 << (i % 64)
}

// Contains returns true if bit i is in the set.
func (s Set) Contains(i int) bool {
	if i < 0 || i >= len(s)*64 {
		return false
	}
	return s[i/64]&(1<<(i%64)) != 0
}

// Count returns the number of bits in the set.
func (s Set) Count() int {
	n := 0
	for _, w := range s {
		n += mathbits.OnesCount64(w)
	}
	return n
}

// All returns an iterator over the members of the set in ascending
// order, skipping a word at a time over all-clear words.
func (s Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < len(s)*64; {
			if i%64 == 0 && s[i/64] == 0 {
				i += 64
				continue
			}
			if s[i/64]&(1<<(i%64)) != 0 && !yield(i) {
				return
			}
			i++
		}
	}
}

// Absent returns an iterator over the bits of [0, Size) not in the
// set, in ascending order.
func (s Set) Absent() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < len(s)*64; {
			if i%64 == 0 && s[i/64] == math.MaxUint64 {
				i += 64
				continue
			}
			if s[i/64]&(1<<(i%64)) == 0 && !yield(i) {
				return
			}
			i++
		}
	}
}

// MarshalJSON encodes the set as an array of hex strings, one per
// word. JSON numbers cannot represent the full uint64 range.
func (s Set) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("[")
	for i, w := range s {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(strconv.Quote(strconv.FormatUint(w, 16)))
	}
	sb.WriteString("]")
	return []byte(sb.String()), nil
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return err
	}
	if len(words) == 0 {
		*s = nil
		return nil
	}
	*s = make(Set, len(words))
	for i, w := range words {
		v, err := strconv.ParseUint(w, 16, 64)
		if err != nil {
			return err
		}
		(*s)[i] = v
	}
	return nil
}

// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/styvane/alda/container/heap"
)

func uniformRand(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(10000)
	}
	return r
}

func ascending(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}

func descending(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = n - 1 - i
	}
	return r
}

func drain[K heap.Ordered, V any](t *testing.T, h *heap.T[K, V]) []K {
	out := make([]K, 0, h.Len())
	for h.Len() > 0 {
		k, _, ok := h.ExtractRoot()
		if !ok {
			t.Fatalf("ExtractRoot failed with %v items left", h.Len())
		}
		h.Verify(t)
		out = append(out, k)
	}
	return out
}

func ExampleNewMin() {
	h := heap.NewMin[int, string]()
	h.Push(3, "three")
	h.Push(1, "one")
	h.Push(2, "two")
	for h.Len() > 0 {
		k, v := h.Pop()
		fmt.Printf("%v %v ", k, v)
	}
	fmt.Println()
	// Output:
	// 1 one 2 two 3 three
}

func TestBuild(t *testing.T) {
	for i := 0; i < 33; i++ {
		input := uniformRand(int64(i), i)
		keys := make([]int, len(input))
		copy(keys, input)
		h := heap.NewMax[int, int](heap.WithKeys[int, int](keys))
		h.Verify(t)
		if got, want := h.Len(), len(input); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		// Membership must be preserved, order may differ.
		got := h.Keys()
		want := make([]int, len(input))
		copy(want, input)
		sort.Ints(got)
		sort.Ints(want)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	h := heap.NewMax[int, int](heap.WithKeys[int, int]([]int{}))
	if got, want := h.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, _, ok := h.PeekRoot(); ok {
		t.Errorf("peek on empty heap succeeded")
	}
}

func TestExtractOrdering(t *testing.T) {
	for i := 0; i < 33; i++ {
		input := uniformRand(int64(i), i)

		minh := heap.NewMin[int, int](heap.WithKeys[int, int](append([]int{}, input...)))
		got := drain(t, minh)
		want := append([]int{}, input...)
		sort.Ints(want)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("min: got %v, want %v", got, want)
		}

		maxh := heap.NewMax[int, int](heap.WithKeys[int, int](append([]int{}, input...)))
		got = drain(t, maxh)
		sort.Sort(sort.Reverse(sort.IntSlice(want)))
		if !reflect.DeepEqual(got, want) {
			t.Errorf("max: got %v, want %v", got, want)
		}
	}
}

func TestPushPop(t *testing.T) {
	h := heap.NewMin[int, int]()
	for _, k := range []int{5, 2, 7, 3} {
		h.Push(k, k*10)
		h.Verify(t)
	}
	k, v, ok := h.ExtractRoot()
	if !ok || k != 2 || v != 20 {
		t.Errorf("got %v/%v/%v, want 2/20/true", k, v, ok)
	}
	h.Push(1, 10)
	h.Push(8, 80)
	if got, want := drain(t, h), []int{1, 3, 5, 7, 8}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPeekRoot(t *testing.T) {
	h := heap.NewMax[int, string]()
	if _, _, ok := h.PeekRoot(); ok {
		t.Errorf("peek on empty heap succeeded")
	}
	h.Push(3, "c")
	h.Push(9, "i")
	h.Push(5, "e")
	k, v, ok := h.PeekRoot()
	if !ok || k != 9 || v != "i" {
		t.Errorf("got %v/%v/%v, want 9/i/true", k, v, ok)
	}
	if got, want := h.Len(), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEmptyOperations(t *testing.T) {
	h := heap.NewMin[int, int]()
	if _, _, ok := h.ExtractRoot(); ok {
		t.Errorf("extract on empty heap succeeded")
	}
	if _, _, ok := h.DeleteAt(0); ok {
		t.Errorf("delete on empty heap succeeded")
	}
	if _, ok := h.DecreaseKey(0, 1); ok {
		t.Errorf("decrease-key on empty heap succeeded")
	}
	if got, want := h.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIncreaseKey(t *testing.T) {
	keys := []int{16, 4, 10, 14, 7, 9, 3, 2, 8, 1}
	h := heap.NewMax[int, int](heap.WithKeys[int, int](append([]int{}, keys...)))

	// A key smaller than the current one must be rejected without
	// mutating the heap.
	before := h.Keys()
	if _, ok := h.IncreaseKey(1, -1); ok {
		t.Errorf("increase-key accepted a smaller key")
	}
	if got, want := h.Keys(), before; !reflect.DeepEqual(got, want) {
		t.Errorf("rejected update mutated the heap: got %v, want %v", got, want)
	}

	prev, ok := h.IncreaseKey(1, 25)
	if !ok {
		t.Fatalf("increase-key rejected a larger key")
	}
	if got, want := prev, before[1]; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	h.Verify(t)
	if k, _, _ := h.PeekRoot(); k != 25 {
		t.Errorf("got %v, want 25", k)
	}

	// Out of range.
	if _, ok := h.IncreaseKey(h.Len(), 100); ok {
		t.Errorf("increase-key accepted an out of range index")
	}
	// Wrong orientation.
	minh := heap.NewMin[int, int](heap.WithKeys[int, int]([]int{3, 2, 1}))
	if _, ok := minh.IncreaseKey(0, 100); ok {
		t.Errorf("increase-key accepted on a min heap")
	}
}

func TestDecreaseKey(t *testing.T) {
	h := heap.NewMin[int, int](heap.WithKeys[int, int]([]int{5, 9, 7, 12, 11}))
	if _, ok := h.DecreaseKey(1, 100); ok {
		t.Errorf("decrease-key accepted a larger key")
	}
	prev, ok := h.DecreaseKey(3, 1)
	if !ok {
		t.Fatalf("decrease-key rejected a smaller key")
	}
	if got, want := prev, 12; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	h.Verify(t)
	if k, _, _ := h.PeekRoot(); k != 1 {
		t.Errorf("got %v, want 1", k)
	}
	maxh := heap.NewMax[int, int](heap.WithKeys[int, int]([]int{1, 2, 3}))
	if _, ok := maxh.DecreaseKey(0, -1); ok {
		t.Errorf("decrease-key accepted on a max heap")
	}
}

func TestDeleteAt(t *testing.T) {
	for i := 1; i < 33; i++ {
		for r := 0; r < i; r++ {
			input := uniformRand(int64(i*100+r), i)
			h := heap.NewMin[int, int](heap.WithKeys[int, int](append([]int{}, input...)))
			k, _, ok := h.DeleteAt(r)
			if !ok {
				t.Fatalf("delete at %v of %v failed", r, i)
			}
			h.Verify(t)
			if got, want := h.Len(), i-1; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
			// The remaining multiset must equal the input minus one
			// occurrence of the removed key.
			want := append([]int{}, input...)
			sort.Ints(want)
			idx := sort.SearchInts(want, k)
			want = append(want[:idx], want[idx+1:]...)
			if got := drain(t, h); !reflect.DeepEqual(got, want) {
				t.Errorf("delete %v: got %v, want %v", r, got, want)
			}
		}
	}

	h := heap.NewMin[int, int](heap.WithKeys[int, int]([]int{1, 2, 3}))
	if _, _, ok := h.DeleteAt(3); ok {
		t.Errorf("delete accepted an out of range index")
	}
	if _, _, ok := h.DeleteAt(-1); ok {
		t.Errorf("delete accepted a negative index")
	}
}

func TestDuplicates(t *testing.T) {
	h := heap.NewMin[int, int](heap.WithKeys[int, int]([]int{5, 3, 7, 2, 8, 1, 6, 4, 5, 3}))
	h.Push(3, 0)
	want := []int{1, 2, 3, 3, 3, 4, 5, 5, 6, 7, 8}
	if got := drain(t, h); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMonotonicInputs(t *testing.T) {
	for i := 0; i < 33; i++ {
		h := heap.NewMin[int, int]()
		for _, k := range descending(i) {
			h.Push(k, k)
			h.Verify(t)
		}
		if got, want := drain(t, h), ascending(i); !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
		h = heap.NewMin[int, int]()
		for _, k := range ascending(i) {
			h.Push(k, k)
			h.Verify(t)
		}
		if got, want := drain(t, h), ascending(i); !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestValuesFollowKeys(t *testing.T) {
	h := heap.NewMax[int, string]()
	pairs := map[int]string{1: "a", 9: "i", 4: "d", 7: "g", 2: "b"}
	for k, v := range pairs {
		h.Push(k, v)
	}
	for h.Len() > 0 {
		k, v, _ := h.ExtractRoot()
		if got, want := v, pairs[k]; got != want {
			t.Errorf("key %v: got %v, want %v", k, got, want)
		}
	}
}

func TestStorageReuse(t *testing.T) {
	h := heap.NewMin[int, int](heap.WithKeys[int, int](uniformRand(42, 16)))
	for i := 0; i < 8; i++ {
		h.ExtractRoot()
	}
	// Pushing into vacated slots must not grow the backing storage.
	stale := h.StaleLen()
	for i := 0; i < 8; i++ {
		h.Push(i, i)
	}
	if got, want := h.StaleLen(), stale; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	h.Verify(t)
}

// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dynamic_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/styvane/alda/dynamic"
)

// Piece prices for rods of lengths 1 through 10.
var rodPrices = []int{0, 1, 5, 8, 9, 10, 17, 17, 20, 24, 30}

func TestCutRod(t *testing.T) {
	rod := dynamic.Rod{Prices: rodPrices}
	want := []int{0, 1, 5, 8, 10, 13, 17, 18, 22, 25, 30}
	for name, fn := range map[string]func(int) int{
		"recursive": rod.CutRod,
		"memoized":  rod.CutRodMemoized,
		"bottom-up": rod.CutRodBottomUp,
	} {
		for n, w := range want {
			if got := fn(n); got != w {
				t.Errorf("%v: %v: got %v, want %v", name, n, got, w)
			}
		}
	}
	// Rods longer than the price list still sell as pieces.
	if got, want := rod.CutRodBottomUp(12), 35; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCutRodEmpty(t *testing.T) {
	rod := dynamic.Rod{}
	if got, want := rod.CutRod(1), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := rod.CutRodBottomUp(5), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := rod.Pieces(5); got != nil {
		t.Errorf("got %v, want no pieces", got)
	}
}

func TestRodPieces(t *testing.T) {
	rod := dynamic.Rod{Prices: rodPrices}
	want := [][]int{
		1:  {1},
		2:  {2},
		3:  {3},
		4:  {2, 2},
		5:  {2, 3},
		6:  {6},
		7:  {1, 6},
		8:  {2, 6},
		9:  {3, 6},
		10: {10},
	}
	for n := 1; n <= 10; n++ {
		pieces := rod.Pieces(n)
		if got := pieces; !reflect.DeepEqual(got, want[n]) {
			t.Errorf("%v: got %v, want %v", n, got, want[n])
		}
		sum, revenue := 0, 0
		for _, p := range pieces {
			sum += p
			revenue += rodPrices[p]
		}
		if got, want := sum, n; got != want {
			t.Errorf("%v: pieces %v sum to %v", n, pieces, got)
		}
		if got, want := revenue, rod.CutRodBottomUp(n); got != want {
			t.Errorf("%v: pieces %v yield %v, want %v", n, pieces, got, want)
		}
	}
}

func TestCutRodWithCost(t *testing.T) {
	rod := dynamic.Rod{Prices: rodPrices}
	// With no cost per cut the revenue is unchanged.
	for n := 0; n <= 10; n++ {
		if got, want := rod.CutRodWithCost(n, 0), rod.CutRodBottomUp(n); got != want {
			t.Errorf("%v: got %v, want %v", n, got, want)
		}
	}
	// A prohibitive cost leaves the rod whole.
	for n := 1; n <= 10; n++ {
		if got, want := rod.CutRodWithCost(n, 100), rodPrices[n]; got != want {
			t.Errorf("%v: got %v, want %v", n, got, want)
		}
	}
	// Length 4 at cost 1: one cut into 2+2 yields 5+5-1=9, the same
	// as selling whole; at cost 2 cutting is no longer worthwhile.
	if got, want := rod.CutRodWithCost(4, 1), 9; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := rod.CutRodWithCost(4, 2), 9; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSelectActivities(t *testing.T) {
	starts := []int{1, 3, 0, 5, 3, 5, 6, 8, 8, 2, 12}
	ends := []int{4, 5, 6, 7, 9, 9, 10, 11, 12, 14, 16}
	activities := dynamic.NewActivities(starts, ends)
	got := dynamic.SelectActivities(activities)
	want := []dynamic.Activity{
		{Start: 1, End: 4},
		{Start: 5, End: 7},
		{Start: 8, End: 11},
		{Start: 12, End: 16},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if got := dynamic.SelectActivities(nil); got != nil {
		t.Errorf("got %v, want no activities", got)
	}
	one := []dynamic.Activity{{Start: 2, End: 3}}
	if got := dynamic.SelectActivities(one); !reflect.DeepEqual(got, one) {
		t.Errorf("got %v, want %v", got, one)
	}
}

func TestFibonacci(t *testing.T) {
	want := []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, w := range want {
		if got := dynamic.Fibonacci(n); got != w {
			t.Errorf("%v: got %v, want %v", n, got, w)
		}
	}
	if got, want := dynamic.Fibonacci(93), uint64(12200160415121876738); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func ExampleRod() {
	rod := dynamic.Rod{Prices: []int{0, 1, 5, 8, 9}}
	fmt.Println(rod.CutRodBottomUp(4))
	fmt.Println(rod.Pieces(4))
	// Output:
	// 10
	// [2 2]
}

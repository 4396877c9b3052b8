// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dynamic provides solutions to classic dynamic programming
// and greedy scheduling problems.
package dynamic

// Rod computes the maximum revenue obtainable by cutting up a rod and
// selling the pieces. Prices[i] is the price of a piece of length i;
// Prices[0] is never used. Pieces longer than len(Prices)-1 cannot be
// sold whole.
type Rod struct {
	Prices []int
}

// longest returns the longest piece, at most n, that can be sold.
func (r Rod) longest(n int) int {
	if m := len(r.Prices) - 1; n > m {
		return m
	}
	return n
}

// CutRod returns the maximum revenue for a rod of length n by direct
// recursion. Exponential in n, use CutRodMemoized or CutRodBottomUp
// for anything but small inputs.
func (r Rod) CutRod(n int) int {
	max := 0
	for i := 1; i <= r.longest(n); i++ {
		if v := r.Prices[i] + r.CutRod(n-i); v > max {
			max = v
		}
	}
	return max
}

// CutRodMemoized returns the maximum revenue for a rod of length n
// using top down recursion with memoization. O(n^2).
func (r Rod) CutRodMemoized(n int) int {
	cache := make(map[int]int, n+1)
	var compute func(int) int
	compute = func(n int) int {
		if v, ok := cache[n]; ok {
			return v
		}
		max := 0
		for i := 1; i <= r.longest(n); i++ {
			if v := r.Prices[i] + compute(n-i); v > max {
				max = v
			}
		}
		cache[n] = max
		return max
	}
	return compute(n)
}

// CutRodBottomUp returns the maximum revenue for a rod of length n by
// filling the revenue table from the shortest rod up. O(n^2).
func (r Rod) CutRodBottomUp(n int) int {
	revenue, _ := r.cutBottomUp(n)
	return revenue[n]
}

// cutBottomUp returns the revenue table and, for each length, the
// size of the first piece of an optimal cut.
func (r Rod) cutBottomUp(n int) (revenue, first []int) {
	revenue = make([]int, n+1)
	first = make([]int, n+1)
	for j := 1; j <= n; j++ {
		max := 0
		for i := 1; i <= r.longest(j); i++ {
			if v := r.Prices[i] + revenue[j-i]; v > max {
				max = v
				first[j] = i
			}
		}
		revenue[j] = max
	}
	return
}

// Pieces returns the piece sizes of an optimal cut of a rod of
// length n.
func (r Rod) Pieces(n int) []int {
	_, first := r.cutBottomUp(n)
	var pieces []int
	for n > 0 && first[n] > 0 {
		pieces = append(pieces, first[n])
		n -= first[n]
	}
	return pieces
}

// CutRodWithCost is CutRodBottomUp with a fixed cost charged for
// every cut made; selling the rod whole incurs no cost.
func (r Rod) CutRodWithCost(n, cost int) int {
	revenue := make([]int, n+1)
	for j := 1; j <= n; j++ {
		max := 0
		if j < len(r.Prices) {
			max = r.Prices[j]
		}
		for i := 1; i <= r.longest(j) && i < j; i++ {
			if v := r.Prices[i] + revenue[j-i] - cost; v > max {
				max = v
			}
		}
		revenue[j] = max
	}
	return revenue[n]
}

// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package lcs provides a dynamic programming implementation of the
// longest common subsequence problem.
// See https://en.wikipedia.org/wiki/Longest_common_subsequence_problem.
package lcs

// DP finds the longest common subsequence (LCS) of two sequences
// using dynamic programming. It can return all LCS rather than just
// the first one found.
type DP[T comparable] struct {
	a, b []T

	filled bool
	length int32

	// Stores only the directions, the length table is discarded
	// after the fill. For now, use 8 bits though 2 would suffice.
	directions [][]uint8
}

// NewDP creates a new instance of DP for the supplied sequences.
func NewDP[T comparable](a, b []T) *DP[T] {
	dp := &DP[T]{a: a, b: b}
	// a is the X and b the Y axis. The directions matrix has an
	// extra 0th row/column to simplify bounds checking.
	directions := make([][]uint8, len(a)+1)
	for i := range directions {
		directions[i] = make([]uint8, len(b)+1)
	}
	dp.directions = directions
	return dp
}

const (
	diagonal  uint8 = 0x0
	up        uint8 = 0x1
	left      uint8 = 0x2
	upAndLeft uint8 = 0x3
)

func (dp *DP[T]) fill() {
	if dp.filled {
		return
	}
	dp.filled = true

	table := make([][]int32, len(dp.a)+1)
	for i := range table {
		table[i] = make([]int32, len(dp.b)+1)
	}
	for y := 1; y <= len(dp.b); y++ {
		for x := 1; x <= len(dp.a); x++ {
			if dp.a[x-1] == dp.b[y-1] {
				table[x][y] = table[x-1][y-1] + 1
				dp.directions[x][y] = diagonal
				continue
			}
			prevLeft := table[x-1][y]
			prevUp := table[x][y-1]
			switch {
			case prevUp > prevLeft:
				dp.directions[x][y] = up
				table[x][y] = prevUp
			case prevLeft > prevUp:
				dp.directions[x][y] = left
				table[x][y] = prevLeft
			default:
				dp.directions[x][y] = upAndLeft
				table[x][y] = prevLeft
			}
		}
	}
	dp.length = table[len(dp.a)][len(dp.b)]
}

// Len returns the length of the longest common subsequence.
func (dp *DP[T]) Len() int {
	dp.fill()
	return int(dp.length)
}

// LCS returns a longest common subsequence. It is empty when the
// sequences have no elements in common.
func (dp *DP[T]) LCS() []T {
	dp.fill()
	return dp.backtrack(len(dp.a), len(dp.b))
}

// AllLCS returns all of the longest common subsequences reachable
// from the direction table; the same subsequence may appear more
// than once.
func (dp *DP[T]) AllLCS() [][]T {
	dp.fill()
	return dp.backtrackAll(len(dp.a), len(dp.b))
}

func (dp *DP[T]) backtrack(i, j int) []T {
	if i == 0 || j == 0 {
		return []T{}
	}
	switch dp.directions[i][j] {
	case diagonal:
		return append(dp.backtrack(i-1, j-1), dp.a[i-1])
	case up, upAndLeft:
		return dp.backtrack(i, j-1)
	}
	return dp.backtrack(i-1, j)
}

func (dp *DP[T]) backtrackAll(i, j int) [][]T {
	if i == 0 || j == 0 {
		return [][]T{}
	}
	dir := dp.directions[i][j]
	if dir == diagonal {
		return dp.extend(i-1, dp.backtrackAll(i-1, j-1))
	}
	paths := [][]T{}
	if dir == up || dir == upAndLeft {
		paths = dp.backtrackAll(i, j-1)
	}
	if dir == left || dir == upAndLeft {
		paths = append(paths, dp.backtrackAll(i-1, j)...)
	}
	return paths
}

// extend appends a[i] to every path, creating a new single element
// path if there are none.
func (dp *DP[T]) extend(i int, paths [][]T) [][]T {
	if len(paths) == 0 {
		return [][]T{{dp.a[i]}}
	}
	for j, p := range paths {
		paths[j] = append(p, dp.a[i])
	}
	return paths
}

// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package search implements linear and binary search over slices and
// a divide and conquer solution to the maximum subarray problem.
package search

// Linear scans data from the front and returns the index of the first
// element equal to key, or -1 if key does not occur. O(n).
func Linear[T comparable](data []T, key T) int {
	for i, v := range data {
		if v == key {
			return i
		}
	}
	return -1
}

// Ordered represents the set of types that can be searched for with
// Binary and BinaryRecursive.
type Ordered interface {
	~string | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Binary returns the index of an element of data equal to key, or -1
// if key does not occur. data must be sorted in ascending order. When
// key occurs more than once the index of any one occurrence may be
// returned. O(log n).
func Binary[T Ordered](data []T, key T) int {
	low, high := 0, len(data)
	for low < high {
		mid := low + (high-low)/2
		switch {
		case data[mid] == key:
			return mid
		case data[mid] < key:
			low = mid + 1
		default:
			high = mid
		}
	}
	return -1
}

// BinaryRecursive is the recursive formulation of Binary with the
// same contract.
func BinaryRecursive[T Ordered](data []T, key T) int {
	if len(data) == 0 {
		return -1
	}
	mid := len(data) / 2
	switch {
	case data[mid] == key:
		return mid
	case key < data[mid]:
		return BinaryRecursive(data[:mid], key)
	default:
		if i := BinaryRecursive(data[mid+1:], key); i >= 0 {
			return i + mid + 1
		}
		return -1
	}
}

// Number represents the set of types whose slices MaxSubarray can
// sum over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Span records a maximum subarray: the inclusive index range
// [Low, High] and the sum of the elements it covers.
type Span[T Number] struct {
	Low, High int
	Sum       T
}

// MaxSubarray returns the contiguous subarray of data with the
// largest sum, using divide and conquer in O(n log n). The second
// return value is false iff data is empty. With all-negative input
// the subarray is the single largest element.
func MaxSubarray[T Number](data []T) (Span[T], bool) {
	if len(data) == 0 {
		return Span[T]{}, false
	}
	return maxSubarray(data, 0, len(data)), true
}

// maxSubarray operates on the half-open range [low, high), which must
// be non-empty.
func maxSubarray[T Number](data []T, low, high int) Span[T] {
	if low == high-1 {
		return Span[T]{Low: low, High: low, Sum: data[low]}
	}
	mid := low + (high-low)/2
	best := maxSubarray(data, low, mid)
	if right := maxSubarray(data, mid, high); right.Sum > best.Sum {
		best = right
	}
	if cross := maxCrossing(data, low, mid, high); cross.Sum > best.Sum {
		best = cross
	}
	return best
}

// maxCrossing returns the maximum subarray that spans the boundary
// between [low, mid) and [mid, high), both of which must be
// non-empty.
func maxCrossing[T Number](data []T, low, mid, high int) Span[T] {
	var sum T
	left, leftSum := mid-1, data[mid-1]
	for i := mid - 1; i >= low; i-- {
		sum += data[i]
		if sum > leftSum {
			leftSum, left = sum, i
		}
	}
	sum = 0
	right, rightSum := mid, data[mid]
	for i := mid; i < high; i++ {
		sum += data[i]
		if sum > rightSum {
			rightSum, right = sum, i
		}
	}
	return Span[T]{Low: left, High: right, Sum: leftSum + rightSum}
}

// MaxSubarrayLinear is MaxSubarray in a single O(n) pass.
func MaxSubarrayLinear[T Number](data []T) (Span[T], bool) {
	if len(data) == 0 {
		return Span[T]{}, false
	}
	best := Span[T]{Low: 0, High: 0, Sum: data[0]}
	sum, low := data[0], 0
	for i := 1; i < len(data); i++ {
		if sum+data[i] < data[i] {
			sum, low = data[i], i
		} else {
			sum += data[i]
		}
		if sum > best.Sum {
			best = Span[T]{Low: low, High: i, Sum: sum}
		}
	}
	return best, true
}

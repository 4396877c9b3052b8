// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sort implements the classic comparison sorts over slices.
// All of them sort in place in the order defined by the supplied
// comparison function; use a reversed comparison for descending order.
// For production use the standard library's sort and slices packages
// are almost always the better choice.
package sort

import "math/rand"

// Insertion sorts data in place by repeatedly swapping each element
// backwards into the sorted prefix. O(n^2) worst case, O(n) for nearly
// sorted input.
func Insertion[T any](data []T, less func(a, b T) bool) {
	for i := 1; i < len(data); i++ {
		for j := i - 1; j >= 0 && less(data[j+1], data[j]); j-- {
			data[j], data[j+1] = data[j+1], data[j]
		}
	}
}

// Selection sorts data in place by repeatedly selecting the smallest
// element of the unsorted suffix. O(n^2) always.
func Selection[T any](data []T, less func(a, b T) bool) {
	for i := 0; i < len(data)-1; i++ {
		min := i
		for j := i + 1; j < len(data); j++ {
			if less(data[j], data[min]) {
				min = j
			}
		}
		data[i], data[min] = data[min], data[i]
	}
}

// Merge sorts data in place using a top down merge sort. O(n log n)
// time, O(n) auxiliary space, stable.
func Merge[T any](data []T, less func(a, b T) bool) {
	if len(data) <= 1 {
		return
	}
	mid := len(data) / 2
	Merge(data[:mid], less)
	Merge(data[mid:], less)
	mergeRuns(data, mid, less)
}

// mergeRuns merges the two adjacent sorted runs data[:mid] and
// data[mid:].
func mergeRuns[T any](data []T, mid int, less func(a, b T) bool) {
	tmp := make([]T, len(data))
	copy(tmp, data)
	left, right := tmp[:mid], tmp[mid:]
	i, j := 0, 0
	for k := range data {
		switch {
		case i == len(left):
			data[k] = right[j]
			j++
		case j == len(right) || !less(right[j], left[i]):
			data[k] = left[i]
			i++
		default:
			data[k] = right[j]
			j++
		}
	}
}

// Quick sorts data in place using quicksort with a Lomuto partition
// around the last element. O(n log n) expected, O(n^2) on adversarial
// (eg. already sorted) input; use RandomizedQuick when the input
// distribution is unknown.
func Quick[T any](data []T, less func(a, b T) bool) {
	if len(data) <= 1 {
		return
	}
	q := partition(data, less)
	Quick(data[:q], less)
	Quick(data[q+1:], less)
}

// RandomizedQuick is Quick with a uniformly random pivot, making the
// expected O(n log n) bound hold for every input.
func RandomizedQuick[T any](data []T, less func(a, b T) bool) {
	if len(data) <= 1 {
		return
	}
	p := rand.Intn(len(data)) // #nosec: G404
	data[p], data[len(data)-1] = data[len(data)-1], data[p]
	q := partition(data, less)
	RandomizedQuick(data[:q], less)
	RandomizedQuick(data[q+1:], less)
}

// partition arranges data around its last element and returns the
// pivot's final position.
func partition[T any](data []T, less func(a, b T) bool) int {
	last := len(data) - 1
	pivot := data[last]
	i := 0
	for j := 0; j < last; j++ {
		if !less(pivot, data[j]) {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[last] = data[last], data[i]
	return i
}

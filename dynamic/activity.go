// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dynamic

import "sort"

// Activity is a candidate for scheduling, occupying the half-open
// time interval [Start, End).
type Activity struct {
	Start, End int
}

// NewActivities pairs up the i'th start and end times into
// activities. The slices must be of the same length.
func NewActivities(starts, ends []int) []Activity {
	if len(starts) != len(ends) {
		panic("mismatched numbers of start and end times")
	}
	activities := make([]Activity, len(starts))
	for i := range starts {
		activities[i] = Activity{Start: starts[i], End: ends[i]}
	}
	return activities
}

// SelectActivities returns a maximum size set of mutually compatible
// activities, that is, activities whose intervals do not overlap. The
// greedy choice of the compatible activity that finishes first is
// optimal. O(n log n) for unsorted input.
func SelectActivities(activities []Activity) []Activity {
	byEnd := make([]Activity, len(activities))
	copy(byEnd, activities)
	sort.Slice(byEnd, func(i, j int) bool { return byEnd[i].End < byEnd[j].End })

	var selected []Activity
	end := 0
	first := true
	for _, a := range byEnd {
		if first || a.Start >= end {
			selected = append(selected, a)
			end = a.End
			first = false
		}
	}
	return selected
}

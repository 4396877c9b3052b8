// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package circular provides circular, FIFO queues backed by a ring
// buffer.
package circular

// Queue is a FIFO queue backed by a ring buffer that grows as needed.
type Queue[T any] struct {
	storage []T
	// NOTE, if head==tail then the queue is empty or full,
	// and used == 0 must be used to distinguish between these two cases.
	used int
	head int // index of the first data element.
	tail int // index of the last data element.
}

// NewQueue creates a new queue with the specified initial capacity.
func NewQueue[T any](size int) *Queue[T] {
	if size == 0 {
		size = 1
	}
	return &Queue[T]{
		storage: make([]T, size),
	}
}

// Len returns the current number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.used
}

// Cap returns the current capacity of the queue.
func (q *Queue[T]) Cap() int {
	return cap(q.storage)
}

func (q *Queue[T]) grow(size int) {
	n := make([]T, size)
	switch {
	case q.head <= q.tail:
		q.tail = copy(n, q.storage[q.head:q.tail+1]) - 1
	default:
		c := copy(n, q.storage[q.head:])
		q.tail = c + copy(n[c:], q.storage[:q.tail+1]) - 1
	}
	q.head = 0
	q.storage = n
}

// Enqueue appends v to the tail of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.EnqueueAll([]T{v})
}

// EnqueueAll appends the specified values to the tail of the queue,
// growing the queue as needed.
func (q *Queue[T]) EnqueueAll(v []T) {
	if total := q.used + len(v); total > len(q.storage) {
		q.grow(total)
	}
	switch {
	case q.used == 0:
		// empty
		q.head = 0
		q.tail = copy(q.storage[0:], v) - 1
	case q.head <= q.tail:
		// May need to use two copies to fill the queue.
		c := copy(q.storage[q.tail+1:], v)
		copy(q.storage[0:], v[c:])
		q.tail = (q.tail + len(v)) % len(q.storage)
	default:
		// wrapped around, only one copy is needed.
		copy(q.storage[q.tail+1:], v)
		q.tail += len(v)
	}
	q.used += len(v)
}

// Dequeue removes and returns the element at the head of the queue.
// The second return value is false iff the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.used == 0 {
		var v T
		return v, false
	}
	v := q.storage[q.head]
	q.head = (q.head + 1) % len(q.storage)
	q.used--
	return v, true
}

// DequeueN removes and returns the first n elements of the queue. If
// n is greater than the number of elements in the queue then all
// elements are returned. The values returned are not zeroed out and
// hence if pointers will not be GC'd until the queue itself is
// released or Compact is called.
func (q *Queue[T]) DequeueN(n int) []T {
	if n == 0 || q.used == 0 {
		return nil
	}
	if n > q.used {
		n = q.used
	}
	o := make([]T, n)
	if q.head < q.tail {
		copy(o, q.storage[q.head:])
		q.head += n
		q.used -= n
		return o
	}
	c := copy(o, q.storage[q.head:])
	copy(o[c:], q.storage[0:])
	q.head = (q.head + n) % len(q.storage)
	q.used -= n
	return o
}

// Compact reduces the storage used by the queue to the minimum
// necessary to store its current contents. This also has the effect of
// freeing any pointers that are no longer accessible via the queue and
// hence may be GC'd.
func (q *Queue[T]) Compact() {
	if q.used == 0 {
		q.storage = make([]T, 1)
		q.head, q.tail = 0, 0
		return
	}
	n := make([]T, q.used)
	switch {
	case q.head <= q.tail:
		q.tail = copy(n, q.storage[q.head:q.tail+1]) - 1
	default:
		c := copy(n, q.storage[q.head:])
		q.tail = c + copy(n[c:], q.storage[:q.tail+1]) - 1
	}
	q.head = 0
	q.storage = n
}

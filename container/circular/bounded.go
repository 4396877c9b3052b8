// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package circular

import "cloudeng.io/errors"

var (
	// ErrQueueFull is returned by Bounded.Enqueue when the queue is at
	// capacity.
	ErrQueueFull = errors.New("queue is full")
	// ErrQueueEmpty is returned by Bounded.Dequeue when the queue is
	// empty.
	ErrQueueEmpty = errors.New("queue is empty")
)

// Bounded is a FIFO queue with a fixed capacity. Unlike Queue it never
// grows; enqueueing to a full queue and dequeueing from an empty one
// fail with ErrQueueFull and ErrQueueEmpty respectively.
type Bounded[T any] struct {
	storage []T
	used    int
	head    int
}

// NewBounded creates a new bounded queue with the specified capacity,
// which must be at least 1.
func NewBounded[T any](size int) *Bounded[T] {
	if size < 1 {
		size = 1
	}
	return &Bounded[T]{
		storage: make([]T, size),
	}
}

// Len returns the current number of elements in the queue.
func (b *Bounded[T]) Len() int {
	return b.used
}

// Cap returns the capacity of the queue.
func (b *Bounded[T]) Cap() int {
	return len(b.storage)
}

// Full returns true if the queue is at capacity.
func (b *Bounded[T]) Full() bool {
	return b.used == len(b.storage)
}

// Enqueue appends v to the tail of the queue.
func (b *Bounded[T]) Enqueue(v T) error {
	if b.used == len(b.storage) {
		return ErrQueueFull
	}
	b.storage[(b.head+b.used)%len(b.storage)] = v
	b.used++
	return nil
}

// Dequeue removes and returns the element at the head of the queue.
func (b *Bounded[T]) Dequeue() (T, error) {
	var v T
	if b.used == 0 {
		return v, ErrQueueEmpty
	}
	v, b.storage[b.head] = b.storage[b.head], v
	b.head = (b.head + 1) % len(b.storage)
	b.used--
	return v, nil
}

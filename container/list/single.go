// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package list provides singly and doubly linked lists.
package list

import "iter"

// Single provides a singly linked list.
type Single[T any] struct {
	sentinel singleItem[T] // sentinel to avoid having to handle head/tail corner cases.
	tail     *singleItem[T]
	len      int
}

type singleItem[T any] struct {
	next *singleItem[T]
	T    T
}

// SingleID identifies an item in a Single list, as returned by Append,
// Prepend and Search.
type SingleID[T any] *singleItem[T]

func NewSingle[T any]() *Single[T] {
	sl := &Single[T]{}
	sl.Reset()
	return sl
}

// Reset removes all items from the list.
func (sl *Single[T]) Reset() {
	sl.len = 0
	sl.sentinel.next = &sl.sentinel
	sl.tail = &sl.sentinel
}

func (sl *Single[T]) Len() int {
	return sl.len
}

// Forward returns an iterator over the list from head to tail.
func (sl *Single[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := sl.sentinel.next; n != &sl.sentinel; n = n.next {
			if !yield(n.T) {
				break
			}
		}
	}
}

func (sl *Single[T]) insertAfterItem(val T, it *singleItem[T]) *singleItem[T] {
	n := &singleItem[T]{T: val}
	n.next = it.next
	it.next = n
	sl.len++
	return n
}

// Head returns the value at the head of the list, or the zero value
// if the list is empty.
func (sl *Single[T]) Head() T {
	if sl.len == 0 {
		return sl.sentinel.T
	}
	return sl.sentinel.next.T
}

func (sl *Single[T]) Append(val T) SingleID[T] {
	n := sl.insertAfterItem(val, sl.tail)
	sl.tail = n
	return n
}

func (sl *Single[T]) Prepend(val T) SingleID[T] {
	n := sl.insertAfterItem(val, &sl.sentinel)
	if sl.len == 1 {
		sl.tail = n
	}
	return n
}

// Search returns the first item, scanning from the head, for which
// cmp(item, val) is true. The second return value is false if there
// is no such item.
func (sl *Single[T]) Search(val T, cmp func(a, b T) bool) (SingleID[T], bool) {
	for n := sl.sentinel.next; n != &sl.sentinel; n = n.next {
		if cmp(n.T, val) {
			return n, true
		}
	}
	return nil, false
}

// Reverse reverses the order of the items in the list in place.
func (sl *Single[T]) Reverse() {
	prev := &sl.sentinel
	n := sl.sentinel.next
	sl.tail = n
	for n != &sl.sentinel {
		next := n.next
		n.next = prev
		prev, n = n, next
	}
	sl.sentinel.next = prev
}

func (sl *Single[T]) removeItem(prev, it *singleItem[T]) {
	sl.len--
	prev.next = it.next
	if sl.tail == it {
		sl.tail = prev
	}
	*it = singleItem[T]{}
}

func (sl *Single[T]) findPrev(it *singleItem[T]) *singleItem[T] {
	prev := &sl.sentinel
	for n := sl.sentinel.next; n != &sl.sentinel; n = n.next {
		if n == it {
			return prev
		}
		prev = n
	}
	return nil
}

// RemoveItem removes the item identified by id from the list. It is
// a no-op if the item is not in the list.
func (sl *Single[T]) RemoveItem(id SingleID[T]) {
	if prev := sl.findPrev(id); prev != nil {
		sl.removeItem(prev, id)
	}
}

// Remove removes the first item, scanning from the head, for which
// cmp(item, val) is true.
func (sl *Single[T]) Remove(val T, cmp func(a, b T) bool) {
	prev := &sl.sentinel
	for n := sl.sentinel.next; n != &sl.sentinel; n = n.next {
		if cmp(n.T, val) {
			sl.removeItem(prev, n)
			return
		}
		prev = n
	}
}

// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package tree provides an unbalanced binary search tree.
package tree

import (
	"cmp"
	"iter"
)

type node[T cmp.Ordered] struct {
	key                 T
	parent, left, right *node[T]
}

// Binary is a binary search tree. Duplicate keys are kept; they are
// placed in the right subtree. The zero value is an empty tree ready
// for use. Operations are O(h) for a tree of height h, which for the
// degenerate case of keys inserted in sorted order is O(n).
type Binary[T cmp.Ordered] struct {
	root *node[T]
	len  int
}

// Len returns the number of keys in the tree.
func (b *Binary[T]) Len() int {
	return b.len
}

// Insert adds key to the tree.
func (b *Binary[T]) Insert(key T) {
	var parent *node[T]
	for c := b.root; c != nil; {
		parent = c
		if key < c.key {
			c = c.left
		} else {
			c = c.right
		}
	}
	n := &node[T]{key: key, parent: parent}
	switch {
	case parent == nil:
		b.root = n
	case key < parent.key:
		parent.left = n
	default:
		parent.right = n
	}
	b.len++
}

func (b *Binary[T]) search(key T) *node[T] {
	n := b.root
	for n != nil && n.key != key {
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n
}

// Contains returns true if key is in the tree.
func (b *Binary[T]) Contains(key T) bool {
	return b.search(key) != nil
}

func (n *node[T]) min() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[T]) max() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the smallest key in the tree. The second return value
// is false iff the tree is empty.
func (b *Binary[T]) Min() (T, bool) {
	if b.root == nil {
		var k T
		return k, false
	}
	return b.root.min().key, true
}

// Max returns the largest key in the tree. The second return value
// is false iff the tree is empty.
func (b *Binary[T]) Max() (T, bool) {
	if b.root == nil {
		var k T
		return k, false
	}
	return b.root.max().key, true
}

// Successor returns the smallest key in the tree greater than key.
// The second return value is false if key is not in the tree or has
// no successor.
func (b *Binary[T]) Successor(key T) (T, bool) {
	n := b.search(key)
	if n == nil {
		var k T
		return k, false
	}
	if n.right != nil {
		return n.right.min().key, true
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	if p == nil {
		var k T
		return k, false
	}
	return p.key, true
}

// Predecessor returns the largest key in the tree smaller than key.
// The second return value is false if key is not in the tree or has
// no predecessor.
func (b *Binary[T]) Predecessor(key T) (T, bool) {
	n := b.search(key)
	if n == nil {
		var k T
		return k, false
	}
	if n.left != nil {
		return n.left.max().key, true
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	if p == nil {
		var k T
		return k, false
	}
	return p.key, true
}

// transplant replaces the subtree rooted at u as a child of its
// parent with the subtree rooted at v.
func (b *Binary[T]) transplant(u, v *node[T]) {
	switch {
	case u.parent == nil:
		b.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// Delete removes one occurrence of key from the tree, returning false
// if key is not in the tree.
func (b *Binary[T]) Delete(key T) bool {
	n := b.search(key)
	if n == nil {
		return false
	}
	switch {
	case n.left == nil:
		b.transplant(n, n.right)
	case n.right == nil:
		b.transplant(n, n.left)
	default:
		y := n.right.min()
		if y.parent != n {
			b.transplant(y, y.right)
			y.right = n.right
			y.right.parent = y
		}
		b.transplant(n, y)
		y.left = n.left
		y.left.parent = y
	}
	b.len--
	return true
}

func (n *node[T]) inOrder(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.left.inOrder(yield) && yield(n.key) && n.right.inOrder(yield)
}

// InOrder returns an iterator over the keys of the tree in sorted
// order.
func (b *Binary[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		b.root.inOrder(yield)
	}
}

func (n *node[T]) preOrder(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.key) && n.left.preOrder(yield) && n.right.preOrder(yield)
}

// PreOrder returns an iterator that yields the key of each subtree's
// root before those of its left and then right subtrees.
func (b *Binary[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		b.root.preOrder(yield)
	}
}

func (n *node[T]) postOrder(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.left.postOrder(yield) && n.right.postOrder(yield) && yield(n.key)
}

// PostOrder returns an iterator that yields the keys of each
// subtree's left and then right subtrees before that of its root.
func (b *Binary[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		b.root.postOrder(yield)
	}
}

// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bits provides arithmetic over arrays of binary digits.
package bits

// Array is an array of binary digits, most significant first. Every
// element must be 0 or 1.
type Array []uint

// Add returns the sum of a and b, which must be of the same length.
// The result is one digit longer than the operands when the addition
// carries out of the most significant digit.
func (a Array) Add(b Array) Array {
	if len(a) != len(b) {
		panic("mismatched array lengths")
	}
	res := make(Array, len(a))
	var carry uint
	for i := len(a) - 1; i >= 0; i-- {
		sum := a[i] + b[i] + carry
		res[i] = sum % 2
		carry = sum / 2
	}
	if carry != 0 {
		res = append(res, 0)
		copy(res[1:], res[:len(res)-1])
		res[0] = carry
	}
	return res
}

// Uint64 returns the value of the array, which must be at most 64
// digits long.
func (a Array) Uint64() uint64 {
	var v uint64
	for _, d := range a {
		v = v<<1 | uint64(d)
	}
	return v
}

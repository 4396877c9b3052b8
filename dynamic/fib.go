// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dynamic

// Fibonacci returns the n'th Fibonacci number, with Fibonacci(0) == 0
// and Fibonacci(1) == 1. The result wraps around for n > 93.
func Fibonacci(n int) uint64 {
	if n < 2 {
		return uint64(n)
	}
	a, b := uint64(0), uint64(1)
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

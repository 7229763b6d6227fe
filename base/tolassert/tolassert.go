// Copyright (c) 2026, Toneworks. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with some tolerance.
package tolassert

import "github.com/stretchr/testify/assert"

// Equal asserts that the two given numbers are within 0.001 of each other.
func Equal(t assert.TestingT, expected, actual float32, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that the two given numbers are within the given
// tolerance of each other.
func EqualTol(t assert.TestingT, expected, actual, tol float32, msgAndArgs ...any) bool {
	return assert.InDelta(t, expected, actual, float64(tol), msgAndArgs...)
}

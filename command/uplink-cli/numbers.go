// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"
)

// Lua has only float64 numbers, so every integer field is checked here
// rather than converted by the mapper

// toUint64 - a whole number in [0, 2^64)
func toUint64(n float64) (uint64, error) {
	if n != math.Trunc(n) {
		return 0, ErrNotInteger
	}
	if n < 0 || n >= 1<<64 {
		return 0, ErrNumberOutOfRange
	}
	return uint64(n), nil
}

// toInt64 - a whole number in [-2^63, 2^63)
func toInt64(n float64) (int64, error) {
	if n != math.Trunc(n) {
		return 0, ErrNotInteger
	}
	if n < -(1<<63) || n >= 1<<63 {
		return 0, ErrNumberOutOfRange
	}
	return int64(n), nil
}

// toInt - optional whole number that fits an int, nil stays nil
func toInt(n *float64) (*int, error) {
	if nil == n {
		return nil, nil
	}
	i, err := toInt64(*n)
	if nil != err {
		return nil, err
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return nil, ErrNumberOutOfRange
	}
	v := int(i)
	return &v, nil
}

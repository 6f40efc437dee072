// SPDX-License-Identifier: MIT
// Copyright (c) 2026 jagprog5
// Source: github.com/jagprog5/roguelike-sprite-compression

package sprite

import "math/bits"

const (
	maxInt    = int(^uint(0) >> 1)
	maxUint32 = uint64(^uint32(0))
)

// intFromUint converts a width-generic value to an int.
func intFromUint[T UInt](v T) (int, error) {
	if uint64(v) > uint64(maxInt) {
		return 0, ErrSizeOverflow
	}

	return int(v), nil
}

// uintFromInt converts an int to a width-generic value.
func uintFromInt[T UInt](n int) (T, error) {
	if n < 0 || uint64(n) > uint64(maxOf[T]()) {
		return 0, ErrSizeOverflow
	}

	// #nosec G115 -- bounds checked above.
	return T(n), nil
}

// u32FromInt converts an int to a uint32.
func u32FromInt(n int) (uint32, error) {
	if n < 0 || uint64(n) > maxUint32 {
		return 0, ErrSizeOverflow
	}

	// #nosec G115 -- bounds checked above.
	return uint32(n), nil
}

// mulSize multiplies two dimensions, failing if the product does not fit an int.
func mulSize(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, ErrSizeOverflow
	}

	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > uint64(maxInt) {
		return 0, ErrSizeOverflow
	}

	return int(lo), nil
}

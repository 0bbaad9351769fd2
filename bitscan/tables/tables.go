// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tables holds the precomputed constants the bitscan package's
// scalar bit-block primitives are built on: per-bit masks, a De Bruijn
// index for the lsb/msb fallback path, and 16-bit lookup tables for the
// popcount/lsb/msb strategies that don't rely on the compiler's hardware
// intrinsics.
//
// Every table here is filled once by an init function and never mutated
// afterwards, which stands in for the original library's
// Tables::InitAllTables() driver (see spec.md §5): there is no practical
// way to spell a 64K-entry array as a Go literal, so a one-time init is
// the closest equivalent to a compile-time constant the language offers.
package tables

// Bit is a word with exactly bit p set, for p in [0, 63].
var Bit [64]uint64

// Low is a word with bits [0, p] set, for p in [0, 63].
var Low [64]uint64

// High is a word with bits [p, 63] set, for p in [0, 63].
var High [64]uint64

// DeBruijn64 is the De Bruijn sequence magic constant used to fold a
// word's lowest set bit into a 6-bit table index.
const DeBruijn64 = 0x03f79d71b4ca8b09

// DeBruijnIndex64 maps the folded De Bruijn hash of an isolated bit to
// its bit position in [0, 63].
var DeBruijnIndex64 [64]uint8

// PopCount16 is the population count of every possible 16-bit chunk.
var PopCount16 [1 << 16]uint8

// Lsb16 is the index (0-15) of the lowest set bit of every possible
// 16-bit chunk, or -1 if the chunk is zero.
var Lsb16 [1 << 16]int8

// Msb16 is the index (0-15) of the highest set bit of every possible
// 16-bit chunk, or -1 if the chunk is zero.
var Msb16 [1 << 16]int8

func init() {
	for p := 0; p < 64; p++ {
		Bit[p] = uint64(1) << uint(p)
	}
	for p := 0; p < 64; p++ {
		if p == 63 {
			Low[p] = ^uint64(0)
		} else {
			Low[p] = (uint64(1) << uint(p+1)) - 1
		}
		High[p] = ^uint64(0) &^ lowExclusive(p)
	}

	for i := 0; i < 64; i++ {
		bit := uint64(1) << uint(i)
		idx := (bit * DeBruijn64) >> 58
		DeBruijnIndex64[idx] = uint8(i)
	}

	for w := 0; w < (1 << 16); w++ {
		PopCount16[w] = byte(popcountNaive(uint16(w)))
		Lsb16[w] = naiveLsb16(uint16(w))
		Msb16[w] = naiveMsb16(uint16(w))
	}
}

// lowExclusive returns a word with bits [0, p) set (p exclusive), used
// only to build High without referencing Low before it is filled.
func lowExclusive(p int) uint64 {
	if p == 0 {
		return 0
	}
	return (uint64(1) << uint(p)) - 1
}

func popcountNaive(w uint16) int {
	n := 0
	for w != 0 {
		n += int(w & 1)
		w >>= 1
	}
	return n
}

func naiveLsb16(w uint16) int8 {
	if w == 0 {
		return -1
	}
	for i := 0; i < 16; i++ {
		if w&(1<<uint(i)) != 0 {
			return int8(i)
		}
	}
	return -1
}

func naiveMsb16(w uint16) int8 {
	if w == 0 {
		return -1
	}
	for i := 15; i >= 0; i-- {
		if w&(1<<uint(i)) != 0 {
			return int8(i)
		}
	}
	return -1
}

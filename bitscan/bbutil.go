// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitscan implements the BITSCAN core: fixed-capacity dense and
// sparse bit-sets, their scanning cursors, and the small utility types
// built on top of them. See spec.md for the full contract.
package bitscan

import (
	"math/bits"

	"github.com/bitgraph/bitgraph/bitscan/tables"
)

// NoBit is the sentinel returned by any query that would otherwise
// report a bit position, when no such bit exists.
const NoBit = -1

// WordBits is the fixed word size the whole package is built on.
const WordBits = 64

// WDIV returns the block index of bit b.
func WDIV(b int) int { return b >> 6 }

// WMOD returns the offset of bit b within its block.
func WMOD(b int) int { return b & 63 }

// WMUL returns the first bit index of block i.
func WMUL(i int) int { return i << 6 }

// PopCount returns the number of 1-bits in w.
func PopCount(w uint64) int {
	if active.PopcountHW {
		return bits.OnesCount64(w)
	}
	return int(tables.PopCount16[w&0xffff]) +
		int(tables.PopCount16[(w>>16)&0xffff]) +
		int(tables.PopCount16[(w>>32)&0xffff]) +
		int(tables.PopCount16[(w>>48)&0xffff])
}

// Lsb returns the index of the least-significant 1-bit of w, or NoBit
// if w is zero.
func Lsb(w uint64) int {
	if w == 0 {
		return NoBit
	}
	switch active.Lsb {
	case AlgoHW:
		return bits.TrailingZeros64(w)
	case AlgoLookup:
		for chunk := 0; chunk < 4; chunk++ {
			part := uint16(w >> uint(chunk*16))
			if idx := tables.Lsb16[part]; idx >= 0 {
				return chunk*16 + int(idx)
			}
		}
		return NoBit
	default: // AlgoDeBruijn
		isolated := w & (-w)
		return int(tables.DeBruijnIndex64[(isolated*tables.DeBruijn64)>>58])
	}
}

// Msb returns the index of the most-significant 1-bit of w, or NoBit if
// w is zero.
func Msb(w uint64) int {
	if w == 0 {
		return NoBit
	}
	switch active.Lsb {
	case AlgoHW:
		return bits.Len64(w) - 1
	case AlgoLookup:
		for chunk := 3; chunk >= 0; chunk-- {
			part := uint16(w >> uint(chunk*16))
			if idx := tables.Msb16[part]; idx >= 0 {
				return chunk*16 + int(idx)
			}
		}
		return NoBit
	default: // AlgoDeBruijn: fold to a power of two via bit-smearing,
		// then reuse the lsb De Bruijn table on the top bit.
		v := w
		v |= v >> 1
		v |= v >> 2
		v |= v >> 4
		v |= v >> 8
		v |= v >> 16
		v |= v >> 32
		v = v - (v >> 1)
		return int(tables.DeBruijnIndex64[(v*tables.DeBruijn64)>>58])
	}
}

// MaskBit returns a word with exactly bit p set.
func MaskBit(p int) uint64 { return tables.Bit[p] }

// Mask1Low returns a word with bits [0, p] set.
func Mask1Low(p int) uint64 { return tables.Low[p] }

// Mask1High returns a word with bits [p, 63] set.
func Mask1High(p int) uint64 { return tables.High[p] }

// Mask1 returns a word with the closed range of bits [lo, hi] set.
// Requires 0 <= lo <= hi <= 63.
func Mask1(lo, hi int) uint64 {
	return tables.Low[hi] &^ lowExclusive(lo)
}

func lowExclusive(p int) uint64 {
	if p == 0 {
		return 0
	}
	return tables.Low[p-1]
}

// CopyRange returns dst with bits [lo, hi] replaced by src's bits in
// that same range; bits of dst outside [lo, hi] are preserved.
func CopyRange(lo, hi int, src, dst uint64) uint64 {
	m := Mask1(lo, hi)
	return (dst &^ m) | (src & m)
}

// CopyHigh returns dst with bits [p, 63] replaced by src's, low bits
// preserved.
func CopyHigh(p int, src, dst uint64) uint64 {
	m := Mask1High(p)
	return (dst &^ m) | (src & m)
}

// CopyLow returns dst with bits [0, p] replaced by src's, high bits
// preserved.
func CopyLow(p int, src, dst uint64) uint64 {
	m := Mask1Low(p)
	return (dst &^ m) | (src & m)
}

// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitscan

// WithPC pairs a bit-set with a cached population count (spec.md §3
// "Population-counted bit-set"). The cache is allowed to
// de-synchronize deliberately: ErasePC(true) resets pc to 0 without
// touching the underlying bit-set, a pattern downstream bound
// computations use to logically shrink a set without paying for a
// block update. IsSync/RecomputePC are the resync contract.
type WithPC[B BitSet] struct {
	BB B
	pc int
}

// NewWithPC wraps bs, assuming it starts synchronized (pc == bs.Count()).
func NewWithPC[B BitSet](bs B) *WithPC[B] {
	return &WithPC[B]{BB: bs, pc: bs.Count()}
}

// PC returns the cached population count, which may be stale relative
// to BB if ErasePC(true) was used.
func (w *WithPC[B]) PC() int { return w.pc }

// SetBit sets bit b and increments the cache. Unlike the plain bit-set
// method, there is no idempotence check: the caller promises b is
// novel, exactly as spec.md §4.5 specifies.
func (w *WithPC[B]) SetBit(b int) {
	w.BB.SetBit(b)
	w.pc++
}

// EraseBit clears bit b and decrements the cache.
func (w *WithPC[B]) EraseBit(b int) {
	w.BB.EraseBit(b)
	w.pc--
}

// PopLsb erases and returns the lowest set bit, or NoBit if empty.
func (w *WithPC[B]) PopLsb() int {
	b := w.BB.Lsb()
	if b == NoBit {
		return NoBit
	}
	w.EraseBit(b)
	return b
}

// PopMsb erases and returns the highest set bit, or NoBit if empty.
func (w *WithPC[B]) PopMsb() int {
	b := w.BB.Msb()
	if b == NoBit {
		return NoBit
	}
	w.EraseBit(b)
	return b
}

// ErasePC sets the cached count to 0. If lazy is true, BB itself is
// left untouched — a deliberate de-sync for reuse without paying to
// re-zero storage (spec.md §4.5); if lazy is false, BB is also
// cleared.
func (w *WithPC[B]) ErasePC(lazy bool) {
	if !lazy {
		w.BB.EraseAll()
	}
	w.pc = 0
}

// IsSync reports whether the cache currently matches BB.Count().
func (w *WithPC[B]) IsSync() bool { return w.pc == w.BB.Count() }

// RecomputePC recomputes the cache from BB, re-establishing the
// invariant.
func (w *WithPC[B]) RecomputePC() { w.pc = w.BB.Count() }

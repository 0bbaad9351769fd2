// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitscan

// cursorState is the state machine spec.md §4.4 describes: INIT,
// SCANNING(block, pos), EXHAUSTED. exhausted is folded into block
// reaching past the bit-set's ends, so it needs no separate field.
type cursorState struct {
	block int
	pos   int // bit-within-block for non-destructive cursors
	init  bool
}

// Cursor is a stateful scan over a BitSet's 1-bits. Per spec.md §9 it
// is the primary scan API; the stateless Dense/Sparse NextBit/PrevBit
// methods are ergonomic helpers for one-off queries.
//
// A destructive cursor (NewScanDest/NewScanDestRev) clears each bit it
// returns from the scanned set, and therefore requires exclusive
// borrow of it (spec.md §5): it must not be used concurrently with any
// other cursor over the same bit-set.
//
// The open question spec.md §9 raises about a single static cached
// block index for sparse prev_bit scans is resolved here by
// construction: every Cursor owns its state, there is no package- or
// type-level shared cache, so nothing about reentrancy needs deciding.
type Cursor[B BitSet] struct {
	bs       B
	reverse  bool
	destruct bool
	st       cursorState
}

// NewScan returns a forward, non-destructive cursor.
func NewScan[B BitSet](bs B) *Cursor[B] { return &Cursor[B]{bs: bs} }

// NewScanRev returns a reverse, non-destructive cursor.
func NewScanRev[B BitSet](bs B) *Cursor[B] { return &Cursor[B]{bs: bs, reverse: true} }

// NewScanDest returns a forward, destructive cursor: each returned bit
// is cleared from bs.
func NewScanDest[B BitSet](bs B) *Cursor[B] { return &Cursor[B]{bs: bs, destruct: true} }

// NewScanDestRev returns a reverse, destructive cursor.
func NewScanDestRev[B BitSet](bs B) *Cursor[B] {
	return &Cursor[B]{bs: bs, reverse: true, destruct: true}
}

// Init (re)starts the cursor. firstBit is exclusive for non-destructive
// scans: a loop starting from NoBit yields the true end-most bit first.
// Destructive cursors ignore firstBit beyond its block coordinate,
// since they don't cache a bit-within-block position (spec.md §4.4).
func (c *Cursor[B]) Init(firstBit int) {
	if firstBit == NoBit {
		if c.reverse {
			c.st = cursorState{block: c.bs.NumBlocks() - 1, pos: WordBits, init: true}
		} else {
			c.st = cursorState{block: 0, pos: -1, init: true}
		}
		return
	}
	c.st = cursorState{block: WDIV(firstBit), pos: WMOD(firstBit), init: true}
}

// Next returns the next 1-bit in the cursor's scan direction, or NoBit
// once exhausted.
func (c *Cursor[B]) Next() int {
	if !c.st.init {
		c.Init(NoBit)
	}
	if c.destruct {
		return c.nextDestructive()
	}
	return c.nextStateful()
}

// NextDeleteFrom is the two-argument next_bit form: it behaves like
// Next, and additionally clears the returned bit from other, a second
// bit-set of the same capacity. Used to fuse "pick next vertex and
// remove it from an auxiliary candidate set" (spec.md §4.4).
func (c *Cursor[B]) NextDeleteFrom(other B) int {
	if !c.st.init {
		c.Init(NoBit)
	}
	var b int
	if c.destruct {
		b = c.nextDestructive()
	} else {
		b = c.nextStateful()
	}
	if b != NoBit {
		other.EraseBit(b)
	}
	return b
}

func (c *Cursor[B]) nextStateful() int {
	if c.reverse {
		return c.prevStateful()
	}
	block, pos := c.st.block, c.st.pos
	for block < c.bs.NumBlocks() {
		w := c.bs.Block(block)
		var masked uint64
		if pos < 0 {
			masked = w
		} else if pos >= WordBits-1 {
			masked = 0
		} else {
			masked = w & Mask1High(pos+1)
		}
		if masked != 0 {
			bit := Lsb(masked)
			c.st.block, c.st.pos = block, bit
			return WMUL(block) + bit
		}
		block++
		pos = -1
	}
	c.st.block = block
	return NoBit
}

func (c *Cursor[B]) prevStateful() int {
	block, pos := c.st.block, c.st.pos
	for block >= 0 {
		w := c.bs.Block(block)
		var masked uint64
		switch {
		case pos >= WordBits:
			masked = w
		case pos <= 0:
			masked = 0
		default:
			masked = w & Mask1Low(pos-1)
		}
		if masked != 0 {
			bit := Msb(masked)
			c.st.block, c.st.pos = block, bit
			return WMUL(block) + bit
		}
		block--
		pos = WordBits
	}
	c.st.block = -1
	return NoBit
}

// nextDestructive clears the returned bit from c.bs (and, via
// NextDeleteFrom, optionally from a second bit-set too).
func (c *Cursor[B]) nextDestructive() int {
	block := c.st.block
	if c.reverse {
		for block >= 0 {
			w := c.bs.Block(block)
			if w != 0 {
				bit := Msb(w)
				c.bs.SetBlock(block, w&^MaskBit(bit))
				c.st.block = block
				return WMUL(block) + bit
			}
			block--
		}
		c.st.block = -1
		return NoBit
	}
	for block < c.bs.NumBlocks() {
		w := c.bs.Block(block)
		if w != 0 {
			bit := Lsb(w)
			c.bs.SetBlock(block, w&^MaskBit(bit))
			c.st.block = block
			return WMUL(block) + bit
		}
		block++
	}
	c.st.block = block
	return NoBit
}

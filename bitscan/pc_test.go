// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitscan_test

import (
	"testing"

	"github.com/bitgraph/bitgraph/bitscan"
)

func TestWithPCTracksCount(t *testing.T) {
	w := bitscan.NewWithPC(bitscan.NewDense(64))
	w.SetBit(3)
	w.SetBit(9)
	if got, want := w.PC(), 2; got != want {
		t.Fatalf("PC() = %d, want %d", got, want)
	}
	if !w.IsSync() {
		t.Fatalf("IsSync() = false after only using SetBit/EraseBit")
	}
	if got := w.PopLsb(); got != 3 {
		t.Fatalf("PopLsb() = %d, want 3", got)
	}
	if got, want := w.PC(), 1; got != want {
		t.Fatalf("PC() after PopLsb = %d, want %d", got, want)
	}
}

func TestWithPCLazyErase(t *testing.T) {
	bb := bitscan.NewDense(64)
	bb.SetBit(1)
	w := bitscan.NewWithPC(bb)
	w.ErasePC(true)
	if w.PC() != 0 {
		t.Fatalf("PC() after lazy ErasePC = %d, want 0", w.PC())
	}
	if !bb.IsBit(1) {
		t.Fatalf("lazy ErasePC touched the underlying bit-set")
	}
	if w.IsSync() {
		t.Fatalf("IsSync() = true right after a deliberate lazy de-sync")
	}
	w.RecomputePC()
	if !w.IsSync() {
		t.Fatalf("IsSync() = false after RecomputePC")
	}
}

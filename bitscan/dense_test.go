// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitscan_test

import (
	"testing"

	"github.com/bitgraph/bitgraph/bitscan"
)

func TestDenseBasics(t *testing.T) {
	d := bitscan.NewDense(130)
	for _, b := range []int{10, 20, 64} {
		d.SetBit(b)
	}
	if got, want := d.Count(), 3; got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
	if got, want := d.Lsb(), 10; got != want {
		t.Fatalf("Lsb() = %d, want %d", got, want)
	}
	if got, want := d.Msb(), 64; got != want {
		t.Fatalf("Msb() = %d, want %d", got, want)
	}
	if got, want := d.NextBit(10), 20; got != want {
		t.Fatalf("NextBit(10) = %d, want %d", got, want)
	}
	if got, want := d.PrevBit(64), 20; got != want {
		t.Fatalf("PrevBit(64) = %d, want %d", got, want)
	}
	if got := d.NextBit(64); got != bitscan.NoBit {
		t.Fatalf("NextBit(64) = %d, want NoBit", got)
	}
}

func TestDenseSetBitRange(t *testing.T) {
	d := bitscan.NewDense(130)
	d.SetBitRange(63, 65)
	for _, b := range []int{63, 64, 65} {
		if !d.IsBit(b) {
			t.Errorf("bit %d not set after SetBitRange(63, 65)", b)
		}
	}
	if got, want := d.Count(), 3; got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
}

func TestDenseMaskedAlgebra(t *testing.T) {
	a := bitscan.NewDense(130)
	for _, b := range []int{10, 20, 64} {
		a.SetBit(b)
	}
	b := bitscan.NewDense(130)
	for _, v := range []int{10, 64, 100} {
		b.SetBit(v)
	}

	res := bitscan.NewDense(130)
	if err := bitscan.AndRange(0, 129, a, b, res, false); err != nil {
		t.Fatalf("AndRange: %v", err)
	}
	assertBits(t, res, []int{10, 64})

	res2 := bitscan.NewDense(130)
	if err := bitscan.AndBlockRange(2, 2, a, b, res2, true); err != nil {
		t.Fatalf("AndBlockRange erase: %v", err)
	}
	assertBits(t, res2, nil)

	res3 := bitscan.NewDense(130)
	res3.SetBit(3)
	if err := bitscan.AndBlockRange(1, 2, a, b, res3, false); err != nil {
		t.Fatalf("AndBlockRange no-erase: %v", err)
	}
	assertBits(t, res3, []int{3, 64})
}

func assertBits(t *testing.T, d *bitscan.Dense, want []int) {
	t.Helper()
	var got []int
	for b := d.NextBit(bitscan.NoBit); b != bitscan.NoBit; b = d.NextBit(b) {
		got = append(got, b)
	}
	if len(got) != len(want) {
		t.Fatalf("bits = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bits = %v, want %v", got, want)
		}
	}
}

func TestDenseFindCommonSingleton(t *testing.T) {
	a := bitscan.NewDense(64)
	a.SetBit(5)
	b := bitscan.NewDense(64)
	b.SetBit(5)
	b.SetBit(9)
	out, ok := a.FindCommonSingleton(b)
	if !ok || out != 5 {
		t.Fatalf("FindCommonSingleton = (%d, %v), want (5, true)", out, ok)
	}
}

func TestDenseEraseBit(t *testing.T) {
	d := bitscan.NewDense(64)
	d.SetBit(3)
	d.EraseBit(3)
	if d.IsBit(3) {
		t.Fatal("bit 3 still set after EraseBit")
	}
	if !d.IsEmpty() {
		t.Fatal("IsEmpty() = false after erasing the only bit")
	}
}

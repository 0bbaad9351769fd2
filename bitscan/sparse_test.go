// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitscan_test

import (
	"reflect"
	"testing"

	"github.com/bitgraph/bitgraph/bitscan"
)

func TestSparseInsertArbitraryOrder(t *testing.T) {
	s := bitscan.NewSparse(20000)
	for _, b := range []int{5, 200, 3, 10000} {
		s.SetBit(b)
	}
	if got, want := s.Count(), 4; got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
	if got, want := s.BlockIndexes(), []int{0, 3, 156}; !reflect.DeepEqual(got, want) {
		t.Fatalf("BlockIndexes() = %v, want %v", got, want)
	}
	if got, want := s.ToVector(), []int{3, 5, 200, 10000}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ToVector() = %v, want %v", got, want)
	}
}

func TestSparseEraseLeavesBlockUncompacted(t *testing.T) {
	s := bitscan.NewSparse(300)
	s.SetBit(10)
	s.SetBit(200)
	s.EraseBit(10)
	if got, want := s.Count(), 1; got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
	// The now-empty block at index 0 is not compacted away until asked.
	if got := len(s.BlockIndexes()); got != 2 {
		t.Fatalf("BlockIndexes() has %d entries before compaction, want 2", got)
	}
	s.ShrinkToFit()
	if got, want := s.BlockIndexes(), []int{3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("BlockIndexes() after ShrinkToFit = %v, want %v", got, want)
	}
}

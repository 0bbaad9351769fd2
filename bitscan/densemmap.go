// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitscan

import (
	"fmt"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// HugeDense is a Dense bit-set whose storage is an anonymous mmap'd
// region instead of a Go slice. The teacher library (go-interpreter/wagon)
// treats a VM's linear memory the same way: a raw byte-addressed region
// obtained once at construction, reinterpreted through typed accessors
// for the VM's lifetime. HugeDense generalizes that to a []uint64 view
// over the mapping so very large fixed-capacity bit-sets (clique/coloring
// search spaces on graphs with millions of vertices) don't pressure the
// Go garbage collector the way a giant heap slice would.
//
// Close unmaps the region; a HugeDense must not be used afterward.
type HugeDense struct {
	Dense
	region mmap.MMap
}

// NewDenseHuge allocates an mmap-backed Dense bit-set for nPop bits.
func NewDenseHuge(nPop int) (*HugeDense, error) {
	nBB := numBlocks(nPop)
	byteLen := nBB * 8
	region, err := mmap.MapRegion(nil, byteLen, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, fmt.Errorf("bitscan: mmap %d bytes: %w", byteLen, err)
	}
	hd := &HugeDense{region: region}
	hd.nBB = nBB
	hd.vBB = unsafe.Slice((*uint64)(unsafe.Pointer(&region[0])), nBB)
	return hd, nil
}

// Close unmaps the backing region. The HugeDense (and any Dense-typed
// alias of its embedded field) must not be touched after Close returns.
func (hd *HugeDense) Close() error {
	return hd.region.Unmap()
}

// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitscancfg_test

import (
	"testing"

	"github.com/bitgraph/bitgraph/bitscan"
	"github.com/bitgraph/bitgraph/bitscancfg"
)

func TestLoadBytesAppliesOverrides(t *testing.T) {
	defer bitscancfg.LoadBytes([]byte(`{}`)) // reset to defaults for later tests

	doc := []byte(`{
		// prefer the lookup-table strategy for this run
		"lsb_algo": "lookup",
		"popcount_hw": false,
	}`)
	if err := bitscancfg.LoadBytes(doc); err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	cfg := bitscan.CurrentConfig()
	if cfg.Lsb != bitscan.AlgoLookup {
		t.Errorf("Lsb = %v, want AlgoLookup", cfg.Lsb)
	}
	if cfg.PopcountHW {
		t.Errorf("PopcountHW = true, want false")
	}
}

func TestLoadBytesUnknownAlgo(t *testing.T) {
	err := bitscancfg.LoadBytes([]byte(`{"lsb_algo": "magic"}`))
	if err == nil {
		t.Fatalf("LoadBytes with an unknown lsb_algo should fail")
	}
}

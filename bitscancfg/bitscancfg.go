// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitscancfg loads a JSON5 (JWCC) configuration file selecting
// bitscan's runtime algorithm strategy — the moral equivalent of
// recompiling with POPCOUNT_INTRINSIC_64, DE_BRUIJN/LOOKUP, or
// CACHED_INDEX_OPERATIONS defined differently (spec.md §6), but
// flippable without a rebuild. It is a thin collaborator: nothing in
// bitscan or graph imports it back.
package bitscancfg

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"github.com/bitgraph/bitgraph/bitscan"
)

// file is the on-disk shape. Comments and trailing commas are legal in
// the source file; hujson.Standardize strips them before
// encoding/json ever sees the bytes.
type file struct {
	LsbAlgo        string `json:"lsb_algo"`
	PopcountHW     *bool  `json:"popcount_hw"`
	CachedIndexOps *bool  `json:"cached_index_ops"`
}

// UnknownAlgoError is returned when lsb_algo names a strategy bitscan
// doesn't implement.
type UnknownAlgoError string

func (e UnknownAlgoError) Error() string {
	return fmt.Sprintf("bitscancfg: unknown lsb_algo %q (want \"hw\", \"de_bruijn\", or \"lookup\")", string(e))
}

// Load reads and applies a JSON5 config file at path, installing the
// result via bitscan.SetConfig. Fields absent from the file keep
// bitscan.DefaultConfig's value.
func Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return LoadBytes(raw)
}

// LoadBytes applies a JSON5 document already read into memory. Exposed
// separately from Load so callers embedding a config (tests, for
// instance) don't need a temp file.
func LoadBytes(raw []byte) error {
	std, err := hujson.Standardize(raw)
	if err != nil {
		return fmt.Errorf("bitscancfg: %w", err)
	}
	var f file
	if err := json.Unmarshal(std, &f); err != nil {
		return fmt.Errorf("bitscancfg: %w", err)
	}

	cfg := bitscan.DefaultConfig
	if f.PopcountHW != nil {
		cfg.PopcountHW = *f.PopcountHW
	}
	if f.CachedIndexOps != nil {
		cfg.CachedIndexOps = *f.CachedIndexOps
	}
	switch f.LsbAlgo {
	case "":
		// keep DefaultConfig's Lsb
	case "hw":
		cfg.Lsb = bitscan.AlgoHW
	case "de_bruijn":
		cfg.Lsb = bitscan.AlgoDeBruijn
	case "lookup":
		cfg.Lsb = bitscan.AlgoLookup
	default:
		return UnknownAlgoError(f.LsbAlgo)
	}

	bitscan.SetConfig(cfg)
	return nil
}

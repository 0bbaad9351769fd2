// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitscan

// LsbAlgo selects the scalar algorithm bitscan uses for Lsb/Msb.
type LsbAlgo int

const (
	// AlgoHW uses the compiler's hardware bit-scan intrinsic
	// (math/bits), the Go equivalent of POPCOUNT_INTRINSIC_64 /
	// hardware bit-scan-forward.
	AlgoHW LsbAlgo = iota
	// AlgoDeBruijn uses a De Bruijn sequence hash, the default the
	// original library ships when hardware bit-scan is unavailable.
	AlgoDeBruijn
	// AlgoLookup uses the 16-bit lookup tables in bitscan/tables.
	AlgoLookup
)

// PrintDebugInfo mirrors wasm.PrintDebugInfo as a single package-level
// switch. No package reads it: format/dimacs and format/gml gate their
// logging on their own PrintDebugInfo variables, and the bitscan and
// graph packages themselves never log (spec.md §5: no hidden global
// state, no I/O).
var PrintDebugInfo = false

// Config is the runtime stand-in for the three compile-time macros in
// spec.md §6 (POPCOUNT_INTRINSIC_64, DE_BRUIJN vs LOOKUP,
// CACHED_INDEX_OPERATIONS). A reimplementation in a language with real
// compile-time configuration would make these build tags or generic
// constants instead; Go's lack of non-type template parameters makes a
// package-level struct the idiomatic equivalent, in the same spirit as
// wasm.PrintDebugInfo being a package variable rather than a macro.
type Config struct {
	// PopcountHW selects math/bits.OnesCount64 over the 16-bit lookup
	// table fallback. Default on, matching POPCOUNT_INTRINSIC_64.
	PopcountHW bool
	// Lsb selects the lsb/msb strategy. Default AlgoDeBruijn, matching
	// the original library's default.
	Lsb LsbAlgo
	// CachedIndexOps is the stand-in for CACHED_INDEX_OPERATIONS. It is
	// stored but has no effect: WDIV/WMOD/WMUL are always computed as
	// O(1) shifts and masks, and no precomputed index table exists.
	CachedIndexOps bool
}

// DefaultConfig is the configuration every bit-set uses unless told
// otherwise via SetConfig.
var DefaultConfig = Config{
	PopcountHW: true,
	Lsb:        AlgoDeBruijn,
}

// active is the process-wide configuration. Like the bitscan/tables
// lookup tables it selects between, it is treated as immutable after program start; SetConfig
// exists for benchmarks and the bitscancfg loader, not for per-call
// tuning.
var active = DefaultConfig

// SetConfig installs cfg as the process-wide bit-block algorithm
// configuration. Not safe to call concurrently with bit-set operations
// on other goroutines (spec.md §5: no between-thread ordering
// contract).
func SetConfig(cfg Config) { active = cfg }

// CurrentConfig returns the active configuration.
func CurrentConfig() Config { return active }

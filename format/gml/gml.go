// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gml emits graphs in the GML dialect read by yEd, the other
// out-of-scope-but-specified external collaborator spec.md §6 names
// alongside the DIMACS reader/writer. It is write-only: BITGRAPH never
// needs to read a yEd-authored layout back in.
package gml

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/bitgraph/bitgraph/bitscan"
	"github.com/bitgraph/bitgraph/graph"
)

// PrintDebugInfo gates emission-progress logging, mirroring
// dimacs.PrintDebugInfo and, ultimately, wasm.PrintDebugInfo.
var PrintDebugInfo = false

// palette is a fixed, readable sequence of RGB hex colors cycled
// through when coloring is supplied to Write — enough distinct hues
// that a greedy coloring of a modestly-sized graph stays visually
// distinguishable in yEd before colors repeat.
var palette = []string{
	"#FF0000", "#00B000", "#0000FF", "#FFA500", "#A000A0",
	"#00CFCF", "#8B4513", "#FF69B4", "#808000", "#008080",
	"#4682B4", "#DA70D6", "#B8860B", "#2E8B57", "#FF4500",
	"#6A5ACD", "#20B2AA", "#DC143C", "#556B2F", "#9932CC",
	"#708090", "#D2691E", "#000000",
}

func colorFor(c int) string {
	return palette[c%len(palette)]
}

// Write emits g as a yEd-compatible GML document to w. coloring, if
// non-nil, assigns node fill colors by cycling through a fixed palette
// keyed by coloring[v], a caller-supplied color index per vertex; pass
// nil for uncolored nodes.
func Write[B bitscan.BitSet](w io.Writer, g *graph.Graph[B], coloring []int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph [")
	directed := 0
	if g.Directed {
		directed = 1
	}
	fmt.Fprintf(bw, "  directed %d\n", directed)
	for v := 0; v < g.N; v++ {
		fmt.Fprintf(bw, "  node [\n    id %d\n", v)
		fmt.Fprintf(bw, "    label %q\n", fmt.Sprintf("v%d", v))
		if coloring != nil {
			fmt.Fprintln(bw, "    graphics [")
			fmt.Fprintf(bw, "      fill %q\n", colorFor(coloring[v]))
			fmt.Fprintln(bw, "    ]")
		}
		fmt.Fprintln(bw, "  ]")
	}
	n := 0
	g.Edges(func(u, v int) {
		fmt.Fprintf(bw, "  edge [\n    source %d\n    target %d\n  ]\n", u, v)
		n++
	})
	fmt.Fprintln(bw, "]")
	if PrintDebugInfo {
		log.Printf("gml: wrote %d nodes, %d edges", g.N, n)
	}
	return bw.Flush()
}

// WriteFile serializes g to path via an atomic rename, the same
// crash-safety dimacs.WriteFile gives DIMACS output.
func WriteFile[B bitscan.BitSet](path string, g *graph.Graph[B], coloring []int) error {
	var buf strings.Builder
	if err := Write(&buf, g, coloring); err != nil {
		return err
	}
	return atomic.WriteFile(path, strings.NewReader(buf.String()))
}

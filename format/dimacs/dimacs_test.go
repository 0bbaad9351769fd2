// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dimacs_test

import (
	"strings"
	"testing"

	"github.com/bitgraph/bitgraph/format/dimacs"
)

func TestParseBasicGraph(t *testing.T) {
	src := "c a small test graph\np edge 4 3\ne 1 2\ne 2 3\ne 3 4\n"
	g, err := dimacs.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.N != 4 {
		t.Fatalf("N = %d, want 4", g.N)
	}
	if !g.IsEdge(0, 1) || !g.IsEdge(1, 2) || !g.IsEdge(2, 3) {
		t.Fatalf("parsed graph missing an expected edge")
	}
}

func TestParseMissingHeader(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("e 1 2\n"))
	if err == nil {
		t.Fatalf("Parse with no header should fail")
	}
}

func TestParseEdgeOutOfRange(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 2 1\ne 1 9\n"))
	if err == nil {
		t.Fatalf("Parse with an out-of-range endpoint should fail")
	}
	var pe *dimacs.ParseError
	if _, ok := err.(*dimacs.ParseError); !ok {
		t.Fatalf("error = %v (%T), want *ParseError", err, err)
	}
	_ = pe
}

func TestWriteThenParseRoundTrips(t *testing.T) {
	src := "p edge 3 2\ne 1 2\ne 2 3\n"
	g, err := dimacs.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var buf strings.Builder
	if err := dimacs.Write(&buf, g); err != nil {
		t.Fatalf("Write: %v", err)
	}
	g2, err := dimacs.Parse(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("re-Parse of written output: %v", err)
	}
	if g2.N != g.N || g2.EdgeCount() != g.EdgeCount() {
		t.Fatalf("round trip mismatch: got N=%d edges=%d, want N=%d edges=%d", g2.N, g2.EdgeCount(), g.N, g.EdgeCount())
	}
}

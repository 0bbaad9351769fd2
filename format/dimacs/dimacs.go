// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dimacs reads and writes the DIMACS "edge" graph format, the
// external interface spec.md §6 names as an out-of-scope-but-specified
// collaborator of the bitscan/graph core. A DIMACS file consists of
// comment lines ("c ..."), exactly one problem line ("p edge <n> <m>"),
// and m edge lines ("e <u> <v>", 1-based vertex numbers).
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/bitgraph/bitgraph/bitscan"
	"github.com/bitgraph/bitgraph/graph"
)

// PrintDebugInfo gates parse-progress logging, mirroring wasm.PrintDebugInfo
// in the teacher library: false by default, flippable by a caller that
// wants to see every line consumed.
var PrintDebugInfo = false

// ErrMissingHeader is returned when a file reaches EOF without a
// "p edge" problem line. An edge line that precedes the problem line is
// reported as a *ParseError instead.
var ErrMissingHeader = errors.New("dimacs: missing \"p edge <n> <m>\" problem line")

// ParseError reports a malformed line, with its 1-based line number for
// error context (spec.md §7).
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dimacs: line %d: %s", e.Line, e.Msg)
}

// Parse reads a DIMACS edge-format graph from r into an undirected
// graph.Graph backed by bitscan.Dense neighbor sets.
func Parse(r io.Reader) (*graph.Graph[*bitscan.Dense], error) {
	scanner := bufio.NewScanner(r)
	var g *graph.Graph[*bitscan.Dense]
	lineNo := 0
	sawHeader := false
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c':
			continue
		case 'p':
			if sawHeader {
				return nil, &ParseError{lineNo, "duplicate \"p\" line"}
			}
			n, _, err := parseHeader(line)
			if err != nil {
				return nil, &ParseError{lineNo, err.Error()}
			}
			g = graph.NewDense(n, false)
			sawHeader = true
			if PrintDebugInfo {
				log.Printf("dimacs: parsed header, %d vertices", n)
			}
		case 'e':
			if !sawHeader {
				return nil, &ParseError{lineNo, "edge line precedes \"p\" header"}
			}
			u, v, err := parseEdge(line)
			if err != nil {
				return nil, &ParseError{lineNo, err.Error()}
			}
			if u < 1 || u > g.N || v < 1 || v > g.N {
				return nil, &ParseError{lineNo, fmt.Sprintf("edge (%d, %d) out of range [1, %d]", u, v, g.N)}
			}
			if err := g.AddEdge(u-1, v-1); err != nil {
				return nil, &ParseError{lineNo, err.Error()}
			}
			if PrintDebugInfo {
				log.Printf("dimacs: added edge (%d, %d)", u, v)
			}
		default:
			return nil, &ParseError{lineNo, fmt.Sprintf("unrecognized line type %q", line[0])}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, ErrMissingHeader
	}
	return g, nil
}

func parseHeader(line string) (n, m int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[1] != "edge" {
		return 0, 0, fmt.Errorf("malformed header %q, want \"p edge <n> <m>\"", line)
	}
	n, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed vertex count %q", fields[2])
	}
	m, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed edge count %q", fields[3])
	}
	return n, m, nil
}

func parseEdge(line string) (u, v int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("malformed edge line %q, want \"e <u> <v>\"", line)
	}
	u, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed endpoint %q", fields[1])
	}
	v, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed endpoint %q", fields[2])
	}
	return u, v, nil
}

// ReadFile opens and parses path.
func ReadFile(path string) (*graph.Graph[*bitscan.Dense], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Write serializes g as a DIMACS edge-format graph to w. Vertex indices
// are emitted 1-based, per the format's convention.
func Write[B bitscan.BitSet](w io.Writer, g *graph.Graph[B]) error {
	bw := bufio.NewWriter(w)
	if g.Name != "" {
		if _, err := fmt.Fprintf(bw, "c %s\n", g.Name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "p edge %d %d\n", g.N, g.EdgeCount()/edgeDivisor(g)); err != nil {
		return err
	}
	var werr error
	g.Edges(func(u, v int) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(bw, "e %d %d\n", u+1, v+1)
	})
	if werr != nil {
		return werr
	}
	return bw.Flush()
}

func edgeDivisor[B bitscan.BitSet](g *graph.Graph[B]) int {
	if g.Directed {
		return 1
	}
	return 2
}

// WriteFile serializes g to path via an atomic rename, so a process
// crash or interrupt mid-write never leaves a truncated graph file
// where a later reader could mistake it for a complete one.
func WriteFile[B bitscan.BitSet](path string, g *graph.Graph[B]) error {
	var buf strings.Builder
	if err := Write(&buf, g); err != nil {
		return err
	}
	return atomic.WriteFile(path, strings.NewReader(buf.String()))
}

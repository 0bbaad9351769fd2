// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph implements BITGRAPH's adjacency layer: an
// undirected/directed graph whose neighbor lists are fixed-capacity
// bitscan.BitSet values (spec.md §4.6). It is generic over the
// concrete bit-set kind so a caller picks Dense or Sparse neighbor
// storage at the type level, the same "no runtime polymorphism above
// the component boundary" discipline spec.md §2 requires of BITSCAN
// itself.
package graph

import (
	"errors"
	"fmt"

	"github.com/bitgraph/bitgraph/bitscan"
)

// ErrSelfLoopDisabled is returned by AddEdge(v, v) when the graph was
// constructed with AllowSelfLoops false.
var ErrSelfLoopDisabled = errors.New("graph: self-loops are disabled for this graph")

// VertexIndexError is returned by operations given a vertex index
// outside [0, N).
type VertexIndexError int

func (e VertexIndexError) Error() string {
	return fmt.Sprintf("graph: vertex index %d out of range", int(e))
}

// Graph is an adjacency-bitset graph over N vertices. B fixes the
// neighbor-set representation (typically *bitscan.Dense or
// *bitscan.Sparse); New, NewDense and NewSparse construct one.
type Graph[B bitscan.BitSet] struct {
	N              int
	Directed       bool
	AllowSelfLoops bool
	Name           string
	Path           string

	adj   []B
	newBB func(nPop int) B
}

// New constructs a Graph of n vertices, backed by neighbor sets newBB
// produces. Most callers want NewDense or NewSparse instead.
func New[B bitscan.BitSet](n int, directed bool, newBB func(nPop int) B) *Graph[B] {
	g := &Graph[B]{N: n, Directed: directed, newBB: newBB}
	g.adj = make([]B, n)
	for i := range g.adj {
		g.adj[i] = newBB(n)
	}
	return g
}

// NewDense constructs a Graph backed by bitscan.Dense neighbor sets.
func NewDense(n int, directed bool) *Graph[*bitscan.Dense] {
	return New(n, directed, bitscan.NewDense)
}

// NewSparse constructs a Graph backed by bitscan.Sparse neighbor sets.
func NewSparse(n int, directed bool) *Graph[*bitscan.Sparse] {
	return New(n, directed, bitscan.NewSparse)
}

// NewBitSet returns a zeroed bit-set of the same kind and capacity as
// this graph's neighbor sets — used by graph/rootsort to build the
// "active vertex" working set without depending on a concrete kind.
func (g *Graph[B]) NewBitSet() B { return g.newBB(g.N) }

// NewEmpty builds a fresh, edgeless graph of the same neighbor-set kind
// as g — used by graph/rootsort to materialize a reordered or induced
// copy without depending on a concrete bit-set kind.
func (g *Graph[B]) NewEmpty(n int, directed bool) *Graph[B] {
	return New(n, directed, g.newBB)
}

func (g *Graph[B]) checkVertex(v int) error {
	if v < 0 || v >= g.N {
		return VertexIndexError(v)
	}
	return nil
}

// AddEdge adds the edge (u, v). For an undirected graph both adj[u]
// and adj[v] are updated; for a directed graph only adj[u] is. A
// self-loop (u == v) is allowed only if the graph was constructed with
// AllowSelfLoops; spec.md §4.6 leaves no implicit stripping.
func (g *Graph[B]) AddEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v && !g.AllowSelfLoops {
		return ErrSelfLoopDisabled
	}
	g.adj[u].SetBit(v)
	if !g.Directed {
		g.adj[v].SetBit(u)
	}
	return nil
}

// RemoveEdge removes the edge (u, v), mirroring AddEdge's undirected
// symmetry.
func (g *Graph[B]) RemoveEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	g.adj[u].EraseBit(v)
	if !g.Directed {
		g.adj[v].EraseBit(u)
	}
	return nil
}

// IsEdge reports whether (u, v) is an edge.
func (g *Graph[B]) IsEdge(u, v int) bool { return g.adj[u].IsBit(v) }

// Degree returns |adj[v]|.
func (g *Graph[B]) Degree(v int) int { return g.adj[v].Count() }

// DegreeMasked returns the population of adj[v] restricted to the
// closed bit range [lo, hi] — the spec.md §4.6 "degree(v, mask)"
// overload, expressed as a range since bitscan's capability trait
// exposes CountRange, not an arbitrary mask argument.
func (g *Graph[B]) DegreeMasked(v, lo, hi int) int { return g.adj[v].CountRange(lo, hi) }

// Neighbors returns v's neighbor bit-set. The returned value's
// lifetime is the graph's: callers must not retain it past a
// structural mutation of g (spec.md §5).
func (g *Graph[B]) Neighbors(v int) B { return g.adj[v] }

// CreateSubgraph builds the induced subgraph over verts: vertex i of
// the result corresponds to verts[i] of g, with edges set accordingly
// (spec.md §4.6).
func (g *Graph[B]) CreateSubgraph(verts []int) *Graph[B] {
	k := len(verts)
	sg := New(k, g.Directed, g.newBB)
	sg.AllowSelfLoops = g.AllowSelfLoops
	pos := make(map[int]int, k)
	for i, v := range verts {
		pos[v] = i
	}
	for i, v := range verts {
		cur := bitscan.NewScan(g.adj[v])
		for w := cur.Next(); w != bitscan.NoBit; w = cur.Next() {
			if j, ok := pos[w]; ok {
				sg.adj[i].SetBit(j)
			}
		}
	}
	return sg
}

// MakeBidirected adds, for every directed edge (u, v), the reverse
// edge (v, u). Valid only on directed graphs.
func (g *Graph[B]) MakeBidirected() {
	if !g.Directed {
		return
	}
	additions := make([][2]int, 0)
	for u := 0; u < g.N; u++ {
		cur := bitscan.NewScan(g.adj[u])
		for v := cur.Next(); v != bitscan.NoBit; v = cur.Next() {
			if !g.adj[v].IsBit(u) {
				additions = append(additions, [2]int{v, u})
			}
		}
	}
	for _, e := range additions {
		g.adj[e[0]].SetBit(e[1])
	}
}

// ShrinkToFit reduces |V| to the first k vertices, dropping every edge
// incident to a removed vertex.
func (g *Graph[B]) ShrinkToFit(k int) {
	if k >= g.N {
		return
	}
	newAdj := make([]B, k)
	for i := 0; i < k; i++ {
		nb := g.newBB(k)
		cur := bitscan.NewScan(g.adj[i])
		for v := cur.Next(); v != bitscan.NoBit; v = cur.Next() {
			if v < k {
				nb.SetBit(v)
			}
		}
		newAdj[i] = nb
	}
	g.adj = newAdj
	g.N = k
}

// EdgeCount returns the number of directed arcs (for an undirected
// graph, this is twice the number of undirected edges, since each one
// is stored on both endpoints).
func (g *Graph[B]) EdgeCount() int {
	n := 0
	for v := 0; v < g.N; v++ {
		n += g.adj[v].Count()
	}
	return n
}

// Edges yields every undirected edge (u, v) with u < v exactly once,
// or every directed arc (u, v) if the graph is directed. A self-loop
// (u, u) is never yielded by the undirected branch: it has no u < v
// form, and adj[u] stores it as a single bit rather than the two a
// distinct pair contributes, so EdgeCount's /2 convention (see
// EdgeCount) would under-count it by half an edge if it were yielded
// here. Callers that need self-loops should check IsEdge(v, v)
// themselves.
func (g *Graph[B]) Edges(yield func(u, v int)) {
	for u := 0; u < g.N; u++ {
		cur := bitscan.NewScan(g.adj[u])
		for v := cur.Next(); v != bitscan.NoBit; v = cur.Next() {
			if g.Directed || v > u {
				yield(u, v)
			}
		}
	}
}

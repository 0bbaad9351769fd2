// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rootsort implements GraphFastRootSort, BITGRAPH's vertex
// ordering engine (spec.md §4.7). Every ordering — plain degree sorts,
// support-weighted sorts, and the degenerate (k-core peel) family — is
// built entirely out of bitscan.Cursor scans over a graph.Graph's
// adjacency sets; nothing here walks an edge list directly.
package rootsort

import (
	"sort"

	"github.com/bitgraph/bitgraph/bitscan"
	"github.com/bitgraph/bitgraph/graph"
)

// Algorithm selects an ordering criterion (spec.md §4.7).
type Algorithm int

const (
	// None leaves vertices in their original 0..N-1 order.
	None Algorithm = iota
	// Max orders non-increasing by degree.
	Max
	// Min orders non-decreasing by degree.
	Min
	// MaxWithSupport orders non-increasing by degree, tie-breaking
	// toward higher support (sum of neighbor degrees).
	MaxWithSupport
	// MinWithSupport orders non-decreasing by degree, tie-breaking
	// toward lower support.
	MinWithSupport
	// MinDegen is the degenerate (k-core) peel: repeatedly remove the
	// minimum-degree vertex of the residual graph.
	MinDegen
	// MaxDegen repeatedly removes the maximum-degree vertex of the
	// residual graph.
	MaxDegen
	// MinDegenCompo is MinDegen, tie-breaking by rank in a
	// MinWithSupport base ordering instead of by vertex index.
	MinDegenCompo
	// MaxDegenCompo is MaxDegen, tie-breaking by rank in a
	// MaxWithSupport base ordering.
	MaxDegenCompo
)

// NewOrder computes an ordering of g's N vertices under alg.
//
// The raw result is NEW→OLD: result[i] is the old vertex placed at new
// position i. If lastToFirst is set the raw result is reversed before
// any further transform, turning "vertex placed first" into "vertex
// placed last" (useful for degenerate orderings, where callers often
// want the core peeled off last, not first). If oldToNew is set the
// (possibly reversed) result is inverted via Invert, so the return
// value instead satisfies result[oldVertex] = newPosition — the form
// Reorder expects as its permutation argument.
func NewOrder[B bitscan.BitSet](g *graph.Graph[B], alg Algorithm, lastToFirst, oldToNew bool) []int {
	var order []int
	switch alg {
	case None:
		order = identity(g.N)
	case Max:
		order = sortByDeg(g.N, computeDegrees(g), nil, false)
	case Min:
		order = sortByDeg(g.N, computeDegrees(g), nil, true)
	case MaxWithSupport:
		deg := computeDegrees(g)
		order = sortByDeg(g.N, deg, computeSupport(g, deg), false)
	case MinWithSupport:
		deg := computeDegrees(g)
		order = sortByDeg(g.N, deg, computeSupport(g, deg), true)
	case MinDegen, MaxDegen, MinDegenCompo, MaxDegenCompo:
		order, _ = NewOrderDegen(g, alg, false, false)
	default:
		order = identity(g.N)
	}
	if lastToFirst {
		reverseInts(order)
	}
	if oldToNew {
		order = Invert(order)
	}
	return order
}

// NewOrderDegen is NewOrder restricted to the degenerate peel family
// (MinDegen, MaxDegen, MinDegenCompo, MaxDegenCompo). Alongside the
// same NEW→OLD/OLD→NEW ordering NewOrder produces, it also returns
// placementDeg: for each old vertex v, the residual degree v had at
// the moment the peel removed it. placementDeg is the data Width and
// Degeneracy need, and that NewOrder's single-slice return value has
// nowhere to carry — callers after the ordering alone should keep
// using NewOrder; callers that also want the peel width should call
// this instead.
func NewOrderDegen[B bitscan.BitSet](g *graph.Graph[B], alg Algorithm, lastToFirst, oldToNew bool) (order, placementDeg []int) {
	switch alg {
	case MinDegen:
		order, placementDeg = degeneratePeel(g, true, nil)
	case MaxDegen:
		order, placementDeg = degeneratePeel(g, false, nil)
	case MinDegenCompo:
		rank := rankOf(NewOrder(g, MinWithSupport, false, false))
		order, placementDeg = degeneratePeel(g, true, rank)
	case MaxDegenCompo:
		rank := rankOf(NewOrder(g, MaxWithSupport, false, false))
		order, placementDeg = degeneratePeel(g, false, rank)
	default:
		panic("rootsort: NewOrderDegen requires a degenerate algorithm (MinDegen, MaxDegen, MinDegenCompo, or MaxDegenCompo)")
	}
	if lastToFirst {
		reverseInts(order)
	}
	if oldToNew {
		order = Invert(order)
	}
	return order, placementDeg
}

// Degeneracy returns the peel width under alg, i.e. Width of the
// placementDeg array NewOrderDegen produces. For MinDegen (and
// MinDegenCompo) this is the graph's degeneracy; for MaxDegen it is the
// largest residual degree met by the max-degree-first peel, which can
// exceed the degeneracy. A thin convenience over NewOrderDegen for
// callers that only want the number, not the ordering.
func Degeneracy[B bitscan.BitSet](g *graph.Graph[B], alg Algorithm) int {
	_, placementDeg := NewOrderDegen(g, alg, false, false)
	return Width(placementDeg)
}

// NewOrderSubgraph computes an ordering restricted to the vertices in
// subset, leaving every vertex outside subset mapped to itself
// (spec.md §4.7 "ordering a neighborhood in place"). It does so by
// inducing a subgraph over subset (ascending bit order fixes the
// subgraph's local indices), ordering that subgraph, and splicing the
// result back into the N-vertex index space.
func NewOrderSubgraph[B bitscan.BitSet](g *graph.Graph[B], alg Algorithm, subset B, lastToFirst, oldToNew bool) []int {
	verts := make([]int, 0, subset.Count())
	cur := bitscan.NewScan(subset)
	for v := cur.Next(); v != bitscan.NoBit; v = cur.Next() {
		verts = append(verts, v)
	}
	result := identity(g.N)
	if len(verts) == 0 {
		return result
	}
	sg := g.CreateSubgraph(verts)
	subOrder := NewOrder(sg, alg, lastToFirst, false)
	for i, sgOld := range subOrder {
		result[verts[i]] = verts[sgOld]
	}
	if oldToNew {
		result = Invert(result)
	}
	return result
}

// Invert turns a NEW→OLD permutation into its OLD→NEW inverse, and
// vice versa: inv[perm[i]] == i for every i.
func Invert(perm []int) []int {
	inv := make([]int, len(perm))
	for i, v := range perm {
		inv[v] = i
	}
	return inv
}

// Reorder applies newIndexOf — an OLD→NEW permutation, newIndexOf[v]
// is v's index in the result — to g, producing an isomorphic graph out
// with the same edge set renamed through newIndexOf, plus decode, the
// NEW→OLD inverse permutation recorded so a caller can translate a
// solution computed over out back to g's original vertex numbering
// (spec.md §4.7).
func Reorder[B bitscan.BitSet](g *graph.Graph[B], newIndexOf []int) (out *graph.Graph[B], decode []int) {
	n := len(newIndexOf)
	out = g.NewEmpty(n, g.Directed)
	out.AllowSelfLoops = g.AllowSelfLoops
	out.Name = g.Name
	out.Path = g.Path
	g.Edges(func(u, v int) {
		out.AddEdge(newIndexOf[u], newIndexOf[v])
	})
	if !g.Directed {
		for v := 0; v < g.N; v++ {
			if g.IsEdge(v, v) {
				out.AddEdge(newIndexOf[v], newIndexOf[v])
			}
		}
	}
	return out, Invert(newIndexOf)
}

// Width returns the maximum residual degree any vertex had at the
// moment it was peeled, given the placementDeg array NewOrderDegen
// returns alongside a MinDegen/MaxDegen/*Compo ordering. For a MinDegen
// or MinDegenCompo peel this is the graph's degeneracy; Degeneracy
// wraps this for callers who don't need the ordering itself.
func Width(placementDeg []int) int {
	w := 0
	for _, d := range placementDeg {
		if d > w {
			w = d
		}
	}
	return w
}

// GreedyColorBound colors g's vertices in the sequence order (NEW→OLD)
// greedily — each vertex takes the lowest color not already used by a
// colored neighbor — and returns the number of colors used, an upper
// bound on the chromatic number driven entirely by the ordering
// (spec.md §4.7's "why ordering matters for coloring bounds").
func GreedyColorBound[B bitscan.BitSet](g *graph.Graph[B], order []int) int {
	color := make([]int, g.N)
	for i := range color {
		color[i] = -1
	}
	maxColor := -1
	for _, v := range order {
		used := make(map[int]bool)
		cur := bitscan.NewScan(g.Neighbors(v))
		for w := cur.Next(); w != bitscan.NoBit; w = cur.Next() {
			if color[w] >= 0 {
				used[color[w]] = true
			}
		}
		c := 0
		for used[c] {
			c++
		}
		color[v] = c
		if c > maxColor {
			maxColor = c
		}
	}
	return maxColor + 1
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func reverseInts(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

func rankOf(order []int) []int {
	rank := make([]int, len(order))
	for i, v := range order {
		rank[v] = i
	}
	return rank
}

func computeDegrees[B bitscan.BitSet](g *graph.Graph[B]) []int {
	deg := make([]int, g.N)
	for v := 0; v < g.N; v++ {
		deg[v] = g.Degree(v)
	}
	return deg
}

func computeSupport[B bitscan.BitSet](g *graph.Graph[B], deg []int) []int {
	sup := make([]int, g.N)
	for v := 0; v < g.N; v++ {
		s := 0
		cur := bitscan.NewScan(g.Neighbors(v))
		for w := cur.Next(); w != bitscan.NoBit; w = cur.Next() {
			s += deg[w]
		}
		sup[v] = s
	}
	return sup
}

// sortByDeg returns the NEW→OLD permutation produced by sorting
// 0..n-1 by deg, ascending if asc, tie-breaking by sup in the same
// direction when sup is non-nil, and finally by original vertex index
// for a fully deterministic, stable result.
func sortByDeg(n int, deg, sup []int, asc bool) []int {
	order := identity(n)
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if deg[a] != deg[b] {
			if asc {
				return deg[a] < deg[b]
			}
			return deg[a] > deg[b]
		}
		if sup != nil && sup[a] != sup[b] {
			if asc {
				return sup[a] < sup[b]
			}
			return sup[a] > sup[b]
		}
		return a < b
	})
	return order
}

// degeneratePeel repeatedly removes, from the still-active vertex set,
// the vertex with minimum (if minimize) or maximum residual degree,
// recording both the NEW→OLD placement order and, for each vertex, the
// residual degree it had at the moment it was peeled (placementDeg,
// consumed by Width). tieRank, if non-nil, breaks degree ties by
// preferring the vertex with the smaller rank (as produced by a prior
// support-weighted NewOrder); otherwise ties break by vertex index,
// exactly the deterministic fallback sortByDeg uses.
func degeneratePeel[B bitscan.BitSet](g *graph.Graph[B], minimize bool, tieRank []int) (order, placementDeg []int) {
	n := g.N
	deg := computeDegrees(g)
	active := g.NewBitSet()
	for v := 0; v < n; v++ {
		active.SetBit(v)
	}
	order = make([]int, 0, n)
	placementDeg = make([]int, n)

	better := func(v, cur int) bool {
		if deg[v] != deg[cur] {
			if minimize {
				return deg[v] < deg[cur]
			}
			return deg[v] > deg[cur]
		}
		if tieRank != nil {
			return tieRank[v] < tieRank[cur]
		}
		return v < cur
	}

	for len(order) < n {
		best := bitscan.NoBit
		cur := bitscan.NewScan(active)
		for v := cur.Next(); v != bitscan.NoBit; v = cur.Next() {
			if best == bitscan.NoBit || better(v, best) {
				best = v
			}
		}
		order = append(order, best)
		placementDeg[best] = deg[best]
		active.EraseBit(best)
		ncur := bitscan.NewScan(g.Neighbors(best))
		for w := ncur.Next(); w != bitscan.NoBit; w = ncur.Next() {
			if active.IsBit(w) {
				deg[w]--
			}
		}
	}
	return order, placementDeg
}

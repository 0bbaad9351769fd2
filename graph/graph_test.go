// Copyright 2024 The bitgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph_test

import (
	"testing"

	"github.com/bitgraph/bitgraph/graph"
)

func TestAddEdgeUndirectedSymmetric(t *testing.T) {
	g := graph.NewDense(4, false)
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.IsEdge(0, 1) || !g.IsEdge(1, 0) {
		t.Fatalf("undirected AddEdge(0, 1) did not set both directions")
	}
	if got, want := g.Degree(0), 1; got != want {
		t.Fatalf("Degree(0) = %d, want %d", got, want)
	}
}

func TestAddEdgeDirectedAsymmetric(t *testing.T) {
	g := graph.NewDense(4, true)
	g.AddEdge(0, 1)
	if !g.IsEdge(0, 1) {
		t.Fatalf("directed AddEdge(0, 1) did not set (0, 1)")
	}
	if g.IsEdge(1, 0) {
		t.Fatalf("directed AddEdge(0, 1) incorrectly set (1, 0)")
	}
}

func TestSelfLoopDisabledByDefault(t *testing.T) {
	g := graph.NewDense(3, false)
	if err := g.AddEdge(1, 1); err != graph.ErrSelfLoopDisabled {
		t.Fatalf("AddEdge(1, 1) = %v, want ErrSelfLoopDisabled", err)
	}
	g.AllowSelfLoops = true
	if err := g.AddEdge(1, 1); err != nil {
		t.Fatalf("AddEdge(1, 1) after enabling self-loops: %v", err)
	}
}

func TestVertexIndexError(t *testing.T) {
	g := graph.NewDense(3, false)
	if err := g.AddEdge(0, 5); err == nil {
		t.Fatalf("AddEdge(0, 5) on a 3-vertex graph should fail")
	}
}

func TestCreateSubgraphReindexes(t *testing.T) {
	g := graph.NewDense(5, false)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	sg := g.CreateSubgraph([]int{1, 2, 3})
	if sg.N != 3 {
		t.Fatalf("CreateSubgraph N = %d, want 3", sg.N)
	}
	if !sg.IsEdge(0, 1) { // old (1, 2)
		t.Errorf("subgraph missing edge (0, 1) [old (1, 2)]")
	}
	if !sg.IsEdge(1, 2) { // old (2, 3)
		t.Errorf("subgraph missing edge (1, 2) [old (2, 3)]")
	}
	if sg.IsEdge(0, 2) {
		t.Errorf("subgraph has spurious edge (0, 2): old (1, 3) was never an edge")
	}
}

func TestMakeBidirected(t *testing.T) {
	g := graph.NewDense(3, true)
	g.AddEdge(0, 1)
	g.MakeBidirected()
	if !g.IsEdge(1, 0) {
		t.Fatalf("MakeBidirected did not add reverse edge (1, 0)")
	}
}

func TestEdgesYieldsEachUndirectedEdgeOnce(t *testing.T) {
	g := graph.NewDense(4, false)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	var got [][2]int
	g.Edges(func(u, v int) { got = append(got, [2]int{u, v}) })
	if len(got) != 2 {
		t.Fatalf("Edges yielded %d pairs, want 2: %v", len(got), got)
	}
}

func TestShrinkToFitDropsIncidentEdges(t *testing.T) {
	g := graph.NewDense(5, false)
	g.AddEdge(0, 4)
	g.AddEdge(0, 1)
	g.ShrinkToFit(3)
	if g.N != 3 {
		t.Fatalf("N after ShrinkToFit(3) = %d, want 3", g.N)
	}
	if g.IsEdge(0, 1) == false {
		t.Fatalf("ShrinkToFit(3) dropped a surviving edge (0, 1)")
	}
}

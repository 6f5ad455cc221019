package aoc

import (
	"slices"
	"testing"
)

func TestShortestPaths(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "b", 2)
	g.AddEdge("a", "c", 5)
	g.AddEdge("b", "c", 1)
	g.AddEdge("c", "d", 7)
	g.AddNode("lonely")

	r := g.ShortestPaths("a")
	for n, want := range map[string]int{"a": 0, "b": 2, "c": 3, "d": 10} {
		if got, ok := r.Dist(n); !ok || got != want {
			t.Errorf("Dist(%s) = %d, %v; want %d", n, got, ok, want)
		}
	}
	if _, ok := r.Dist("lonely"); ok {
		t.Error("lonely node reached")
	}
	if got := r.Path("d"); !slices.Equal(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("Path(d) = %v", got)
	}

	all := g.AllShortestPaths()
	for k, want := range map[Edge[string]]int{
		{"a", "d"}: 10,
		{"d", "a"}: 10,
		{"b", "d"}: 8,
		{"a", "c"}: 3,
		{"c", "c"}: 0,
	} {
		if got, ok := all[k]; !ok || got != want {
			t.Errorf("AllShortestPaths[%v] = %d, %v; want %d", k, got, ok, want)
		}
	}
	if _, ok := all[Edge[string]{"a", "lonely"}]; ok {
		t.Error("a and lonely are not connected")
	}

	// Both agree on every pair.
	for from := range g.Nodes {
		r := g.ShortestPaths(from)
		for to := range g.Nodes {
			d1, ok1 := r.Dist(to)
			d2, ok2 := all[Edge[string]{from, to}]
			if ok1 != ok2 || d1 != d2 {
				t.Errorf("%s->%s: dijkstra %d,%v; floyd %d,%v", from, to, d1, ok1, d2, ok2)
			}
		}
	}
}

func TestCollapseKeepsLongerEdge(t *testing.T) {
	var g Graph[string]
	// Two routes between a and d: a-b-d (3) and a-c-d (5). e and f hang
	// off a and d so that they keep a degree other than two.
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "d", 2)
	g.AddEdge("a", "c", 4)
	g.AddEdge("c", "d", 1)
	g.AddEdge("a", "e", 1)
	g.AddEdge("d", "f", 1)
	g.AddEdge("a", "g", 1)
	g.AddEdge("d", "h", 1)
	g.Collapse()

	if got := g.Edges["a"]["d"]; got != 5 {
		t.Errorf("a-d = %d, want 5", got)
	}
	if g.Nodes["b"] || g.Nodes["c"] {
		t.Errorf("corridor nodes left behind: %v", g.Nodes)
	}
	if got, ok := g.LongestPath("e", "f"); !ok || got != 7 {
		t.Errorf("LongestPath(e, f) = %d, %v; want 7", got, ok)
	}
	if _, ok := g.LongestPath("e", "missing"); ok {
		t.Error("found path to missing node")
	}
}

func TestMinCut(t *testing.T) {
	var g Graph[int]
	// Two 4-cliques joined by the edges 3-4 and 0-7.
	for _, c := range [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}} {
		for i, a := range c {
			for _, b := range c[i+1:] {
				g.AddEdge(a, b, 1)
			}
		}
	}
	g.AddEdge(3, 4, 1)
	g.AddEdge(0, 7, 1)

	cut, side := g.MinCut()
	if len(cut) != 2 {
		t.Fatalf("cut = %v, want 2 edges", cut)
	}
	if len(side) != 4 {
		t.Fatalf("side = %v, want 4 nodes", side)
	}
	slices.Sort(side)
	if !slices.Equal(side, []int{0, 1, 2, 3}) && !slices.Equal(side, []int{4, 5, 6, 7}) {
		t.Errorf("side = %v", side)
	}

	// The original graph is untouched.
	if len(g.Nodes) != 8 || len(g.Edges[3]) != 4 {
		t.Errorf("MinCut mutated the graph: %v", g.Edges)
	}

	for _, e := range cut {
		g.RemoveEdge(e.A, e.B)
	}
	if got := len(g.ReachableNodes(0)); got != 4 {
		t.Errorf("after cut, %d nodes reachable from 0; want 4", got)
	}
}

func TestRemoveNodeAndClone(t *testing.T) {
	var g Graph[int]
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	c := g.Clone()
	g.RemoveNode(2)
	if len(g.Edges[1]) != 0 || g.Nodes[2] {
		t.Errorf("RemoveNode left %v", g.Edges)
	}
	if len(c.Edges[2]) != 2 {
		t.Errorf("clone changed: %v", c.Edges)
	}
}

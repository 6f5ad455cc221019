package aoc

import (
	"fmt"
	"math"

	"github.com/maisem/aoc2023/dijkstra"
	"github.com/maisem/aoc2023/pq"
	"golang.org/x/exp/maps"
)

// Graph is an undirected graph with integer edge weights.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

// Neighbors returns the edges leaving k, for use with dijkstra.Search.
func (g *Graph[K]) Neighbors(k K) []dijkstra.Edge[K, int] {
	out := make([]dijkstra.Edge[K, int], 0, len(g.Edges[k]))
	for n, w := range g.Edges[k] {
		out = append(out, dijkstra.Edge[K, int]{To: n, Weight: w})
	}
	return out
}

// ShortestPaths returns the shortest distance from the nearest of from to
// every node reachable from them.
func (g *Graph[K]) ShortestPaths(from ...K) *dijkstra.Result[K, int] {
	return dijkstra.Search(from, g.Neighbors)
}

// AllShortestPaths returns the distance between every pair of connected
// nodes, using Floyd–Warshall. Unconnected pairs are absent.
func (g *Graph[K]) AllShortestPaths() map[Edge[K]]int {
	type key = Edge[K]
	dist := map[key]int{}
	for k1 := range g.Nodes {
		dist[key{k1, k1}] = 0
		for k2, v := range g.Edges[k1] {
			if d, ok := dist[key{k1, k2}]; !ok || v < d {
				dist[key{k1, k2}] = v
			}
		}
	}
	for via := range g.Nodes {
		for k1 := range g.Nodes {
			e1, ok := dist[key{k1, via}]
			if !ok {
				continue
			}
			for k2 := range g.Nodes {
				e2, ok := dist[key{via, k2}]
				if !ok {
					continue
				}
				if e, ok := dist[key{k1, k2}]; !ok || e1+e2 < e {
					dist[key{k1, k2}] = e1 + e2
				}
			}
		}
	}
	return dist
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) RemoveNode(a K) {
	for e := range g.Edges[a] {
		delete(g.Edges[e], a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

// AddEdge adds an edge of weight dist between a and b, replacing any
// existing one.
func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	InitMap(&g.Nodes)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
	g.Nodes[a] = true
	g.Nodes[b] = true
}

// LongestPath returns the size of the longest simple path from start to end.
func (g Graph[K]) LongestPath(start, end K) (rp int, ok bool) {
	return g.longestPathHelper(start, end, make(map[K]bool))
}

func (g Graph[K]) longestPathHelper(start, end K, visited map[K]bool) (rp int, ok bool) {
	if start == end {
		return 0, true
	}

	visited[start] = true
	defer func() {
		visited[start] = false
	}()
	max := -1
	for k, v := range g.Edges[start] {
		if visited[k] {
			continue
		}
		got, ok := g.longestPathHelper(k, end, visited)
		got += v
		if ok && (max == -1 || got > max) {
			max = got
		}
	}
	if max != -1 {
		return max, true
	}
	return 0, false
}

// Collapse collapses the graph by removing any nodes with only two edges and
// merging the two edges into one. If the two neighbors were already
// connected, the longer edge is kept.
func (g *Graph[K]) Collapse() {
	for {
		trimmed := false
		for k1, e := range g.Edges {
			if len(e) != 2 {
				continue
			}
			ks := maps.Keys(e)
			k2, k3 := ks[0], ks[1]
			d := e[k2] + e[k3]
			if old, ok := g.Edges[k2][k3]; ok && old > d {
				d = old
			}
			g.RemoveNode(k1)
			g.AddEdge(k2, k3, d)
			trimmed = true
		}
		if !trimmed {
			break
		}
	}
}

type Edge[T comparable] struct {
	A, B T
}

// MinCut calculates the minimum cut of a graph using the Stoer–Wagner
// algorithm. It returns the edges that make up the cut and the nodes on
// one side of it.
func (g *Graph[T]) MinCut() (cut []Edge[T], side []T) {
	if len(g.Nodes) < 2 {
		panic("MinCut needs at least two nodes")
	}
	var (
		g2 = g.Clone() // copy of graph to mutate

		start = AnyKey(g2.Nodes) // any node

		// group[n] is the set of original nodes merged into n.
		group = map[T][]T{}

		minCut = math.MaxInt
	)
	for k := range g2.Nodes {
		group[k] = []T{k}
	}
	for len(g2.Nodes) > 1 {
		s, t, w := g2.minCutPhase(start)
		if w < minCut {
			minCut = w
			side = append([]T(nil), group[t]...)
		}
		group[s] = append(group[s], group[t]...)
		delete(group, t)
		g2.merge(s, t)
	}

	in := make(map[T]bool, len(side))
	for _, v := range side {
		in[v] = true
	}
	for _, v := range side {
		for e := range g.Edges[v] {
			if !in[e] {
				cut = append(cut, Edge[T]{v, e})
			}
		}
	}
	if len(cut) > minCut {
		panic(fmt.Sprintf("reconstructed cuts = %d; want <= %d", len(cut), minCut))
	}
	return cut, side
}

// minCutPhase runs one phase of the min cut algorithm. It returns the last two
// nodes traversed and the weight of the cut separating the last one from the
// rest.
//
// It is equivalent to running a max flow algorithm from start to any other node
// in the graph.
func (g *Graph[T]) minCutPhase(start T) (s, t T, wOut int) {
	q := pq.Max[T, int]()
	pris := map[T]*pq.Item[T, int]{}
	for k := range g.Nodes {
		p := 0
		if k == start {
			p = math.MaxInt / 2
		}
		pris[k] = q.Add(k, p)
	}

	for q.Len() > 0 {
		next := q.Pop()

		for k, v := range g.Edges[next.V] {
			p := pris[k]
			if p.Index() == -1 {
				continue
			}
			p.P += v
			q.Update(p)
		}
		s, t = t, next.V
		wOut = next.P
	}
	return
}

func (g *Graph[T]) merge(s, t T) {
	for k, tvk := range g.Edges[t] {
		if k == s {
			continue
		}
		svk := g.Edges[s][k]
		g.AddEdge(s, k, svk+tvk)
	}
	g.RemoveNode(t)
}

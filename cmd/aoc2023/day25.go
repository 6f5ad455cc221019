package main

import (
	"strings"

	"github.com/maisem/aoc2023"
)

func (s solver) wiring() *aoc.Graph[string] {
	var g aoc.Graph[string]
	s.ForLines(func(line string) {
		name, rest, ok := strings.Cut(line, ": ")
		if !ok {
			return
		}
		for _, other := range strings.Fields(rest) {
			g.AddEdge(name, other, 1)
		}
	})
	return &g
}

// splitSizes cuts the fewest wires that split g in two and returns the
// sizes of the two groups.
func splitSizes(g *aoc.Graph[string]) (int, int) {
	cut, side := g.MinCut()
	g = g.Clone()
	for _, e := range cut {
		g.RemoveEdge(e.A, e.B)
	}
	n := len(g.ReachableNodes(side[0]))
	return n, len(g.Nodes) - n
}

/*
want=54

jqt: rhn xhk nvd
rsh: frs pzl lsr
xhk: hfx
cmg: qnr nvd lhk bvb
rhn: xhk bvb hfx
bvb: xhk hfx
pzl: lsr hfx nvd
qnr: nvd
ntq: jqt hfx bvb xhk
nvd: lhk
lsr: lhk
rzs: qnr cmg lsr rsh
frs: qnr lhk lsr
*/
func (s solver) D25p1() any {
	g := s.wiring()
	a, b := splitSizes(g)
	s.Debugf("groups of %d and %d", a, b)
	return a * b
}

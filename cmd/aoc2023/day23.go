package main

import (
	"fmt"
	"slices"

	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/dijkstra"
)

var slopes = map[byte]aoc.Direction{
	'^': aoc.Up,
	'>': aoc.Right,
	'v': aoc.Down,
	'<': aoc.Left,
}

type trailMap struct {
	g          aoc.Grid[byte]
	start, end aoc.Pt
}

func (s solver) trailMap() trailMap {
	g := s.Grid()
	size := g.Size()
	t := trailMap{g: g}
	for x := 0; x < size.X; x++ {
		if g[0][x] == '.' {
			t.start = aoc.Pt{X: x, Y: 0}
		}
		if g[size.Y-1][x] == '.' {
			t.end = aoc.Pt{X: x, Y: size.Y - 1}
		}
	}
	return t
}

func (t trailMap) open(p aoc.Pt) bool {
	v, ok := t.g.AtOk(p)
	return ok && v != '#'
}

// canEnter reports whether p may be stepped onto heading in d. Slopes can
// only be walked downhill.
func (t trailMap) canEnter(p aoc.Pt, d aoc.Direction) bool {
	if !t.open(p) {
		return false
	}
	sd, ok := slopes[t.g.At(p)]
	return !ok || sd == d
}

type trailEdge struct {
	to    int
	steps int
}

// junctions returns the start, the end and every fork of the map, along
// with the corridors leading from each one to the next, honoring slopes.
// When two corridors join the same pair of junctions only the longer one
// is returned.
func (t trailMap) junctions() ([]aoc.Pt, [][]trailEdge) {
	var pts []aoc.Pt
	idx := map[aoc.Pt]int{}
	add := func(p aoc.Pt) {
		if _, ok := idx[p]; !ok {
			idx[p] = len(pts)
			pts = append(pts, p)
		}
	}
	add(t.start)
	add(t.end)
	for y, row := range t.g {
		for x := range row {
			p := aoc.Pt{X: x, Y: y}
			if !t.open(p) {
				continue
			}
			exits := 0
			for _, d := range aoc.Directions {
				if t.open(p.Step(d)) {
					exits++
				}
			}
			if exits > 2 {
				add(p)
			}
		}
	}

	edges := make([][]trailEdge, len(pts))
	for i, from := range pts {
		for _, d := range aoc.Directions {
			at := from.Step(d)
			if !t.canEnter(at, d) {
				continue
			}
			dir, steps := d, 1
			for {
				if _, ok := idx[at]; ok {
					break
				}
				moved := false
				for _, d2 := range aoc.Directions {
					if d2 == dir.Opposite() || !t.canEnter(at.Step(d2), d2) {
						continue
					}
					at, dir = at.Step(d2), d2
					steps++
					moved = true
					break
				}
				if !moved {
					break
				}
			}
			j, ok := idx[at]
			if !ok {
				continue
			}
			// Keep only the longest of parallel corridors.
			k := slices.IndexFunc(edges[i], func(e trailEdge) bool { return e.to == j })
			switch {
			case k == -1:
				edges[i] = append(edges[i], trailEdge{to: j, steps: steps})
			case edges[i][k].steps < steps:
				edges[i][k].steps = steps
			}
		}
	}
	return pts, edges
}

// hike is a position on the junction graph along with the junctions
// already visited on the way there.
type hike struct {
	at   int
	seen uint64
}

// longestSlopedHike returns the length of the longest hike from start to
// end that never steps on a tile twice and only walks slopes downhill.
//
// Slopes make the junction graph acyclic, so the set of visited junctions
// pins down the route taken and each hike state has a single distance.
// Searching those states outward from the start reaches every route to the
// end; the longest one is the answer.
func (t trailMap) longestSlopedHike() int {
	pts, edges := t.junctions()
	if len(pts) > 64 {
		panic(fmt.Sprintf("too many junctions: %d", len(pts)))
	}
	const start, end = 0, 1
	r := dijkstra.Search([]hike{{at: start, seen: 1 << start}}, func(h hike) []dijkstra.Edge[hike, int] {
		var out []dijkstra.Edge[hike, int]
		for _, e := range edges[h.at] {
			if h.seen&(1<<e.to) != 0 {
				continue
			}
			out = append(out, dijkstra.Edge[hike, int]{
				To:     hike{at: e.to, seen: h.seen | 1<<e.to},
				Weight: e.steps,
			})
		}
		return out
	})
	longest := -1
	for h, d := range r.Distances() {
		if h.at == end {
			longest = max(longest, d)
		}
	}
	if longest == -1 {
		panic("no path")
	}
	return longest
}

/*
want=94

#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#
*/
func (s solver) D23p1() any {
	return s.trailMap().longestSlopedHike()
}

// want=154
func (s solver) D23p2() any {
	t := s.trailMap()
	g := t.g.ToGraph(t.start, false, func(b byte) bool { return b == '#' })
	s.Debugf("collapsed to %d nodes", len(g.Nodes))
	n, ok := g.LongestPath(t.start, t.end)
	if !ok {
		panic("no path")
	}
	return n
}

package main

import (
	"slices"

	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/dijkstra"
)

var pipeDirs = map[byte][]aoc.Direction{
	'|': {aoc.Up, aoc.Down},
	'-': {aoc.Left, aoc.Right},
	'L': {aoc.Up, aoc.Right},
	'J': {aoc.Up, aoc.Left},
	'7': {aoc.Down, aoc.Left},
	'F': {aoc.Down, aoc.Right},
}

type pipeMaze struct {
	g     aoc.Grid[byte]
	start aoc.Pt
}

func (s solver) pipeMaze() pipeMaze {
	g := s.Grid()
	start, ok := g.Find(func(b byte) bool { return b == 'S' })
	if !ok {
		panic("no start")
	}
	return pipeMaze{g: g, start: start}
}

// exits returns the directions the pipe at p connects to. The start tile
// connects to every neighbor that connects back to it.
func (m pipeMaze) exits(p aoc.Pt) []aoc.Direction {
	v, ok := m.g.AtOk(p)
	if !ok {
		return nil
	}
	if v != 'S' {
		return pipeDirs[v]
	}
	var out []aoc.Direction
	for _, d := range aoc.Directions {
		n, ok := m.g.AtOk(p.Step(d))
		if ok && slices.Contains(pipeDirs[n], d.Opposite()) {
			out = append(out, d)
		}
	}
	return out
}

func (m pipeMaze) neighbors(p aoc.Pt) []dijkstra.Edge[aoc.Pt, int] {
	var out []dijkstra.Edge[aoc.Pt, int]
	for _, d := range m.exits(p) {
		q := p.Step(d)
		if slices.Contains(m.exits(q), d.Opposite()) {
			out = append(out, dijkstra.Edge[aoc.Pt, int]{To: q, Weight: 1})
		}
	}
	return out
}

// loop returns the tiles of the loop in walking order, starting at start.
func (m pipeMaze) loop() []aoc.Pt {
	at := aoc.Path{Pt: m.start, Dir: m.exits(m.start)[0]}
	pts := []aoc.Pt{m.start}
	for {
		at.Pt = at.Pt.Step(at.Dir)
		if at.Pt == m.start {
			return pts
		}
		pts = append(pts, at.Pt)
		for _, d := range m.exits(at.Pt) {
			if d != at.Dir.Opposite() {
				at.Dir = d
				break
			}
		}
	}
}

/*
want=8

..F7.
.FJ|.
SJ.L7
|F--J
LJ...
*/
func (s solver) D10p1() any {
	m := s.pipeMaze()
	r := dijkstra.Search([]aoc.Pt{m.start}, m.neighbors)
	farthest := 0
	for _, d := range r.Distances() {
		farthest = max(farthest, d)
	}
	return farthest
}

/*
want=4

...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
*/
func (s solver) D10p2() any {
	pts := s.pipeMaze().loop()
	pts = append(pts, pts[0])
	return aoc.PolygonInteriorPoints(pts)
}

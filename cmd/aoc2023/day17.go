package main

import (
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/dijkstra"
)

// crucible moves in straight runs of minRun to maxRun blocks, turning left
// or right between runs.
type crucible struct {
	g              aoc.Grid[byte]
	minRun, maxRun int
}

// next returns the states reachable with one run. A state is the block the
// crucible stopped on and the direction it was heading.
func (c crucible) next(p aoc.Path) []dijkstra.Edge[aoc.Path, int] {
	var out []dijkstra.Edge[aoc.Path, int]
	for _, d := range []aoc.Direction{p.Dir.Turn(true), p.Dir.Turn(false)} {
		at := p.Pt
		loss := 0
		for n := 1; n <= c.maxRun; n++ {
			at = at.Step(d)
			v, ok := c.g.AtOk(at)
			if !ok {
				break
			}
			loss += aoc.Digit(rune(v))
			if n >= c.minRun {
				out = append(out, dijkstra.Edge[aoc.Path, int]{
					To:     aoc.Path{Pt: at, Dir: d},
					Weight: loss,
				})
			}
		}
	}
	return out
}

// minHeatLoss returns the least heat lost getting from the top left block
// to the bottom right one.
func (c crucible) minHeatLoss() int {
	end := c.g.Size().Sub(aoc.Pt{X: 1, Y: 1})
	seeds := []aoc.Path{{Dir: aoc.Right}, {Dir: aoc.Down}}
	r := dijkstra.SearchUntil(seeds, c.next, func(p aoc.Path) bool {
		return p.Pt == end
	})
	loss, _, ok := r.Min(aoc.Path{Pt: end, Dir: aoc.Right}, aoc.Path{Pt: end, Dir: aoc.Down})
	if !ok {
		panic("end unreachable")
	}
	return loss
}

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s solver) D17p1() any {
	return crucible{g: s.Grid(), minRun: 1, maxRun: 3}.minHeatLoss()
}

// want=94
func (s solver) D17p2() any {
	return crucible{g: s.Grid(), minRun: 4, maxRun: 10}.minHeatLoss()
}

package main

import "github.com/maisem/aoc2023"

// reachablePlots returns how many garden plots can be the final one of a
// walk of exactly steps steps from start, on the map repeated infinitely
// in every direction.
func reachablePlots(g aoc.Grid[byte], start aoc.Pt, steps int) int {
	size := g.Size()
	wrap := func(p aoc.Pt) aoc.Pt {
		return aoc.Pt{X: (p.X%size.X + size.X) % size.X, Y: (p.Y%size.Y + size.Y) % size.Y}
	}
	type visit struct {
		p aoc.Pt
		d int
	}
	seen := map[aoc.Pt]bool{start: true}
	count := 0
	q := aoc.NewQueue(visit{start, 0})
	q.While(func(v visit) bool {
		// A plot reached early can be returned to by stepping back and
		// forth, as long as the parity matches.
		if v.d%2 == steps%2 {
			count++
		}
		if v.d == steps {
			return true
		}
		v.p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if !seen[n] && g.At(wrap(n)) != '#' {
				seen[n] = true
				q.Push(visit{n, v.d + 1})
			}
			return true
		})
		return true
	})
	return count
}

// manyPlots is reachablePlots for step counts too large to walk. The
// count grows quadratically with the number of whole map widths walked,
// so it is extrapolated from three walks of steps%width plus zero, one
// and two widths.
func manyPlots(g aoc.Grid[byte], start aoc.Pt, steps int) int {
	w := g.Size().X
	if steps < 3*w {
		return reachablePlots(g, start, steps)
	}
	r := steps % w
	f := []int{
		reachablePlots(g, start, r),
		reachablePlots(g, start, r+w),
		reachablePlots(g, start, r+2*w),
	}
	return aoc.ExtrapolateAt(f, steps/w)
}

func (s solver) gardenMap() (aoc.Grid[byte], aoc.Pt) {
	g := s.Grid()
	start, ok := g.Find(func(b byte) bool { return b == 'S' })
	if !ok {
		panic("no start")
	}
	return g, start
}

/*
want=16

...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
*/
func (s solver) D21p1() any {
	g, start := s.gardenMap()
	steps := 64
	if s.SampleMode {
		steps = 6
	}
	return reachablePlots(g, start, steps)
}

// want=50
func (s solver) D21p2() any {
	g, start := s.gardenMap()
	steps := 26501365
	if s.SampleMode {
		steps = 10
	}
	return manyPlots(g, start, steps)
}

package main

import (
	"strconv"
	"strings"

	"github.com/maisem/aoc2023"
)

var digDirs = map[string]aoc.Direction{
	"U": aoc.Up,
	"R": aoc.Right,
	"D": aoc.Down,
	"L": aoc.Left,
}

// hexDirs is indexed by the last digit of the color code.
var hexDirs = [4]aoc.Direction{aoc.Right, aoc.Down, aoc.Left, aoc.Up}

type digStep struct {
	dir aoc.Direction
	n   int
}

// lagoon returns the number of cubic meters dug out by following steps.
func lagoon(steps []digStep) int {
	at := aoc.Pt{}
	pts := []aoc.Pt{at}
	for _, st := range steps {
		at = at.Add(st.dir.Delta().Mul(st.n))
		pts = append(pts, at)
	}
	if at != pts[0] {
		pts = append(pts, pts[0])
	}
	return aoc.PolygonBoundedPoints(pts)
}

/*
want=62

R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
*/
func (s solver) D18p1() any {
	var steps []digStep
	s.ForLines(func(line string) {
		f := strings.Fields(line)
		if len(f) < 2 {
			return
		}
		steps = append(steps, digStep{dir: digDirs[f[0]], n: aoc.Int(f[1])})
	})
	return lagoon(steps)
}

// want=952408144115
func (s solver) D18p2() any {
	var steps []digStep
	s.ForLines(func(line string) {
		f := strings.Fields(line)
		if len(f) < 3 {
			return
		}
		code := strings.Trim(f[2], "(#)")
		steps = append(steps, digStep{
			dir: hexDirs[aoc.Digit(rune(code[5]))],
			n:   int(aoc.MustGet(strconv.ParseInt(code[:5], 16, 64))),
		})
	})
	return lagoon(steps)
}

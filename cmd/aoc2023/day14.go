package main

import (
	"bytes"

	"github.com/maisem/aoc2023"
	"tailscale.com/util/deephash"
)

// tiltNorth rolls every round rock in g as far up as it goes.
func tiltNorth(g aoc.Grid[byte]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		slot := 0
		for y := 0; y < size.Y; y++ {
			switch g[y][x] {
			case '#':
				slot = y + 1
			case 'O':
				g[y][x] = '.'
				g[slot][x] = 'O'
				slot++
			}
		}
	}
}

// spin tilts north, west, south then east.
func spin(g aoc.Grid[byte]) aoc.Grid[byte] {
	for range 4 {
		tiltNorth(g)
		g = g.RotateClockwise()
	}
	return g
}

func northLoad(g aoc.Grid[byte]) int {
	load := 0
	for y, row := range g {
		load += bytes.Count(row, []byte{'O'}) * (len(g) - y)
	}
	return load
}

/*
want=136

O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
*/
func (s solver) D14p1() any {
	g := s.Grid()
	tiltNorth(g)
	return northLoad(g)
}

// want=64
func (s solver) D14p2() any {
	const spins = 1_000_000_000
	g := s.Grid()
	seen := map[deephash.Sum]int{}
	var loads []int
	for i := 0; ; i++ {
		h := g.Hash()
		if j, ok := seen[h]; ok {
			s.Debugf("cycle of %d after %d spins", i-j, j)
			return loads[j+(spins-j)%(i-j)]
		}
		seen[h] = i
		loads = append(loads, northLoad(g))
		if i == spins {
			return loads[i]
		}
		g = spin(g)
	}
}

package main

import (
	"bytes"

	"github.com/maisem/aoc2023"
)

// expandedOffsets maps each row of g to its position once every row without
// a galaxy has been widened to factor rows.
func expandedOffsets(g aoc.Grid[byte], factor int) []int {
	out := make([]int, len(g))
	at := 0
	for y, row := range g {
		out[y] = at
		if bytes.IndexByte(row, '#') == -1 {
			at += factor
		} else {
			at++
		}
	}
	return out
}

// galaxyDistances returns the sum of the manhattan distances between every
// pair of galaxies after expanding empty rows and columns by factor.
func galaxyDistances(g aoc.Grid[byte], factor int) int {
	rows := expandedOffsets(g, factor)
	cols := expandedOffsets(g.Transpose(), factor)
	var galaxies []aoc.Pt
	for y, row := range g {
		for x, v := range row {
			if v == '#' {
				galaxies = append(galaxies, aoc.Pt{X: cols[x], Y: rows[y]})
			}
		}
	}
	sum := 0
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			sum += a.MDist(b)
		}
	}
	return sum
}

/*
want=374

...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
*/
func (s solver) D11p1() any {
	return galaxyDistances(s.Grid(), 2)
}

// want=82000210
func (s solver) D11p2() any {
	return galaxyDistances(s.Grid(), 1_000_000)
}

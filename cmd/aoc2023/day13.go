package main

import "github.com/maisem/aoc2023"

// mirrorRow returns the number of rows above the horizontal line of
// reflection in g whose two halves differ in exactly smudges cells, or 0
// if there is none.
func mirrorRow(g aoc.Grid[byte], smudges int) int {
	for y := 1; y < len(g); y++ {
		diff := 0
		for a, b := y-1, y; a >= 0 && b < len(g) && diff <= smudges; a, b = a-1, b+1 {
			for x := range g[a] {
				if g[a][x] != g[b][x] {
					diff++
				}
			}
		}
		if diff == smudges {
			return y
		}
	}
	return 0
}

func (s solver) summarizeMirrors(smudges int) int {
	total := 0
	for _, b := range s.Blocks() {
		g := aoc.ParseGrid(b)
		if y := mirrorRow(g, smudges); y > 0 {
			total += 100 * y
			continue
		}
		total += mirrorRow(g.Transpose(), smudges)
	}
	return total
}

/*
want=405

#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..###
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#
*/
func (s solver) D13p1() any {
	return s.summarizeMirrors(0)
}

// want=400
func (s solver) D13p2() any {
	return s.summarizeMirrors(1)
}

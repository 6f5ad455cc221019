package main

import (
	"github.com/maisem/aoc2023"
)

type partNumber struct {
	n       int
	symbols []aoc.Pt // adjacent symbols
}

func isSymbol(b byte) bool {
	return b != '.' && (b < '0' || b > '9')
}

// partNumbers returns every number in the schematic along with the symbols
// touching it, diagonals included.
func partNumbers(g aoc.Grid[byte]) []partNumber {
	var out []partNumber
	for y, row := range g {
		for x := 0; x < len(row); x++ {
			if row[x] < '0' || row[x] > '9' {
				continue
			}
			var pn partNumber
			seen := map[aoc.Pt]bool{}
			for ; x < len(row) && row[x] >= '0' && row[x] <= '9'; x++ {
				pn.n = pn.n*10 + aoc.Digit(rune(row[x]))
				aoc.Pt{X: x, Y: y}.ForNeighbors(func(p aoc.Pt) bool {
					if v, ok := g.AtOk(p); ok && isSymbol(v) && !seen[p] {
						seen[p] = true
						pn.symbols = append(pn.symbols, p)
					}
					return true
				})
			}
			out = append(out, pn)
		}
	}
	return out
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	sum := 0
	for _, pn := range partNumbers(s.Grid()) {
		if len(pn.symbols) > 0 {
			sum += pn.n
		}
	}
	return sum
}

// want=467835
func (s solver) D3p2() any {
	g := s.Grid()
	gears := map[aoc.Pt][]int{}
	for _, pn := range partNumbers(g) {
		for _, p := range pn.symbols {
			if g.At(p) == '*' {
				gears[p] = append(gears[p], pn.n)
			}
		}
	}
	sum := 0
	for _, nums := range gears {
		if len(nums) == 2 {
			sum += aoc.Product(nums...)
		}
	}
	return sum
}

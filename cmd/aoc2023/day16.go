package main

import "github.com/maisem/aoc2023"

var (
	slashMirror = map[aoc.Direction]aoc.Direction{
		aoc.Right: aoc.Up,
		aoc.Up:    aoc.Right,
		aoc.Left:  aoc.Down,
		aoc.Down:  aoc.Left,
	}
	backslashMirror = map[aoc.Direction]aoc.Direction{
		aoc.Right: aoc.Down,
		aoc.Down:  aoc.Right,
		aoc.Left:  aoc.Up,
		aoc.Up:    aoc.Left,
	}
)

// bounce returns the directions a beam heading in d leaves tile v.
func bounce(v byte, d aoc.Direction) []aoc.Direction {
	switch v {
	case '/':
		return []aoc.Direction{slashMirror[d]}
	case '\\':
		return []aoc.Direction{backslashMirror[d]}
	case '|':
		if d == aoc.Left || d == aoc.Right {
			return []aoc.Direction{aoc.Up, aoc.Down}
		}
	case '-':
		if d == aoc.Up || d == aoc.Down {
			return []aoc.Direction{aoc.Left, aoc.Right}
		}
	}
	return []aoc.Direction{d}
}

// energized returns how many tiles a beam entering at start passes through.
func energized(g aoc.Grid[byte], start aoc.Path) int {
	seen := map[aoc.Path]bool{}
	tiles := map[aoc.Pt]bool{}
	var beams aoc.Stack[aoc.Path]
	beams.Push(start)
	beams.While(func(b aoc.Path) bool {
		v, ok := g.AtOk(b.Pt)
		if !ok || seen[b] {
			return true
		}
		seen[b] = true
		tiles[b.Pt] = true
		for _, d := range bounce(v, b.Dir) {
			if next, ok := g.Move(aoc.Path{Pt: b.Pt, Dir: d}); ok {
				beams.Push(next)
			}
		}
		return true
	})
	return len(tiles)
}

/*
want=46

.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
*/
func (s solver) D16p1() any {
	return energized(s.Grid(), aoc.Path{Pt: aoc.Pt{}, Dir: aoc.Right})
}

// want=51
func (s solver) D16p2() any {
	g := s.Grid()
	return aoc.ParallelMapFold(g.EdgePaths(), func(p aoc.Path) int {
		return energized(g, p)
	}, func(best, n int) int { return max(best, n) }, 0)
}

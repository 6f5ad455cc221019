package main

import (
	"cmp"
	"slices"
	"strings"

	"github.com/maisem/aoc2023"
)

type brick struct {
	lo, hi [3]int
}

// settledBricks drops the bricks as far as they will fall and returns,
// for each brick in the order they came to rest, the indexes of the
// bricks directly below it that hold it up.
func (s solver) settledBricks() [][]int {
	var bricks []brick
	s.ForLines(func(line string) {
		a, b, ok := strings.Cut(line, "~")
		if !ok {
			return
		}
		var br brick
		copy(br.lo[:], aoc.Fields(a, ','))
		copy(br.hi[:], aoc.Fields(b, ','))
		for i := range 3 {
			br.lo[i], br.hi[i] = min(br.lo[i], br.hi[i]), max(br.lo[i], br.hi[i])
		}
		bricks = append(bricks, br)
	})
	slices.SortFunc(bricks, func(a, b brick) int { return cmp.Compare(a.lo[2], b.lo[2]) })

	type top struct {
		z, id int
	}
	heights := map[aoc.Pt]top{}
	supports := make([][]int, len(bricks))
	for id, br := range bricks {
		var footprint []aoc.Pt
		rest := 0
		for x := br.lo[0]; x <= br.hi[0]; x++ {
			for y := br.lo[1]; y <= br.hi[1]; y++ {
				p := aoc.Pt{X: x, Y: y}
				footprint = append(footprint, p)
				rest = max(rest, heights[p].z)
			}
		}
		for _, p := range footprint {
			if t, ok := heights[p]; ok && t.z == rest && !slices.Contains(supports[id], t.id) {
				supports[id] = append(supports[id], t.id)
			}
		}
		h := rest + 1 + br.hi[2] - br.lo[2]
		for _, p := range footprint {
			heights[p] = top{z: h, id: id}
		}
	}
	return supports
}

/*
want=5

1,0,1~1,2,1
0,0,2~2,0,2
0,2,3~2,2,3
0,0,4~0,2,4
2,0,5~2,2,5
0,1,6~2,1,6
1,1,8~1,1,9
*/
func (s solver) D22p1() any {
	supports := s.settledBricks()
	critical := map[int]bool{}
	for _, sup := range supports {
		if len(sup) == 1 {
			critical[sup[0]] = true
		}
	}
	return len(supports) - len(critical)
}

// want=7
func (s solver) D22p2() any {
	supports := s.settledBricks()
	total := 0
	for i := range supports {
		fallen := map[int]bool{i: true}
		// Supports always come to rest earlier, so one pass suffices.
		for j := i + 1; j < len(supports); j++ {
			sup := supports[j]
			if len(sup) > 0 && !slices.ContainsFunc(sup, func(k int) bool { return !fallen[k] }) {
				fallen[j] = true
			}
		}
		total += len(fallen) - 1
	}
	return total
}

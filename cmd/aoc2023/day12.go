package main

import (
	"strings"

	"github.com/maisem/aoc2023"
)

type springRow struct {
	springs string
	groups  []int
}

func (s solver) springRows(copies int) []springRow {
	var rows []springRow
	s.ForLines(func(line string) {
		springs, groups, ok := strings.Cut(line, " ")
		if !ok {
			return
		}
		r := springRow{
			springs: strings.Repeat("?"+springs, copies)[1:],
			groups:  aoc.Fields(strings.Repeat(","+groups, copies), ','),
		}
		rows = append(rows, r)
	})
	return rows
}

// arrangements returns the number of ways the unknown springs can be set
// so that the runs of damaged springs match the groups.
func (r springRow) arrangements() int {
	type key struct{ i, g int }
	memo := map[key]int{}
	var count func(i, g int) int
	count = func(i, g int) int {
		if i >= len(r.springs) {
			if g == len(r.groups) {
				return 1
			}
			return 0
		}
		k := key{i, g}
		if n, ok := memo[k]; ok {
			return n
		}
		n := 0
		c := r.springs[i]
		if c != '#' {
			n += count(i+1, g)
		}
		if c != '.' && g < len(r.groups) {
			end := i + r.groups[g]
			if end <= len(r.springs) &&
				!strings.Contains(r.springs[i:end], ".") &&
				(end == len(r.springs) || r.springs[end] != '#') {
				n += count(end+1, g+1)
			}
		}
		memo[k] = n
		return n
	}
	return count(0, 0)
}

func (s solver) totalArrangements(copies int) int {
	return aoc.ParallelMapFold(s.springRows(copies), springRow.arrangements, func(sum, n int) int {
		return sum + n
	}, 0)
}

/*
want=21

???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
*/
func (s solver) D12p1() any {
	return s.totalArrangements(1)
}

// want=525152
func (s solver) D12p2() any {
	return s.totalArrangements(5)
}

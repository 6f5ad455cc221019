package main

import (
	"slices"

	"github.com/maisem/aoc2023"
)

// span is the half-open interval [lo, hi).
type span struct {
	lo, hi int
}

type mapRule struct {
	dst, src, n int
}

// almanacMap is one "x-to-y map" section of the almanac.
type almanacMap []mapRule

// convert maps every number in spans, splitting spans that straddle rule
// boundaries. Numbers no rule covers keep their value.
func (m almanacMap) convert(spans []span) []span {
	var out []span
	pending := spans
	for _, r := range m {
		var rest []span
		for _, sp := range pending {
			lo, hi := max(sp.lo, r.src), min(sp.hi, r.src+r.n)
			if lo >= hi {
				rest = append(rest, sp)
				continue
			}
			shift := r.dst - r.src
			out = append(out, span{lo + shift, hi + shift})
			if sp.lo < lo {
				rest = append(rest, span{sp.lo, lo})
			}
			if hi < sp.hi {
				rest = append(rest, span{hi, sp.hi})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

type almanac struct {
	seeds []int
	maps  []almanacMap
}

func (s solver) almanac() almanac {
	blocks := s.Blocks()
	a := almanac{seeds: aoc.Fields(aoc.TrimPrefix(blocks[0][0], "seeds:"))}
	for _, b := range blocks[1:] {
		var m almanacMap
		for _, line := range b[1:] {
			f := aoc.Fields(line)
			m = append(m, mapRule{dst: f[0], src: f[1], n: f[2]})
		}
		a.maps = append(a.maps, m)
	}
	return a
}

// lowestLocation returns the lowest location any seed in spans ends up at.
func (a almanac) lowestLocation(spans []span) int {
	for _, m := range a.maps {
		spans = m.convert(spans)
	}
	return slices.MinFunc(spans, func(a, b span) int { return a.lo - b.lo }).lo
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	a := s.almanac()
	var spans []span
	for _, seed := range a.seeds {
		spans = append(spans, span{seed, seed + 1})
	}
	return a.lowestLocation(spans)
}

// want=46
func (s solver) D5p2() any {
	a := s.almanac()
	var spans []span
	for i := 0; i+1 < len(a.seeds); i += 2 {
		spans = append(spans, span{a.seeds[i], a.seeds[i] + a.seeds[i+1]})
	}
	return a.lowestLocation(spans)
}

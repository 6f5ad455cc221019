package main

import (
	"math"
	"strings"

	"github.com/maisem/aoc2023"
)

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() any {
	lines := s.Lines()
	times := aoc.Ints(strings.Fields(aoc.TrimPrefix(lines[0], "Time:"))...)
	dists := aoc.Ints(strings.Fields(aoc.TrimPrefix(lines[1], "Distance:"))...)
	prod := 1
	for i, t := range times {
		prod *= waysToWin(t, dists[i])
	}
	return prod
}

// want=71503
func (s solver) D6p2() any {
	lines := s.Lines()
	t := aoc.Int(strings.ReplaceAll(aoc.TrimPrefix(lines[0], "Time:"), " ", ""))
	d := aoc.Int(strings.ReplaceAll(aoc.TrimPrefix(lines[1], "Distance:"), " ", ""))
	return waysToWin(t, d)
}

// waysToWin returns the number of whole hold times h for which the boat
// travels h*(t-h) > record.
func waysToWin(t, record int) int {
	hi, lo := aoc.SolveQuad(1, -t, record)
	first := int(math.Floor(lo)) + 1
	last := int(math.Ceil(hi)) - 1
	// Guard against the roots landing a hair off an integer.
	for first > 0 && (first-1)*(t-first+1) > record {
		first--
	}
	for last < t && (last+1)*(t-last-1) > record {
		last++
	}
	for first*(t-first) <= record && first <= last {
		first++
	}
	for last*(t-last) <= record && last >= first {
		last--
	}
	if last < first {
		return 0
	}
	return last - first + 1
}

package main

import (
	"slices"
	"strings"

	"github.com/maisem/aoc2023"
)

// scratchcards returns how many winning numbers each card holds.
func (s solver) scratchcards() []int {
	var matches []int
	s.ForLines(func(line string) {
		_, numbers, ok := strings.Cut(line, ":")
		if !ok {
			return
		}
		winning, have, _ := strings.Cut(numbers, "|")
		w := aoc.Fields(winning)
		n := 0
		for _, v := range aoc.Fields(have) {
			if slices.Contains(w, v) {
				n++
			}
		}
		matches = append(matches, n)
	})
	return matches
}

/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func (s solver) D4p1() any {
	points := 0
	for _, n := range s.scratchcards() {
		if n > 0 {
			points += 1 << (n - 1)
		}
	}
	return points
}

// want=30
func (s solver) D4p2() any {
	matches := s.scratchcards()
	copies := make([]int, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	for i, n := range matches {
		for j := i + 1; j <= i+n && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}
	return aoc.Sum(copies...)
}

package main

import (
	"cmp"
	"slices"
	"strings"

	"github.com/maisem/aoc2023"
)

type camelHand struct {
	cards string
	bid   int
}

// handKind ranks the hand type, from 0 for high card to 6 for five of a
// kind. Jokers, when enabled, join whichever group makes the hand best.
func handKind(cards string, jokers bool) int {
	counts := map[rune]int{}
	for _, c := range cards {
		counts[c]++
	}
	wild := 0
	if jokers {
		wild = counts['J']
		delete(counts, 'J')
	}
	groups := []int{0}
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	groups[0] += wild
	switch {
	case groups[0] == 5:
		return 6
	case groups[0] == 4:
		return 5
	case groups[0] == 3 && groups[1] == 2:
		return 4
	case groups[0] == 3:
		return 3
	case groups[0] == 2 && groups[1] == 2:
		return 2
	case groups[0] == 2:
		return 1
	}
	return 0
}

func (s solver) winnings(jokers bool) int {
	order := "23456789TJQKA"
	if jokers {
		order = "J23456789TQKA"
	}
	var hands []camelHand
	s.ForLines(func(line string) {
		cards, bid, ok := strings.Cut(line, " ")
		if ok {
			hands = append(hands, camelHand{cards: cards, bid: aoc.Int(bid)})
		}
	})
	slices.SortFunc(hands, func(a, b camelHand) int {
		if c := cmp.Compare(handKind(a.cards, jokers), handKind(b.cards, jokers)); c != 0 {
			return c
		}
		for i := range a.cards {
			if c := cmp.Compare(strings.IndexByte(order, a.cards[i]), strings.IndexByte(order, b.cards[i])); c != 0 {
				return c
			}
		}
		return 0
	})
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return total
}

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s solver) D7p1() any {
	return s.winnings(false)
}

// want=5905
func (s solver) D7p2() any {
	return s.winnings(true)
}

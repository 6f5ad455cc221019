package main

import (
	"strings"

	"github.com/maisem/aoc2023"
)

type network struct {
	turns string
	nodes map[string][2]string
}

func (s solver) network() network {
	lines := s.Lines()
	n := network{
		turns: strings.TrimSpace(lines[0]),
		nodes: map[string][2]string{},
	}
	for _, l := range lines[1:] {
		if l == "" {
			continue
		}
		name, rest, ok := strings.Cut(l, " = ")
		if !ok {
			continue
		}
		left, right, _ := strings.Cut(strings.Trim(rest, "()"), ", ")
		n.nodes[name] = [2]string{left, right}
	}
	return n
}

// steps walks from start until done, returning the number of steps taken.
func (n network) steps(start string, done func(string) bool) int {
	at := start
	for i := 0; ; i++ {
		if done(at) {
			return i
		}
		side := 0
		if n.turns[i%len(n.turns)] == 'R' {
			side = 1
		}
		at = n.nodes[at][side]
	}
}

/*
want=2

RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
*/
func (s solver) D8p1() any {
	return s.network().steps("AAA", func(node string) bool { return node == "ZZZ" })
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (s solver) D8p2() any {
	n := s.network()
	var starts []string
	for k := range n.nodes {
		if strings.HasSuffix(k, "A") {
			starts = append(starts, k)
		}
	}
	// Every ghost loops back to its start's cycle with a period equal to
	// the distance to its first Z, so they meet at the LCM.
	cycles := aoc.Parallel(starts, func(start string) int {
		return n.steps(start, func(node string) bool { return strings.HasSuffix(node, "Z") })
	})
	s.Debug("cycles:", cycles)
	return aoc.LCM(cycles...)
}

package main

import (
	"slices"
	"strings"

	"github.com/maisem/aoc2023"
)

func holidayHash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

func (s solver) initSequence() []string {
	return strings.Split(strings.TrimSpace(strings.Join(s.Lines(), "")), ",")
}

type lens struct {
	label string
	focal int
}

/*
want=1320

rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7
*/
func (s solver) D15p1() any {
	total := 0
	for _, step := range s.initSequence() {
		total += holidayHash(step)
	}
	return total
}

// want=145
func (s solver) D15p2() any {
	var boxes [256][]lens
	for _, step := range s.initSequence() {
		label, focal, set := strings.Cut(step, "=")
		if !set {
			label = strings.TrimSuffix(step, "-")
		}
		b := &boxes[holidayHash(label)]
		i := slices.IndexFunc(*b, func(l lens) bool { return l.label == label })
		switch {
		case !set && i >= 0:
			*b = slices.Delete(*b, i, i+1)
		case set && i >= 0:
			(*b)[i].focal = aoc.Int(focal)
		case set:
			*b = append(*b, lens{label, aoc.Int(focal)})
		}
	}
	power := 0
	for bi, b := range boxes {
		for si, l := range b {
			power += (bi + 1) * (si + 1) * l.focal
		}
	}
	return power
}

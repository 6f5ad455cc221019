package main

import (
	"slices"
	"strings"

	"github.com/maisem/aoc2023"
)

type pulse struct {
	from, to string
	high     bool
}

type module struct {
	kind    byte // '%' flip-flop, '&' conjunction, 'b' broadcaster
	outputs []string
	on      bool
	memory  map[string]bool
}

type machine map[string]*module

func (s solver) machine() machine {
	m := machine{}
	s.ForLines(func(line string) {
		name, outs, ok := strings.Cut(line, " -> ")
		if !ok {
			return
		}
		mod := &module{kind: name[0], outputs: strings.Split(outs, ", ")}
		if mod.kind == '%' || mod.kind == '&' {
			name = name[1:]
		}
		m[name] = mod
	})
	for name, mod := range m {
		for _, o := range mod.outputs {
			if t, ok := m[o]; ok && t.kind == '&' {
				aoc.InitMap(&t.memory)
				t.memory[name] = false
			}
		}
	}
	return m
}

// press pushes the button once, calling observe with every pulse as it is
// delivered. Pulses to unknown modules are delivered and then dropped.
func (m machine) press(observe func(pulse)) {
	q := aoc.NewQueue(pulse{from: "button", to: "broadcaster"})
	q.While(func(p pulse) bool {
		observe(p)
		mod, ok := m[p.to]
		if !ok {
			return true
		}
		var high bool
		switch mod.kind {
		case '%':
			if p.high {
				return true
			}
			mod.on = !mod.on
			high = mod.on
		case '&':
			mod.memory[p.from] = p.high
			for _, h := range mod.memory {
				if !h {
					high = true
					break
				}
			}
		default:
			high = p.high
		}
		for _, o := range mod.outputs {
			q.Push(pulse{from: p.to, to: o, high: high})
		}
		return true
	})
}

/*
want=32000000

broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
*/
func (s solver) D20p1() any {
	m := s.machine()
	var low, high int
	for range 1000 {
		m.press(func(p pulse) {
			if p.high {
				high++
			} else {
				low++
			}
		})
	}
	return low * high
}

/*
want=4

broadcaster -> a, b
%a -> ia
%b -> b2
%b2 -> ib
&ia -> hub
&ib -> hub
&hub -> rx
*/
func (s solver) D20p2() any {
	m := s.machine()
	// rx is fed by a single conjunction, which sends it a low pulse once
	// all of its inputs last sent high. Each input does so on a fixed
	// cycle.
	var hub string
	for name, mod := range m {
		if slices.Contains(mod.outputs, "rx") {
			hub = name
		}
	}
	if hub == "" || m[hub].kind != '&' {
		panic("rx is not fed by a conjunction")
	}
	first := map[string]int{}
	for presses := 1; len(first) < len(m[hub].memory); presses++ {
		m.press(func(p pulse) {
			if p.to == hub && p.high {
				if _, ok := first[p.from]; !ok {
					first[p.from] = presses
				}
			}
		})
	}
	s.Debug("cycles:", first)
	var cycles []int
	for _, n := range first {
		cycles = append(cycles, n)
	}
	return aoc.LCM(cycles...)
}

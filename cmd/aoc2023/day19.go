package main

import (
	"strings"

	"github.com/maisem/aoc2023"
)

const ratingNames = "xmas"

type partRule struct {
	rating int // index into ratingNames, or -1 for the fallback rule
	less   bool
	n      int
	to     string
}

type workflows map[string][]partRule

type part [4]int

func (s solver) workflows() (workflows, []part) {
	blocks := s.Blocks()
	wf := workflows{}
	for _, line := range blocks[0] {
		name, body, _ := strings.Cut(strings.TrimSuffix(line, "}"), "{")
		var rules []partRule
		for _, r := range strings.Split(body, ",") {
			cond, to, ok := strings.Cut(r, ":")
			if !ok {
				rules = append(rules, partRule{rating: -1, to: r})
				continue
			}
			rules = append(rules, partRule{
				rating: strings.IndexByte(ratingNames, cond[0]),
				less:   cond[1] == '<',
				n:      aoc.Int(cond[2:]),
				to:     to,
			})
		}
		wf[name] = rules
	}
	var parts []part
	if len(blocks) > 1 {
		for _, line := range blocks[1] {
			var p part
			for _, kv := range strings.Split(strings.Trim(line, "{}"), ",") {
				k, v, _ := strings.Cut(kv, "=")
				p[strings.Index(ratingNames, k)] = aoc.Int(v)
			}
			parts = append(parts, p)
		}
	}
	return wf, parts
}

func (r partRule) matches(p part) bool {
	switch {
	case r.rating < 0:
		return true
	case r.less:
		return p[r.rating] < r.n
	}
	return p[r.rating] > r.n
}

func (wf workflows) accepts(p part) bool {
	at := "in"
	for at != "A" && at != "R" {
		for _, r := range wf[at] {
			if r.matches(p) {
				at = r.to
				break
			}
		}
	}
	return at == "A"
}

// split divides sp into the values that satisfy r and those that don't.
// Either may be empty.
func (r partRule) split(sp span) (in, out span) {
	if r.less {
		cut := min(max(r.n, sp.lo), sp.hi)
		return span{sp.lo, cut}, span{cut, sp.hi}
	}
	cut := min(max(r.n+1, sp.lo), sp.hi)
	return span{cut, sp.hi}, span{sp.lo, cut}
}

// accepted returns how many rating combinations within box end up
// accepted when starting at workflow at.
func (wf workflows) accepted(at string, box [4]span) int {
	switch at {
	case "R":
		return 0
	case "A":
		n := 1
		for _, sp := range box {
			n *= sp.hi - sp.lo
		}
		return n
	}
	total := 0
	for _, r := range wf[at] {
		if r.rating < 0 {
			total += wf.accepted(r.to, box)
			break
		}
		in, out := r.split(box[r.rating])
		if in.lo < in.hi {
			next := box
			next[r.rating] = in
			total += wf.accepted(r.to, next)
		}
		if out.lo >= out.hi {
			break
		}
		box[r.rating] = out
	}
	return total
}

/*
want=19114

px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}
*/
func (s solver) D19p1() any {
	wf, parts := s.workflows()
	total := 0
	for _, p := range parts {
		if wf.accepts(p) {
			total += aoc.Sum(p[:]...)
		}
	}
	return total
}

// want=167409079868000
func (s solver) D19p2() any {
	wf, _ := s.workflows()
	full := span{1, 4001}
	return wf.accepted("in", [4]span{full, full, full, full})
}

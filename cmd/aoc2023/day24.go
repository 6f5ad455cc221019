package main

import (
	"math/big"

	"github.com/maisem/aoc2023"
)

type vec3 [3]int

func (a vec3) sub(b vec3) vec3 {
	return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a vec3) cross(b vec3) vec3 {
	return vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

type hailstone struct {
	p, v vec3
}

func (s solver) hailstones() []hailstone {
	var out []hailstone
	s.ForLines(func(line string) {
		f := aoc.Fields(line, ',', '@')
		if len(f) != 6 {
			return
		}
		out = append(out, hailstone{p: vec3{f[0], f[1], f[2]}, v: vec3{f[3], f[4], f[5]}})
	})
	return out
}

// crossInArea reports whether the paths of a and b, ignoring the Z axis,
// cross in the future of both within the square [lo, hi] on X and Y.
func crossInArea(a, b hailstone, lo, hi float64) bool {
	den := b.v[0]*a.v[1] - a.v[0]*b.v[1]
	if den == 0 {
		return false // parallel
	}
	d := b.p.sub(a.p)
	t := float64(b.v[0]*d[1]-b.v[1]*d[0]) / float64(den)
	u := float64(a.v[0]*d[1]-a.v[1]*d[0]) / float64(den)
	if t <= 0 || u <= 0 {
		return false
	}
	x := float64(a.p[0]) + float64(a.v[0])*t
	y := float64(a.p[1]) + float64(a.v[1])*t
	return lo <= x && x <= hi && lo <= y && y <= hi
}

// solveLinear solves the augmented system m in place by Gauss-Jordan
// elimination. It reports false if the system has no single solution.
func solveLinear(m [][]*big.Rat) ([]*big.Rat, bool) {
	n := len(m)
	for col := range n {
		pivot := -1
		for r := col; r < n; r++ {
			if m[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, false
		}
		m[col], m[pivot] = m[pivot], m[col]
		inv := new(big.Rat).Inv(m[col][col])
		for c := col; c <= n; c++ {
			m[col][c].Mul(m[col][c], inv)
		}
		for r := range n {
			if r == col || m[r][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(m[r][col])
			for c := col; c <= n; c++ {
				m[r][c].Sub(m[r][c], new(big.Rat).Mul(f, m[col][c]))
			}
		}
	}
	out := make([]*big.Rat, n)
	for i := range n {
		out[i] = m[i][n]
	}
	return out, true
}

// rockEquations returns the three rows, over the rock's position and
// velocity, that follow from the rock hitting both a and b.
//
// The rock at P moving at V hits a when (P - a.p) × (V - a.v) = 0.
// Subtracting the same for b cancels the P × V term:
//
//	P × (b.v - a.v) + (b.p - a.p) × V = b.p × b.v - a.p × a.v
func rockEquations(a, b hailstone) [][]*big.Rat {
	w, u := b.v.sub(a.v), b.p.sub(a.p)
	rhs := b.p.cross(b.v).sub(a.p.cross(a.v))
	rows := [][]int{
		{0, w[2], -w[1], 0, -u[2], u[1], rhs[0]},
		{-w[2], 0, w[0], u[2], 0, -u[0], rhs[1]},
		{w[1], -w[0], 0, -u[1], u[0], 0, rhs[2]},
	}
	out := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		out[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			out[i][j] = new(big.Rat).SetInt64(int64(v))
		}
	}
	return out
}

/*
want=2

19, 13, 30 @ -2,  1, -2
18, 19, 22 @ -1, -1, -2
20, 25, 34 @ -2, -2, -4
12, 31, 28 @ -1, -2, -1
20, 19, 15 @  1, -5, -3
*/
func (s solver) D24p1() any {
	lo, hi := 200000000000000.0, 400000000000000.0
	if s.SampleMode {
		lo, hi = 7, 27
	}
	hs := s.hailstones()
	n := 0
	for i, a := range hs {
		for _, b := range hs[i+1:] {
			if crossInArea(a, b, lo, hi) {
				n++
			}
		}
	}
	return n
}

// want=47
func (s solver) D24p2() any {
	hs := s.hailstones()
	for k := 2; k < len(hs); k++ {
		m := append(rockEquations(hs[0], hs[1]), rockEquations(hs[0], hs[k])...)
		x, ok := solveLinear(m)
		if !ok {
			continue
		}
		sum := new(big.Rat).Add(x[0], x[1])
		sum.Add(sum, x[2])
		if !sum.IsInt() {
			panic("rock position is not whole: " + sum.String())
		}
		return sum.Num().Int64()
	}
	panic("no independent hailstones")
}

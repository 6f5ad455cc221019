package aoc

import (
	"log"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		log.Fatalf("not a digit: %q", r)
	}
	return int(r - '0')
}

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	out := make([]int, 0, len(line))
	for _, c := range line {
		out = append(out, Digit(c))
	}
	return out
}

// Int returns the int value of the string, ignoring surrounding space.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = Int(v)
	}
	return out
}

// Fields returns the ints in s, which are separated by spaces or any of
// the runes in seps.
func Fields(s string, seps ...rune) []int {
	return Ints(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || strings.ContainsRune(string(seps), r)
	})...)
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, or 1 if there are none.
func Product[T Number](nums ...T) T {
	p := T(1)
	for _, v := range nums {
		p *= v
	}
	return p
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	if x < y {
		return y - x
	}
	return x - y
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of the integers. It panics if
// there are none.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	l := integers[0]
	for _, n := range integers[1:] {
		l = l / GCD(l, n) * n
	}
	return l
}

// SolveQuad returns the roots of ax^2 + bx + c = 0, the larger first when a
// is positive.
func SolveQuad[T Number](a, b, c T) (float64, float64) {
	d := float64(b*b - 4*a*c)
	if d < 0 {
		log.Fatalf("no real roots")
	}
	d = math.Sqrt(d)
	a2 := float64(2 * a)
	return (-float64(b) + d) / a2, (-float64(b) - d) / a2
}

// differences returns the first element of each row of the difference
// table of x: x[0], Δx[0], Δ²x[0], ... down to the first all-zero row.
func differences[T Number](x []T) []T {
	var heads []T
	row := x
	for len(row) > 0 {
		heads = append(heads, row[0])
		next := make([]T, len(row)-1)
		zero := true
		for i := range next {
			next[i] = row[i+1] - row[i]
			if next[i] != 0 {
				zero = false
			}
		}
		if zero {
			break
		}
		row = next
	}
	return heads
}

// ExtrapolateAt evaluates, at index n, the lowest degree polynomial that
// passes through x at indexes 0 to len(x)-1. n may lie outside that range,
// including below zero.
func ExtrapolateAt[T Number](x []T, n int) T {
	// Newton's forward difference formula: f(n) = Σ C(n, k) Δᵏf(0).
	var y T
	c := 1 // C(n, k)
	for k, d := range differences(x) {
		y += T(c) * d
		c = c * (n - k) / (k + 1)
	}
	return y
}

// Extrapolate returns the value following x in the sequence if forward is
// true, or the one preceding it otherwise.
func Extrapolate[T Number](x []T, forward bool) T {
	if forward {
		return ExtrapolateAt(x, len(x))
	}
	return ExtrapolateAt(x, -1)
}

// PolygonArea returns the area of the polygon defined by the points, using
// the shoelace formula. The first point must be repeated at the end.
func PolygonArea(pts []Pt) int {
	var twice int
	for i := range len(pts) - 1 {
		a, b := pts[i], pts[i+1]
		twice += a.X*b.Y - a.Y*b.X
	}
	return AbsDiff(twice, 0) / 2
}

// PolygonPerimeter returns the perimeter of the polygon defined by the
// points. Consecutive points must share an axis.
func PolygonPerimeter(pts []Pt) int {
	var perimeter int
	for i := range len(pts) - 1 {
		perimeter += pts[i].MDist(pts[i+1])
	}
	return perimeter
}

// Pick's theorem relates a lattice polygon's area A to the points
// strictly inside it (i) and on its boundary (b): A = i + b/2 - 1.

// PolygonBoundedPoints returns the number of points with integer
// coordinates inside or on the polygon defined by the points.
func PolygonBoundedPoints(pts []Pt) int {
	return PolygonInteriorPoints(pts) + PolygonPerimeter(pts)
}

// PolygonInteriorPoints returns the number of points with integer
// coordinates strictly inside the polygon defined by the points.
func PolygonInteriorPoints(pts []Pt) int {
	return PolygonArea(pts) - PolygonPerimeter(pts)/2 + 1
}

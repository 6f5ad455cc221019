package aoc

import (
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

// ParseGrid returns the non-empty lines as a grid of bytes.
func ParseGrid(lines []string) Grid[byte] {
	var g Grid[byte]
	for _, l := range lines {
		if l == "" {
			continue
		}
		g = append(g, []byte(l))
	}
	return g
}

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// In reports whether p is within the bounds of g.
func (g Grid[T]) In(p Pt) bool {
	return len(g) > 0 && p.X >= 0 && p.Y >= 0 && p.X < len(g[0]) && p.Y < len(g)
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// Find returns the first point (in row-major order) whose value satisfies f.
func (g Grid[T]) Find(f func(T) bool) (Pt, bool) {
	for y, row := range g {
		for x, v := range row {
			if f(v) {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.X, size.Y)
	for y := range g {
		copy(out[y], g[y])
	}
	return out
}

var hashers sync.Map // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a hash of the contents of g, suitable for detecting
// repeated states.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[x][y] = g[y][x]
		}
	}
	return out
}

// RotateClockwise returns g rotated a quarter turn clockwise: the left
// column becomes the top row.
func (g Grid[T]) RotateClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[x][size.Y-1-y] = g[y][x]
		}
	}
	return out
}

// RotateCounterClockwise returns g rotated a quarter turn counter
// clockwise: the top row becomes the left column.
func (g Grid[T]) RotateCounterClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[size.X-1-x][y] = g[y][x]
		}
	}
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// EdgePaths returns every path that enters the grid from its border,
// heading inwards.
func (g Grid[T]) EdgePaths() []Path {
	size := g.Size()
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

// ToGraph converts the cells reachable from start into a graph with unit
// edges between adjacent cells, then collapses corridors. If allowDiagonals
// is true, then diagonal neighbors are included. If disallowed is not nil,
// it is additionally called on each cell, and if it returns true, that cell
// is not included in the graph.
func (grid Grid[T]) ToGraph(start Pt, allowDiagonals bool, disallowed func(T) bool) Graph[Pt] {
	var g Graph[Pt]
	fn := Pt.ForImmediateNeighbors
	if allowDiagonals {
		fn = Pt.ForNeighbors
	}

	seen := make(map[Pt]bool)
	q := NewQueue[Pt](start)
	q.While(func(p1 Pt) bool {
		if seen[p1] {
			return true
		}
		seen[p1] = true
		g.AddNode(p1)
		fn(p1, func(p2 Pt) (keepGoing bool) {
			if v, ok := grid.AtOk(p2); !ok || (disallowed != nil && disallowed(v)) {
				return true
			}
			if seen[p2] {
				return true // already visited
			}
			q.Push(p2)
			g.AddEdge(p1, p2, 1)
			return true
		})
		return true
	})
	g.Collapse()
	return g
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one step in its direction. It reports false if that
// leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Step(p.Dir)
	if !g.In(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the unit step for d, with Y growing downwards.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - q.X, p.Y - q.Y}
}

func (p Pt2[T]) Mul(n T) Pt2[T] {
	return Pt2[T]{p.X * n, p.Y * n}
}

// Step returns p moved one unit in direction d.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	delta := d.Delta()
	return Pt2[T]{p.X + T(delta.X), p.Y + T(delta.Y)}
}

// ForImmediateNeighbors calls f with the four orthogonal neighbors of p
// until f returns false.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

// ForNeighbors calls f with the eight neighbors of p until f returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

package aoc

import (
	"slices"
	"testing"
)

func gridOf(rows ...string) Grid[byte] {
	return ParseGrid(rows)
}

func (g Grid[T]) equal(o Grid[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(g, o, func(a, b []T) bool {
		return slices.EqualFunc(a, b, eq)
	})
}

func byteEq(a, b byte) bool { return a == b }

func TestRotate(t *testing.T) {
	g := gridOf(
		"abc",
		"def",
	)
	cw := g.RotateClockwise()
	if want := gridOf("da", "eb", "fc"); !cw.equal(want, byteEq) {
		t.Errorf("RotateClockwise = %q, want %q", cw, want)
	}
	ccw := g.RotateCounterClockwise()
	if want := gridOf("cf", "be", "ad"); !ccw.equal(want, byteEq) {
		t.Errorf("RotateCounterClockwise = %q, want %q", ccw, want)
	}
	if back := cw.RotateCounterClockwise(); !back.equal(g, byteEq) {
		t.Errorf("cw then ccw = %q, want %q", back, g)
	}
	if tr := g.Transpose(); !tr.equal(gridOf("ad", "be", "cf"), byteEq) {
		t.Errorf("Transpose = %q", tr)
	}
}

func TestGridHash(t *testing.T) {
	a := gridOf("#.", ".#")
	b := a.Clone()
	if a.Hash() != b.Hash() {
		t.Fatal("clones hash differently")
	}
	b.Set(Pt{0, 0}, '.')
	if a.Hash() == b.Hash() {
		t.Fatal("different grids hash the same")
	}
	if a.At(Pt{0, 0}) != '#' {
		t.Fatal("Clone shares storage")
	}
}

func TestGridMove(t *testing.T) {
	g := MakeGrid[int](3, 2)
	tests := []struct {
		in   Path
		want Path
		ok   bool
	}{
		{Path{Pt{0, 0}, Right}, Path{Pt{1, 0}, Right}, true},
		{Path{Pt{0, 0}, Down}, Path{Pt{0, 1}, Down}, true},
		{Path{Pt{0, 0}, Up}, Path{}, false},
		{Path{Pt{2, 1}, Right}, Path{}, false},
		{Path{Pt{2, 1}, Left}, Path{Pt{1, 1}, Left}, true},
	}
	for _, tt := range tests {
		got, ok := g.Move(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Move(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if got := len(g.EdgePaths()); got != 2*3+2*2 {
		t.Errorf("len(EdgePaths) = %d, want 10", got)
	}
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		if d.Turn(true).Turn(false) != d {
			t.Errorf("%v: right then left != identity", d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite twice != identity", d)
		}
		if got := d.Delta().Add(d.Opposite().Delta()); got != (Pt{}) {
			t.Errorf("%v: delta + opposite delta = %v", d, got)
		}
	}
	if Up.Turn(true) != Right || Up.Turn(false) != Left || Left.Turn(true) != Up {
		t.Error("bad Turn")
	}
	if got := (Pt{1, 1}).Step(Up); got != (Pt{1, 0}) {
		t.Errorf("Step(Up) = %v", got)
	}
	if got := (Pt{1, 2}).Mul(3).Sub(Pt{1, 1}); got != (Pt{2, 5}) {
		t.Errorf("Mul/Sub = %v", got)
	}
	if got := (Pt{1, 2}).MDist(Pt{-2, 4}); got != 5 {
		t.Errorf("MDist = %d, want 5", got)
	}
}

func TestToGraph(t *testing.T) {
	g := gridOf(
		"#S###",
		"#...#",
		"#.#.#",
		"#...#",
		"###E#",
	)
	start, _ := g.Find(func(b byte) bool { return b == 'S' })
	end, _ := g.Find(func(b byte) bool { return b == 'E' })
	gr := g.ToGraph(start, false, func(b byte) bool { return b == '#' })

	// Both sides of the ring are as long as each other, so everything
	// collapses into a single edge.
	if got := len(gr.Nodes); got != 2 {
		t.Fatalf("got %d nodes, want 2: %v", got, gr.Edges)
	}
	if got := gr.Edges[start][end]; got != 6 {
		t.Errorf("edge S-E = %d, want 6", got)
	}
	if got, ok := gr.LongestPath(start, end); !ok || got != 6 {
		t.Errorf("LongestPath = %d, %v; want 6", got, ok)
	}
	r := gr.ShortestPaths(start)
	if got, ok := r.Dist(end); !ok || got != 6 {
		t.Errorf("ShortestPaths to end = %d, %v; want 6", got, ok)
	}
}

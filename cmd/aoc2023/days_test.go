package main

import (
	"fmt"
	"math/big"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/maisem/aoc2023"
	"golang.org/x/exp/maps"
)

func sampleSolver(input string) solver {
	return solver{aoc.NewSamplePuzzle(strings.TrimLeft(input, "\n"))}
}

const galaxies = `
...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`

func TestGalaxyDistances(t *testing.T) {
	g := aoc.ParseGrid(strings.Split(galaxies, "\n"))
	for _, tc := range []struct {
		factor int
		want   int
	}{
		{2, 374},
		{10, 1030},
		{100, 8410},
	} {
		if got := galaxyDistances(g, tc.factor); got != tc.want {
			t.Errorf("factor %d: got %d; want %d", tc.factor, got, tc.want)
		}
	}
}

func TestCrucibleUnluckyGrid(t *testing.T) {
	s := sampleSolver(`
111111111111
999999999991
999999999991
999999999991
999999999991
`)
	if got := s.D17p2(); got != 71 {
		t.Errorf("D17p2 = %v; want 71", got)
	}
}

func TestCrucibleStraightLine(t *testing.T) {
	// A single row can't be crossed without turning.
	c := crucible{g: aoc.ParseGrid([]string{"11111"}), minRun: 1, maxRun: 3}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an unreachable end")
		}
	}()
	c.minHeatLoss()
}

// The loop from the fork at (1,1) to the fork at (1,4) is 11 steps going
// right and 3 steps going down, but the slope on the top row blocks the
// long way round.
const slopedLoop = `
#.#####
#..<..#
#.###.#
#.###.#
#.....#
#.#####
`

func TestHike(t *testing.T) {
	s := sampleSolver(slopedLoop)
	if got := s.D23p1(); got != 5 {
		t.Errorf("D23p1 = %v; want 5", got)
	}
	if got := s.D23p2(); got != 13 {
		t.Errorf("D23p2 = %v; want 13", got)
	}
}

// Two corridors join the forks at (1,1) and (1,4): 3 steps straight down
// or 11 steps around the right side.
const parallelLoop = `
#.#####
#.....#
#.###.#
#.###.#
#.....#
#.#####
`

func TestHikeTakesLongerCorridor(t *testing.T) {
	s := sampleSolver(parallelLoop)
	if got := s.D23p1(); got != 13 {
		t.Errorf("D23p1 = %v; want 13", got)
	}
	pts, edges := s.trailMap().junctions()
	from := slices.Index(pts, aoc.Pt{X: 1, Y: 1})
	to := slices.Index(pts, aoc.Pt{X: 1, Y: 4})
	if from < 0 || to < 0 {
		t.Fatalf("missing forks: %v", pts)
	}
	var steps []int
	for _, e := range edges[from] {
		if e.to == to {
			steps = append(steps, e.steps)
		}
	}
	if !slices.Equal(steps, []int{11}) {
		t.Errorf("corridors between forks = %v; want [11]", steps)
	}
}

func TestHikeUnreachableEnd(t *testing.T) {
	s := sampleSolver(`
#.#
#^#
#.#
`)
	defer func() {
		if recover() == nil {
			t.Error("expected panic when the end can't be reached")
		}
	}()
	s.D23p1()
}

func TestTrailJunctions(t *testing.T) {
	tm := sampleSolver(slopedLoop).trailMap()
	if tm.start != (aoc.Pt{X: 1, Y: 0}) || tm.end != (aoc.Pt{X: 1, Y: 5}) {
		t.Fatalf("start, end = %v, %v", tm.start, tm.end)
	}
	pts, edges := tm.junctions()
	if len(pts) != 4 {
		t.Fatalf("got %d junctions; want 4: %v", len(pts), pts)
	}
	var total int
	for _, es := range edges {
		total += len(es)
	}
	// start->fork, fork->start, fork->fork (down), the long way back up
	// and over (which replaces the short way up), fork->end and end->fork.
	if total != 6 {
		t.Errorf("got %d corridors; want 6: %v", total, edges)
	}
}

func TestEnergized(t *testing.T) {
	g := aoc.ParseGrid([]string{
		`.\.`,
		`.-.`,
		`...`,
	})
	// Right into the mirror, down into the splitter, then out both sides.
	got := energized(g, aoc.Path{Dir: aoc.Right})
	if got != 5 {
		t.Errorf("energized = %d; want 5", got)
	}
}

func TestSpinRestoresOrientation(t *testing.T) {
	g := aoc.ParseGrid([]string{
		"#..",
		"...",
		"..#",
	})
	got := spin(g.Clone())
	for y := range g {
		if string(got[y]) != string(g[y]) {
			t.Fatalf("spin moved fixed rocks:\n%s", got)
		}
	}
}

func TestPipeLoop(t *testing.T) {
	m := sampleSolver(`
.....
.S-7.
.|.|.
.L-J.
.....
`).pipeMaze()
	if got := m.exits(m.start); fmt.Sprint(got) != "[> v]" {
		t.Errorf("start exits = %v; want [> v]", got)
	}
	if got := len(m.loop()); got != 8 {
		t.Errorf("loop length = %d; want 8", got)
	}
	s := sampleSolver(`
.....
.S-7.
.|.|.
.L-J.
.....
`)
	if got := s.D10p1(); got != 4 {
		t.Errorf("D10p1 = %v; want 4", got)
	}
	if got := s.D10p2(); got != 1 {
		t.Errorf("D10p2 = %v; want 1", got)
	}
}

func TestSamples(t *testing.T) {
	tests := []struct {
		name  string
		input string
		fn    func(solver) any
		want  string
	}{
		{"D1p1", "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n", solver.D1p1, "142"},
		{"D1p2", "two1nine\neightwothree\nabcone2threexyz\nxtwone3four\n4nineeightseven2\nzoneight234\n7pqrstsixteen\n", solver.D1p2, "281"},
		{"D1p2/overlap", "eightwo\n", solver.D1p2, "82"},
		{"D6p1", "Time:      7  15   30\nDistance:  9  40  200\n", solver.D6p1, "288"},
		{"D6p2", "Time:      7  15   30\nDistance:  9  40  200\n", solver.D6p2, "71503"},
		{"D8p1", "LLR\n\nAAA = (BBB, BBB)\nBBB = (AAA, ZZZ)\nZZZ = (ZZZ, ZZZ)\n", solver.D8p1, "6"},
		{"D9p1", "0 3 6 9 12 15\n1 3 6 10 15 21\n10 13 16 21 30 45\n", solver.D9p1, "114"},
		{"D9p2", "0 3 6 9 12 15\n1 3 6 10 15 21\n10 13 16 21 30 45\n", solver.D9p2, "2"},
		{"D20p1/second", "broadcaster -> a\n%a -> inv, con\n&inv -> b\n%b -> con\n&con -> output\n", solver.D20p1, "11687500"},
		{"D18p1/square", "R 2 (#000020)\nD 2 (#000021)\nL 2 (#000022)\nU 2 (#000023)\n", solver.D18p1, "9"},
		{"D18p2/square", "R 2 (#000020)\nD 2 (#000021)\nL 2 (#000022)\nU 2 (#000023)\n", solver.D18p2, "9"},
		{"D25p1", "a: b c d\nb: c d\nc: d\nd: e\ne: f g h\nf: g h\ng: h\n", solver.D25p1, "16"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.fn(sampleSolver(tc.input))
			if fmt.Sprint(got) != tc.want {
				t.Errorf("got %v; want %v", got, tc.want)
			}
		})
	}
}

// TestEmbeddedSamples checks every sample documented on a solver method
// against its expected answer.
func TestEmbeddedSamples(t *testing.T) {
	samples := aoc.Samples(source)
	if len(samples) == 0 {
		t.Fatal("no samples found")
	}
	names := maps.Keys(samples)
	slices.Sort(names)
	for _, name := range names {
		sm := samples[name]
		t.Run(name, func(t *testing.T) {
			m := reflect.ValueOf(sampleSolver(sm.Input)).MethodByName(name)
			if !m.IsValid() {
				t.Fatalf("sample documented on %s, which is not a solver method", name)
			}
			got := m.Call(nil)[0].Interface()
			if fmt.Sprint(got) != sm.Want {
				t.Errorf("got %v; want %v", got, sm.Want)
			}
		})
	}
}

func TestSpringArrangements(t *testing.T) {
	s := sampleSolver(`
???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
`)
	for _, tc := range []struct {
		copies int
		want   []int
	}{
		{1, []int{1, 4, 1, 1, 4, 10}},
		{5, []int{1, 16384, 1, 16, 2500, 506250}},
	} {
		var got []int
		for _, r := range s.springRows(tc.copies) {
			got = append(got, r.arrangements())
		}
		if !slices.Equal(got, tc.want) {
			t.Errorf("copies=%d: got %v; want %v", tc.copies, got, tc.want)
		}
	}
}

func TestManyPlotsOpenField(t *testing.T) {
	g := aoc.ParseGrid([]string{
		".....",
		".....",
		"..S..",
		".....",
		".....",
	})
	start := aoc.Pt{X: 2, Y: 2}
	// With no rocks the reachable plots form a diamond of (n+1)^2 cells.
	if got := reachablePlots(g, start, 12); got != 169 {
		t.Errorf("reachablePlots(12) = %d; want 169", got)
	}
	if got := manyPlots(g, start, 52); got != 53*53 {
		t.Errorf("manyPlots(52) = %d; want %d", got, 53*53)
	}
}

func TestSolveLinear(t *testing.T) {
	rat := func(rows ...[]int64) [][]*big.Rat {
		out := make([][]*big.Rat, len(rows))
		for i, r := range rows {
			for _, v := range r {
				out[i] = append(out[i], big.NewRat(v, 1))
			}
		}
		return out
	}
	// y = 1, x + y = 3, with a zero in the first pivot position.
	x, ok := solveLinear(rat([]int64{0, 1, 1}, []int64{1, 1, 3}))
	if !ok || x[0].RatString() != "2" || x[1].RatString() != "1" {
		t.Errorf("got %v, %v; want [2 1]", x, ok)
	}
	if _, ok := solveLinear(rat([]int64{1, 1, 3}, []int64{2, 2, 6})); ok {
		t.Error("solved a singular system")
	}
}

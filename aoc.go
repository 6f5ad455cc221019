// Package aoc are quick & dirty utilities for solving Advent of Code
// problems. (forked from maisem/aoc, itself forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

// Sample is an example input from a puzzle description along with the
// answer it should produce.
type Sample struct {
	Input string
	Want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := Sample{
			Want:  strings.TrimSpace(m[1]),
			Input: m[2],
		}
		return s, true
	}
	var zero Sample
	return zero, false
}

// extractSamples returns the samples documented on the funcs of a single
// source file, keyed by func name. A sample without input inherits the
// input of the previous sample in the same file.
func extractSamples(name string, src []byte) map[string]Sample {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing %s to extract samples: %v", name, err)
	}
	var lastInput string
	samples := make(map[string]Sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.Input = Or(s.Input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.Input
				break
			}
		}
	}
	return samples
}

// Samples returns the samples documented on the funcs of every .go file at
// the root of fsys, keyed by func name.
func Samples(fsys fs.FS) map[string]Sample {
	names := MustGet(fs.Glob(fsys, "*.go"))
	samples := make(map[string]Sample)
	for _, name := range names {
		for k, v := range extractSamples(name, MustGet(fs.ReadFile(fsys, name))) {
			samples[k] = v
		}
	}
	return samples
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]Sample
	input   []byte // if non-nil, used instead of the sample or real input
}

// NewSamplePuzzle returns a Puzzle in sample mode whose input is always
// the provided text.
func NewSamplePuzzle(input string) *Puzzle {
	return &Puzzle{
		SampleMode: true,
		input:      []byte(input),
	}
}

func (p *Puzzle) Input() []byte {
	if p.input != nil {
		return p.input
	}
	if p.SampleMode {
		return []byte(p.Sample().Input)
	}
	return fileOrFetch(p.cachePath("input"), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

func (p *Puzzle) cachePath(ext string) string {
	return filepath.Join(flagCache, fmt.Sprint(p.year), fmt.Sprintf("%d.%s", p.day.day, ext))
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	s.Buffer(nil, 1<<20)
	return s
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns all lines of input.
func (p *Puzzle) Lines() []string {
	var out []string
	p.ForLines(func(line string) {
		out = append(out, line)
	})
	return out
}

// Blocks returns the input split into groups of lines separated by blank
// lines. Blank lines never appear in a block.
func (p *Puzzle) Blocks() [][]string {
	var out [][]string
	var cur []string
	p.ForLines(func(line string) {
		if line == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			return
		}
		cur = append(cur, line)
	})
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Grid returns the input as a grid of bytes, skipping blank lines.
func (p *Puzzle) Grid() Grid[byte] {
	return ParseGrid(p.Lines())
}

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Println(v...)
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() Sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

// answer returns the known answer for the current part, if one was saved
// next to the cached input.
func (p *Puzzle) answer() (string, bool) {
	b, err := os.ReadFile(p.cachePath(fmt.Sprintf("p%s.answer", p.solver.Part)))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(b)), true
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s: got %v; want func() any", mn, mt.Type)
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagCache      string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagCache, "cache", ".", "directory holding cached inputs and answers")
}

var initFlags = sync.OnceFunc(flag.Parse)

func runDay(slvr any, year int, day day, samples map[string]Sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.Want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.Want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, took)
				continue
			}
			want, ok := p.answer()
			switch {
			case !ok:
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, took)
			case fmt.Sprint(got) == want:
				fmt.Printf("part %s: %v ✅ (took %v) \n", ps.Part, got, took)
			default:
				fmt.Printf("part %s: %v ❌; want %v (took %v) \n", ps.Part, got, want, took)
			}
		}
	}
}

// Run runs the solvers of slvr for the given year. slvr must be a pointer
// to a struct embedding *Puzzle whose methods are named D{day}p{part}.
// Samples are read from the doc comments of those methods in the .go files
// of src.
func Run(year int, src fs.FS, slvr any) {
	samples := Samples(src)
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples)
		fmt.Println()
	}
}

var session = sync.OnceValue(func() string {
	if s := os.Getenv("AOC_SESSION"); s != "" {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

func request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	return req
}

func doRequest(req *http.Request) *http.Response {
	res := MustGet(http.DefaultClient.Do(req))
	if res.StatusCode != 200 {
		log.Fatalf("bad status fetching %s: %v", req.URL, res.Status)
	}
	return res
}

func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	res := doRequest(request("GET", url, nil))
	defer res.Body.Close()
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// TrimPrefix returns s without prefix. It exits if s does not start with
// prefix.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		log.Fatalf("bad prefix: %q", s)
	}
	return s1
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// AnyKey returns any key from the map.
// It panics if the map is empty.
func AnyKey[K comparable, V any](m map[K]V) K {
	for k := range m {
		return k
	}
	panic("bad")
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

// Parallel calls f on every element of in, using at most GOMAXPROCS
// goroutines, and returns the results in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	out := make([]O, len(in))
	for i, v := range in {
		g.Go(func() error {
			out[i] = f(v)
			return nil
		})
	}
	MustDo(g.Wait())
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}

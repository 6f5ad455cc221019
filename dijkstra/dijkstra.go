// Package dijkstra is a generic label-setting shortest path search over
// implicitly defined graphs.
//
// The graph is never materialised: callers supply seed states and a
// Neighbors function that expands a state into its outgoing edges. The
// search returns a Result holding the best distance (and the predecessor
// that produced it) for every state reached from any seed.
//
// Edge weights must be non-negative. Negative weights are not detected and
// produce meaningless distances.
package dijkstra

import (
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Weight is the set of types usable as edge weights and distances.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is a single outgoing transition to To costing Weight.
type Edge[S any, W Weight] struct {
	To     S
	Weight W
}

// Neighbors expands a state into its outgoing edges. It must be
// deterministic and must not mutate state shared with other searches.
// A nil or empty result marks a dead end.
type Neighbors[S any, W Weight] func(S) []Edge[S, W]

// Search runs the search to exhaustion from seeds, each at distance 0.
func Search[S comparable, W Weight](seeds []S, next Neighbors[S, W]) *Result[S, W] {
	return SearchUntil(seeds, next, nil)
}

// SearchUntil is like Search but stops as soon as a state for which done
// returns true has been settled. A nil done never stops early.
//
// States that were reached but not settled when the search stopped keep
// their tentative distance in the Result; see Result.Settled.
func SearchUntil[S comparable, W Weight](seeds []S, next Neighbors[S, W], done func(S) bool) *Result[S, W] {
	r := newResult[S, W]()
	f := newFrontier[S, W]()
	for _, s := range seeds {
		if _, ok := r.dist[s]; ok {
			continue
		}
		var zero W
		r.dist[s] = zero
		f.push(zero, s)
	}
	for {
		d, s, ok := f.pop()
		if !ok {
			return r
		}
		if r.settled[s] || d > r.dist[s] {
			continue // stale
		}
		r.settle(s)
		if done != nil && done(s) {
			return r
		}
		for _, e := range next(s) {
			if r.settled[e.To] {
				continue
			}
			cand := d + e.Weight
			if cur, ok := r.dist[e.To]; ok && cur <= cand {
				continue
			}
			r.dist[e.To] = cand
			r.prev[e.To] = s
			f.push(cand, e.To)
		}
	}
}

// Result is the outcome of a search. States absent from it were not
// reachable from any seed.
type Result[S comparable, W Weight] struct {
	dist    map[S]W
	prev    map[S]S
	settled map[S]bool
	order   []S
}

func newResult[S comparable, W Weight]() *Result[S, W] {
	return &Result[S, W]{
		dist:    make(map[S]W),
		prev:    make(map[S]S),
		settled: make(map[S]bool),
	}
}

func (r *Result[S, W]) settle(s S) {
	r.settled[s] = true
	r.order = append(r.order, s)
}

// Dist returns the best known distance to s. It reports false if s was
// never reached.
func (r *Result[S, W]) Dist(s S) (W, bool) {
	d, ok := r.dist[s]
	return d, ok
}

// Prev returns the state that s was reached from on its best path. It
// reports false for seeds and for unreached states.
func (r *Result[S, W]) Prev(s S) (S, bool) {
	p, ok := r.prev[s]
	return p, ok
}

// Settled reports whether the distance to s is final.
func (r *Result[S, W]) Settled(s S) bool {
	return r.settled[s]
}

// Path returns the states on the best path from a seed to s, inclusive of
// both ends. It returns nil if s was not reached.
func (r *Result[S, W]) Path(s S) []S {
	if _, ok := r.dist[s]; !ok {
		return nil
	}
	path := []S{s}
	for {
		p, ok := r.prev[s]
		if !ok {
			break
		}
		path = append(path, p)
		s = p
	}
	slices.Reverse(path)
	return path
}

// Order returns the settled states in the order they were settled. Their
// distances are non-decreasing.
func (r *Result[S, W]) Order() []S {
	return slices.Clone(r.order)
}

// Len returns the number of reached states.
func (r *Result[S, W]) Len() int {
	return len(r.dist)
}

// Distances returns a copy of the distance of every reached state.
func (r *Result[S, W]) Distances() map[S]W {
	return maps.Clone(r.dist)
}

// Min returns the smallest distance among the given targets that were
// reached, and the target it belongs to. It reports false if none was.
func (r *Result[S, W]) Min(targets ...S) (W, S, bool) {
	var (
		best  W
		bestS S
		found bool
	)
	for _, t := range targets {
		d, ok := r.dist[t]
		if !ok {
			continue
		}
		if !found || d < best {
			best, bestS, found = d, t, true
		}
	}
	return best, bestS, found
}

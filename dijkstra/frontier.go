package dijkstra

import "github.com/maisem/aoc2023/pq"

// frontier holds the states waiting to be settled, smallest distance first.
// The same state may be present more than once; stale entries are dropped
// by the caller at pop time.
type frontier[S any, W Weight] struct {
	q *pq.Queue[S, W]
}

func newFrontier[S any, W Weight]() frontier[S, W] {
	return frontier[S, W]{q: pq.Min[S, W]()}
}

func (f frontier[S, W]) push(dist W, s S) {
	f.q.Add(s, dist)
}

func (f frontier[S, W]) pop() (W, S, bool) {
	if f.q.Len() == 0 {
		var (
			zw W
			zs S
		)
		return zw, zs, false
	}
	it := f.q.Pop()
	return it.P, it.V, true
}

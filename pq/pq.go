// Package pq is a binary-heap priority queue whose items can have their
// priority changed while queued.
package pq

import (
	"cmp"
	"container/heap"
	"fmt"
)

// Item is an entry in a Queue. V is the value and P its priority.
type Item[T any, P cmp.Ordered] struct {
	V  T
	P  P
	ix int
}

func (i *Item[T, P]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// Index returns the position of i in its queue, or -1 once it has been
// popped.
func (i *Item[T, P]) Index() int {
	return i.ix
}

// Queue is a priority queue of *Item. The zero value pops the highest
// priority first.
type Queue[T any, P cmp.Ordered] struct {
	h items[T, P]
}

// Min returns a queue that pops the lowest priority first.
func Min[T any, P cmp.Ordered]() *Queue[T, P] {
	return &Queue[T, P]{h: items[T, P]{min: true}}
}

// Max returns a queue that pops the highest priority first.
func Max[T any, P cmp.Ordered]() *Queue[T, P] {
	return &Queue[T, P]{}
}

func (q *Queue[T, P]) Push(v *Item[T, P]) {
	heap.Push(&q.h, v)
}

// Add queues v at priority p and returns its item, for use with Update.
func (q *Queue[T, P]) Add(v T, p P) *Item[T, P] {
	it := &Item[T, P]{V: v, P: p}
	q.Push(it)
	return it
}

// Pop removes and returns the first item. It panics if q is empty.
func (q *Queue[T, P]) Pop() *Item[T, P] {
	return heap.Pop(&q.h).(*Item[T, P])
}

// Update restores the heap order after v.P was changed. v must still be
// in the queue.
func (q *Queue[T, P]) Update(v *Item[T, P]) {
	heap.Fix(&q.h, v.ix)
}

func (q *Queue[T, P]) Peek() *Item[T, P] {
	return q.h.q[0]
}

func (q *Queue[T, P]) Len() int {
	return len(q.h.q)
}

type items[T any, P cmp.Ordered] struct {
	q   []*Item[T, P]
	min bool
}

func (h items[T, P]) Len() int { return len(h.q) }

func (h items[T, P]) Less(i, j int) bool {
	if h.min {
		return h.q[i].P < h.q[j].P
	}
	return h.q[i].P > h.q[j].P
}

func (h items[T, P]) Swap(i, j int) {
	q := h.q
	q[i], q[j] = q[j], q[i]
	q[i].ix = i
	q[j].ix = j
}

func (h *items[T, P]) Push(x any) {
	it := x.(*Item[T, P])
	it.ix = len(h.q)
	h.q = append(h.q, it)
}

func (h *items[T, P]) Pop() any {
	old := h.q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.ix = -1
	h.q = old[:n-1]
	return it
}

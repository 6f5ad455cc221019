package aoc

import (
	"slices"
	"testing"
)

func TestStackAndQueue(t *testing.T) {
	var s Stack[int]
	q := NewQueue(1)
	q.Push(2, 3)
	s.Push(1, 2)
	s.Push(3)
	if v, _ := s.Peek(); v != 3 {
		t.Errorf("Peek = %d, want 3", v)
	}
	var fromStack, fromQueue []int
	s.While(func(v int) bool {
		fromStack = append(fromStack, v)
		return true
	})
	q.While(func(v int) bool {
		fromQueue = append(fromQueue, v)
		return v != 2
	})
	if !slices.Equal(fromStack, []int{3, 2, 1}) {
		t.Errorf("stack order = %v", fromStack)
	}
	if !slices.Equal(fromQueue, []int{1, 2}) || q.Len() != 1 {
		t.Errorf("queue = %v, %d left", fromQueue, q.Len())
	}
	if _, ok := s.Pop(); ok || s.Len() != 0 {
		t.Error("stack not drained")
	}
}

func TestQueueCompacts(t *testing.T) {
	var q Queue[int]
	for i := 0; i < 1000; i++ {
		q.Push(i, i)
		if v, ok := q.Pop(); !ok || v != i/2 {
			t.Fatalf("Pop = %d, %v; want %d", v, ok, i/2)
		}
	}
	if q.Len() != 1000 {
		t.Fatalf("Len = %d, want 1000", q.Len())
	}
	if len(q.q) > 2100 {
		t.Errorf("backing array grew to %d", len(q.q))
	}
	if v, _ := q.Pop(); v != 500 {
		t.Errorf("Pop = %d, want 500", v)
	}
}

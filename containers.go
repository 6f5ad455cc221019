package aoc

// Stack is a LIFO stack. The zero value is empty and ready to use.
type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v ...T) {
	s.s = append(s.s, v...)
}

func (s *Stack[T]) Pop() (T, bool) {
	v, ok := s.Peek()
	if ok {
		s.s = s.s[:len(s.s)-1]
	}
	return v, ok
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

// While pops values off the stack and calls f with them until the stack
// is empty or f returns false. f may push more values.
func (s *Stack[T]) While(f func(T) bool) {
	drain(s.Pop, f)
}

// Queue is a FIFO queue. The zero value is empty and ready to use.
type Queue[T any] struct {
	q    []T
	head int
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{q: in}
}

func (q *Queue[T]) Len() int {
	return len(q.q) - q.head
}

func (q *Queue[T]) Push(v ...T) {
	q.q = append(q.q, v...)
}

func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.Len() == 0 {
		return zero, false
	}
	v := q.q[q.head]
	q.q[q.head] = zero
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 32 && q.head*2 > len(q.q) {
		q.q = append(q.q[:0], q.q[q.head:]...)
		q.head = 0
	}
	return v, true
}

// While pops values off the queue and calls f with them until the queue
// is empty or f returns false. f may push more values.
func (q *Queue[T]) While(f func(T) bool) {
	drain(q.Pop, f)
}

func drain[T any](pop func() (T, bool), f func(T) bool) {
	for {
		v, ok := pop()
		if !ok || !f(v) {
			return
		}
	}
}

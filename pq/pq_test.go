package pq

import (
	"slices"
	"testing"
)

func TestOrder(t *testing.T) {
	for _, tt := range []struct {
		name string
		q    *Queue[string, int]
		want []string
	}{
		{"min", Min[string, int](), []string{"a", "b", "c"}},
		{"max", Max[string, int](), []string{"c", "b", "a"}},
		{"zero", &Queue[string, int]{}, []string{"c", "b", "a"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			items := map[string]*Item[string, int]{
				"a": {V: "a", P: 1},
				"b": {V: "b", P: 5},
				"c": {V: "c", P: 9},
			}
			for _, k := range []string{"b", "a", "c"} {
				tt.q.Push(items[k])
			}
			items["b"].P = 4
			tt.q.Update(items["b"])
			var got []string
			for tt.q.Len() > 0 {
				v := tt.q.Pop()
				if v.Index() != -1 {
					t.Errorf("popped item has index %d", v.Index())
				}
				got = append(got, v.V)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateReorders(t *testing.T) {
	q := Min[int, float64]()
	q.Add(1, 10)
	b := q.Add(2, 20)
	b.P = 5.5
	q.Update(b)
	if got := q.Peek(); got.V != 2 || got.String() != "2:5.5" {
		t.Errorf("Peek = %v, want 2:5.5", got)
	}
}

func TestDuplicateValues(t *testing.T) {
	q := Min[string, int]()
	q.Add("x", 3)
	q.Add("x", 1)
	q.Add("y", 2)
	var got []int
	for q.Len() > 0 {
		got = append(got, q.Pop().P)
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("priorities = %v", got)
	}
}

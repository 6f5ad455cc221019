package dijkstra_test

import (
	"fmt"

	"github.com/maisem/aoc2023/dijkstra"
)

func ExampleSearch() {
	edges := map[string][]dijkstra.Edge[string, int]{
		"A": {{To: "B", Weight: 2}, {To: "C", Weight: 5}},
		"B": {{To: "C", Weight: 1}},
	}
	r := dijkstra.Search([]string{"A"}, func(s string) []dijkstra.Edge[string, int] {
		return edges[s]
	})
	d, _ := r.Dist("C")
	fmt.Println(d, r.Path("C"))
	// Output: 3 [A B C]
}

func ExampleSearchUntil() {
	// Walk a number line where each step doubles or increments.
	next := func(n int) []dijkstra.Edge[int, int] {
		return []dijkstra.Edge[int, int]{{To: n + 1, Weight: 1}, {To: n * 2, Weight: 1}}
	}
	r := dijkstra.SearchUntil([]int{1}, next, func(n int) bool { return n == 10 })
	d, _ := r.Dist(10)
	fmt.Println(d, r.Path(10))
	// Output: 4 [1 2 4 5 10]
}

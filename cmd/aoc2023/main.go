// Command aoc2023 solves Advent of Code 2023 puzzles.
//
// Each day lives in its own file as methods D{day}p{part} on solver. The
// doc comment of each method holds the sample from the puzzle text, which
// is checked before the real input is fetched and solved.
package main

import (
	"embed"

	"github.com/maisem/aoc2023"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}

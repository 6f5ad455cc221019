package main

import (
	"strings"

	"github.com/maisem/aoc2023"
)

// cubeGame is the most cubes of each color shown at once in a game.
type cubeGame struct {
	id   int
	most map[string]int
}

func (s solver) cubeGames() []cubeGame {
	var games []cubeGame
	s.ForLines(func(line string) {
		head, draws, ok := strings.Cut(line, ": ")
		if !ok {
			return
		}
		g := cubeGame{
			id:   aoc.Int(aoc.TrimPrefix(head, "Game ")),
			most: map[string]int{},
		}
		for _, draw := range strings.Split(draws, "; ") {
			for _, cubes := range strings.Split(draw, ", ") {
				n, color, _ := strings.Cut(cubes, " ")
				g.most[color] = max(g.most[color], aoc.Int(n))
			}
		}
		games = append(games, g)
	})
	return games
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	bag := map[string]int{"red": 12, "green": 13, "blue": 14}
	sum := 0
	for _, g := range s.cubeGames() {
		possible := true
		for color, n := range g.most {
			if n > bag[color] {
				possible = false
			}
		}
		if possible {
			sum += g.id
		}
	}
	return sum
}

// want=2286
func (s solver) D2p2() any {
	sum := 0
	for _, g := range s.cubeGames() {
		sum += g.most["red"] * g.most["green"] * g.most["blue"]
	}
	return sum
}

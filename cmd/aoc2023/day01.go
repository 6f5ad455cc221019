package main

import (
	"strings"

	"github.com/maisem/aoc2023"
)

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return s.calibration(false)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return s.calibration(true)
}

var digitNames = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func (s solver) calibration(spelled bool) int {
	sum := 0
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		var digits []int
		for i, c := range line {
			if c >= '0' && c <= '9' {
				digits = append(digits, aoc.Digit(c))
				continue
			}
			if !spelled {
				continue
			}
			// Names may overlap ("eightwo"), so match at every offset.
			for n, name := range digitNames {
				if strings.HasPrefix(line[i:], name) {
					digits = append(digits, n+1)
					break
				}
			}
		}
		if len(digits) == 0 {
			return
		}
		sum += digits[0]*10 + digits[len(digits)-1]
	})
	return sum
}

// Package scoring checks a child's typed answer against the expected one and
// turns round results into stars.
package scoring

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Check reports whether a typed answer matches the expected one. Matching is
// case- and whitespace-insensitive, and for longer word answers a small
// levenshtein budget forgives one-letter slips. Numeric answers must be
// exact: "7" close to "1" is still wrong.
func Check(expected, given string) bool {
	e := normalize(expected)
	g := normalize(given)
	if e == "" || g == "" {
		return false
	}
	if e == g {
		return true
	}
	if isNumeric(e) {
		return false
	}
	return levenshtein.ComputeDistance(e, g) <= typoBudget(e)
}

func typoBudget(expected string) int {
	if len(expected) >= 5 {
		return 1
	}
	return 0
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// Stars maps a round result to 0..3 stars: full marks three, two thirds or
// better two, one third or better one.
func Stars(correct, total int) int {
	if total <= 0 || correct <= 0 {
		return 0
	}
	if correct > total {
		correct = total
	}
	switch {
	case correct == total:
		return 3
	case correct*3 >= total*2:
		return 2
	case correct*3 >= total:
		return 1
	default:
		return 0
	}
}

// Package query derives the visible subset of a snapshot from the list
// screen's predicates. Pure: the input slice is never mutated and relative
// order is preserved.
package query

import (
	"strings"

	"catch-log/internal/models"
)

// Params are the three list-screen predicates. Empty strings mean
// "no constraint".
type Params struct {
	Query    string // case-insensitive substring of species OR location
	DateFrom string // YYYY-MM-DD, inclusive
	DateTo   string // YYYY-MM-DD, inclusive
}

// Matches reports whether a single catch passes all three predicates.
// Dates compare lexicographically, which is chronological for ISO dates.
func (p Params) Matches(c models.Catch) bool {
	if p.Query != "" {
		q := strings.ToLower(p.Query)
		if !strings.Contains(strings.ToLower(c.Species), q) &&
			!strings.Contains(strings.ToLower(c.Location), q) {
			return false
		}
	}
	if p.DateFrom != "" && c.Date < p.DateFrom {
		return false
	}
	if p.DateTo != "" && c.Date > p.DateTo {
		return false
	}
	return true
}

// Filter returns the catches passing all predicates, in input order.
// With all predicates empty the result equals the input.
func Filter(catches []models.Catch, p Params) []models.Catch {
	out := make([]models.Catch, 0, len(catches))
	for _, c := range catches {
		if p.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

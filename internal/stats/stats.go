// Package stats computes the summary metrics shown on the stats screen from
// the full catch snapshot. Pure; no storage access.
package stats

import (
	"sort"

	"catch-log/internal/models"
)

// lbsPerKg is the factor applied when ranking weights entered in kg against
// weights entered in lbs.
const lbsPerKg = 2.205

// MonthCount is the busiest year-month and its catch count.
type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// SpeciesRecord is the personal-record line for one species. Biggest and
// Longest compare raw numbers within the species; mixed units in one
// species are compared as entered.
type SpeciesRecord struct {
	Species string        `json:"species"`
	Count   int           `json:"count"`
	Biggest *models.Catch `json:"biggest,omitempty"` // nil if no weights logged
	Longest *models.Catch `json:"longest,omitempty"` // nil if no lengths logged
}

// Summary is the full stats view. Pointer metrics are nil when no record
// qualifies for them.
type Summary struct {
	TotalCatches int             `json:"totalCatches"`
	SpeciesCount int             `json:"speciesCount"`
	BestMonth    *MonthCount     `json:"bestMonth,omitempty"`
	Heaviest     *models.Catch   `json:"heaviest,omitempty"`
	Records      []SpeciesRecord `json:"records"`
}

// weightLbs returns the weight ranked in lbs; kg entries are converted for
// the comparison only, the stored record keeps its unit.
func weightLbs(c *models.Catch) float64 {
	if c.Weight == nil {
		return 0
	}
	if c.WeightUnit == models.WeightKg {
		return *c.Weight * lbsPerKg
	}
	return *c.Weight
}

// Compute aggregates the snapshot. Returns nil on an empty snapshot so "no
// data yet" can never be confused with a log of real zeros.
func Compute(catches []models.Catch) *Summary {
	if len(catches) == 0 {
		return nil
	}

	// group by exact species string; no normalization
	bySpecies := make(map[string][]*models.Catch)
	order := make([]string, 0)
	for i := range catches {
		c := &catches[i]
		if _, ok := bySpecies[c.Species]; !ok {
			order = append(order, c.Species)
		}
		bySpecies[c.Species] = append(bySpecies[c.Species], c)
	}

	// busiest month by date prefix; on equal counts the earliest month wins
	byMonth := make(map[string]int)
	for i := range catches {
		if len(catches[i].Date) >= 7 {
			byMonth[catches[i].Date[:7]]++
		}
	}
	var best *MonthCount
	for month, n := range byMonth {
		if best == nil || n > best.Count || (n == best.Count && month < best.Month) {
			best = &MonthCount{Month: month, Count: n}
		}
	}

	// heaviest overall, unit-normalized for the comparison
	var heaviest *models.Catch
	for i := range catches {
		c := &catches[i]
		if c.Weight == nil {
			continue
		}
		if heaviest == nil || weightLbs(c) > weightLbs(heaviest) {
			heaviest = c
		}
	}

	records := make([]SpeciesRecord, 0, len(order))
	for _, species := range order {
		list := bySpecies[species]
		r := SpeciesRecord{Species: species, Count: len(list)}
		for _, c := range list {
			if c.Weight != nil && (r.Biggest == nil || *c.Weight > *r.Biggest.Weight) {
				r.Biggest = c
			}
			if c.Length != nil && (r.Longest == nil || *c.Length > *r.Longest.Length) {
				r.Longest = c
			}
		}
		records = append(records, r)
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Count != records[j].Count {
			return records[i].Count > records[j].Count
		}
		return records[i].Species < records[j].Species
	})

	return &Summary{
		TotalCatches: len(catches),
		SpeciesCount: len(bySpecies),
		BestMonth:    best,
		Heaviest:     heaviest,
		Records:      records,
	}
}

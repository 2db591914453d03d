package stats

import (
	"testing"

	"catch-log/internal/models"
)

func f(v float64) *float64 { return &v }

// TestCompute_EmptySnapshot reports "not available" as nil, never a Summary
// full of zeros that could pass for real data.
func TestCompute_EmptySnapshot(t *testing.T) {
	if got := Compute(nil); got != nil {
		t.Fatalf("Compute(nil) = %+v, want nil", got)
	}
	if got := Compute([]models.Catch{}); got != nil {
		t.Fatalf("Compute(empty) = %+v, want nil", got)
	}
}

// TestCompute_HeaviestNormalizesKg ranks a 3 kg fish (6.615 lbs) above
// 5 lbs and 4 lbs entries, and returns the record with its original unit.
func TestCompute_HeaviestNormalizesKg(t *testing.T) {
	catches := []models.Catch{
		{ID: 1, Species: "Bass", Date: "2026-02-01", Weight: f(5), WeightUnit: models.WeightLbs},
		{ID: 2, Species: "Carp", Date: "2026-02-02", Weight: f(3), WeightUnit: models.WeightKg},
		{ID: 3, Species: "Pike", Date: "2026-02-03", Weight: f(4), WeightUnit: models.WeightLbs},
	}

	s := Compute(catches)
	if s == nil || s.Heaviest == nil {
		t.Fatal("Compute() heaviest = nil, want the 3 kg record")
	}
	if s.Heaviest.ID != 2 {
		t.Errorf("heaviest.ID = %d, want 2 (3 kg > 5 lbs after normalization)", s.Heaviest.ID)
	}
	if s.Heaviest.WeightUnit != models.WeightKg || *s.Heaviest.Weight != 3 {
		t.Errorf("heaviest = %v %s, want original record unchanged (3 kg)", *s.Heaviest.Weight, s.Heaviest.WeightUnit)
	}
}

// TestCompute_HeaviestAbsentWithoutWeights is nil when no record has a weight.
func TestCompute_HeaviestAbsentWithoutWeights(t *testing.T) {
	catches := []models.Catch{
		{ID: 1, Species: "Bass", Date: "2026-02-01"},
		{ID: 2, Species: "Pike", Date: "2026-02-02"},
	}

	s := Compute(catches)
	if s == nil {
		t.Fatal("Compute() = nil, want summary")
	}
	if s.Heaviest != nil {
		t.Errorf("heaviest = %+v, want nil", s.Heaviest)
	}
}

// TestCompute_BestMonth counts records per year-month prefix.
func TestCompute_BestMonth(t *testing.T) {
	catches := []models.Catch{
		{ID: 1, Species: "Bass", Date: "2026-02-01"},
		{ID: 2, Species: "Bass", Date: "2026-02-15"},
		{ID: 3, Species: "Bass", Date: "2026-03-01"},
	}

	s := Compute(catches)
	if s == nil || s.BestMonth == nil {
		t.Fatal("Compute() bestMonth = nil, want 2026-02")
	}
	if s.BestMonth.Month != "2026-02" || s.BestMonth.Count != 2 {
		t.Errorf("bestMonth = %+v, want {2026-02 2}", s.BestMonth)
	}
}

// TestCompute_BestMonthTieBreak picks the earliest month on equal counts.
func TestCompute_BestMonthTieBreak(t *testing.T) {
	catches := []models.Catch{
		{ID: 1, Species: "Bass", Date: "2026-03-10"},
		{ID: 2, Species: "Bass", Date: "2026-01-05"},
		{ID: 3, Species: "Bass", Date: "2026-03-20"},
		{ID: 4, Species: "Bass", Date: "2026-01-25"},
	}

	s := Compute(catches)
	if s == nil || s.BestMonth == nil {
		t.Fatal("Compute() bestMonth = nil")
	}
	if s.BestMonth.Month != "2026-01" {
		t.Errorf("bestMonth = %q, want 2026-01 (earliest wins ties)", s.BestMonth.Month)
	}
}

// TestCompute_SpeciesCountExactMatch counts distinct species strings with no
// case folding.
func TestCompute_SpeciesCountExactMatch(t *testing.T) {
	catches := []models.Catch{
		{ID: 1, Species: "Bass", Date: "2026-02-01"},
		{ID: 2, Species: "bass", Date: "2026-02-02"},
		{ID: 3, Species: "Bass", Date: "2026-02-03"},
	}

	s := Compute(catches)
	if s == nil {
		t.Fatal("Compute() = nil")
	}
	if s.TotalCatches != 3 {
		t.Errorf("totalCatches = %d, want 3", s.TotalCatches)
	}
	if s.SpeciesCount != 2 {
		t.Errorf("speciesCount = %d, want 2 (\"Bass\" and \"bass\" are distinct)", s.SpeciesCount)
	}
}

// TestCompute_SpeciesRecords_NoUnitNormalization: within a species the
// biggest/longest picks compare raw numbers, units ignored. A 2 kg entry
// loses to a 3 lbs entry; the overall heaviest metric is the only
// normalized comparison.
func TestCompute_SpeciesRecords_NoUnitNormalization(t *testing.T) {
	catches := []models.Catch{
		{ID: 1, Species: "Carp", Date: "2026-02-01", Weight: f(2), WeightUnit: models.WeightKg, Length: f(40), LengthUnit: models.LengthCm},
		{ID: 2, Species: "Carp", Date: "2026-02-02", Weight: f(3), WeightUnit: models.WeightLbs, Length: f(17), LengthUnit: models.LengthIn},
	}

	s := Compute(catches)
	if s == nil || len(s.Records) != 1 {
		t.Fatalf("Compute() records = %+v, want one species", s)
	}

	r := s.Records[0]
	if r.Biggest == nil || r.Biggest.ID != 2 {
		t.Errorf("biggest.ID = %v, want 2 (raw 3 > 2, units not compared)", r.Biggest)
	}
	if r.Longest == nil || r.Longest.ID != 1 {
		t.Errorf("longest.ID = %v, want 1 (raw 40 > 17, units not compared)", r.Longest)
	}
}

// TestCompute_RecordsOrderedByCount sorts the per-species list by count
// descending, species name ascending on ties.
func TestCompute_RecordsOrderedByCount(t *testing.T) {
	catches := []models.Catch{
		{ID: 1, Species: "Walleye", Date: "2026-02-01"},
		{ID: 2, Species: "Bass", Date: "2026-02-02"},
		{ID: 3, Species: "Bass", Date: "2026-02-03"},
		{ID: 4, Species: "Crappie", Date: "2026-02-04"},
	}

	s := Compute(catches)
	if s == nil {
		t.Fatal("Compute() = nil")
	}

	want := []string{"Bass", "Crappie", "Walleye"}
	if len(s.Records) != len(want) {
		t.Fatalf("records len = %d, want %d", len(s.Records), len(want))
	}
	for i, species := range want {
		if s.Records[i].Species != species {
			t.Errorf("records[%d].Species = %q, want %q", i, s.Records[i].Species, species)
		}
	}
	if s.Records[0].Count != 2 {
		t.Errorf("records[0].Count = %d, want 2", s.Records[0].Count)
	}
}

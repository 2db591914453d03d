package geo

import (
	"testing"

	"catch-log/internal/models"
)

func f(v float64) *float64 { return &v }

// TestWithCoordinates_ExcludesPartialCoords drops records missing either
// coordinate; a record needs both to be plottable.
func TestWithCoordinates_ExcludesPartialCoords(t *testing.T) {
	in := []models.Catch{
		{ID: 1, Species: "Bass", Lat: f(30.39), Lng: f(-97.90)},
		{ID: 2, Species: "Trout", Lat: f(39.63), Lng: nil},
		{ID: 3, Species: "Pike", Lat: nil, Lng: f(-93.58)},
		{ID: 4, Species: "Walleye", Lat: nil, Lng: nil},
		{ID: 5, Species: "Crappie", Lat: f(32.86), Lng: f(-95.57)},
	}

	out := WithCoordinates(in)
	want := []uint{1, 5}
	if len(out) != len(want) {
		t.Fatalf("WithCoordinates() len = %d, want %d", len(out), len(want))
	}
	for i, id := range want {
		if out[i].ID != id {
			t.Errorf("WithCoordinates() out[%d].ID = %d, want %d", i, out[i].ID, id)
		}
	}
}

// TestWithCoordinates_RecordsUnchanged passes matching records through as-is.
func TestWithCoordinates_RecordsUnchanged(t *testing.T) {
	in := []models.Catch{
		{ID: 1, Species: "Redfish", Location: "Galveston Bay, TX", Lat: f(29.2856), Lng: f(-94.8614)},
	}

	out := WithCoordinates(in)
	if len(out) != 1 {
		t.Fatalf("WithCoordinates() len = %d, want 1", len(out))
	}
	got := out[0]
	if got.ID != 1 || got.Species != "Redfish" || *got.Lat != 29.2856 || *got.Lng != -94.8614 {
		t.Errorf("WithCoordinates() altered record: %+v", got)
	}
}

// TestWithCoordinates_Empty returns an empty slice for an empty snapshot.
func TestWithCoordinates_Empty(t *testing.T) {
	if out := WithCoordinates(nil); len(out) != 0 {
		t.Errorf("WithCoordinates(nil) len = %d, want 0", len(out))
	}
}

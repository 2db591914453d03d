package store

import (
	"testing"
	"time"

	"catch-log/internal/geo"
	"catch-log/internal/models"
	"catch-log/internal/stats"
)

func waitReady(t *testing.T, q *LiveQuery) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !q.Ready() {
		if time.Now().After(deadline) {
			t.Fatalf("live query not ready: %v", q.Err())
		}
		time.Sleep(2 * time.Millisecond)
	}
}

// TestLiveQuery_InitialLoad: the snapshot is empty until the first load
// completes, then equals the store's list.
func TestLiveQuery_InitialLoad(t *testing.T) {
	s := newTestStore(t)
	a, _ := s.Add(bass())
	b, _ := s.Add(bass())

	q := OpenLiveQuery(s)
	defer q.Close()

	waitReady(t, q)

	snap := q.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("Snapshot() len = %d, want 2", len(snap))
	}
	if snap[0].ID != b.ID || snap[1].ID != a.ID {
		t.Errorf("Snapshot() ids = %d,%d, want %d,%d (newest first)", snap[0].ID, snap[1].ID, b.ID, a.ID)
	}
}

// TestLiveQuery_RepublishOnMutation refreshes the snapshot after every
// committed mutation; subscribers see each new state.
func TestLiveQuery_RepublishOnMutation(t *testing.T) {
	s := newTestStore(t)
	q := OpenLiveQuery(s)
	defer q.Close()
	waitReady(t, q)

	var published [][]models.Catch
	unregister := q.OnChange(func(snap []models.Catch) {
		published = append(published, snap)
	})
	defer unregister()

	saved, err := s.Add(bass())
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	snap := q.Snapshot()
	if len(snap) != 1 || snap[0].ID != saved.ID {
		t.Fatalf("Snapshot() = %+v, want the added record", snap)
	}
	if len(published) == 0 || len(published[len(published)-1]) != 1 {
		t.Errorf("subscriber saw %d publishes, want the post-add snapshot", len(published))
	}

	if err := s.Delete(saved.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got := q.Snapshot(); len(got) != 0 {
		t.Errorf("Snapshot() len = %d after delete, want 0", len(got))
	}
}

// TestLiveQuery_SnapshotIsCopy: callers cannot corrupt the shared state.
func TestLiveQuery_SnapshotIsCopy(t *testing.T) {
	s := newTestStore(t)
	_, _ = s.Add(bass())

	q := OpenLiveQuery(s)
	defer q.Close()
	waitReady(t, q)

	snap := q.Snapshot()
	snap[0].Species = "tampered"

	if got := q.Snapshot(); got[0].Species != "Largemouth Bass" {
		t.Errorf("Snapshot() species = %q, want unaffected by caller mutation", got[0].Species)
	}
}

// TestLiveQuery_CloseStopsUpdates keeps the last snapshot but detaches from
// the store.
func TestLiveQuery_CloseStopsUpdates(t *testing.T) {
	s := newTestStore(t)
	q := OpenLiveQuery(s)
	waitReady(t, q)

	q.Close()

	_, _ = s.Add(bass())
	if got := q.Snapshot(); len(got) != 0 {
		t.Errorf("Snapshot() len = %d after close, want 0 (no more updates)", len(got))
	}
}

// TestLiveQuery_ClearFlowsToDerivations: after clearing five records the
// stats view reports not-available and the map view has nothing to plot.
func TestLiveQuery_ClearFlowsToDerivations(t *testing.T) {
	s := newTestStore(t)
	q := OpenLiveQuery(s)
	defer q.Close()

	lat, lng := 30.39, -97.90
	for i := 0; i < 5; i++ {
		c := bass()
		c.Lat, c.Lng = &lat, &lng
		if _, err := s.Add(c); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	waitReady(t, q)

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	snap := q.Snapshot()
	if len(snap) != 0 {
		t.Fatalf("Snapshot() len = %d after clear, want 0", len(snap))
	}
	if got := stats.Compute(snap); got != nil {
		t.Errorf("stats.Compute() = %+v after clear, want nil (not available)", got)
	}
	if got := geo.WithCoordinates(snap); len(got) != 0 {
		t.Errorf("geo.WithCoordinates() len = %d after clear, want 0", len(got))
	}
}

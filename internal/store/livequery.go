package store

import (
	"sync"

	"catch-log/internal/models"
)

// LiveQuery keeps an in-memory ordered copy of the store's contents so
// downstream views never touch storage mid-render. The snapshot is empty
// until the first load completes; after that, every committed mutation
// triggers a fresh List and an atomic republish to all subscribers.
type LiveQuery struct {
	store       *Store
	unsubscribe func()

	refreshMu sync.Mutex // serializes load→publish so republishes never go backwards

	mu       sync.RWMutex
	snapshot []models.Catch
	loaded   bool
	lastErr  error
	subs     map[int]func([]models.Catch)
	nextSub  int
}

// OpenLiveQuery attaches a live query to the store and starts the initial
// load in the background. Call Close when done.
func OpenLiveQuery(s *Store) *LiveQuery {
	q := &LiveQuery{
		store: s,
		subs:  make(map[int]func([]models.Catch)),
	}
	q.unsubscribe = s.Subscribe(q.refresh)
	go q.refresh()
	return q
}

// refresh re-reads the store and republishes. Holding refreshMu across the
// read and the publish means a slow older read can never overwrite a newer
// snapshot: subscribers always observe the latest completed state.
func (q *LiveQuery) refresh() {
	q.refreshMu.Lock()
	defer q.refreshMu.Unlock()

	list, err := q.store.List()

	q.mu.Lock()
	if err != nil {
		// keep the previous snapshot; the error is surfaced via Err
		q.lastErr = err
		q.mu.Unlock()
		return
	}
	q.snapshot = list
	q.loaded = true
	q.lastErr = nil
	subs := make([]func([]models.Catch), 0, len(q.subs))
	for _, fn := range q.subs {
		subs = append(subs, fn)
	}
	q.mu.Unlock()

	for _, fn := range subs {
		fn(list)
	}
}

// Snapshot returns a copy of the current ordered snapshot. Nil until the
// initial load has completed.
func (q *LiveQuery) Snapshot() []models.Catch {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if !q.loaded {
		return nil
	}
	out := make([]models.Catch, len(q.snapshot))
	copy(out, q.snapshot)
	return out
}

// Ready reports whether the initial load has completed.
func (q *LiveQuery) Ready() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.loaded
}

// Err returns the error from the most recent load, if it failed. A live
// query that never becomes Ready and reports an error here is the
// storage-unavailable state and should be shown to the user.
func (q *LiveQuery) Err() error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.lastErr
}

// OnChange registers fn to receive the full ordered snapshot after every
// republish. Returns a function that removes the registration.
func (q *LiveQuery) OnChange(fn func([]models.Catch)) func() {
	q.mu.Lock()
	id := q.nextSub
	q.nextSub++
	q.subs[id] = fn
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		delete(q.subs, id)
		q.mu.Unlock()
	}
}

// Close detaches from the store. Snapshot keeps returning the last
// published value; it just stops updating.
func (q *LiveQuery) Close() {
	if q.unsubscribe != nil {
		q.unsubscribe()
		q.unsubscribe = nil
	}

	q.mu.Lock()
	q.subs = make(map[int]func([]models.Catch))
	q.mu.Unlock()
}

package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"catch-log/internal/models"

	"gorm.io/gorm"
)

// Store is the durable keyed collection of catches. It owns id and createdAt
// assignment and notifies registered observers after every committed
// mutation. Construct one per database with New; there is no implicit
// process-wide instance.
type Store struct {
	db *gorm.DB

	mu          sync.Mutex // guards lastCreated
	lastCreated int64

	obsMu     sync.RWMutex
	observers map[int]func()
	nextObs   int
}

// New wraps an opened database in a Store. The createdAt watermark is seeded
// from the existing rows so ordering stays monotonic across restarts.
func New(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, ErrStorageUnavailable
	}

	var last int64
	row := db.Model(&models.Catch{}).Select("COALESCE(MAX(created_at), 0)").Row()
	if row == nil {
		return nil, ErrStorageUnavailable
	}
	if err := row.Scan(&last); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return &Store{
		db:          db,
		lastCreated: last,
		observers:   make(map[int]func()),
	}, nil
}

// Subscribe registers fn to run after every committed mutation. The returned
// function removes the registration.
func (s *Store) Subscribe(fn func()) func() {
	s.obsMu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

func (s *Store) notify() {
	s.obsMu.RLock()
	fns := make([]func(), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.obsMu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

// nextCreatedAt returns the current time in ms, bumped past the previous
// value if the clock ties within a burst. createdAt never repeats, so the
// retrieval order has no ties to break.
func (s *Store) nextCreatedAt() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= s.lastCreated {
		now = s.lastCreated + 1
	}
	s.lastCreated = now
	return now
}

func normalize(c *models.Catch) error {
	if strings.TrimSpace(c.Species) == "" {
		return ErrEmptySpecies
	}
	if c.WeightUnit == "" {
		c.WeightUnit = models.WeightLbs
	}
	if c.LengthUnit == "" {
		c.LengthUnit = models.LengthIn
	}
	return nil
}

// Add persists a new catch. Any id or createdAt on the input is discarded;
// the store assigns both. Returns the record as persisted.
func (s *Store) Add(c models.Catch) (models.Catch, error) {
	if err := normalize(&c); err != nil {
		return models.Catch{}, err
	}
	c.ID = 0
	c.CreatedAt = s.nextCreatedAt()

	if err := s.db.Create(&c).Error; err != nil {
		return models.Catch{}, fmt.Errorf("add catch: %w", err)
	}

	s.notify()
	return c, nil
}

// BulkAdd inserts a batch in a single transaction: either every record
// commits or none does. Each record gets a fresh id and its own createdAt.
func (s *Store) BulkAdd(cs []models.Catch) ([]models.Catch, error) {
	if len(cs) == 0 {
		return nil, nil
	}

	out := make([]models.Catch, len(cs))
	copy(out, cs)
	for i := range out {
		if err := normalize(&out[i]); err != nil {
			return nil, err
		}
		out[i].ID = 0
		out[i].CreatedAt = s.nextCreatedAt()
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&out).Error
	})
	if err != nil {
		return nil, fmt.Errorf("bulk add: %w", err)
	}

	s.notify()
	return out, nil
}

// Update merges the set fields of patch into the record with the given id.
// id and createdAt are not part of CatchPatch and cannot be changed.
func (s *Store) Update(id uint, patch models.CatchPatch) error {
	if patch.Species != nil && strings.TrimSpace(*patch.Species) == "" {
		return ErrEmptySpecies
	}

	fields := patch.Fields()
	if len(fields) == 0 {
		// nothing to merge, but a missing id is still a failed edit
		_, err := s.Get(id)
		return err
	}

	res := s.db.Model(&models.Catch{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update catch: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	s.notify()
	return nil
}

// Delete removes the record with the given id. A missing id is a no-op, so
// deleting twice looks the same as deleting once.
func (s *Store) Delete(id uint) error {
	res := s.db.Where("id = ?", id).Delete(&models.Catch{})
	if res.Error != nil {
		return fmt.Errorf("delete catch: %w", res.Error)
	}

	if res.RowsAffected > 0 {
		s.notify()
	}
	return nil
}

// Clear removes every record. Irreversible; the id sequence is not reset,
// so cleared ids are never handed out again.
func (s *Store) Clear() error {
	res := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Catch{})
	if res.Error != nil {
		return fmt.Errorf("clear catches: %w", res.Error)
	}

	s.notify()
	return nil
}

// Restore replaces the whole collection with records from a backup in one
// transaction. Unlike Add/BulkAdd the incoming ids and createdAt values are
// kept: the records were assigned them by this store when first persisted.
func (s *Store) Restore(cs []models.Catch) error {
	for i := range cs {
		if strings.TrimSpace(cs[i].Species) == "" {
			return ErrEmptySpecies
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Catch{}).Error; err != nil {
			return err
		}
		if len(cs) == 0 {
			return nil
		}
		return tx.Create(&cs).Error
	})
	if err != nil {
		return fmt.Errorf("restore catches: %w", err)
	}

	// re-seed the watermark so new records sort after the restored ones
	s.mu.Lock()
	for i := range cs {
		if cs[i].CreatedAt > s.lastCreated {
			s.lastCreated = cs[i].CreatedAt
		}
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// Get returns a single record by id.
func (s *Store) Get(id uint) (*models.Catch, error) {
	var c models.Catch
	if err := s.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get catch: %w", err)
	}
	return &c, nil
}

// List returns all records, most recent first.
func (s *Store) List() ([]models.Catch, error) {
	var cs []models.Catch
	if err := s.db.Order("created_at DESC, id DESC").Find(&cs).Error; err != nil {
		return nil, fmt.Errorf("list catches: %w", err)
	}
	return cs, nil
}

// Count returns the number of stored records.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&models.Catch{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count catches: %w", err)
	}
	return n, nil
}

package journal

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps the journal in memory. Safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	activities  []ActivityEntry
	reflections []Reflection
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Activities returns the activities logged between from and to.
func (s *MemoryStore) Activities(ctx context.Context, from, to time.Time) ([]ActivityEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterActivities(s.activities, from, to), nil
}

// Reflections returns the reflections written between from and to.
func (s *MemoryStore) Reflections(ctx context.Context, from, to time.Time) ([]Reflection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterReflections(s.reflections, from, to), nil
}

// AddActivity validates and stores entry, assigning an ID when it has none.
func (s *MemoryStore) AddActivity(ctx context.Context, entry ActivityEntry) (ActivityEntry, error) {
	if err := ctx.Err(); err != nil {
		return ActivityEntry{}, err
	}
	if err := ValidateActivity(entry); err != nil {
		return ActivityEntry{}, err
	}
	if entry.ID == "" {
		entry.ID = newID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append(s.activities, entry)
	return entry, nil
}

// AddReflection validates and stores r, assigning an ID when it has none.
func (s *MemoryStore) AddReflection(ctx context.Context, r Reflection) (Reflection, error) {
	if err := ctx.Err(); err != nil {
		return Reflection{}, err
	}
	r, err := normalizeReflection(r)
	if err != nil {
		return Reflection{}, err
	}
	if r.ID == "" {
		r.ID = newID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reflections = append(s.reflections, r)
	return r, nil
}

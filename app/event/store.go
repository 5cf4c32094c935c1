package event

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("event not found")

// Store is the deduplicated, insertion-ordered collection of events
// plus the currently selected event. The selection is a lookup key
// into the collection, never an independent copy.
type Store struct {
	mu       sync.RWMutex
	events   []Event
	index    map[string]int
	selected string
}

func NewStore() *Store {
	return &Store{
		index: make(map[string]int),
	}
}

// Insert adds an event unless its ID is already known. Returns true if
// the event was inserted, false if it was a duplicate. Duplicates are
// not an error.
func (s *Store) Insert(e Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[e.ID]; ok {
		return false
	}

	s.index[e.ID] = len(s.events)
	s.events = append(s.events, e)
	return true
}

// Get returns a copy of the event with the given ID.
func (s *Store) Get(id string) (Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.index[id]
	if !ok {
		return Event{}, false
	}
	return s.events[idx], true
}

// List returns a snapshot of all events in insertion order.
func (s *Store) List() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// Select marks the event with the given ID as the current selection.
func (s *Store) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[id]; !ok {
		return ErrNotFound
	}
	s.selected = id
	return nil
}

// ClearSelection removes the current selection.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ""
}

// Selected returns a copy of the currently selected event, if any.
func (s *Store) Selected() (Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == "" {
		return Event{}, false
	}
	idx, ok := s.index[s.selected]
	if !ok {
		return Event{}, false
	}
	return s.events[idx], true
}

// ApplyAnalysis replaces the stored event's analysis, tier and pillar
// impacts, preserving its ID and position. The first authoritative
// classification folds the impact vector into the health scores;
// re-classification replaces the fields without applying deltas again.
func (s *Store) ApplyAnalysis(id, analysis string, tier int, impacts PillarImpacts, health *HealthTracker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}

	rec := &s.events[idx]
	rec.Analysis = analysis
	rec.Tier = tier
	rec.PillarImpacts = impacts

	if rec.classified {
		return nil
	}
	rec.classified = true

	impacts.ForEach(func(pillar Pillar, delta int) {
		if delta != 0 {
			health.Apply(pillar, delta)
		}
	})

	return nil
}

package events

import (
	"errors"
	"sync"
)

// ErrMissingRoundID is returned when an event does not carry a round ID.
var ErrMissingRoundID = errors.New("event has no roundID")

// EventStore is the interface for storing and retrieving events.
type EventStore interface {
	Append(event Event) error
	LoadEvents(roundID string) ([]Event, error)
}

// InMemoryEventStore is an in-memory implementation of the EventStore interface.
type InMemoryEventStore struct {
	events map[string][]Event
	order  []string
	mutex  sync.RWMutex
}

// NewInMemoryEventStore creates a new in-memory event store.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		events: make(map[string][]Event),
	}
}

// Append adds a new event to the store.
func (s *InMemoryEventStore) Append(event Event) error {
	roundID := GetRoundID(event)
	if roundID == "" {
		return ErrMissingRoundID
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.events[roundID]; !exists {
		s.events[roundID] = make([]Event, 0, 16)
		s.order = append(s.order, roundID)
	}

	s.events[roundID] = append(s.events[roundID], event)
	return nil
}

// LoadEvents retrieves all events for the given roundID.
func (s *InMemoryEventStore) LoadEvents(roundID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if events, exists := s.events[roundID]; exists {
		// Make a copy to avoid potential race conditions
		result := make([]Event, len(events))
		copy(result, events)
		return result, nil
	}

	// Return empty slice if no events found
	return []Event{}, nil
}

// GetEvents returns every stored event, grouped by round in the order rounds were first seen.
func (s *InMemoryEventStore) GetEvents() []Event {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var events []Event
	for _, id := range s.order {
		events = append(events, s.events[id]...)
	}
	return events
}

// RoundIDs returns the IDs of all rounds with at least one event, oldest first.
func (s *InMemoryEventStore) RoundIDs() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

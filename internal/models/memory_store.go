package models

import (
	"context"
	"fmt"
	"sync"
)

// MemoryEventStore keeps events in insertion order for the lifetime of the process.
type MemoryEventStore struct {
	mu     sync.RWMutex
	events []*Event
}

func NewMemoryEventStore(seed ...*Event) *MemoryEventStore {
	s := &MemoryEventStore{events: make([]*Event, 0, len(seed))}
	for _, e := range seed {
		s.events = append(s.events, e.Clone())
	}
	return s
}

func (s *MemoryEventStore) ListEvents(ctx context.Context) ([]*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (s *MemoryEventStore) GetEvent(ctx context.Context, id string) (*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.events[i].Clone(), nil
	}
	return nil, fmt.Errorf("event %s: %w", id, ErrNotFound)
}

func (s *MemoryEventStore) InsertEvent(ctx context.Context, event *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(event.ID) >= 0 {
		return fmt.Errorf("event %s already exists", event.ID)
	}
	s.events = append(s.events, event.Clone())
	return nil
}

func (s *MemoryEventStore) ReplaceEvent(ctx context.Context, event *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(event.ID)
	if i < 0 {
		return fmt.Errorf("event %s: %w", event.ID, ErrNotFound)
	}
	s.events[i] = event.Clone()
	return nil
}

func (s *MemoryEventStore) DeleteEvent(ctx context.Context, id string) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	removed := s.events[i]
	s.events = append(s.events[:i], s.events[i+1:]...)
	return removed, nil
}

func (s *MemoryEventStore) CountEvents(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events), nil
}

// caller holds mu
func (s *MemoryEventStore) indexOf(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

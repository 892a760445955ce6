package store

import (
	"context"

	apperrors "campusevents/internal/errors"
	"campusevents/internal/model"
)

// AddEvent inserts a new event with a freshly allocated id and keeps the
// collection sorted ascending by date.
func (s *Store) AddEvent(ctx context.Context, event model.Event) model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.ID = s.ids.NextID()
	s.events = append(s.events, event)
	sortEventsByDate(s.events)
	s.saveEvents(ctx)
	return event
}

// DeleteEvent removes an event and cascades to every registration that
// references it.
func (s *Store) DeleteEvent(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.events {
		if s.events[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrEventNotFound
	}
	s.events = append(s.events[:idx], s.events[idx+1:]...)
	s.saveEvents(ctx)

	kept := s.registrations[:0]
	for _, r := range s.registrations {
		if r.EventID != id {
			kept = append(kept, r)
		}
	}
	s.registrations = kept
	s.saveRegistrations(ctx)
	return nil
}

// FindEventByID returns the first event with the given id.
func (s *Store) FindEventByID(id int64) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findEvent(id)
}

// findEvent is FindEventByID without locking. Callers hold the lock.
func (s *Store) findEvent(id int64) (*model.Event, error) {
	for i := range s.events {
		if s.events[i].ID == id {
			copied := s.events[i]
			return &copied, nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

// Package store holds the application state: the user, event and
// registration collections plus the current user. Every mutation goes
// through a method on Store, runs atomically under one lock, and mirrors the
// touched collection back to keyed blob storage.
package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"campusevents/internal/model"
)

// Storage keys, one blob per collection.
const (
	usersKey         = "campus_events:users"
	eventsKey        = "campus_events:events"
	registrationsKey = "campus_events:registrations"
)

// Storage defines the keyed blob operations the store needs. Reads and
// writes are best-effort: a nil, nil result means "no usable data".
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Store owns the entity collections and the current-user identity.
type Store struct {
	mu      sync.Mutex
	storage Storage
	ids     IDGenerator

	users         []model.User
	events        []model.Event
	registrations []model.Registration
	currentUser   *model.User
}

// New creates a store backed by the given blob storage and id generator.
// Call Load before use.
func New(storage Storage, ids IDGenerator) *Store {
	return &Store{
		storage: storage,
		ids:     ids,
	}
}

// Load initializes each collection from storage, falling back to the seed
// dataset when a blob is absent or does not parse. Storage faults are never
// fatal; the worst outcome is starting from seed data.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !loadCollection(ctx, s.storage, usersKey, &s.users) {
		s.users = seedUsers()
	}
	if !loadCollection(ctx, s.storage, eventsKey, &s.events) {
		s.events = seedEvents()
	}
	sortEventsByDate(s.events)
	if !loadCollection(ctx, s.storage, registrationsKey, &s.registrations) {
		s.registrations = seedRegistrations()
	}
}

func loadCollection[T any](ctx context.Context, storage Storage, key string, dst *[]T) bool {
	data, err := storage.Get(ctx, key)
	if err != nil || data == nil {
		return false
	}
	var loaded []T
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Printf("store: discarding malformed blob %q: %v", key, err)
		return false
	}
	*dst = loaded
	return true
}

// saveUsers mirrors the user collection to storage. Callers hold the lock.
// Write failures are swallowed by the storage layer.
func (s *Store) saveUsers(ctx context.Context) {
	s.save(ctx, usersKey, s.users)
}

func (s *Store) saveEvents(ctx context.Context) {
	s.save(ctx, eventsKey, s.events)
}

func (s *Store) saveRegistrations(ctx context.Context) {
	s.save(ctx, registrationsKey, s.registrations)
}

func (s *Store) save(ctx context.Context, key string, collection any) {
	payload, err := json.Marshal(collection)
	if err != nil {
		log.Printf("store: marshal %q: %v", key, err)
		return
	}
	_ = s.storage.Set(ctx, key, payload)
}

// Users returns a snapshot of the user collection.
func (s *Store) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// Events returns a snapshot of the event collection, sorted by date.
func (s *Store) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Registrations returns a snapshot of the registration collection.
func (s *Store) Registrations() []model.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Registration, len(s.registrations))
	copy(out, s.registrations)
	return out
}

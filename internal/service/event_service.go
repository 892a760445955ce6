package service

import (
	"context"

	apperrors "campusevents/internal/errors"
	"campusevents/internal/model"
)

// EventStore is the slice of the store the event service needs.
type EventStore interface {
	Events() []model.Event
	FindEventByID(id int64) (*model.Event, error)
	AddEvent(ctx context.Context, event model.Event) model.Event
	DeleteEvent(ctx context.Context, id int64) error
	CurrentUser() *model.User
}

// EventService handles event listing and organizer event management.
type EventService interface {
	List(ctx context.Context) []model.Event
	Get(ctx context.Context, id int64) (*model.Event, error)
	Create(ctx context.Context, event model.Event) (*model.Event, error)
	// Delete removes an event and its registrations. The confirmed flag is
	// supplied by the caller, which owns the interactive confirmation.
	Delete(ctx context.Context, id int64, confirmed bool) error
}

type eventService struct {
	store EventStore
}

// NewEventService creates a new event service.
func NewEventService(store EventStore) EventService {
	return &eventService{store: store}
}

func (s *eventService) List(ctx context.Context) []model.Event {
	return s.store.Events()
}

func (s *eventService) Get(ctx context.Context, id int64) (*model.Event, error) {
	return s.store.FindEventByID(id)
}

func (s *eventService) Create(ctx context.Context, event model.Event) (*model.Event, error) {
	if err := requireRole(s.store.CurrentUser(), model.RoleOrganizer, model.RoleAdmin); err != nil {
		return nil, err
	}
	created := s.store.AddEvent(ctx, event)
	return &created, nil
}

func (s *eventService) Delete(ctx context.Context, id int64, confirmed bool) error {
	if err := requireRole(s.store.CurrentUser(), model.RoleOrganizer, model.RoleAdmin); err != nil {
		return err
	}
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}
	return s.store.DeleteEvent(ctx, id)
}

// requireRole checks that a user is present and holds one of the roles.
func requireRole(user *model.User, roles ...model.Role) error {
	if user == nil {
		return apperrors.ErrNotAuthenticated
	}
	for _, role := range roles {
		if user.Role == role {
			return nil
		}
	}
	return apperrors.ErrForbidden
}

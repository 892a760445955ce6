package service

import (
	"context"

	"campusevents/internal/model"
)

// RegistrationStore is the slice of the store the registration service needs.
type RegistrationStore interface {
	Register(ctx context.Context, eventID int64) (*model.Registration, error)
	UpdateStatus(ctx context.Context, registrationID int64, status model.RegistrationStatus)
	RegistrationsForEvent(eventID int64) []model.Registration
	ApprovedAttendeeCount(eventID int64) int
	UserRegistrationStatus(eventID, userID int64) model.RegistrationStatus
	CurrentUser() *model.User
}

// RegistrationService handles student registration and the organizer-side
// registration lifecycle.
type RegistrationService interface {
	Register(ctx context.Context, eventID int64) (*model.Registration, error)
	UpdateStatus(ctx context.Context, registrationID int64, status model.RegistrationStatus) error
	ForEvent(ctx context.Context, eventID int64) ([]model.Registration, error)
	ApprovedCount(ctx context.Context, eventID int64) int
	// StatusFor returns the current user's registration status for the event,
	// or the empty string when not logged in or not registered.
	StatusFor(ctx context.Context, eventID int64) model.RegistrationStatus
}

type registrationService struct {
	store RegistrationStore
}

// NewRegistrationService creates a new registration service.
func NewRegistrationService(store RegistrationStore) RegistrationService {
	return &registrationService{store: store}
}

func (s *registrationService) Register(ctx context.Context, eventID int64) (*model.Registration, error) {
	return s.store.Register(ctx, eventID)
}

// UpdateStatus overwrites a registration's status. Restricted to organizers
// and admins; the store itself applies the transition unconditionally and
// treats an unknown id as a no-op.
func (s *registrationService) UpdateStatus(ctx context.Context, registrationID int64, status model.RegistrationStatus) error {
	if err := requireRole(s.store.CurrentUser(), model.RoleOrganizer, model.RoleAdmin); err != nil {
		return err
	}
	s.store.UpdateStatus(ctx, registrationID, status)
	return nil
}

func (s *registrationService) ForEvent(ctx context.Context, eventID int64) ([]model.Registration, error) {
	if err := requireRole(s.store.CurrentUser(), model.RoleOrganizer, model.RoleAdmin); err != nil {
		return nil, err
	}
	return s.store.RegistrationsForEvent(eventID), nil
}

func (s *registrationService) ApprovedCount(ctx context.Context, eventID int64) int {
	return s.store.ApprovedAttendeeCount(eventID)
}

func (s *registrationService) StatusFor(ctx context.Context, eventID int64) model.RegistrationStatus {
	user := s.store.CurrentUser()
	if user == nil {
		return ""
	}
	return s.store.UserRegistrationStatus(eventID, user.ID)
}

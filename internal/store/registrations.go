package store

import (
	"context"

	apperrors "campusevents/internal/errors"
	"campusevents/internal/model"
)

// Register creates a Pending registration for the current user on the given
// event. Any existing registration for the pair blocks a new one, whatever
// its status: a rejected student cannot re-register for that event.
//
// Capacity is not checked here. The surrounding UI disables the button when
// an event looks full, but the operation itself admits past capacity; only
// the synthetic generator enforces capacity at insert time.
func (s *Store) Register(ctx context.Context, eventID int64) (*model.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil, apperrors.ErrNotAuthenticated
	}
	if _, err := s.findEvent(eventID); err != nil {
		return nil, err
	}
	if s.hasRegistration(eventID, s.currentUser.ID) {
		return nil, apperrors.ErrAlreadyRegistered
	}
	reg := model.Registration{
		ID:      s.ids.NextID(),
		EventID: eventID,
		UserID:  s.currentUser.ID,
		Status:  model.StatusPending,
	}
	s.registrations = append(s.registrations, reg)
	s.saveRegistrations(ctx)
	return &reg, nil
}

// UpdateStatus unconditionally overwrites the status of the matching
// registration. An unknown id is a silent no-op. No capacity check is made:
// an organizer can approve past an event's capacity.
func (s *Store) UpdateStatus(ctx context.Context, registrationID int64, status model.RegistrationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.registrations {
		if s.registrations[i].ID == registrationID {
			s.registrations[i].Status = status
			s.saveRegistrations(ctx)
			return
		}
	}
}

// AddSyntheticRegistration inserts a Pending registration for the pair on
// behalf of the load generator, re-checking eligibility under the lock:
// both entities must still exist, the pair must be unregistered, and the
// event must have Approved headroom. Reports whether a row was inserted.
func (s *Store) AddSyntheticRegistration(ctx context.Context, userID, eventID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, err := s.findEvent(eventID)
	if err != nil {
		return false
	}
	userExists := false
	for i := range s.users {
		if s.users[i].ID == userID {
			userExists = true
			break
		}
	}
	if !userExists {
		return false
	}
	if s.hasRegistration(eventID, userID) {
		return false
	}
	if s.approvedCount(eventID) >= event.MaxCapacity {
		return false
	}
	reg := model.Registration{
		ID:      s.ids.NextID(),
		EventID: eventID,
		UserID:  userID,
		Status:  model.StatusPending,
	}
	s.registrations = append(s.registrations, reg)
	s.saveRegistrations(ctx)
	return true
}

// ApprovedAttendeeCount counts Approved registrations for an event,
// recomputed fresh on every call.
func (s *Store) ApprovedAttendeeCount(eventID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.approvedCount(eventID)
}

// RegistrationsForEvent returns the registrations for an event in storage
// order.
func (s *Store) RegistrationsForEvent(eventID int64) []model.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Registration{}
	for _, r := range s.registrations {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out
}

// UserRegistrationStatus returns the status of the registration matching
// both ids, or the empty string when there is none.
func (s *Store) UserRegistrationStatus(eventID, userID int64) model.RegistrationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.registrations {
		if r.EventID == eventID && r.UserID == userID {
			return r.Status
		}
	}
	return ""
}

// hasRegistration reports whether the pair holds a registration in any
// status. Callers hold the lock.
func (s *Store) hasRegistration(eventID, userID int64) bool {
	for _, r := range s.registrations {
		if r.EventID == eventID && r.UserID == userID {
			return true
		}
	}
	return false
}

// approvedCount is ApprovedAttendeeCount without locking. Callers hold the
// lock.
func (s *Store) approvedCount(eventID int64) int {
	count := 0
	for _, r := range s.registrations {
		if r.EventID == eventID && r.Status == model.StatusApproved {
			count++
		}
	}
	return count
}

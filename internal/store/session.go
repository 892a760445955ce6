package store

import (
	"strings"

	apperrors "campusevents/internal/errors"
	"campusevents/internal/model"
)

// Login matches credentials against the user collection and makes the
// matched user current. Email comparison is case-insensitive, password
// comparison exact. The failure signal does not reveal whether the email
// exists.
func (s *Store) Login(email, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		u := &s.users[i]
		if strings.EqualFold(u.Email, email) && u.Password == password {
			copied := *u
			s.currentUser = &copied
			return &copied, nil
		}
	}
	return nil, apperrors.ErrInvalidCredentials
}

// Logout clears the current user.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
}

// SwitchUser sets the current user directly by id, without credentials.
// This is a demo affordance, not authentication.
func (s *Store) SwitchUser(id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			copied := s.users[i]
			s.currentUser = &copied
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// CurrentUser returns a copy of the logged-in user, or nil.
func (s *Store) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	copied := *s.currentUser
	return &copied
}

package store

import (
	"context"
	"strings"

	apperrors "campusevents/internal/errors"
	"campusevents/internal/model"
)

// SignUp creates a Student account and makes it the current user. The email
// must not already be in use, compared case-insensitively.
func (s *Store) SignUp(ctx context.Context, name, email, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emailTaken(email) {
		return nil, apperrors.ErrEmailTaken
	}
	user := model.User{
		ID:       s.ids.NextID(),
		Name:     name,
		Role:     model.RoleStudent,
		Email:    email,
		Password: password,
	}
	s.users = append(s.users, user)
	s.saveUsers(ctx)
	copied := user
	s.currentUser = &copied
	return &copied, nil
}

// AddOrganizer creates an Organizer account under the same email uniqueness
// rule. The current user is left unchanged.
func (s *Store) AddOrganizer(ctx context.Context, name, email, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emailTaken(email) {
		return nil, apperrors.ErrEmailTaken
	}
	user := model.User{
		ID:       s.ids.NextID(),
		Name:     name,
		Role:     model.RoleOrganizer,
		Email:    email,
		Password: password,
	}
	s.users = append(s.users, user)
	s.saveUsers(ctx)
	copied := user
	return &copied, nil
}

// DeleteUser removes a user and cascades to every registration that
// references them. The acting user's own account is refused.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser != nil && s.currentUser.ID == id {
		return apperrors.ErrSelfDelete
	}
	idx := -1
	for i := range s.users {
		if s.users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrUserNotFound
	}
	s.users = append(s.users[:idx], s.users[idx+1:]...)
	s.saveUsers(ctx)

	kept := s.registrations[:0]
	for _, r := range s.registrations {
		if r.UserID != id {
			kept = append(kept, r)
		}
	}
	s.registrations = kept
	s.saveRegistrations(ctx)
	return nil
}

// FindUserByID returns the first user with the given id.
func (s *Store) FindUserByID(id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			copied := s.users[i]
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// emailTaken reports whether any user already holds the email,
// case-insensitively. Callers hold the lock.
func (s *Store) emailTaken(email string) bool {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return true
		}
	}
	return false
}

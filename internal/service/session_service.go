package service

import (
	"context"

	"campusevents/internal/model"
)

// SessionStore is the slice of the store the session service needs.
type SessionStore interface {
	Login(email, password string) (*model.User, error)
	Logout()
	SignUp(ctx context.Context, name, email, password string) (*model.User, error)
	SwitchUser(id int64) (*model.User, error)
	CurrentUser() *model.User
}

// SessionService handles login, signup and the current-user identity.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	Logout(ctx context.Context)
	SignUp(ctx context.Context, name, email, password string) (*model.User, error)
	SwitchUser(ctx context.Context, id int64) (*model.User, error)
	Current(ctx context.Context) *model.User
}

type sessionService struct {
	store SessionStore
}

// NewSessionService creates a new session service.
func NewSessionService(store SessionStore) SessionService {
	return &sessionService{store: store}
}

func (s *sessionService) Login(ctx context.Context, email, password string) (*model.User, error) {
	return s.store.Login(email, password)
}

func (s *sessionService) Logout(ctx context.Context) {
	s.store.Logout()
}

func (s *sessionService) SignUp(ctx context.Context, name, email, password string) (*model.User, error) {
	return s.store.SignUp(ctx, name, email, password)
}

// SwitchUser changes identity without credentials. Kept as an explicit demo
// affordance for the role switcher.
func (s *sessionService) SwitchUser(ctx context.Context, id int64) (*model.User, error) {
	return s.store.SwitchUser(id)
}

func (s *sessionService) Current(ctx context.Context) *model.User {
	return s.store.CurrentUser()
}

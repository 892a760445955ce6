package service

import (
	"context"

	apperrors "campusevents/internal/errors"
	"campusevents/internal/model"
)

// UserStore is the slice of the store the user service needs.
type UserStore interface {
	Users() []model.User
	FindUserByID(id int64) (*model.User, error)
	AddOrganizer(ctx context.Context, name, email, password string) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	CurrentUser() *model.User
}

// UserService handles admin account management.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	AddOrganizer(ctx context.Context, name, email, password string) (*model.User, error)
	// Delete removes a user and their registrations. The confirmed flag is
	// supplied by the caller, which owns the interactive confirmation.
	Delete(ctx context.Context, id int64, confirmed bool) error
}

type userService struct {
	store UserStore
}

// NewUserService creates a new user service.
func NewUserService(store UserStore) UserService {
	return &userService{store: store}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	if err := requireRole(s.store.CurrentUser(), model.RoleAdmin); err != nil {
		return nil, err
	}
	return s.store.Users(), nil
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.store.FindUserByID(id)
}

func (s *userService) AddOrganizer(ctx context.Context, name, email, password string) (*model.User, error) {
	if err := requireRole(s.store.CurrentUser(), model.RoleAdmin); err != nil {
		return nil, err
	}
	return s.store.AddOrganizer(ctx, name, email, password)
}

func (s *userService) Delete(ctx context.Context, id int64, confirmed bool) error {
	if err := requireRole(s.store.CurrentUser(), model.RoleAdmin); err != nil {
		return err
	}
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}
	return s.store.DeleteUser(ctx, id)
}

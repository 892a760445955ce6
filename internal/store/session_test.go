package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "campusevents/internal/errors"
	"campusevents/internal/model"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
		wantID   int64
	}{
		{name: "exact match", email: "admin@campus.com", password: "password123", wantID: 4},
		{name: "email is case-insensitive", email: "ADMIN@Campus.COM", password: "password123", wantID: 4},
		{name: "wrong password", email: "admin@campus.com", password: "nope", wantErr: apperrors.ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@campus.com", password: "password123", wantErr: apperrors.ErrInvalidCredentials},
		{name: "password is case-sensitive", email: "admin@campus.com", password: "PASSWORD123", wantErr: apperrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t)
			user, err := s.Login(tt.email, tt.password)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, s.CurrentUser())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
			assert.Equal(t, tt.wantID, s.CurrentUser().ID)
		})
	}
}

func TestLogoutClearsCurrentUser(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Login("shivang@student.com", "password123")
	assert.NoError(t, err)
	s.Logout()
	assert.Nil(t, s.CurrentUser())
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a student and logs them in", func(t *testing.T) {
		s, _ := newTestStore(t)
		user, err := s.SignUp(ctx, "Asha", "asha@student.com", "pw")
		assert.NoError(t, err)
		assert.Equal(t, model.RoleStudent, user.Role)
		assert.Equal(t, user.ID, s.CurrentUser().ID)
		assert.Len(t, s.Users(), 4)
	})

	t.Run("duplicate email fails case-insensitively", func(t *testing.T) {
		s, _ := newTestStore(t)
		_, err := s.SignUp(ctx, "A", "dup@x.com", "p")
		assert.NoError(t, err)

		_, err = s.SignUp(ctx, "B", "DUP@X.com", "q")
		assert.Equal(t, apperrors.ErrEmailTaken, err)
		assert.Len(t, s.Users(), 4, "user store gains exactly one entry")
	})
}

func TestAddOrganizer(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.Login("admin@campus.com", "password123")
	assert.NoError(t, err)

	organizer, err := s.AddOrganizer(ctx, "Priya", "priya@campus.com", "pw")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleOrganizer, organizer.Role)
	assert.Equal(t, int64(4), s.CurrentUser().ID, "current user is unchanged")

	_, err = s.AddOrganizer(ctx, "Priya Again", "PRIYA@campus.com", "pw")
	assert.Equal(t, apperrors.ErrEmailTaken, err)
}

func TestSwitchUser(t *testing.T) {
	s, _ := newTestStore(t)

	user, err := s.SwitchUser(2)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleStudent, user.Role)
	assert.Equal(t, int64(2), s.CurrentUser().ID)

	_, err = s.SwitchUser(999)
	assert.Equal(t, apperrors.ErrUserNotFound, err)
	assert.Equal(t, int64(2), s.CurrentUser().ID, "failed switch keeps the old identity")
}

func TestDeleteUserRefusesSelf(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.Login("admin@campus.com", "password123")
	assert.NoError(t, err)

	assert.Equal(t, apperrors.ErrSelfDelete, s.DeleteUser(ctx, 4))
	assert.Len(t, s.Users(), 3)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "campusevents/internal/errors"
	"campusevents/internal/model"
)

// MockRegistrationStore is a mock implementation of RegistrationStore.
type MockRegistrationStore struct {
	mock.Mock
}

func (m *MockRegistrationStore) Register(ctx context.Context, eventID int64) (*model.Registration, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Registration), args.Error(1)
}

func (m *MockRegistrationStore) UpdateStatus(ctx context.Context, registrationID int64, status model.RegistrationStatus) {
	m.Called(ctx, registrationID, status)
}

func (m *MockRegistrationStore) RegistrationsForEvent(eventID int64) []model.Registration {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Registration)
}

func (m *MockRegistrationStore) ApprovedAttendeeCount(eventID int64) int {
	args := m.Called(eventID)
	return args.Int(0)
}

func (m *MockRegistrationStore) UserRegistrationStatus(eventID, userID int64) model.RegistrationStatus {
	args := m.Called(eventID, userID)
	return args.Get(0).(model.RegistrationStatus)
}

func (m *MockRegistrationStore) CurrentUser() *model.User {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.User)
}

func TestRegistrationService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		currentUser   *model.User
		expectedError error
	}{
		{
			name:        "organizer may update",
			currentUser: &model.User{ID: 1, Role: model.RoleOrganizer},
		},
		{
			name:        "admin may update",
			currentUser: &model.User{ID: 4, Role: model.RoleAdmin},
		},
		{
			name:          "student is refused",
			currentUser:   &model.User{ID: 2, Role: model.RoleStudent},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:          "anonymous is refused",
			currentUser:   nil,
			expectedError: apperrors.ErrNotAuthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockRegistrationStore)
			mockStore.On("CurrentUser").Return(tt.currentUser)
			if tt.expectedError == nil {
				mockStore.On("UpdateStatus", mock.Anything, int64(7), model.StatusApproved).Return()
			}

			svc := NewRegistrationService(mockStore)
			err := svc.UpdateStatus(context.Background(), 7, model.StatusApproved)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				mockStore.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			mockStore.AssertExpectations(t)
		})
	}
}

func TestRegistrationService_ForEvent(t *testing.T) {
	mockStore := new(MockRegistrationStore)
	mockStore.On("CurrentUser").Return(&model.User{ID: 2, Role: model.RoleStudent})

	svc := NewRegistrationService(mockStore)
	_, err := svc.ForEvent(context.Background(), 1)
	assert.Equal(t, apperrors.ErrForbidden, err)
	mockStore.AssertNotCalled(t, "RegistrationsForEvent", mock.Anything)
}

func TestRegistrationService_StatusFor(t *testing.T) {
	t.Run("anonymous has no status", func(t *testing.T) {
		mockStore := new(MockRegistrationStore)
		mockStore.On("CurrentUser").Return(nil)

		svc := NewRegistrationService(mockStore)
		assert.Equal(t, model.RegistrationStatus(""), svc.StatusFor(context.Background(), 1))
		mockStore.AssertNotCalled(t, "UserRegistrationStatus", mock.Anything, mock.Anything)
	})

	t.Run("delegates for the current user", func(t *testing.T) {
		mockStore := new(MockRegistrationStore)
		mockStore.On("CurrentUser").Return(&model.User{ID: 2, Role: model.RoleStudent})
		mockStore.On("UserRegistrationStatus", int64(1), int64(2)).Return(model.StatusApproved)

		svc := NewRegistrationService(mockStore)
		assert.Equal(t, model.StatusApproved, svc.StatusFor(context.Background(), 1))
		mockStore.AssertExpectations(t)
	})
}

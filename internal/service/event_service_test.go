package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "campusevents/internal/errors"
	"campusevents/internal/model"
)

// MockEventStore is a mock implementation of EventStore.
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) Events() []model.Event {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Event)
}

func (m *MockEventStore) FindEventByID(id int64) (*model.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventStore) AddEvent(ctx context.Context, event model.Event) model.Event {
	args := m.Called(ctx, event)
	return args.Get(0).(model.Event)
}

func (m *MockEventStore) DeleteEvent(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventStore) CurrentUser() *model.User {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.User)
}

func TestEventService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		currentUser   *model.User
		confirmed     bool
		expectDelete  bool
		expectedError error
	}{
		{
			name:         "confirmed organizer delete goes through",
			currentUser:  &model.User{ID: 1, Role: model.RoleOrganizer},
			confirmed:    true,
			expectDelete: true,
		},
		{
			name:          "unconfirmed delete is refused",
			currentUser:   &model.User{ID: 1, Role: model.RoleOrganizer},
			confirmed:     false,
			expectedError: apperrors.ErrConfirmationRequired,
		},
		{
			name:          "student is refused before the confirmation check",
			currentUser:   &model.User{ID: 2, Role: model.RoleStudent},
			confirmed:     true,
			expectedError: apperrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockEventStore)
			mockStore.On("CurrentUser").Return(tt.currentUser)
			if tt.expectDelete {
				mockStore.On("DeleteEvent", mock.Anything, int64(5)).Return(nil)
			}

			svc := NewEventService(mockStore)
			err := svc.Delete(context.Background(), 5, tt.confirmed)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				mockStore.AssertNotCalled(t, "DeleteEvent", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			mockStore.AssertExpectations(t)
		})
	}
}

func TestEventService_CreateRequiresRole(t *testing.T) {
	mockStore := new(MockEventStore)
	mockStore.On("CurrentUser").Return(&model.User{ID: 2, Role: model.RoleStudent})

	svc := NewEventService(mockStore)
	_, err := svc.Create(context.Background(), model.Event{Title: "Nope"})
	assert.Equal(t, apperrors.ErrForbidden, err)
	mockStore.AssertNotCalled(t, "AddEvent", mock.Anything, mock.Anything)
}

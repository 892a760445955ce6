package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// It deliberately does not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when signing up with an email that already exists.
	ErrEmailTaken = errors.New("An account with this email already exists.")
	// ErrNotAuthenticated is returned when an operation requires a current user.
	ErrNotAuthenticated = errors.New("You must be logged in to register for an event.")
	// ErrAlreadyRegistered is returned when a user already holds a registration
	// for the event, in any status.
	ErrAlreadyRegistered = errors.New("You are already registered or your registration is pending.")
	// ErrSelfDelete is returned when the acting user tries to delete their own account.
	ErrSelfDelete = errors.New("You cannot delete your own account.")
	// ErrUserNotFound is returned when a user id matches nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrEventNotFound is returned when an event id matches nothing.
	ErrEventNotFound = errors.New("event not found")
	// ErrForbidden is returned when the current user's role does not permit an operation.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrConfirmationRequired is returned when a destructive operation is called
	// without the caller-supplied confirmation flag.
	ErrConfirmationRequired = errors.New("confirmation required")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrNotAuthenticated:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_AUTHENTICATED")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrAlreadyRegistered:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_REGISTERED")
	case ErrSelfDelete:
		return NewHTTPError(http.StatusConflict, err.Error(), "SELF_DELETE")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrEventNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "EVENT_NOT_FOUND")
	case ErrConfirmationRequired:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CONFIRMATION_REQUIRED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

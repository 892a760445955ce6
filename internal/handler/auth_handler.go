package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "campusevents/internal/errors"
	"campusevents/internal/service"
)

// AuthHandler handles session and identity endpoints.
type AuthHandler struct {
	sessions service.SessionService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(sessions service.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest represents a student signup request.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SwitchUserRequest selects the user to impersonate.
type SwitchUserRequest struct {
	UserID int64 `json:"userId" validate:"required"`
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary Clear the current user
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// SignUp godoc
// @Summary Create a student account and log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Signup data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.sessions.SignUp(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// SwitchUser godoc
// @Summary Switch the current user without credentials (demo affordance)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SwitchUserRequest true "Target user"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/switch-user [post]
func (h *AuthHandler) SwitchUser(c echo.Context) error {
	var req SwitchUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.sessions.SwitchUser(c.Request().Context(), req.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Me godoc
// @Summary Return the current user
// @Tags auth
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user := h.sessions.Current(c.Request().Context())
	if user == nil {
		return httpError(apperrors.ErrNotAuthenticated)
	}
	return c.JSON(http.StatusOK, user)
}

// httpError translates a domain error into an echo HTTP error.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

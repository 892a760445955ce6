package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campusevents/internal/model"
	"campusevents/internal/service"
)

// RegistrationHandler handles registration endpoints.
type RegistrationHandler struct {
	registrations service.RegistrationService
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(registrations service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations}
}

// UpdateStatusRequest carries the new status for a registration.
type UpdateStatusRequest struct {
	Status model.RegistrationStatus `json:"status" validate:"required,oneof=Pending Approved Rejected"`
}

// Register godoc
// @Summary Register the current user for an event
// @Tags registrations
// @Produce json
// @Param id path int true "Event ID"
// @Success 201 {object} model.Registration
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /events/{id}/register [post]
func (h *RegistrationHandler) Register(c echo.Context) error {
	eventID, err := parseID(c)
	if err != nil {
		return err
	}
	reg, err := h.registrations.Register(c.Request().Context(), eventID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, reg)
}

// UpdateStatus godoc
// @Summary Overwrite a registration's status
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path int true "Registration ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /registrations/{id} [patch]
func (h *RegistrationHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.registrations.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "status updated",
	})
}

// ListForEvent godoc
// @Summary List an event's registrations (organizer view)
// @Tags registrations
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} model.Registration
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /events/{id}/registrations [get]
func (h *RegistrationHandler) ListForEvent(c echo.Context) error {
	eventID, err := parseID(c)
	if err != nil {
		return err
	}
	regs, err := h.registrations.ForEvent(c.Request().Context(), eventID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, regs)
}

// AttendeeCount godoc
// @Summary Count an event's approved registrations
// @Tags registrations
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]int
// @Failure 400 {object} errors.ErrorResponse
// @Router /events/{id}/attendee-count [get]
func (h *RegistrationHandler) AttendeeCount(c echo.Context) error {
	eventID, err := parseID(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int{
		"approvedAttendeeCount": h.registrations.ApprovedCount(c.Request().Context(), eventID),
	})
}

// MyStatus godoc
// @Summary Return the current user's registration status for an event
// @Tags registrations
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /events/{id}/registration-status [get]
func (h *RegistrationHandler) MyStatus(c echo.Context) error {
	eventID, err := parseID(c)
	if err != nil {
		return err
	}
	status := h.registrations.StatusFor(c.Request().Context(), eventID)
	return c.JSON(http.StatusOK, map[string]string{
		"status": string(status),
	})
}

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"campusevents/internal/model"
	"campusevents/internal/service"
)

// EventHandler handles event endpoints.
type EventHandler struct {
	events service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(events service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// CreateEventRequest carries the organizer form fields for a new event.
type CreateEventRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	LongDescription string `json:"longDescription" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Location        string `json:"location" validate:"required"`
	Organizer       string `json:"organizer" validate:"required"`
	ImageURL        string `json:"imageUrl" validate:"required,url"`
	MaxCapacity     int    `json:"maxCapacity" validate:"required,gt=0"`
}

// ListEvents godoc
// @Summary List events, sorted ascending by date
// @Tags events
// @Produce json
// @Success 200 {array} model.Event
// @Router /events [get]
func (h *EventHandler) ListEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.events.List(c.Request().Context()))
}

// GetEvent godoc
// @Summary Get event by id
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	event, err := h.events.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Publish a new event
// @Tags events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event fields"
// @Success 201 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be RFC 3339")
	}

	event, err := h.events.Create(c.Request().Context(), model.Event{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Date:            date,
		Location:        req.Location,
		Organizer:       req.Organizer,
		ImageURL:        req.ImageURL,
		MaxCapacity:     req.MaxCapacity,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, event)
}

// DeleteEvent godoc
// @Summary Delete an event and its registrations
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Param confirmed query bool true "Caller-side confirmation"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	confirmed, _ := strconv.ParseBool(c.QueryParam("confirmed"))
	if err := h.events.Delete(c.Request().Context(), id, confirmed); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "event deleted",
	})
}

// parseID reads the :id path parameter.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

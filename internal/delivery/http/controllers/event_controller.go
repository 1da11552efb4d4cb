package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"techevents/internal/delivery/http/helpers"
	"techevents/internal/domain"
	"techevents/internal/schema"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *EventController) fail(w http.ResponseWriter, r *http.Request, err error, message string) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, message)
}

// ListEvents godoc
// @Summary List events
// @Description Returns every event, latest target_date first.
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.fail(w, r, err, "Failed to fetch events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// ListUpcoming godoc
// @Summary List upcoming events
// @Description Returns events that have not ended more than an hour ago, soonest first. With date, only events on that UTC day. live marks events that have started within the last hour.
// @Tags events
// @Produce json
// @Param date query string false "Day filter (YYYY-MM-DD)"
// @Success 200 {array} domain.UpcomingEvent
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/upcoming [get]
func (c *EventController) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	var day *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := schema.ParseDay(raw)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		day = &d
	}
	events, err := c.Service.ListUpcoming(r.Context(), day)
	if err != nil {
		c.fail(w, r, err, "Failed to fetch events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !helpers.IsID(id) {
		helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
		return
	}
	event, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.fail(w, r, err, "Failed to fetch event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create a new event
// @Description id, created_at and updated_at are server-generated; unknown fields are ignored.
// @Tags events
// @Accept json
// @Produce json
// @Param event body schema.EventInsert true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse "error: Invalid event data, with details"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	body, err := helpers.ReadBody(w, r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid event data")
		return
	}
	event, err := schema.ParseEventInsert(body)
	if err != nil {
		helpers.WriteValidationError(w, "Invalid event data", err)
		return
	}
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		c.fail(w, r, err, "Failed to create event")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Partially update an event
// @Description Only the supplied fields change; updated_at is bumped. An empty object returns the current event.
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param event body schema.EventPatchInput true "Fields to change"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	body, err := helpers.ReadBody(w, r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid event data")
		return
	}
	patch, err := schema.ParseEventPatch(body)
	if err != nil {
		helpers.WriteValidationError(w, "Invalid event data", err)
		return
	}
	id := r.PathValue("id")
	if !helpers.IsID(id) {
		helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.fail(w, r, err, "Failed to update event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Registrations for the event are removed with it.
// @Tags events
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} helpers.SuccessResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !helpers.IsID(id) {
		helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.fail(w, r, err, "Failed to delete event")
		return
	}
	helpers.WriteSuccess(w)
}

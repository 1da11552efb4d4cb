package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"techevents/internal/delivery/http/helpers"
	"techevents/internal/delivery/http/middleware"
	"techevents/internal/domain"
	"techevents/internal/schema"
)

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// parseRegistration reads {user_id} and writes the 400 itself when it is absent or malformed.
func parseRegistration(w http.ResponseWriter, r *http.Request, eventID string) (*domain.Registration, bool) {
	body, err := helpers.ReadBody(w, r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid registration data")
		return nil, false
	}
	reg, err := schema.ParseRegistration(eventID, body)
	if err != nil {
		var ve *schema.ValidationError
		if errors.As(err, &ve) && ve.HasViolation("user_id", "required") {
			helpers.WriteJSONError(w, http.StatusBadRequest, "user_id is required")
			return nil, false
		}
		helpers.WriteValidationError(w, "Invalid registration data", err)
		return nil, false
	}
	return reg, true
}

// Register godoc
// @Summary Register a user for an event
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param body body schema.RegistrationInput true "Registering user"
// @Success 201 {object} domain.Registration
// @Failure 400 {object} helpers.ErrorResponse "user_id is required, invalid, or already registered"
// @Failure 404 {object} helpers.ErrorResponse "event or user does not exist"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id}/register [post]
func (c *AttendeeController) Register(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	reg, ok := parseRegistration(w, r, eventID)
	if !ok {
		return
	}
	if !helpers.IsID(eventID) {
		helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
		return
	}
	created, err := c.Service.Register(r.Context(), reg.EventID, reg.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyRegistered):
			helpers.WriteJSONError(w, http.StatusBadRequest, "Already registered for this event")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, "Event or user not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to register for event")
		}
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, created)
}

// Unregister godoc
// @Summary Unregister a user from an event
// @Description Succeeds whether or not a registration existed.
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param body body schema.RegistrationInput true "Unregistering user"
// @Success 200 {object} helpers.SuccessResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id}/register [delete]
func (c *AttendeeController) Unregister(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	reg, ok := parseRegistration(w, r, eventID)
	if !ok {
		return
	}
	if !helpers.IsID(eventID) {
		helpers.WriteSuccess(w)
		return
	}
	if _, err := c.Service.Unregister(r.Context(), reg.EventID, reg.UserID); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to unregister from event")
		return
	}
	helpers.WriteSuccess(w)
}

// ListMyRegistrations godoc
// @Summary List the caller's registrations
// @Description Each registration is returned with its event, newest registration first.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.RegistrationWithEvent
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/users/me/registrations [get]
func (c *AttendeeController) ListMyRegistrations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	regs, err := c.Service.ListMyRegistrations(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch registrations")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, regs)
}

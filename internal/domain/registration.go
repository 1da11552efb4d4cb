package domain

import (
	"context"
	"time"
)

// Registration links one user to one event.
// swagger:model Registration
type Registration struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	UserID       string    `json:"user_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// NewRegistration creates a new Registration. ID and RegisteredAt are set by the repository on create.
func NewRegistration(eventID, userID string) *Registration {
	return &Registration{
		EventID: eventID,
		UserID:  userID,
	}
}

// RegistrationWithEvent bundles a registration with its related event.
type RegistrationWithEvent struct {
	Registration *Registration `json:"registration"`
	Event        *Event        `json:"event"`
}

// RegistrationRepository defines storage operations for event registrations.
type RegistrationRepository interface {
	// Create returns ErrAlreadyRegistered on a (event_id, user_id) conflict
	// and ErrNotFound when the event or user does not exist.
	Create(ctx context.Context, reg *Registration) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*Registration, error)
	DeleteByEventAndUser(ctx context.Context, eventID, userID string) (deleted int64, err error)
	ListByUserID(ctx context.Context, userID string) ([]*Registration, error)
}

// AttendeeService defines registration operations.
type AttendeeService interface {
	Register(ctx context.Context, eventID, userID string) (*Registration, error)
	// Unregister removes every registration for the pair and reports how many rows went away.
	Unregister(ctx context.Context, eventID, userID string) (int64, error)
	ListMyRegistrations(ctx context.Context, userID string) ([]*RegistrationWithEvent, error)
}

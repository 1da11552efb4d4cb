package schema

import (
	"strings"

	"techevents/internal/domain"
)

// RegistrationInput is the body of the register and unregister endpoints.
// swagger:model RegistrationInput
type RegistrationInput struct {
	UserID *string `json:"user_id" validate:"required,uuid"`
}

// ParseRegistration decodes the body and pairs the user with eventID.
// A blank user_id counts as missing.
func ParseRegistration(eventID string, body []byte) (*domain.Registration, error) {
	var in RegistrationInput
	if err := unmarshal(body, &in); err != nil {
		return nil, err
	}
	if in.UserID != nil && strings.TrimSpace(*in.UserID) == "" {
		in.UserID = nil
	}
	if err := Validate(&in); err != nil {
		return nil, err
	}
	return domain.NewRegistration(eventID, strings.ToLower(*in.UserID)), nil
}

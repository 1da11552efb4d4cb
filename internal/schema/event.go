package schema

import (
	"strings"

	"techevents/internal/domain"
)

// EventInsert is the create-event payload. Pointers let required fields accept
// empty strings while still rejecting null or missing keys.
// swagger:model EventInsert
type EventInsert struct {
	Title              *string `json:"title" validate:"required,max=255"`
	Description        *string `json:"description" validate:"required"`
	Date               *string `json:"date" validate:"required,max=100"`
	Time               *string `json:"time" validate:"required,max=100"`
	Address            *string `json:"address" validate:"required,max=255"`
	BackgroundImageURL *string `json:"background_image_url" validate:"omitempty,max=500"`
	TargetDate         *string `json:"target_date" validate:"required,timestamp" example:"2025-02-15T09:00:00Z"`
	Creator            *string `json:"creator" validate:"required,uuid"`
	Category           *string `json:"category" validate:"required,max=100"`
	MaxRegistrations   *string `json:"max_registrations"`
}

// EventPatchInput is the partial-update payload: every field optional, same rules.
// swagger:model EventPatchInput
type EventPatchInput struct {
	Title              domain.NullableString `json:"title" validate:"omitempty,max=255" swaggertype:"string"`
	Description        domain.NullableString `json:"description" swaggertype:"string"`
	Date               domain.NullableString `json:"date" validate:"omitempty,max=100" swaggertype:"string"`
	Time               domain.NullableString `json:"time" validate:"omitempty,max=100" swaggertype:"string"`
	Address            domain.NullableString `json:"address" validate:"omitempty,max=255" swaggertype:"string"`
	BackgroundImageURL domain.NullableString `json:"background_image_url" validate:"omitempty,max=500" swaggertype:"string"`
	TargetDate         domain.NullableString `json:"target_date" validate:"omitempty,timestamp" swaggertype:"string"`
	Creator            domain.NullableString `json:"creator" validate:"omitempty,uuid" swaggertype:"string"`
	Category           domain.NullableString `json:"category" validate:"omitempty,max=100" swaggertype:"string"`
	MaxRegistrations   domain.NullableString `json:"max_registrations" swaggertype:"string"`
}

// ParseEventInsert decodes and validates a create-event body into an Event without id or timestamps.
func ParseEventInsert(body []byte) (*domain.Event, error) {
	var in EventInsert
	if err := decode(body, &in); err != nil {
		return nil, err
	}
	target, err := ParseTimestamp(*in.TargetDate)
	if err != nil {
		return nil, err
	}
	return &domain.Event{
		Title:              *in.Title,
		Description:        *in.Description,
		Date:               *in.Date,
		Time:               *in.Time,
		Address:            *in.Address,
		BackgroundImageURL: in.BackgroundImageURL,
		TargetDate:         target,
		Creator:            strings.ToLower(*in.Creator),
		Category:           *in.Category,
		MaxRegistrations:   in.MaxRegistrations,
	}, nil
}

// ParseEventPatch decodes and validates a partial update. {} yields an empty patch.
func ParseEventPatch(body []byte) (domain.EventPatch, error) {
	var in EventPatchInput
	validationErr := decode(body, &in)
	var ve *ValidationError
	if validationErr != nil && !asValidation(validationErr, &ve) {
		return domain.EventPatch{}, validationErr
	}
	if ve != nil && ve.HasViolation("", "json") {
		return domain.EventPatch{}, ve
	}

	var nulls []FieldViolation
	nonNull("title", in.Title, &nulls)
	nonNull("description", in.Description, &nulls)
	nonNull("date", in.Date, &nulls)
	nonNull("time", in.Time, &nulls)
	nonNull("address", in.Address, &nulls)
	nonNull("target_date", in.TargetDate, &nulls)
	nonNull("creator", in.Creator, &nulls)
	nonNull("category", in.Category, &nulls)
	var nullErr error
	if len(nulls) > 0 {
		nullErr = &ValidationError{Violations: nulls}
	}
	if err := merge(validationErr, nullErr); err != nil {
		return domain.EventPatch{}, err
	}

	patch := domain.EventPatch{
		Title:              in.Title.Ptr(),
		Description:        in.Description.Ptr(),
		Date:               in.Date.Ptr(),
		Time:               in.Time.Ptr(),
		Address:            in.Address.Ptr(),
		BackgroundImageURL: in.BackgroundImageURL,
		Category:           in.Category.Ptr(),
		MaxRegistrations:   in.MaxRegistrations,
	}
	if in.Creator.Valid {
		c := strings.ToLower(in.Creator.Value)
		patch.Creator = &c
	}
	if in.TargetDate.Valid {
		t, err := ParseTimestamp(in.TargetDate.Value)
		if err != nil {
			return domain.EventPatch{}, err
		}
		patch.TargetDate = &t
	}
	return patch, nil
}

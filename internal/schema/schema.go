// Package schema holds the request shapes for users, events and registrations and
// validates incoming JSON bodies against them. Server-assigned fields (ids and
// timestamps) and unknown keys are dropped during decoding.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"techevents/internal/domain"
)

// FieldViolation describes one field that failed a rule.
// swagger:model FieldViolation
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries every field-level violation found in a payload.
// It matches domain.ErrValidation with errors.Is.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Field == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, v.Field+" "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return domain.ErrValidation }

// HasViolation reports whether field failed rule.
func (e *ValidationError) HasViolation(field, rule string) bool {
	for _, v := range e.Violations {
		if v.Field == field && v.Rule == rule {
			return true
		}
	}
	return false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Nullable fields validate as their value, or as nil when null or absent.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if n, ok := field.Interface().(domain.NullableString); ok && n.Valid {
			return n.Value
		}
		return nil
	}, domain.NullableString{})
	if err := v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		_, err := ParseTimestamp(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate runs the struct tag rules on v and returns a *ValidationError on failure.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &ValidationError{Violations: make([]FieldViolation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, FieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: ruleMessage(fe),
		})
	}
	return out
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "email":
		return "must be a valid email address"
	case "timestamp":
		return "must be an ISO 8601 timestamp"
	default:
		return "failed rule " + fe.Tag()
	}
}

// decode unmarshals body into dest and validates it. An empty body is treated as {}.
func decode(body []byte, dest any) error {
	if err := unmarshal(body, dest); err != nil {
		return err
	}
	return Validate(dest)
}

func unmarshal(body []byte, dest any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return decodeError(err)
	}
	return nil
}

func decodeError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		msg := "has the wrong type"
		if typeErr.Value != "" {
			msg = "must not be a JSON " + typeErr.Value
		}
		return &ValidationError{Violations: []FieldViolation{{Field: typeErr.Field, Rule: "type", Message: msg}}}
	}
	return &ValidationError{Violations: []FieldViolation{{Rule: "json", Message: "malformed JSON body"}}}
}

func nonNull(field string, n domain.NullableString, out *[]FieldViolation) {
	if n.Present && !n.Valid {
		*out = append(*out, FieldViolation{Field: field, Rule: "notnull", Message: "must not be null"})
	}
}

func merge(errs ...error) error {
	var all []FieldViolation
	for _, err := range errs {
		if err == nil {
			continue
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		all = append(all, ve.Violations...)
	}
	if len(all) == 0 {
		return nil
	}
	return &ValidationError{Violations: all}
}

func asValidation(err error, target **ValidationError) bool {
	return errors.As(err, target)
}

package schema

import "strings"

// UserInsert is the sign-up payload. The password is hashed before it reaches the store.
// swagger:model UserInsert
type UserInsert struct {
	Email       *string `json:"email" validate:"required,max=255,email"`
	Password    *string `json:"password" validate:"required,min=8,max=72"`
	DisplayName *string `json:"display_name" validate:"omitempty,max=255"`
}

// SignUp is a validated sign-up request.
type SignUp struct {
	Email       string
	Password    string
	DisplayName *string
}

// LoginInput is the login payload.
// swagger:model LoginInput
type LoginInput struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// ParseUserInsert decodes and validates a sign-up body. The email is lower-cased.
func ParseUserInsert(body []byte) (*SignUp, error) {
	var in UserInsert
	if err := decode(body, &in); err != nil {
		return nil, err
	}
	out := &SignUp{
		Email:    strings.ToLower(strings.TrimSpace(*in.Email)),
		Password: *in.Password,
	}
	if in.DisplayName != nil {
		name := strings.TrimSpace(*in.DisplayName)
		out.DisplayName = &name
	}
	return out, nil
}

// ParseLogin decodes and validates a login body.
func ParseLogin(body []byte) (email, password string, err error) {
	var in LoginInput
	if err := decode(body, &in); err != nil {
		return "", "", err
	}
	return strings.ToLower(strings.TrimSpace(*in.Email)), *in.Password, nil
}

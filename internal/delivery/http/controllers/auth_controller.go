package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"techevents/internal/delivery/http/helpers"
	"techevents/internal/domain"
	"techevents/internal/schema"
)

// LoginResponse is the response body for POST /api/auth/login.
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	User      *domain.User `json:"user"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewAuthController(logger *slog.Logger, svc domain.UserService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// SignUp godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body schema.UserInsert true "Credentials"
// @Success 201 {object} domain.User
// @Failure 400 {object} helpers.ErrorResponse "invalid data or email already registered"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/auth/signup [post]
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	body, err := helpers.ReadBody(w, r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid user data")
		return
	}
	in, err := schema.ParseUserInsert(body)
	if err != nil {
		helpers.WriteValidationError(w, "Invalid user data", err)
		return
	}
	user, err := c.Service.SignUp(r.Context(), in.Email, in.Password, in.DisplayName)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteJSONError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to sign up")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, user)
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body schema.LoginInput true "Credentials"
// @Success 200 {object} controllers.LoginResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	body, err := helpers.ReadBody(w, r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid login data")
		return
	}
	email, password, err := schema.ParseLogin(body)
	if err != nil {
		helpers.WriteValidationError(w, "Invalid login data", err)
		return
	}
	token, user, err := c.Service.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer", User: user})
}

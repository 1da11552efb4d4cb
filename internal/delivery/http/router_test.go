package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"techevents/internal/delivery/http/controllers"
	"techevents/internal/delivery/http/middleware"
	"techevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEventService struct {
	called string
}

func (s *stubEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	s.called = "list"
	return []*domain.Event{}, nil
}

func (s *stubEventService) ListUpcoming(ctx context.Context, day *time.Time) ([]*domain.UpcomingEvent, error) {
	s.called = "upcoming"
	return []*domain.UpcomingEvent{}, nil
}

func (s *stubEventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	s.called = "get"
	return nil, domain.ErrNotFound
}

func (s *stubEventService) CreateEvent(ctx context.Context, e *domain.Event) error {
	s.called = "create"
	return nil
}

func (s *stubEventService) UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	s.called = "update"
	return nil, domain.ErrNotFound
}

func (s *stubEventService) DeleteEvent(ctx context.Context, id string) error {
	s.called = "delete"
	return nil
}

type stubUserService struct {
	lastID string
}

func (s *stubUserService) SignUp(ctx context.Context, email, password string, displayName *string) (*domain.User, error) {
	return nil, errors.New("not used")
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return "", nil, domain.ErrInvalidCredentials
}

func (s *stubUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	s.lastID = id
	return &domain.User{ID: id, Email: "a@b.com"}, nil
}

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (string, error) {
	if token == "good" {
		return "user-1", nil
	}
	return "", errors.New("bad token")
}

func newTestRouter() (http.Handler, *stubEventService, *stubUserService) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events := &stubEventService{}
	users := &stubUserService{}
	h := NewRouter(Controllers{
		Events:    controllers.NewEventController(logger, events),
		Attendees: controllers.NewAttendeeController(logger, nil),
		Auth:      controllers.NewAuthController(logger, users),
		Users:     controllers.NewUserController(logger, users),
	}, RouterConfig{
		AllowedOrigins: []string{"http://localhost:5173"},
		Verifier:       stubVerifier{},
		Logger:         logger,
	})
	return h, events, users
}

func TestRouter_EventRoutes(t *testing.T) {
	const id = "6f1c2a52-5a4e-4d8e-9c1b-3f7d2e8a9b10"
	tests := []struct {
		method     string
		path       string
		wantCalled string
		wantStatus int
	}{
		{http.MethodGet, "/api/events", "list", http.StatusOK},
		{http.MethodGet, "/api/events/upcoming", "upcoming", http.StatusOK},
		{http.MethodGet, "/api/events/" + id, "get", http.StatusNotFound},
		{http.MethodPatch, "/api/events/" + id, "update", http.StatusNotFound},
		{http.MethodDelete, "/api/events/" + id, "delete", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			h, events, _ := newTestRouter()
			var body io.Reader
			if tt.method == http.MethodPatch {
				body = strings.NewReader(`{"title":"X"}`)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, body))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, events.called)
		})
	}
}

func TestRouter_Health(t *testing.T) {
	h, _, _ := newTestRouter()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeaderName))
}

func TestRouter_UsersMeRequiresAuth(t *testing.T) {
	h, _, users := newTestRouter()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users/me/registrations", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-1", users.lastID)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h, events, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodOptions, "/api/events", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, events.called)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	h, _, _ := newTestRouter()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/events", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

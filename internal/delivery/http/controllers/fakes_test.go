package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"techevents/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	eventID = "6f1c2a52-5a4e-4d8e-9c1b-3f7d2e8a9b10"
	userID  = "0b5e8c7a-1d2f-4e3a-9b8c-7d6e5f4a3b21"
)

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	events      []*domain.Event
	upcoming    []*domain.UpcomingEvent
	event       *domain.Event
	err         error
	calls       int
	lastID      string
	lastDay     *time.Time
	lastCreated *domain.Event
	lastPatch   domain.EventPatch
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	f.calls++
	return f.events, f.err
}

func (f *fakeEventService) ListUpcoming(ctx context.Context, day *time.Time) ([]*domain.UpcomingEvent, error) {
	f.calls++
	f.lastDay = day
	return f.upcoming, f.err
}

func (f *fakeEventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	f.calls++
	f.lastID = id
	return f.event, f.err
}

func (f *fakeEventService) CreateEvent(ctx context.Context, e *domain.Event) error {
	f.calls++
	f.lastCreated = e
	if f.err != nil {
		return f.err
	}
	e.ID = "ev-created"
	e.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	e.UpdatedAt = e.CreatedAt
	return nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	f.calls++
	f.lastID = id
	f.lastPatch = patch
	return f.event, f.err
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id string) error {
	f.calls++
	f.lastID = id
	return f.err
}

// fakeAttendeeService implements domain.AttendeeService for handler tests.
type fakeAttendeeService struct {
	registered    map[string]bool
	registerErr   error
	unregisterErr error
	listErr       error
	list          []*domain.RegistrationWithEvent
	calls         int
	lastEventID   string
	lastUserID    string
}

func (f *fakeAttendeeService) Register(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	f.calls++
	f.lastEventID, f.lastUserID = eventID, userID
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if f.registered == nil {
		f.registered = make(map[string]bool)
	}
	key := eventID + ":" + userID
	if f.registered[key] {
		return nil, domain.ErrAlreadyRegistered
	}
	f.registered[key] = true
	return &domain.Registration{ID: "reg-1", EventID: eventID, UserID: userID, RegisteredAt: time.Now()}, nil
}

func (f *fakeAttendeeService) Unregister(ctx context.Context, eventID, userID string) (int64, error) {
	f.calls++
	f.lastEventID, f.lastUserID = eventID, userID
	return 0, f.unregisterErr
}

func (f *fakeAttendeeService) ListMyRegistrations(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	f.calls++
	f.lastUserID = userID
	return f.list, f.listErr
}

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	user            *domain.User
	token           string
	err             error
	lastEmail       string
	lastPassword    string
	lastDisplayName *string
	lastID          string
}

func (f *fakeUserService) SignUp(ctx context.Context, email, password string, displayName *string) (*domain.User, error) {
	f.lastEmail, f.lastPassword, f.lastDisplayName = email, password, displayName
	if f.err != nil {
		return nil, f.err
	}
	return &domain.User{ID: userID, Email: email, PasswordHash: "secret-hash", DisplayName: displayName}, nil
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	f.lastEmail, f.lastPassword = email, password
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.user, nil
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	f.lastID = id
	return f.user, f.err
}

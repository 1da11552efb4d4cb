package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"techevents/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

// fakeEventRepo is an in-memory domain.EventRepository.
type fakeEventRepo struct {
	mu          sync.Mutex
	events      map[string]*domain.Event
	order       []string
	err         error
	insertErr   map[string]error
	tableExists bool
	existsErr   error
	lastPatch   domain.EventPatch
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{events: make(map[string]*domain.Event), tableExists: true}
	for _, e := range events {
		f.events[e.ID] = e
		f.order = append(f.order, e.ID)
	}
	return f
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = "ev-new"
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.events[e.ID] = e
	f.order = append(f.order, e.ID)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Event, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.events[id])
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPatch = patch
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	applyPatch(patch, e)
	return e, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) InsertIfAbsent(ctx context.Context, e *domain.Event) (bool, error) {
	if err := f.insertErr[e.Title]; err != nil {
		return false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[e.ID]; ok {
		return false, nil
	}
	f.events[e.ID] = e
	f.order = append(f.order, e.ID)
	return true, nil
}

func (f *fakeEventRepo) TableExists(ctx context.Context) (bool, error) {
	return f.tableExists, f.existsErr
}

// fakeRegistrationRepo is an in-memory domain.RegistrationRepository keyed by event:user.
type fakeRegistrationRepo struct {
	regs      map[string]*domain.Registration
	byUser    map[string][]*domain.Registration
	getErr    error
	createErr error
	deleteErr error
	created   int
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{
		regs:   make(map[string]*domain.Registration),
		byUser: make(map[string][]*domain.Registration),
	}
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := reg.EventID + ":" + reg.UserID
	if _, ok := f.regs[key]; ok {
		return domain.ErrAlreadyRegistered
	}
	f.created++
	reg.ID = "reg-" + key
	reg.RegisteredAt = time.Now()
	f.regs[key] = reg
	return nil
}

func (f *fakeRegistrationRepo) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if reg, ok := f.regs[eventID+":"+userID]; ok {
		return reg, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegistrationRepo) DeleteByEventAndUser(ctx context.Context, eventID, userID string) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	key := eventID + ":" + userID
	if _, ok := f.regs[key]; !ok {
		return 0, nil
	}
	delete(f.regs, key)
	return 1, nil
}

func (f *fakeRegistrationRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byUser[userID], nil
}

// fakeUserRepo is an in-memory domain.UserRepository.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	createErr error
	getErr    error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: make(map[string]*domain.User), byEmail: make(map[string]*domain.User)}
	for _, u := range users {
		f.byID[u.ID] = u
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = "user-" + u.Email
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

// fakeEmailService records confirmation requests.
type fakeEmailService struct {
	sent []*domain.RegistrationEmailData
	err  error
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	err error
}

func (f *fakePasswordHasher) Hash(password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "hash-" + password, nil
}

func (f *fakePasswordHasher) Compare(hash, password string) error {
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err        error
	lastExpiry time.Duration
}

func (f *fakeTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastExpiry = expiry
	return "token-" + userID, nil
}

// fakeMailer implements domain.Mailer for tests.
type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return f.err
}

// fakeRenderer implements domain.EmailTemplateRenderer for tests.
type fakeRenderer struct {
	lastName string
	err      error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	f.lastName = name
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

// applyPatch mirrors the column-by-column UPDATE of the postgres repository.
func applyPatch(p domain.EventPatch, e *domain.Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Address != nil {
		e.Address = *p.Address
	}
	if p.BackgroundImageURL.Present {
		e.BackgroundImageURL = p.BackgroundImageURL.Ptr()
	}
	if p.TargetDate != nil {
		e.TargetDate = *p.TargetDate
	}
	if p.Creator != nil {
		e.Creator = *p.Creator
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.MaxRegistrations.Present {
		e.MaxRegistrations = p.MaxRegistrations.Ptr()
	}
}

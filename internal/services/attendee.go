package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"techevents/internal/domain"
)

type attendeeService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	userRepo         domain.UserRepository
	emailService     domain.EmailService
	logger           *slog.Logger
}

// NewAttendeeService creates an AttendeeService with the given repositories.
// emailService may be nil, in which case no confirmation mail is sent.
func NewAttendeeService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.AttendeeService {
	return &attendeeService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		emailService:     emailService,
		logger:           logger,
	}
}

func (s *attendeeService) Register(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	if _, err := s.registrationRepo.GetByEventAndUser(ctx, eventID, userID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get event registration: %w", err)
	}

	reg := domain.NewRegistration(eventID, userID)
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyRegistered):
			return nil, domain.ErrAlreadyRegistered
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("create event registration: %w", err)
	}

	if err := s.sendConfirmation(ctx, reg); err != nil {
		s.logger.WarnContext(ctx, "registration confirmation not sent",
			"event_id", eventID, "user_id", userID, "err", err)
	}
	return reg, nil
}

func (s *attendeeService) sendConfirmation(ctx context.Context, reg *domain.Registration) error {
	if s.emailService == nil {
		return nil
	}
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	user, err := s.userRepo.GetByID(ctx, reg.UserID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	name := user.Email
	if user.DisplayName != nil && *user.DisplayName != "" {
		name = *user.DisplayName
	}
	return s.emailService.SendRegistrationConfirmation(ctx, &domain.RegistrationEmailData{
		Email:        user.Email,
		DisplayName:  name,
		EventTitle:   event.Title,
		EventDate:    event.Date,
		EventTime:    event.Time,
		EventAddress: event.Address,
	})
}

func (s *attendeeService) Unregister(ctx context.Context, eventID, userID string) (int64, error) {
	deleted, err := s.registrationRepo.DeleteByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return 0, fmt.Errorf("delete event registration: %w", err)
	}
	s.logger.DebugContext(ctx, "unregistered", "event_id", eventID, "user_id", userID, "deleted", deleted)
	return deleted, nil
}

func (s *attendeeService) ListMyRegistrations(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	regs, err := s.registrationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	// One lookup per distinct event; registrations cascade with their event so misses are rare.
	eventsByID := make(map[string]*domain.Event)
	result := make([]*domain.RegistrationWithEvent, 0, len(regs))
	for _, reg := range regs {
		ev, ok := eventsByID[reg.EventID]
		if !ok {
			ev, err = s.eventRepo.GetByID(ctx, reg.EventID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue
				}
				return nil, fmt.Errorf("get event for registration: %w", err)
			}
			eventsByID[reg.EventID] = ev
		}
		result = append(result, &domain.RegistrationWithEvent{
			Registration: reg,
			Event:        ev,
		})
	}
	return result, nil
}

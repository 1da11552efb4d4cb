package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"techevents/internal/domain"
)

// eventGracePeriod is how long after its start an event still counts as upcoming.
const eventGracePeriod = time.Hour

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
	now            func() time.Time
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) ListUpcoming(ctx context.Context, day *time.Time) ([]*domain.UpcomingEvent, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	return upcomingEvents(events, s.now(), day), nil
}

// upcomingEvents keeps events that started no more than eventGracePeriod before now,
// optionally restricted to the UTC calendar day of day, ordered soonest first.
// Events that have started but are still within the grace period are marked live.
func upcomingEvents(events []*domain.Event, now time.Time, day *time.Time) []*domain.UpcomingEvent {
	cutoff := now.Add(-eventGracePeriod)
	out := make([]*domain.UpcomingEvent, 0, len(events))
	for _, e := range events {
		if e.TargetDate.Before(cutoff) {
			continue
		}
		if day != nil && !sameUTCDay(e.TargetDate, *day) {
			continue
		}
		out = append(out, &domain.UpcomingEvent{
			Event: e,
			Live:  !now.Before(e.TargetDate),
		})
	}
	slices.SortStableFunc(out, func(a, b *domain.UpcomingEvent) int {
		return a.TargetDate.Compare(b.TargetDate)
	})
	return out
}

func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event == nil {
		return fmt.Errorf("event is nil")
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

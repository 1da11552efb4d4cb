package domain

import (
	"context"
	"time"
)

// Event is a public listing for a hackathon, competition, workshop or meetup.
// swagger:model Event
type Event struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	Address            string    `json:"address"`
	BackgroundImageURL *string   `json:"background_image_url"`
	TargetDate         time.Time `json:"target_date"`
	Creator            string    `json:"creator"`
	Category           string    `json:"category"`
	MaxRegistrations   *string   `json:"max_registrations"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UpcomingEvent is an Event as listed on the discover feed.
// swagger:model UpcomingEvent
type UpcomingEvent struct {
	*Event
	// Live is true from target_date until one hour after it.
	Live bool `json:"live"`
}

// EventPatch is a partial update. Nil pointers and absent nullable fields are left unchanged.
type EventPatch struct {
	Title              *string
	Description        *string
	Date               *string
	Time               *string
	Address            *string
	BackgroundImageURL NullableString
	TargetDate         *time.Time
	Creator            *string
	Category           *string
	MaxRegistrations   NullableString
}

// IsEmpty reports whether the patch carries no field at all.
func (p EventPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Date == nil && p.Time == nil &&
		p.Address == nil && !p.BackgroundImageURL.Present && p.TargetDate == nil &&
		p.Creator == nil && p.Category == nil && !p.MaxRegistrations.Present
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	// Create inserts e and fills ID and timestamps from the store.
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// List returns every event ordered by target_date descending.
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id string) error
	// InsertIfAbsent inserts e with its preset ID and skips silently on conflict.
	InsertIfAbsent(ctx context.Context, e *Event) (inserted bool, err error)
	// TableExists reports whether the events table has been migrated.
	TableExists(ctx context.Context) (bool, error)
}

// EventService defines the business logic for browsing and managing events.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	// ListUpcoming returns events that have not ended, optionally limited to one UTC day, soonest first.
	ListUpcoming(ctx context.Context, day *time.Time) ([]*UpcomingEvent, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	CreateEvent(ctx context.Context, e *Event) error
	UpdateEvent(ctx context.Context, id string, patch EventPatch) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

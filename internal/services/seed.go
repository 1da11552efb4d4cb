package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"techevents/internal/domain"
)

// seedNamespace scopes the name-based UUIDs given to catalog entries.
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://techevents.dev/seed"))

// SeedCreatorID is the creator recorded on every demo event.
var SeedCreatorID = uuid.NewSHA1(seedNamespace, []byte("creator:admin")).String()

// SeedEventID returns the stable id of the catalog entry with the given title.
func SeedEventID(title string) string {
	return uuid.NewSHA1(seedNamespace, []byte("event:"+title)).String()
}

// Seeder loads the demo event catalog into an empty or partially seeded store.
type Seeder struct {
	events  domain.EventRepository
	catalog []domain.Event
	logger  *slog.Logger
}

func NewSeeder(events domain.EventRepository, logger *slog.Logger) *Seeder {
	return &Seeder{events: events, catalog: demoEvents(), logger: logger}
}

// Seed inserts every catalog entry that is not already present and returns how many rows it added.
// It is a no-op when the events table does not exist. Failures are logged, never returned.
func (s *Seeder) Seed(ctx context.Context) int {
	exists, err := s.events.TableExists(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "seed skipped", "err", err)
		return 0
	}
	if !exists {
		s.logger.DebugContext(ctx, "seed skipped, events table missing")
		return 0
	}

	var errs error
	inserted := 0
	for i := range s.catalog {
		e := s.catalog[i]
		ok, err := s.events.InsertIfAbsent(ctx, &e)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("seed %q: %w", e.Title, err))
			continue
		}
		if ok {
			inserted++
		}
	}
	if errs != nil {
		s.logger.WarnContext(ctx, "demo events partially seeded",
			"inserted", inserted, "failed", len(multierr.Errors(errs)), "err", errs)
		return inserted
	}
	s.logger.InfoContext(ctx, "demo events seeded", "inserted", inserted, "catalog", len(s.catalog))
	return inserted
}

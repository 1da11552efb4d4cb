package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"techevents/internal/domain"
)

const eventColumns = `id, title, description, date, time, address, background_image_url, target_date, creator, category, max_registrations, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func scanEvent(s rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var imgNull, maxNull sql.NullString
	err := s.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Address, &imgNull,
		&e.TargetDate, &e.Creator, &e.Category, &maxNull, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if imgNull.Valid {
		e.BackgroundImageURL = &imgNull.String
	}
	if maxNull.Valid {
		e.MaxRegistrations = &maxNull.String
	}
	return e, nil
}

// notFound maps a missing row, or an id that is not a UUID, to domain.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) || pqCode(err) == codeInvalidText {
		return domain.ErrNotFound
	}
	return err
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, date, time, address, background_image_url, target_date, creator, category, max_registrations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Date, e.Time, e.Address, e.BackgroundImageURL,
		e.TargetDate, e.Creator, e.Category, e.MaxRegistrations,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY target_date DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	setClauses := []string{"updated_at = NOW()"}
	args := []any{}
	n := 1
	set := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Date != nil {
		set("date", *patch.Date)
	}
	if patch.Time != nil {
		set("time", *patch.Time)
	}
	if patch.Address != nil {
		set("address", *patch.Address)
	}
	if patch.BackgroundImageURL.Present {
		set("background_image_url", patch.BackgroundImageURL.Ptr())
	}
	if patch.TargetDate != nil {
		set("target_date", *patch.TargetDate)
	}
	if patch.Creator != nil {
		set("creator", *patch.Creator)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.MaxRegistrations.Present {
		set("max_registrations", patch.MaxRegistrations.Ptr())
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return notFound(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) InsertIfAbsent(ctx context.Context, e *domain.Event) (bool, error) {
	query := `
		INSERT INTO events (id, title, description, date, time, address, background_image_url, target_date, creator, category, max_registrations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Description, e.Date, e.Time, e.Address, e.BackgroundImageURL,
		e.TargetDate, e.Creator, e.Category, e.MaxRegistrations,
	)
	if err != nil {
		if pqCode(err) == codeUndefinedTable {
			return false, domain.ErrTableMissing
		}
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *eventRepository) TableExists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT to_regclass('public.events') IS NOT NULL`).Scan(&exists)
	return exists, err
}

package postgres

import (
	"context"
	"database/sql"

	"techevents/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO event_registrations (event_id, user_id)
		VALUES ($1, $2)
		RETURNING id, registered_at
	`
	err := r.DB.QueryRowContext(ctx, query, reg.EventID, reg.UserID).
		Scan(&reg.ID, &reg.RegisteredAt)
	switch pqCode(err) {
	case codeUniqueViolation:
		return domain.ErrAlreadyRegistered
	case codeForeignKeyViolation, codeInvalidText:
		return domain.ErrNotFound
	}
	return err
}

func (r *registrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `
		SELECT id, event_id, user_id, registered_at
		FROM event_registrations
		WHERE event_id = $1 AND user_id = $2
	`
	reg := &domain.Registration{}
	err := r.DB.QueryRowContext(ctx, query, eventID, userID).
		Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.RegisteredAt)
	if err != nil {
		return nil, notFound(err)
	}
	return reg, nil
}

func (r *registrationRepository) DeleteByEventAndUser(ctx context.Context, eventID, userID string) (int64, error) {
	query := `DELETE FROM event_registrations WHERE event_id = $1 AND user_id = $2`
	result, err := r.DB.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		if pqCode(err) == codeInvalidText {
			return 0, nil
		}
		return 0, err
	}
	return result.RowsAffected()
}

func (r *registrationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, event_id, user_id, registered_at
		FROM event_registrations
		WHERE user_id = $1
		ORDER BY registered_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := []*domain.Registration{}
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.RegisteredAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return regs, nil
}

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"techevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()
	registeredAt := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO event_registrations \(event_id, user_id\)`).
					WithArgs("ev-1", "user-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "registered_at"}).AddRow("reg-1", registeredAt))
			},
		},
		{
			name: "unique violation is already registered",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO event_registrations`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrAlreadyRegistered,
		},
		{
			name: "foreign key violation is not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO event_registrations`).
					WillReturnError(&pq.Error{Code: "23503"})
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO event_registrations`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			reg := domain.NewRegistration("ev-1", "user-1")
			err = NewRegistrationRepository(db).Create(ctx, reg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "reg-1", reg.ID)
				assert.Equal(t, registeredAt, reg.RegisteredAt)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_GetByEventAndUser(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, event_id, user_id, registered_at FROM event_registrations WHERE event_id = \$1 AND user_id = \$2`).
			WithArgs("ev-1", "user-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "user_id", "registered_at"}).
				AddRow("reg-1", "ev-1", "user-1", time.Now()))

		reg, err := NewRegistrationRepository(db).GetByEventAndUser(ctx, "ev-1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "reg-1", reg.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not registered", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, event_id, user_id, registered_at FROM event_registrations`).
			WillReturnError(sql.ErrNoRows)

		_, err = NewRegistrationRepository(db).GetByEventAndUser(ctx, "ev-1", "user-1")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRegistrationRepository_DeleteByEventAndUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    int64
		wantErr bool
	}{
		{
			name: "one row",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM event_registrations WHERE event_id = \$1 AND user_id = \$2`).
					WithArgs("ev-1", "user-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: 1,
		},
		{
			name: "nothing to delete",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM event_registrations`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			want: 0,
		},
		{
			name: "malformed id deletes nothing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM event_registrations`).
					WillReturnError(&pq.Error{Code: "22P02"})
			},
			want: 0,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM event_registrations`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			got, err := NewRegistrationRepository(db).DeleteByEventAndUser(ctx, "ev-1", "user-1")
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_ListByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, event_id, user_id, registered_at FROM event_registrations WHERE user_id = \$1 ORDER BY registered_at DESC`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "user_id", "registered_at"}).
			AddRow("reg-2", "ev-2", "user-1", now).
			AddRow("reg-1", "ev-1", "user-1", now.Add(-time.Hour)))

	regs, err := NewRegistrationRepository(db).ListByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, "reg-2", regs[0].ID)
	assert.Equal(t, "ev-1", regs[1].EventID)
	require.NoError(t, mock.ExpectationsWereMet())
}

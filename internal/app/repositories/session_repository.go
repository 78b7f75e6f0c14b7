package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/pkg/apperrors"
	"github.com/yigit/examtable/internal/pkg/dberrors"
)

// SessionRepository handles database operations for examination sessions
type SessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new session and fills in its assigned ID
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := r.sb.Insert("sessions").
		Columns("label", "start_time", "end_time").
		Values(session.Label, session.StartTime, session.EndTime).
		Suffix("RETURNING id")

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&session.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "sessions_label_key") {
			return apperrors.ErrSessionLabelExists
		}
		return fmt.Errorf("error creating session: %w", err)
	}

	return nil
}

// GetAll retrieves all sessions ordered by start time
func (r *SessionRepository) GetAll(ctx context.Context) ([]models.Session, error) {
	query := r.sb.Select("id", "label", "start_time", "end_time").
		From("sessions").
		OrderBy("start_time", "id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.Label, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// GetByID retrieves a session by ID, returning (nil, nil) when absent
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRow(ctx,
		`SELECT id, label, start_time, end_time FROM sessions WHERE id = $1`, id).
		Scan(&s.ID, &s.Label, &s.StartTime, &s.EndTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &s, nil
}

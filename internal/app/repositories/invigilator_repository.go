package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/pkg/apperrors"
	"github.com/yigit/examtable/internal/pkg/dberrors"
)

// InvigilatorRepository handles database operations for invigilators and
// their assignment edges to exams.
type InvigilatorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInvigilatorRepository creates a new InvigilatorRepository
func NewInvigilatorRepository(db *pgxpool.Pool) *InvigilatorRepository {
	return &InvigilatorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new invigilator and fills in its assigned ID
func (r *InvigilatorRepository) Create(ctx context.Context, inv *models.Invigilator) error {
	query := r.sb.Insert("invigilators").
		Columns("name", "code").
		Values(inv.Name, inv.Code).
		Suffix("RETURNING id")

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&inv.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "invigilators_code_key") {
			return apperrors.ErrInvigilatorCodeExists
		}
		return fmt.Errorf("error creating invigilator: %w", err)
	}

	return nil
}

// GetAll retrieves all invigilators ordered by name
func (r *InvigilatorRepository) GetAll(ctx context.Context) ([]models.Invigilator, error) {
	query := r.sb.Select("id", "name", "code").
		From("invigilators").
		OrderBy("name", "id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return collectInvigilators(rows)
}

// MissingIDs returns the subset of ids with no matching invigilator row.
// Runs inside the replacement transaction so the validation and the write see
// the same snapshot.
func (r *InvigilatorRepository) MissingIDs(ctx context.Context, tx pgx.Tx, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := tx.Query(ctx, `SELECT id FROM invigilators WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	found := make(map[int64]bool, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		found[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var missing []int64
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// ReplaceForExam clears the exam's assignment edges and writes the new set.
// Callers must run it inside a transaction: a reader must never observe the
// cleared-but-not-yet-rewritten intermediate state.
func (r *InvigilatorRepository) ReplaceForExam(ctx context.Context, tx pgx.Tx, examID int64, ids []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM exam_invigilators WHERE exam_id = $1`, examID); err != nil {
		return fmt.Errorf("error clearing assignments: %w", err)
	}

	for _, id := range ids {
		_, err := tx.Exec(ctx,
			`INSERT INTO exam_invigilators (exam_id, invigilator_id) VALUES ($1, $2)`,
			examID, id)
		if err != nil {
			return fmt.Errorf("error assigning invigilator %d: %w", id, err)
		}
	}

	return nil
}

// GetByExam retrieves the current roster for an exam
func (r *InvigilatorRepository) GetByExam(ctx context.Context, examID int64) ([]models.Invigilator, error) {
	query := r.sb.Select("i.id", "i.name", "i.code").
		From("invigilators i").
		Join("exam_invigilators ei ON ei.invigilator_id = i.id").
		Where("ei.exam_id = ?", examID).
		OrderBy("i.name", "i.id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return collectInvigilators(rows)
}

func collectInvigilators(rows pgx.Rows) ([]models.Invigilator, error) {
	var invigilators []models.Invigilator
	for rows.Next() {
		var inv models.Invigilator
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Code); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		invigilators = append(invigilators, inv)
	}
	return invigilators, rows.Err()
}

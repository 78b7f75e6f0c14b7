package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/examtable/internal/app/models"
)

// ExamRepository handles database operations for scheduled exams. Inserts and
// same-date snapshot reads take an open transaction because the registry's
// evaluate-then-insert must be indivisible.
type ExamRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const examColumns = `id, course_code, course_title, department, level, venue_id,
	exam_date, start_time, end_time, number_of_students, created_by`

// Insert writes a new exam row and fills in its assigned ID
func (r *ExamRepository) Insert(ctx context.Context, tx pgx.Tx, exam *models.Exam) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO exams
			(course_code, course_title, department, level, venue_id,
			 exam_date, start_time, end_time, number_of_students, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		exam.CourseCode, exam.CourseTitle, exam.Department, exam.Level, exam.VenueID,
		exam.ExamDate, exam.StartTime, exam.EndTime, exam.NumberOfStudents, exam.CreatedBy,
	).Scan(&exam.ID)
	if err != nil {
		return fmt.Errorf("error inserting exam: %w", err)
	}
	return nil
}

// ListByDate returns every exam on the given date, the snapshot the conflict
// evaluator decides against.
func (r *ExamRepository) ListByDate(ctx context.Context, tx pgx.Tx, examDate string) ([]models.Exam, error) {
	rows, err := tx.Query(ctx,
		`SELECT `+examColumns+` FROM exams WHERE exam_date = $1`, examDate)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return collectExams(rows)
}

// ExistsTx reports whether an exam row exists, within an open transaction
func (r *ExamRepository) ExistsTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM exams WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// GetByID retrieves an exam by ID, returning (nil, nil) when absent
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	var e models.Exam
	err := r.db.QueryRow(ctx,
		`SELECT `+examColumns+` FROM exams WHERE id = $1`, id).
		Scan(&e.ID, &e.CourseCode, &e.CourseTitle, &e.Department, &e.Level, &e.VenueID,
			&e.ExamDate, &e.StartTime, &e.EndTime, &e.NumberOfStudents, &e.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &e, nil
}

// GetAll retrieves all exams with their venue, ordered by date then start time
func (r *ExamRepository) GetAll(ctx context.Context) ([]models.Exam, error) {
	return r.listWithVenue(ctx, nil)
}

// GetByDepartment retrieves a department's exams with their venue
func (r *ExamRepository) GetByDepartment(ctx context.Context, department string) ([]models.Exam, error) {
	return r.listWithVenue(ctx, squirrel.Eq{"e.department": department})
}

func (r *ExamRepository) listWithVenue(ctx context.Context, where interface{}) ([]models.Exam, error) {
	query := r.sb.Select(
		"e.id", "e.course_code", "e.course_title", "e.department", "e.level",
		"e.venue_id", "e.exam_date", "e.start_time", "e.end_time",
		"e.number_of_students", "e.created_by",
		"v.name", "v.capacity",
	).
		From("exams e").
		Join("venues v ON e.venue_id = v.id").
		OrderBy("e.exam_date", "e.start_time", "e.id")

	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var exams []models.Exam
	for rows.Next() {
		var e models.Exam
		var v models.Venue
		err := rows.Scan(&e.ID, &e.CourseCode, &e.CourseTitle, &e.Department, &e.Level,
			&e.VenueID, &e.ExamDate, &e.StartTime, &e.EndTime,
			&e.NumberOfStudents, &e.CreatedBy,
			&v.Name, &v.Capacity)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		v.ID = e.VenueID
		e.Venue = &v
		exams = append(exams, e)
	}

	return exams, rows.Err()
}

// GetTimetable returns the full read-only timetable: every exam with its venue
// and complete invigilator roster, ordered by date then start time.
func (r *ExamRepository) GetTimetable(ctx context.Context) ([]models.Exam, error) {
	exams, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(exams) == 0 {
		return exams, nil
	}

	// One pass over all assignment edges, grouped onto the exams in memory
	rows, err := r.db.Query(ctx, `
		SELECT ei.exam_id, i.id, i.name, i.code
		FROM exam_invigilators ei
		JOIN invigilators i ON i.id = ei.invigilator_id
		ORDER BY i.name, i.id`)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]*models.Exam, len(exams))
	for i := range exams {
		byID[exams[i].ID] = &exams[i]
	}

	for rows.Next() {
		var examID int64
		var inv models.Invigilator
		if err := rows.Scan(&examID, &inv.ID, &inv.Name, &inv.Code); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		if exam, ok := byID[examID]; ok {
			exam.Invigilators = append(exam.Invigilators, inv)
		}
	}

	return exams, rows.Err()
}

func collectExams(rows pgx.Rows) ([]models.Exam, error) {
	var exams []models.Exam
	for rows.Next() {
		var e models.Exam
		err := rows.Scan(&e.ID, &e.CourseCode, &e.CourseTitle, &e.Department, &e.Level,
			&e.VenueID, &e.ExamDate, &e.StartTime, &e.EndTime,
			&e.NumberOfStudents, &e.CreatedBy)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

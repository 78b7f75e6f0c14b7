package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/app/repositories"
	"github.com/yigit/examtable/internal/db"
	"github.com/yigit/examtable/internal/pkg/apperrors"
	"github.com/yigit/examtable/internal/pkg/logger"
)

// SchedulingService is the exam registry: it owns every write to the exams
// table and wraps the conflict check and the insert in one atomic unit.
type SchedulingService interface {
	ScheduleExam(ctx context.Context, draft *models.ExamDraft, access *models.AccessContext) (*models.Exam, error)
	ListAll(ctx context.Context) ([]models.Exam, error)
	ListByDepartment(ctx context.Context, department string) ([]models.Exam, error)
	Timetable(ctx context.Context) ([]models.Exam, error)
}

type schedulingServiceImpl struct {
	store       *db.PostgresDB
	examRepo    *repositories.ExamRepository
	venueRepo   *repositories.VenueRepository
	sessionRepo *repositories.SessionRepository
}

// NewSchedulingService creates a new SchedulingService
func NewSchedulingService(
	store *db.PostgresDB,
	examRepo *repositories.ExamRepository,
	venueRepo *repositories.VenueRepository,
	sessionRepo *repositories.SessionRepository,
) SchedulingService {
	return &schedulingServiceImpl{
		store:       store,
		examRepo:    examRepo,
		venueRepo:   venueRepo,
		sessionRepo: sessionRepo,
	}
}

// ScheduleExam checks a proposed exam for admissibility and persists it, all
// inside one SERIALIZABLE transaction. Two concurrent proposals racing for
// the same slot cannot both commit: the loser's snapshot read conflicts at
// commit, the transaction is retried once against the fresh state and then
// sees the winner's row as a clash. On any rejection or fault the transaction
// rolls back with no side effects.
func (s *schedulingServiceImpl) ScheduleExam(ctx context.Context, draft *models.ExamDraft, access *models.AccessContext) (*models.Exam, error) {
	// A session reference carries the time window; copy it before evaluating
	if draft.SessionID != nil {
		session, err := s.sessionRepo.GetByID(ctx, *draft.SessionID)
		if err != nil {
			return nil, fmt.Errorf("error resolving session: %w", err)
		}
		if session == nil {
			return nil, apperrors.ErrSessionNotFound
		}
		draft.StartTime = session.StartTime
		draft.EndTime = session.EndTime
	}

	// Department and creator come from the access context, never the body
	exam := &models.Exam{
		CourseCode:       draft.CourseCode,
		CourseTitle:      draft.CourseTitle,
		Department:       access.Department,
		Level:            draft.Level,
		VenueID:          draft.VenueID,
		ExamDate:         draft.ExamDate,
		StartTime:        draft.StartTime,
		EndTime:          draft.EndTime,
		NumberOfStudents: draft.NumberOfStudents,
		CreatedBy:        access.AccessKey,
	}
	draft.Department = access.Department

	err := s.store.WithSerializableTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		venue, err := s.venueRepo.GetByIDTx(ctx, tx, draft.VenueID)
		if err != nil {
			return err
		}

		sameDate, err := s.examRepo.ListByDate(ctx, tx, draft.ExamDate)
		if err != nil {
			return err
		}

		if err := CheckAdmissible(draft, venue, sameDate); err != nil {
			return err
		}

		return s.examRepo.Insert(ctx, tx, exam)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("exam_id", exam.ID).
		Str("course", exam.CourseCode).
		Str("date", exam.ExamDate).
		Int64("venue_id", exam.VenueID).
		Msg("Exam scheduled")
	return exam, nil
}

// ListAll returns every scheduled exam with its venue
func (s *schedulingServiceImpl) ListAll(ctx context.Context) ([]models.Exam, error) {
	return s.examRepo.GetAll(ctx)
}

// ListByDepartment returns a department's exams with their venue
func (s *schedulingServiceImpl) ListByDepartment(ctx context.Context, department string) ([]models.Exam, error) {
	return s.examRepo.GetByDepartment(ctx, department)
}

// Timetable returns the full read-only timetable projection
func (s *schedulingServiceImpl) Timetable(ctx context.Context) ([]models.Exam, error) {
	return s.examRepo.GetTimetable(ctx)
}

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

// InvigilatorService owns the exam_invigilators edges: the roster of an exam
// is always the entire set from the most recent replacement, never a delta.
type InvigilatorService interface {
	ReplaceRoster(ctx context.Context, examID int64, invigilatorIDs []int64) error
	GetRoster(ctx context.Context, examID int64) ([]models.Invigilator, error)
}

type invigilatorServiceImpl struct {
	store    *db.PostgresDB
	invRepo  *repositories.InvigilatorRepository
	examRepo *repositories.ExamRepository
}

// NewInvigilatorService creates a new InvigilatorService
func NewInvigilatorService(
	store *db.PostgresDB,
	invRepo *repositories.InvigilatorRepository,
	examRepo *repositories.ExamRepository,
) InvigilatorService {
	return &invigilatorServiceImpl{
		store:    store,
		invRepo:  invRepo,
		examRepo: examRepo,
	}
}

// ReplaceRoster atomically replaces the exam's entire invigilator set.
// Duplicate ids are deduplicated; an unknown exam or invigilator id aborts
// the whole replacement before anything is cleared. A concurrent roster
// reader observes either the old set in full or the new set in full.
func (s *invigilatorServiceImpl) ReplaceRoster(ctx context.Context, examID int64, invigilatorIDs []int64) error {
	ids := dedupeIDs(invigilatorIDs)

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		exists, err := s.examRepo.ExistsTx(ctx, tx, examID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrExamNotFound
		}

		missing, err := s.invRepo.MissingIDs(ctx, tx, ids)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return apperrors.NewCustomError(apperrors.ErrInvigilatorNotFound,
				fmt.Sprintf("unknown invigilator ids: %v", missing)).
				WithDetails(map[string]interface{}{"missing_ids": missing})
		}

		return s.invRepo.ReplaceForExam(ctx, tx, examID, ids)
	})
	if err != nil {
		return err
	}

	logger.Info().
		Int64("exam_id", examID).
		Int("roster_size", len(ids)).
		Msg("Invigilator roster replaced")
	return nil
}

// GetRoster returns the exam's current roster
func (s *invigilatorServiceImpl) GetRoster(ctx context.Context, examID int64) ([]models.Invigilator, error) {
	exam, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, err
	}
	if exam == nil {
		return nil, apperrors.ErrExamNotFound
	}
	return s.invRepo.GetByExam(ctx, examID)
}

// dedupeIDs removes duplicates while preserving first-seen order
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

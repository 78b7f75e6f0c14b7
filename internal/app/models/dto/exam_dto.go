package dto

import (
	"fmt"
	"regexp"
	"time"

	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/pkg/apperrors"
)

// timePattern matches fixed-width HH:MM wall-clock values. The width matters:
// lexicographic comparison of these strings is chronological comparison.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

const dateLayout = "2006-01-02"

// ScheduleExamRequest is a department officer's proposed exam. Either a
// session_id or a raw start_time/end_time pair must be supplied; department
// and creator are taken from the access context, never from the body.
type ScheduleExamRequest struct {
	CourseCode       string `json:"course_code" binding:"required"`
	CourseTitle      string `json:"course_title" binding:"required"`
	Level            string `json:"level"`
	VenueID          int64  `json:"venue_id" binding:"required,gt=0"`
	SessionID        *int64 `json:"session_id"`
	ExamDate         string `json:"exam_date" binding:"required"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	NumberOfStudents int    `json:"number_of_students" binding:"required,gt=0"`
}

// Validate performs the format checks gin's binding tags cannot express.
// The core assumes well-typed, pre-validated drafts; this is the boundary
// that guarantees it.
func (r *ScheduleExamRequest) Validate() error {
	if _, err := time.Parse(dateLayout, r.ExamDate); err != nil {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("exam_date must be YYYY-MM-DD, got %q", r.ExamDate))
	}

	if r.SessionID != nil {
		if r.StartTime != "" || r.EndTime != "" {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed,
				"provide either session_id or start_time/end_time, not both")
		}
		return nil
	}

	if !timePattern.MatchString(r.StartTime) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("start_time must be HH:MM, got %q", r.StartTime))
	}
	if !timePattern.MatchString(r.EndTime) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("end_time must be HH:MM, got %q", r.EndTime))
	}
	if r.StartTime >= r.EndTime {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed,
			"start_time must be before end_time")
	}

	return nil
}

// ToDraft converts the validated request into the core's exam draft
func (r *ScheduleExamRequest) ToDraft() *models.ExamDraft {
	return &models.ExamDraft{
		CourseCode:       r.CourseCode,
		CourseTitle:      r.CourseTitle,
		Level:            r.Level,
		VenueID:          r.VenueID,
		SessionID:        r.SessionID,
		ExamDate:         r.ExamDate,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		NumberOfStudents: r.NumberOfStudents,
	}
}

// AssignInvigilatorsRequest carries the full replacement roster for an exam.
// An empty list is valid and clears the roster.
type AssignInvigilatorsRequest struct {
	InvigilatorIDs []int64 `json:"invigilator_ids" binding:"required"`
}

package services

import (
	"fmt"

	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/pkg/apperrors"
)

// ClashAxis names the resource axis a scheduling conflict occurred on
type ClashAxis string

const (
	ClashAxisVenue      ClashAxis = "venue"
	ClashAxisDepartment ClashAxis = "department_level"
)

// Overlaps reports whether two half-open [start, end) windows intersect.
// Times are fixed-width HH:MM strings, so string comparison is time
// comparison. An exam ending exactly when another begins does not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return !(aEnd <= bStart || aStart >= bEnd)
}

// CheckAdmissible decides whether a proposed exam may be inserted, given the
// resolved venue (nil when the draft's venue_id matched nothing) and a
// snapshot of every exam already scheduled on the draft's date. All outcomes
// other than nil are rejections, not faults.
//
// A clash exists when the time windows overlap and the exams either share a
// venue or share a (department, level) pair. Both conditions are gated by the
// overlap predicate independently; the axis of the first clash found is
// reported in the error details.
func CheckAdmissible(draft *models.ExamDraft, venue *models.Venue, sameDate []models.Exam) error {
	if venue == nil {
		return apperrors.ErrVenueNotFound
	}

	if draft.NumberOfStudents > venue.Capacity {
		return apperrors.NewCustomError(apperrors.ErrCapacityExceeded,
			fmt.Sprintf("venue %s holds %d students, %d proposed", venue.Name, venue.Capacity, draft.NumberOfStudents)).
			WithDetails(map[string]interface{}{
				"venue_id":           venue.ID,
				"capacity":           venue.Capacity,
				"number_of_students": draft.NumberOfStudents,
			})
	}

	for i := range sameDate {
		existing := &sameDate[i]
		if !Overlaps(existing.StartTime, existing.EndTime, draft.StartTime, draft.EndTime) {
			continue
		}

		var axis ClashAxis
		switch {
		case existing.VenueID == draft.VenueID:
			axis = ClashAxisVenue
		case existing.Department == draft.Department && existing.Level == draft.Level:
			axis = ClashAxisDepartment
		default:
			continue
		}

		return apperrors.NewCustomError(apperrors.ErrExamClash,
			fmt.Sprintf("clashes with %s (%s-%s) on the %s axis",
				existing.CourseCode, existing.StartTime, existing.EndTime, axis)).
			WithDetails(map[string]interface{}{
				"axis":              string(axis),
				"clashing_exam_id":  existing.ID,
				"clashing_course":   existing.CourseCode,
				"clashing_interval": existing.StartTime + "-" + existing.EndTime,
			})
	}

	return nil
}

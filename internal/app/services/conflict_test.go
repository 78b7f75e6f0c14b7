package services

import (
	"errors"
	"testing"

	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/pkg/apperrors"
)

func draft(venueID int64, date, start, end string, students int) *models.ExamDraft {
	return &models.ExamDraft{
		CourseCode:       "CS101",
		CourseTitle:      "Intro to Computing",
		Department:       "Computer Science",
		Level:            "200",
		VenueID:          venueID,
		ExamDate:         date,
		StartTime:        start,
		EndTime:          end,
		NumberOfStudents: students,
	}
}

func existing(id, venueID int64, dept, level, start, end string) models.Exam {
	return models.Exam{
		ID:         id,
		CourseCode: "MTH202",
		Department: dept,
		Level:      level,
		VenueID:    venueID,
		ExamDate:   "2024-05-01",
		StartTime:  start,
		EndTime:    end,
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical", "09:00", "11:00", "09:00", "11:00", true},
		{"partial", "09:00", "11:00", "10:00", "12:00", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"abutting after", "09:00", "11:00", "11:00", "13:00", false},
		{"abutting before", "11:00", "13:00", "09:00", "11:00", false},
		{"disjoint", "09:00", "10:00", "11:00", "12:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}
}

func TestCheckAdmissible_VenueNotFound(t *testing.T) {
	err := CheckAdmissible(draft(99, "2024-05-01", "09:00", "11:00", 40), nil, nil)
	if !errors.Is(err, apperrors.ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
}

func TestCheckAdmissible_CapacityExceeded(t *testing.T) {
	venue := &models.Venue{ID: 1, Name: "Main Hall", Capacity: 50}

	err := CheckAdmissible(draft(1, "2024-05-01", "09:00", "11:00", 51), venue, nil)
	if !errors.Is(err, apperrors.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	// Exactly at capacity is admissible
	if err := CheckAdmissible(draft(1, "2024-05-01", "09:00", "11:00", 50), venue, nil); err != nil {
		t.Fatalf("expected admissible at exact capacity, got %v", err)
	}
}

func TestCheckAdmissible_VenueAxisClash(t *testing.T) {
	venue := &models.Venue{ID: 1, Name: "Main Hall", Capacity: 100}
	sameDate := []models.Exam{existing(7, 1, "Mathematics", "100", "10:00", "12:00")}

	err := CheckAdmissible(draft(1, "2024-05-01", "09:00", "11:00", 40), venue, sameDate)
	if !errors.Is(err, apperrors.ErrExamClash) {
		t.Fatalf("expected ErrExamClash, got %v", err)
	}

	details := apperrors.Details(err)
	if details == nil || details["axis"] != string(ClashAxisVenue) {
		t.Errorf("expected venue axis in details, got %v", details)
	}
	if details["clashing_exam_id"] != int64(7) {
		t.Errorf("expected clashing exam id 7, got %v", details["clashing_exam_id"])
	}
}

func TestCheckAdmissible_DepartmentLevelAxisClash(t *testing.T) {
	venue := &models.Venue{ID: 1, Name: "Main Hall", Capacity: 100}
	// Different venue, same department and level
	sameDate := []models.Exam{existing(8, 2, "Computer Science", "200", "10:00", "12:00")}

	err := CheckAdmissible(draft(1, "2024-05-01", "09:00", "11:00", 40), venue, sameDate)
	if !errors.Is(err, apperrors.ErrExamClash) {
		t.Fatalf("expected ErrExamClash, got %v", err)
	}

	details := apperrors.Details(err)
	if details == nil || details["axis"] != string(ClashAxisDepartment) {
		t.Errorf("expected department_level axis in details, got %v", details)
	}
}

func TestCheckAdmissible_SameDepartmentDifferentLevel(t *testing.T) {
	venue := &models.Venue{ID: 1, Name: "Main Hall", Capacity: 100}
	// Same department but different level in another venue: candidates differ
	sameDate := []models.Exam{existing(9, 2, "Computer Science", "400", "10:00", "12:00")}

	if err := CheckAdmissible(draft(1, "2024-05-01", "09:00", "11:00", 40), venue, sameDate); err != nil {
		t.Fatalf("expected admissible, got %v", err)
	}
}

func TestCheckAdmissible_NoOverlapNoClash(t *testing.T) {
	venue := &models.Venue{ID: 1, Name: "Main Hall", Capacity: 100}
	// Same venue, same department/level, but time windows abut
	sameDate := []models.Exam{existing(10, 1, "Computer Science", "200", "11:00", "13:00")}

	if err := CheckAdmissible(draft(1, "2024-05-01", "09:00", "11:00", 40), venue, sameDate); err != nil {
		t.Fatalf("half-open windows that abut must not clash, got %v", err)
	}
}

// TestCheckAdmissible_SequentialScenario walks the canonical booking sequence:
// 09:00-11:00 succeeds, an overlapping 10:00-12:00 in the same venue is
// rejected, the abutting 11:00-13:00 succeeds.
func TestCheckAdmissible_SequentialScenario(t *testing.T) {
	venue := &models.Venue{ID: 1, Name: "Venue V1", Capacity: 50}
	var registry []models.Exam

	first := draft(1, "2024-05-01", "09:00", "11:00", 40)
	first.CourseCode = "CS101"
	if err := CheckAdmissible(first, venue, registry); err != nil {
		t.Fatalf("CS101 should be admissible, got %v", err)
	}
	registry = append(registry, models.Exam{
		ID: 1, CourseCode: "CS101", Department: "Computer Science", Level: "200",
		VenueID: 1, ExamDate: "2024-05-01", StartTime: "09:00", EndTime: "11:00",
	})

	second := draft(1, "2024-05-01", "10:00", "12:00", 30)
	second.CourseCode = "CS102"
	second.Department = "Information Systems"
	if err := CheckAdmissible(second, venue, registry); !errors.Is(err, apperrors.ErrExamClash) {
		t.Fatalf("CS102 overlaps 10:00-11:00 in the same venue, expected clash, got %v", err)
	}

	third := draft(1, "2024-05-01", "11:00", "13:00", 30)
	third.CourseCode = "CS103"
	third.Department = "Information Systems"
	if err := CheckAdmissible(third, venue, registry); err != nil {
		t.Fatalf("CS103 abuts CS101, should be admissible, got %v", err)
	}
}

package models

// Exam is a scheduled examination bound to a venue, a date and a half-open
// [start_time, end_time) window. Dates are YYYY-MM-DD and times HH:MM strings;
// both formats are fixed-width so lexicographic order is chronological order.
// Exams are never updated in place.
type Exam struct {
	ID               int64  `json:"id"`
	CourseCode       string `json:"course_code"`
	CourseTitle      string `json:"course_title"`
	Department       string `json:"department"`
	Level            string `json:"level,omitempty"`
	VenueID          int64  `json:"venue_id"`
	ExamDate         string `json:"exam_date"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	NumberOfStudents int    `json:"number_of_students"`
	CreatedBy        string `json:"created_by,omitempty"`

	// Populated by joined projections only
	Venue        *Venue        `json:"venue,omitempty"`
	Invigilators []Invigilator `json:"invigilators,omitempty"`
}

// ExamDraft is a proposed exam as seen by the conflict evaluator: every Exam
// field except the identifier and the creator/department stamp, which the
// registry takes from the AccessContext. When SessionID is set, the session's
// window is copied into StartTime/EndTime before evaluation.
type ExamDraft struct {
	CourseCode       string
	CourseTitle      string
	Department       string
	Level            string
	VenueID          int64
	SessionID        *int64
	ExamDate         string
	StartTime        string
	EndTime          string
	NumberOfStudents int
}

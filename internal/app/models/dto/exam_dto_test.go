package dto

import (
	"errors"
	"testing"

	"github.com/yigit/examtable/internal/pkg/apperrors"
)

func validRequest() ScheduleExamRequest {
	return ScheduleExamRequest{
		CourseCode:       "CS101",
		CourseTitle:      "Intro to Computing",
		Level:            "200",
		VenueID:          1,
		ExamDate:         "2024-05-01",
		StartTime:        "09:00",
		EndTime:          "11:00",
		NumberOfStudents: 40,
	}
}

func TestScheduleExamRequestValidate(t *testing.T) {
	sessionID := int64(3)

	cases := []struct {
		name   string
		mutate func(*ScheduleExamRequest)
		valid  bool
	}{
		{"raw times", func(r *ScheduleExamRequest) {}, true},
		{"session only", func(r *ScheduleExamRequest) {
			r.SessionID = &sessionID
			r.StartTime = ""
			r.EndTime = ""
		}, true},
		{"session and raw times", func(r *ScheduleExamRequest) {
			r.SessionID = &sessionID
		}, false},
		{"bad date format", func(r *ScheduleExamRequest) { r.ExamDate = "01/05/2024" }, false},
		{"impossible date", func(r *ScheduleExamRequest) { r.ExamDate = "2024-02-30" }, false},
		{"bad start time", func(r *ScheduleExamRequest) { r.StartTime = "9:00" }, false},
		{"hour out of range", func(r *ScheduleExamRequest) { r.EndTime = "24:00" }, false},
		{"start after end", func(r *ScheduleExamRequest) {
			r.StartTime = "14:00"
			r.EndTime = "12:00"
		}, false},
		{"zero-length window", func(r *ScheduleExamRequest) {
			r.StartTime = "12:00"
			r.EndTime = "12:00"
		}, false},
		{"missing times without session", func(r *ScheduleExamRequest) {
			r.StartTime = ""
			r.EndTime = ""
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			err := req.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid {
				if !errors.Is(err, apperrors.ErrValidationFailed) {
					t.Errorf("expected ErrValidationFailed, got %v", err)
				}
			}
		})
	}
}

func TestToDraftCarriesSessionID(t *testing.T) {
	sessionID := int64(5)
	req := validRequest()
	req.SessionID = &sessionID
	req.StartTime = ""
	req.EndTime = ""

	draft := req.ToDraft()
	if draft.SessionID == nil || *draft.SessionID != 5 {
		t.Fatalf("expected session id 5 on draft, got %v", draft.SessionID)
	}
	if draft.CourseCode != req.CourseCode || draft.VenueID != req.VenueID {
		t.Errorf("draft fields diverge from request: %+v", draft)
	}
}

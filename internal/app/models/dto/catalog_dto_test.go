package dto

import (
	"errors"
	"testing"

	"github.com/yigit/examtable/internal/pkg/apperrors"
)

func TestCreateSessionRequestValidate(t *testing.T) {
	cases := []struct {
		name  string
		req   CreateSessionRequest
		valid bool
	}{
		{"morning window", CreateSessionRequest{Label: "Morning", StartTime: "09:00", EndTime: "12:00"}, true},
		{"midnight start", CreateSessionRequest{Label: "Early", StartTime: "00:00", EndTime: "02:00"}, true},
		{"single digit hour", CreateSessionRequest{Label: "Bad", StartTime: "9:00", EndTime: "12:00"}, false},
		{"minute out of range", CreateSessionRequest{Label: "Bad", StartTime: "09:60", EndTime: "12:00"}, false},
		{"inverted window", CreateSessionRequest{Label: "Bad", StartTime: "14:00", EndTime: "09:00"}, false},
		{"zero-length window", CreateSessionRequest{Label: "Bad", StartTime: "09:00", EndTime: "09:00"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected ErrValidationFailed, got %v", err)
			}
		})
	}
}

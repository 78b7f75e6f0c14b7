package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respondWith(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"venue not found", apperrors.ErrVenueNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"exam not found", apperrors.ErrExamNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"capacity exceeded", apperrors.ErrCapacityExceeded, http.StatusBadRequest, dto.ErrorCodeCapacityExceeded},
		{"clash", apperrors.ErrExamClash, http.StatusConflict, dto.ErrorCodeClashDetected},
		{"duplicate session label", apperrors.ErrSessionLabelExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"unknown fault", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := respondWith(tc.err)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if resp.Success {
				t.Error("success must be false on error responses")
			}
			if resp.Error == nil || resp.Error.Code != tc.wantCode {
				t.Errorf("error = %+v, want code %s", resp.Error, tc.wantCode)
			}
		})
	}
}

// Wrapped sentinels map the same as bare ones
func TestHandleAPIError_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("scheduling exam: %w", apperrors.ErrExamClash)
	if w := respondWith(wrapped); w.Code != http.StatusConflict {
		t.Errorf("wrapped clash status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestHandleAPIError_CustomErrorDetails(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrExamClash, "clashes with MTH202").
		WithDetails(map[string]interface{}{"axis": "venue"})

	w := respondWith(err)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	details, ok := resp.Error.Details.(map[string]interface{})
	if !ok || details["axis"] != "venue" {
		t.Errorf("expected axis detail carried to the client, got %v", resp.Error.Details)
	}
	if resp.Error.Message != "clashes with MTH202" {
		t.Errorf("message = %q", resp.Error.Message)
	}
}

// Internal faults must not leak their cause to the client
func TestHandleAPIError_FaultMessageOpaque(t *testing.T) {
	w := respondWith(errors.New("pq: password authentication failed"))

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error.Message != "Internal server error" {
		t.Errorf("fault message leaked: %q", resp.Error.Message)
	}
}

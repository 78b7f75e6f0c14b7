package dto

import (
	"fmt"

	"github.com/yigit/examtable/internal/pkg/apperrors"
)

// CreateVenueRequest represents venue creation data
type CreateVenueRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

// CreateSessionRequest represents session creation data
type CreateSessionRequest struct {
	Label     string `json:"label" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// Validate checks the session window format and ordering
func (r *CreateSessionRequest) Validate() error {
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

// CreateInvigilatorRequest represents invigilator creation data
type CreateInvigilatorRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// CreateRoleRequest registers a department exam officer. The access key is
// generated server-side and returned once.
type CreateRoleRequest struct {
	DepartmentName string `json:"department_name" binding:"required"`
}

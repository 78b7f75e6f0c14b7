package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/pkg/apperrors"
	"github.com/yigit/examtable/internal/pkg/logger"
)

// HandleAPIError maps errors to HTTP responses in one place. Domain
// rejections keep their sentinel-specific code and message; everything else
// is an infrastructure fault and surfaces as a generic 500 (the underlying
// error is logged, never leaked to the client).
func HandleAPIError(c *gin.Context, err error) {
	detail := func(code dto.ErrorCode) *dto.ErrorDetail {
		d := dto.NewErrorDetail(code, err.Error())
		if extra := apperrors.Details(err); extra != nil {
			d = d.WithDetails(extra)
		}
		return d
	}

	switch {
	case errors.Is(err, apperrors.ErrVenueNotFound),
		errors.Is(err, apperrors.ErrSessionNotFound),
		errors.Is(err, apperrors.ErrExamNotFound),
		errors.Is(err, apperrors.ErrInvigilatorNotFound),
		errors.Is(err, apperrors.ErrRoleNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail(dto.ErrorCodeResourceNotFound)))

	case errors.Is(err, apperrors.ErrCapacityExceeded):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail(dto.ErrorCodeCapacityExceeded)))

	case errors.Is(err, apperrors.ErrExamClash):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(detail(dto.ErrorCodeClashDetected)))

	case errors.Is(err, apperrors.ErrSessionLabelExists),
		errors.Is(err, apperrors.ErrInvigilatorCodeExists),
		errors.Is(err, apperrors.ErrAccessKeyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(detail(dto.ErrorCodeResourceAlreadyExists)))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(detail(dto.ErrorCodeForbidden)))

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail(dto.ErrorCodeValidationFailed)))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled internal error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

package apperrors

import "errors"

// Domain rejections. These are expected, user-facing outcomes: they are
// surfaced verbatim to the caller and never retried. Anything that is not one
// of these sentinels is an infrastructure fault.
var (
	ErrVenueNotFound       = errors.New("venue not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrExamNotFound        = errors.New("exam not found")
	ErrInvigilatorNotFound = errors.New("invigilator not found")
	ErrRoleNotFound        = errors.New("role not found")

	ErrCapacityExceeded = errors.New("number of students exceeds venue capacity")
	ErrExamClash        = errors.New("exam clash detected")
)

// Catalog uniqueness rejections
var (
	ErrSessionLabelExists    = errors.New("session label already exists")
	ErrInvigilatorCodeExists = errors.New("invigilator code already exists")
	ErrAccessKeyExists       = errors.New("access key already exists")
)

// Access errors, raised only at the HTTP boundary
var (
	ErrAccessKeyRequired = errors.New("access key required")
	ErrInvalidAccessKey  = errors.New("invalid access key")
	ErrPermissionDenied  = errors.New("permission denied")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// CustomError wraps a sentinel with a human-readable message and optional
// structured details (e.g. which axis an exam clash occurred on).
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap makes CustomError transparent to errors.Is/errors.As
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// Details extracts structured details from err if it carries any
func Details(err error) map[string]interface{} {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Details
	}
	return nil
}

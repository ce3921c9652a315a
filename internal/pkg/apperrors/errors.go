package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidID        = errors.New("invalid identifier")
	ErrBadRequest       = errors.New("bad request")

	// Dependency errors
	ErrServiceUnavailable = errors.New("service unavailable")
)

// Catalog errors
var (
	ErrCollegeNotFound     = NewResourceNotFoundError("college not found")
	ErrCourseNotFound      = NewResourceNotFoundError("course not found")
	ErrScholarshipNotFound = NewResourceNotFoundError("scholarship not found")
)

// Currency errors
var (
	ErrCurrencyUnavailable = errors.New("currency rates unavailable")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
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

// Details returns the context details carried by err, if any.
func Details(err error) (map[string]interface{}, bool) {
	var ce *CustomError
	if errors.As(err, &ce) && len(ce.Details) > 0 {
		return ce.Details, true
	}
	return nil, false
}

// Message returns the client-facing message carried by err, if any.
func Message(err error) (string, bool) {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message, true
	}
	return "", false
}

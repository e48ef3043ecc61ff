package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes. Each maps to exactly one HTTP status so the same failure
// always produces the same response regardless of which handler hit it.
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicateOperation = "DUPLICATE_OPERATION"
	CodeInvalidState       = "INVALID_STATE"
	CodeUpstreamFailure    = "UPSTREAM_FAILURE"
	CodeInternal           = "INTERNAL"
)

var statusByCode = map[string]int{
	CodeValidationFailed:   fiber.StatusBadRequest,
	CodeUnauthenticated:    fiber.StatusUnauthorized,
	CodeUnauthorized:       fiber.StatusUnauthorized,
	CodeNotFound:           fiber.StatusNotFound,
	CodeDuplicateOperation: fiber.StatusBadRequest,
	CodeInvalidState:       fiber.StatusBadRequest,
	CodeUpstreamFailure:    fiber.StatusNotFound,
	CodeInternal:           fiber.StatusInternalServerError,
}

// FieldError is a single field-level validation violation.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// AppError is a custom application error carrying a taxonomy code.
// Validation failures may carry the full set of field violations.
type AppError struct {
	Code    string
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status for the error's code.
func (e *AppError) Status() int {
	if s, ok := statusByCode[e.Code]; ok {
		return s
	}
	return fiber.StatusInternalServerError
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidationFailed, Message: message}
}

// NewFieldErrors wraps a full set of field-level violations. All violations
// are detected before any mutation and reported together, not just the first.
func NewFieldErrors(fields []FieldError) *AppError {
	msg := "Validation failed"
	if len(fields) > 0 {
		msg = fields[0].Msg
	}
	return &AppError{Code: CodeValidationFailed, Message: msg, Fields: fields}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Code: CodeUnauthenticated, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

func NewDuplicateError(message string) *AppError {
	return &AppError{Code: CodeDuplicateOperation, Message: message}
}

func NewInvalidStateError(message string) *AppError {
	return &AppError{Code: CodeInvalidState, Message: message}
}

func NewUpstreamError(message string, err error) *AppError {
	return &AppError{Code: CodeUpstreamFailure, Message: message, Err: err}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Server Error", Err: err}
}

// RespondWithError writes the standardized error body: {"errors": [...]}
// when field violations are present, {"msg": "..."} otherwise. The status
// is derived from the error code; unknown errors become 500.
func RespondWithError(c *fiber.Ctx, err error) error {
	appErr, ok := err.(*AppError)
	if !ok {
		appErr = NewInternalError(err)
	}

	if len(appErr.Fields) > 0 {
		return c.Status(appErr.Status()).JSON(fiber.Map{"errors": appErr.Fields})
	}
	return c.Status(appErr.Status()).JSON(fiber.Map{"msg": appErr.Message})
}

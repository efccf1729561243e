package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Stable machine-readable codes carried in API error payloads. Clients key
// off these rather than the human-readable message.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON body every failed request carries. The Error
// field is always present; Code and Details only when known.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError pairs a user-facing message with one of the stable codes,
// optionally wrapping the underlying cause.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewValidationError reports rejected input. The message is user-facing.
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewUnauthorizedError reports missing or failed authentication.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

// NewNotFoundError reports an absent document.
func NewNotFoundError(resource string, id any) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf("%s %v not found", resource, id)}
}

// NewInternalError hides the cause behind a generic message; the wrapped
// error surfaces only in the Details field and logs.
func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal server error", Err: err}
}

// RespondWithError writes the JSON error body for err with the given status.
// An AppError anywhere in err's chain keeps its code and cause; any other
// error degrades to a bare message.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		resp := ErrorResponse{Error: appErr.Message, Code: appErr.Code}
		if appErr.Err != nil {
			resp.Details = appErr.Err.Error()
		}
		return c.Status(status).JSON(resp)
	}
	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}

package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across services and handlers.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error. When Field is set the error
// is rendered as a field-keyed JSON body ({"email": "Email already exists"}),
// matching the API's validation error shape.
type AppError struct {
	Code    string
	Field   string
	Message string
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

// Predefined error constructors

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewFieldNotFoundError is a NOT_FOUND condition reported under a specific field key.
func NewFieldNotFoundError(field, message string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Field:   field,
		Message: message,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewConflictError is a duplicate-state violation (email, handle, like) reported
// under a specific field key.
func NewConflictError(field, message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Field:   field,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

// NewFieldUnauthorizedError is an ownership violation reported under a specific field key.
func NewFieldUnauthorizedError(field, message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Field:   field,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	if appErr, ok := err.(*AppError); ok {
		if appErr.Field != "" {
			return c.Status(status).JSON(fiber.Map{appErr.Field: appErr.Message})
		}
		response := ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
		return c.Status(status).JSON(response)
	}

	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}

package apperror

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ProviderCallError is a failed call to the language-model provider.
type ProviderCallError struct {
	Provider string
	Err      error
}

func (e *ProviderCallError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Provider, e.Err)
}

func (e *ProviderCallError) Unwrap() error { return e.Err }

// ProviderTimeoutError is a provider call that did not answer before its deadline.
type ProviderTimeoutError struct {
	Provider string
	Timeout  time.Duration
	Err      error
}

func (e *ProviderTimeoutError) Error() string {
	return fmt.Sprintf("%s call timed out after %s", e.Provider, e.Timeout)
}

func (e *ProviderTimeoutError) Unwrap() error { return e.Err }

// InvalidModelOutputError means the model reply could not be reduced to parseable JSON.
// RawText is kept for logging only and is never rendered to clients.
type InvalidModelOutputError struct {
	RawText string `json:"-"`
	Err     error
}

func (e *InvalidModelOutputError) Error() string {
	return fmt.Sprintf("invalid JSON response from model: %v", e.Err)
}

func (e *InvalidModelOutputError) Unwrap() error { return e.Err }

// SchemaValidationError means the parsed reply does not match the evaluation schema.
type SchemaValidationError struct {
	Violations []string
}

func (e *SchemaValidationError) Error() string {
	return "model response does not match schema: " + strings.Join(e.Violations, "; ")
}

// ReferentialIntegrityError means a write referenced a row that does not exist.
type ReferentialIntegrityError struct {
	Entity string
	ID     string
	Err    error
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("referenced %s %q does not exist", e.Entity, e.ID)
}

func (e *ReferentialIntegrityError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// HTTPStatus picks the response status for an error returned by a usecase.
func HTTPStatus(err error) int {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

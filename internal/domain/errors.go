package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	CodeForbidden     ErrorCode = "FORBIDDEN"
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Pipeline specific errors
	CodeGenerationFailed     ErrorCode = "GENERATION_FAILED"
	CodeSyncFailed           ErrorCode = "SYNC_FAILED"
	CodeCatalogNotConfigured ErrorCode = "CATALOG_NOT_CONFIGURED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewForbiddenError(message string) *DomainError {
	return NewError(CodeForbidden, message, nil)
}

func NewAlreadyExistsError(message string) *DomainError {
	return NewError(CodeAlreadyExists, message, nil)
}

// NewGenerationError wraps a failure of the text-generation backend.
func NewGenerationError(err error) *DomainError {
	return NewError(CodeGenerationFailed, "Text generation backend failed", err)
}

// NewSyncError wraps a failure to fetch the remote course catalog.
func NewSyncError(err error) *DomainError {
	return NewError(CodeSyncFailed, "Failed to fetch remote catalog", err)
}

// NewCatalogNotConfiguredError signals that a catalog import was requested
// without a configured remote endpoint.
func NewCatalogNotConfiguredError() *DomainError {
	return NewError(CodeCatalogNotConfigured, "Remote catalog is not configured", nil)
}

// ValidationError represents a validation error
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func NewValidationError(message string) error {
	return &ValidationError{message: message}
}

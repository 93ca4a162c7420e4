// Package errors defines the structured error type shared by the
// kindling CLI. Errors carry a category and a code so callers can
// decide whether a failure aborts the run or degrades to a warning.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeVCS        ErrorType = "vcs"
	ErrorTypeInternal   ErrorType = "internal"
)

// KindlingError is a structured error type with context.
type KindlingError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Path        string
	Recoverable bool
}

// Error implements the error interface.
func (e *KindlingError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Path != "" {
		parts = append(parts, e.Path)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *KindlingError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *KindlingError) Is(target error) bool {
	var t *KindlingError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithPath adds file location information.
func (e *KindlingError) WithPath(path string) *KindlingError {
	e.Path = path

	return e
}

// NewValidationError creates a validation error. Validation errors are
// recoverable: the prompt loop retries instead of aborting.
func NewValidationError(code, message string) *KindlingError {
	return &KindlingError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewIOError creates an I/O error. I/O errors abort the run.
func NewIOError(code, message string, cause error) *KindlingError {
	return &KindlingError{
		Type:        ErrorTypeIO,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *KindlingError {
	return &KindlingError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewVCSError creates a version-control error. VCS errors are
// recoverable: setup reports them as warnings and keeps going.
func NewVCSError(code, message string, cause error) *KindlingError {
	return &KindlingError{
		Type:        ErrorTypeVCS,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *KindlingError {
	return &KindlingError{
		Type:        ErrorTypeInternal,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// Wrap wraps an error with additional context, creating a KindlingError
// if the input is not already one.
func Wrap(err error, errType ErrorType, code, message string) *KindlingError {
	if err == nil {
		return nil
	}

	var ke *KindlingError
	if errors.As(err, &ke) {
		return &KindlingError{
			Type:        errType,
			Code:        code,
			Message:     message,
			Cause:       ke,
			Path:        ke.Path,
			Recoverable: ke.Recoverable,
		}
	}

	return &KindlingError{
		Type:        errType,
		Code:        code,
		Message:     message,
		Cause:       err,
		Recoverable: errType == ErrorTypeValidation || errType == ErrorTypeVCS,
	}
}

// WrapIO wraps an error as an I/O error.
func WrapIO(err error, code, message string) *KindlingError {
	ke := Wrap(err, ErrorTypeIO, code, message)
	if ke != nil {
		ke.Recoverable = false
	}
	return ke
}

// WrapVCS wraps an error as a version-control error.
func WrapVCS(err error, code, message string) *KindlingError {
	ke := Wrap(err, ErrorTypeVCS, code, message)
	if ke != nil {
		ke.Recoverable = true
	}
	return ke
}

// WrapConfig wraps an error as a configuration error.
func WrapConfig(err error, code, message string) *KindlingError {
	ke := Wrap(err, ErrorTypeConfig, code, message)
	if ke != nil {
		ke.Recoverable = false
	}
	return ke
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var ke *KindlingError
	if errors.As(err, &ke) {
		return ke.Recoverable
	}

	return false
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ke *KindlingError
	if errors.As(err, &ke) {
		return ke.Type == ErrorTypeValidation
	}

	return false
}

// IsVCSError checks if an error is version-control related.
func IsVCSError(err error) bool {
	var ke *KindlingError
	if errors.As(err, &ke) {
		return ke.Type == ErrorTypeVCS
	}

	return false
}

// Common error codes.
const (
	ErrCodeInvalidName     = "ERR_INVALID_NAME"
	ErrCodeDescriptorRead  = "ERR_DESCRIPTOR_READ"
	ErrCodeDescriptorParse = "ERR_DESCRIPTOR_PARSE"
	ErrCodeDescriptorWrite = "ERR_DESCRIPTOR_WRITE"
	ErrCodeReadmeWrite     = "ERR_README_WRITE"
	ErrCodeCleanupFailed   = "ERR_CLEANUP_FAILED"
	ErrCodeGitReset        = "ERR_GIT_RESET"
	ErrCodeConfigInvalid   = "ERR_CONFIG_INVALID"
	ErrCodePromptRead      = "ERR_PROMPT_READ"
	ErrCodeInternalError   = "ERR_INTERNAL"
)

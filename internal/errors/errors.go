package errors

import (
	"errors"
	"fmt"
)

// Error codes surfaced by the association-test pipeline
const (
	CodeValidation        = "VALIDATION_ERROR"        // mismatched input lengths
	CodeUnsupportedMethod = "UNSUPPORTED_METHOD"      // method string resolves to no kind
	CodeUnsupportedAlt    = "UNSUPPORTED_ALTERNATIVE" // alternative string not recognized
	CodeIncompatible      = "TEST_INCOMPATIBLE"       // alternative/kind combination not available
	CodeParse             = "PARSE_ERROR"             // table input could not be parsed
	CodeInternal          = "INTERNAL_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new AppError with a formatted message
func Newf(code, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, preserving its code
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Code extracts the error code, or CodeInternal for unstructured errors
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// HasCode reports whether err carries the given code
func HasCode(err error, code string) bool {
	return err != nil && Code(err) == code
}

// Package errors provides structured CLI errors with categories, usage
// strings, and remediation steps for consistent user-facing output.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory classifies an error for display purposes.
type ErrorCategory int

const (
	// Argument indicates invalid user input (bad threshold, malformed URL, unknown mode).
	Argument ErrorCategory = iota
	// Configuration indicates a problem loading or validating configuration.
	Configuration
	// Delivery indicates a failed outbound notification (network error, non-2xx).
	// Delivery errors are logged, never propagated to the caller.
	Delivery
	// Runtime indicates an unexpected failure during execution.
	Runtime
)

// String returns the human-readable category label.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Delivery:
		return "Delivery Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category, optional usage string,
// and remediation steps.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewArgumentError creates an Argument-category error with remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentErrorWithUsage creates an Argument-category error that includes
// a usage string shown before any remediation steps.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewConfigError creates a Configuration-category error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewDeliveryError creates a Delivery-category error.
func NewDeliveryError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Delivery,
		Message:     message,
		Remediation: remediation,
	}
}

// NewRuntimeError creates a Runtime-category error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Runtime,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap converts any error into a CLIError with the given category.
// Returns nil if err is nil.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
	}
}

// WrapWithMessage wraps an error with an additional message prefix.
// Returns nil if err is nil.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %s", message, err.Error()),
		Remediation: remediation,
	}
}

// IsCLIError reports whether err is (or wraps) a *CLIError.
func IsCLIError(err error) bool {
	var cliErr *CLIError
	return stderrors.As(err, &cliErr)
}

// AsCLIError returns the *CLIError inside err, or nil if err is not one.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}

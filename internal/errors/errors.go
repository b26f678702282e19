// Package errors provides structured error handling for the changelog-split CLI.
// Every error shown to the user carries a category, which selects the exit
// code, and a list of remediation steps.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by invalid flags or positional arguments.
	Argument ErrorCategory = iota
	// Configuration errors come from the config file, environment or flag values.
	Configuration
	// Prerequisite errors mean the changelog could not be read.
	Prerequisite
	// Runtime errors happen while writing entries.
	Runtime
)

var categoryNames = map[ErrorCategory]string{
	Argument:      "Argument Error",
	Configuration: "Configuration Error",
	Prerequisite:  "Prerequisite Error",
	Runtime:       "Runtime Error",
}

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Error"
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	Category ErrorCategory
	Message  string
	// Remediation is a list of actionable steps, printed as bullets.
	Remediation []string
	// Usage shows the correct command syntax (argument errors only).
	Usage string
	Cause error
}

func (e *CLIError) Error() string {
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

// New creates a CLIError without an underlying cause.
func New(category ErrorCategory, message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    category,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentError creates an argument error with remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return New(Argument, message, remediation...)
}

// Wrap categorises err, keeping its message. Returns nil for a nil err.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	cliErr := New(category, err.Error(), remediation...)
	cliErr.Cause = err
	return cliErr
}

// WrapWithMessage categorises err and prefixes its message.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	cliErr := New(category, fmt.Sprintf("%s: %v", message, err), remediation...)
	cliErr.Cause = err
	return cliErr
}

// IsCLIError reports whether err is or wraps a CLIError.
func IsCLIError(err error) bool {
	return AsCLIError(err) != nil
}

// AsCLIError returns the first CLIError in err's chain, or nil.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}

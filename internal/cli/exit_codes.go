package cli

import (
	"context"
	"errors"

	clierrors "github.com/ariel-frischer/changelog-split/internal/errors"
)

// Exit codes for the changelog-split CLI.
// A run that skipped unparsable headings still exits with ExitSuccess.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitRuntimeError indicates a failure while writing output
	ExitRuntimeError = 1

	// ExitInvalidArguments indicates invalid command arguments or flags
	ExitInvalidArguments = 2

	// ExitInvalidConfig indicates configuration could not be loaded or validated
	ExitInvalidConfig = 3

	// ExitInputUnreadable indicates the changelog could not be read
	ExitInputUnreadable = 4

	// ExitInterrupted indicates the run was cancelled (Ctrl-C)
	ExitInterrupted = 130
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.Argument:
			return ExitInvalidArguments
		case clierrors.Configuration:
			return ExitInvalidConfig
		case clierrors.Prerequisite:
			return ExitInputUnreadable
		}
	}

	return ExitRuntimeError
}

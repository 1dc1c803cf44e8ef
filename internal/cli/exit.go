// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/bimatch/assignment"
	"github.com/katalvlaran/bimatch/bipartite"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Input rejected by the matcher (shape, weights, partition)
	ExitCommandError = 2 // Command error (flags, config, I/O, cancellation)
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int    // ExitFailure or ExitCommandError
	Message string // Short description
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure for errors without a code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// matchExit classifies a pipeline error.
func matchExit(err error) *ExitError {
	switch {
	case errors.Is(err, assignment.ErrCancelled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return WrapExitError(ExitCommandError, "cancelled", err)
	case errors.Is(err, bipartite.ErrMalformedInput):
		return WrapExitError(ExitFailure, "malformed input", err)
	case errors.Is(err, assignment.ErrDimensionMismatch),
		errors.Is(err, assignment.ErrInvalidWeight),
		errors.Is(err, bipartite.ErrNotBipartite):
		return WrapExitError(ExitFailure, "cannot match", err)
	default:
		return WrapExitError(ExitCommandError, "match failed", err)
	}
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
)

const (
	// exitFailure is returned for every fatal error.
	exitFailure = 1
	// exitUsage is returned when the command line is malformed.
	exitUsage = 2
)

type (
	// ExitError signals a specific non-zero exit code.
	ExitError struct {
		Code int
		Err  error
	}

	// UsageError reports a malformed command line. Usage holds the text to
	// print after the message.
	UsageError struct {
		Msg   string
		Usage string
	}
)

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func (e *UsageError) Error() string {
	return e.Msg
}

// exitCode maps an error returned by the root command to a process exit code.
func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return exitUsage
	}
	return exitFailure
}

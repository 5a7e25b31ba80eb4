// SPDX-License-Identifier: MPL-2.0

package texlive

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyOutput is wrapped by ToolError when a tool succeeds but prints nothing.
var ErrEmptyOutput = errors.New("command printed nothing")

type (
	// ToolError reports that an external TeX Live command could not be run or
	// its output could not be used.
	ToolError struct {
		// Command is the full argv that was attempted.
		Command []string
		Err     error
	}

	// ParseError reports that the database dump is not valid JSON.
	ParseError struct {
		Err error
	}

	// SchemaError reports that the database JSON lacks an expected field.
	SchemaError struct {
		// Field is a JSON path such as "main.tlpkgs" or "main.tlpkgs[12].name".
		Field string
	}
)

func (e *ToolError) Error() string {
	return fmt.Sprintf("failed to execute `%s`: %v", strings.Join(e.Command, " "), e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid package database JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("package database has no %q field", e.Field)
}

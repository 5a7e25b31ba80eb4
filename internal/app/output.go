// SPDX-License-Identifier: MPL-2.0

package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// FormatText prints the names space-separated on one line.
	FormatText Format = "text"
	// FormatJSON prints the names as a JSON array.
	FormatJSON Format = "json"
)

// ErrInvalidFormat is the sentinel error wrapped by InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid output format")

type (
	// Format selects how Write renders a Result.
	Format string

	// InvalidFormatError is returned when a Format value is not recognized.
	// It wraps ErrInvalidFormat for errors.Is() compatibility.
	InvalidFormatError struct {
		Value Format
	}
)

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json)", e.Value)
}

func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}

// Validate returns an InvalidFormatError for unknown formats. The empty value
// means FormatText.
func (f Format) Validate() error {
	switch f {
	case "", FormatText, FormatJSON:
		return nil
	default:
		return &InvalidFormatError{Value: f}
	}
}

// Write renders the packages of res to w. Text output is always exactly one
// newline-terminated line, empty when there are no packages.
func Write(w io.Writer, res *Result, format Format) error {
	if err := format.Validate(); err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(res.Packages)
	default:
		_, err := fmt.Fprintln(w, strings.Join(res.Packages, " "))
		return err
	}
}

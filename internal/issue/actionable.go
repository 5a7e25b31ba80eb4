// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError annotates a failure with the step that failed, what to
	// try next, and the catalogue entry whose guidance explains it.
	//
	//	return issue.Wrap(err, "dump package database",
	//		issue.WithIssue(issue.ToolFailedId),
	//		issue.WithSuggestions("Check that tlmgr is on PATH"))
	ActionableError struct {
		// Operation is a verb phrase such as "query kpsewhich".
		Operation string
		// Resource is the file or command involved, when the cause does not
		// already name it.
		Resource string
		// Suggestions are remediation hints shown below the message.
		Suggestions []string
		// Issue selects the guidance rendered in verbose mode; 0 for none.
		Issue Id
		// Cause is the underlying error. It is never nil for errors built
		// with Wrap.
		Cause error
	}

	// Option sets an optional field of an ActionableError.
	Option func(*ActionableError)
)

// Wrap annotates err with the operation that failed. It returns nil for a nil
// err, so it can wrap a call result directly.
func Wrap(err error, operation string, opts ...Option) error {
	if err == nil {
		return nil
	}
	ae := &ActionableError{Operation: operation, Cause: err}
	for _, opt := range opts {
		opt(ae)
	}
	return ae
}

// WithResource names the file or command involved.
func WithResource(res string) Option {
	return func(e *ActionableError) { e.Resource = res }
}

// WithSuggestions appends remediation hints.
func WithSuggestions(suggestions ...string) Option {
	return func(e *ActionableError) { e.Suggestions = append(e.Suggestions, suggestions...) }
}

// WithIssue attaches the catalogue entry that explains the failure.
func WithIssue(id Id) Option {
	return func(e *ActionableError) { e.Issue = id }
}

// IssueOf returns the first issue attached anywhere in err's chain, or 0.
func IssueOf(err error) Id {
	var ae *ActionableError
	for errors.As(err, &ae) {
		if ae.Issue != 0 {
			return ae.Issue
		}
		err = ae.Cause
	}
	return 0
}

// Error returns "failed to <operation>[: <resource>]: <cause>".
func (e *ActionableError) Error() string {
	var msg strings.Builder
	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)
	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}
	return msg.String()
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns the message followed by the suggestions, one bullet each.
// Verbose output also lists every error in the cause chain.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, s := range e.Suggestions {
			msg.WriteString("\n  • ")
			msg.WriteString(s)
		}
	}

	if verbose {
		msg.WriteString("\n\nError chain:")
		depth := 1
		for err := e.Cause; err != nil; err = errors.Unwrap(err) {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			depth++
		}
	}
	return msg.String()
}

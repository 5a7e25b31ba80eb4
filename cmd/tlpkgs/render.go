// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/tlpkgs/tlpkgs/internal/issue"
)

// renderError writes "Error: <message>" to w. The prefix is red only when w
// is a terminal. In verbose mode the matching issue guidance follows.
func renderError(w io.Writer, err error, verbose bool) {
	tty := isTerminal(w)

	prefix := "Error"
	if tty {
		prefix = errorPrefixStyle(lipgloss.NewRenderer(w)).Render(prefix)
	}
	fmt.Fprintf(w, "%s: %s\n", prefix, formatErrorForDisplay(err, verbose))

	var usageErr *UsageError
	if errors.As(err, &usageErr) && usageErr.Usage != "" {
		fmt.Fprintf(w, "\n%s", usageErr.Usage)
		return
	}

	if !verbose {
		return
	}
	iss := issue.Get(issue.IssueOf(err))
	if iss == nil {
		return
	}
	style := "notty"
	if tty {
		style = "auto"
	}
	if guidance, renderErr := iss.Render(style); renderErr == nil {
		fmt.Fprint(w, guidance)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return strings.TrimSpace(err.Error())
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

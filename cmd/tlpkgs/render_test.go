// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/tlpkgs/tlpkgs/internal/issue"
	"github.com/tlpkgs/tlpkgs/internal/texlive"
	"github.com/tlpkgs/tlpkgs/internal/trace"
)

func TestRenderError_PlainPrefix(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderError(&buf, errors.New("boom"), false)

	if got := buf.String(); got != "Error: boom\n" {
		t.Errorf("renderError() = %q, want %q", got, "Error: boom\n")
	}
}

func TestRenderError_Usage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderError(&buf, &UsageError{Msg: "expected one argument", Usage: "Usage:\n  tlpkgs <root_file>\n"}, true)

	got := buf.String()
	if !strings.HasPrefix(got, "Error: expected one argument\n") {
		t.Errorf("missing message: %q", got)
	}
	if !strings.Contains(got, "tlpkgs <root_file>") {
		t.Errorf("usage should follow the message: %q", got)
	}
	if strings.Contains(got, "Things you can try") {
		t.Errorf("usage errors should not carry issue guidance: %q", got)
	}
}

func TestRenderError_VerboseGuidance(t *testing.T) {
	t.Parallel()

	err := issue.Wrap(&trace.MissingError{Path: "paper.fls"}, "locate trace file",
		issue.WithIssue(issue.TraceNotFoundId))

	var quiet bytes.Buffer
	renderError(&quiet, err, false)
	if strings.Contains(quiet.String(), "latexmk -pdf") {
		t.Errorf("guidance should only appear in verbose mode: %q", quiet.String())
	}

	var verbose bytes.Buffer
	renderError(&verbose, err, true)
	if !strings.Contains(verbose.String(), "paper.fls") {
		t.Errorf("message missing: %q", verbose.String())
	}
	if !strings.Contains(verbose.String(), "latexmk") {
		t.Errorf("verbose mode should render guidance: %q", verbose.String())
	}
}

func TestRenderError_ActionableFormat(t *testing.T) {
	t.Parallel()

	err := issue.Wrap(errors.New("unexpected token"), "load configuration",
		issue.WithResource("/tmp/config.cue"),
		issue.WithSuggestions("Check the file syntax"))

	var buf bytes.Buffer
	renderError(&buf, err, false)
	got := buf.String()
	if !strings.HasPrefix(got, "Error: ") {
		t.Errorf("missing prefix: %q", got)
	}
	if !strings.Contains(got, "load configuration") || !strings.Contains(got, "Check the file syntax") {
		t.Errorf("actionable details missing: %q", got)
	}
}

func TestRenderError_NoGuidanceWithoutIssue(t *testing.T) {
	t.Parallel()

	// A typed cause alone does not select guidance; only an attached issue does.
	err := &texlive.ToolError{Command: []string{"kpsewhich"}, Err: os.ErrNotExist}

	var buf bytes.Buffer
	renderError(&buf, err, true)
	if strings.Contains(buf.String(), "Things you can try") {
		t.Errorf("unexpected guidance: %q", buf.String())
	}
	if !strings.HasPrefix(buf.String(), "Error: failed to execute `kpsewhich`") {
		t.Errorf("renderError() = %q", buf.String())
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	if got := exitCode(errors.New("x")); got != exitFailure {
		t.Errorf("plain error: %d", got)
	}
	if got := exitCode(fmt.Errorf("wrapped: %w", &UsageError{Msg: "x"})); got != exitUsage {
		t.Errorf("usage error: %d", got)
	}
	if got := exitCode(&ExitError{Code: exitInterrupted}); got != exitInterrupted {
		t.Errorf("exit error: %d", got)
	}
}

func TestIsTerminal_Buffer(t *testing.T) {
	t.Parallel()

	if isTerminal(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is never a terminal")
	}
}

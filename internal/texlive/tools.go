// SPDX-License-Identifier: MPL-2.0

package texlive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/shell"
)

const (
	// DefaultKpsewhich is the command used to query kpathsea variables.
	DefaultKpsewhich = "kpsewhich"
	// DefaultTlmgr is the TeX Live manager command.
	DefaultTlmgr = "tlmgr"
)

type (
	// Runner runs an external program and returns its standard output.
	Runner interface {
		Output(ctx context.Context, name string, args ...string) ([]byte, error)
	}

	// ExecRunner runs programs on the host with os/exec.
	ExecRunner struct{}

	// Tools holds the base command lines of the TeX Live programs. Each is a
	// program followed by optional prefix arguments, so a containerized
	// installation can be reached with e.g. ["docker", "exec", "tl", "tlmgr"].
	Tools struct {
		Kpsewhich []string
		Tlmgr     []string
	}

	// Client queries a TeX Live installation through its command-line tools.
	Client struct {
		runner Runner
		tools  Tools
		logger *log.Logger
	}
)

// Output runs name with args. Standard error is captured and appended to the
// returned error when the command fails.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return out, fmt.Errorf("%w: %s", err, msg)
			}
		}
		return out, err
	}
	return out, nil
}

// DefaultTools returns the plain kpsewhich and tlmgr command lines.
func DefaultTools() Tools {
	return Tools{
		Kpsewhich: []string{DefaultKpsewhich},
		Tlmgr:     []string{DefaultTlmgr},
	}
}

// ParseCommandLine splits a configured command line into argv using POSIX
// shell word splitting and quoting. Environment variables are expanded.
func ParseCommandLine(line string) ([]string, error) {
	fields, err := shell.Fields(line, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid command line %q: %w", line, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("invalid command line %q: no program given", line)
	}
	return fields, nil
}

// NewTools parses the kpsewhich and tlmgr command lines.
func NewTools(kpsewhich, tlmgr string) (Tools, error) {
	k, err := ParseCommandLine(kpsewhich)
	if err != nil {
		return Tools{}, err
	}
	t, err := ParseCommandLine(tlmgr)
	if err != nil {
		return Tools{}, err
	}
	return Tools{Kpsewhich: k, Tlmgr: t}, nil
}

// NewClient creates a Client. A nil runner means ExecRunner.
func NewClient(runner Runner, tools Tools) *Client {
	if runner == nil {
		runner = ExecRunner{}
	}
	defaults := DefaultTools()
	if len(tools.Kpsewhich) == 0 {
		tools.Kpsewhich = defaults.Kpsewhich
	}
	if len(tools.Tlmgr) == 0 {
		tools.Tlmgr = defaults.Tlmgr
	}
	return &Client{runner: runner, tools: tools, logger: log.New(io.Discard)}
}

// WithLogger sets the logger that receives tool warnings and returns c.
func (c *Client) WithLogger(logger *log.Logger) *Client {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// TexmfDistCommand returns the argv used by TexmfDist.
func (c *Client) TexmfDistCommand() []string {
	return append(slices.Clone(c.tools.Kpsewhich), "-var-value=TEXMFDIST")
}

// DatabaseCommand returns the argv used by Database.
func (c *Client) DatabaseCommand() []string {
	return append(slices.Clone(c.tools.Tlmgr), "dump-tlpdb", "--json", "--local")
}

// TexmfDist returns the root of the distribution tree, for example
// /usr/local/texlive/2024/texmf-dist.
func (c *Client) TexmfDist(ctx context.Context) (string, error) {
	argv := c.TexmfDistCommand()
	out, err := c.run(ctx, argv)
	if err != nil {
		return "", err
	}

	dir := strings.TrimSpace(string(out))
	if dir == "" {
		return "", &ToolError{Command: argv, Err: ErrEmptyOutput}
	}
	return dir, nil
}

// Database dumps and decodes the local package database.
func (c *Client) Database(ctx context.Context) (*Database, error) {
	argv := c.DatabaseCommand()
	out, err := c.run(ctx, argv)
	if err != nil {
		return nil, err
	}

	db, err := DecodeDatabase(out)
	if err != nil {
		return nil, &ToolError{Command: argv, Err: err}
	}
	return db, nil
}

// run executes argv. A command that exits non-zero after printing something
// still counts as answered; tlmgr does this when a remote repository is
// unreachable. The exit status is logged instead.
func (c *Client) run(ctx context.Context, argv []string) ([]byte, error) {
	out, err := c.runner.Output(ctx, argv[0], argv[1:]...)
	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil && len(bytes.TrimSpace(out)) > 0 {
		c.logger.Warn("command exited with an error, using its output", "command", strings.Join(argv, " "), "err", err)
		return out, nil
	}
	return nil, &ToolError{Command: argv, Err: err}
}

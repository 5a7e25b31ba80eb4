// SPDX-License-Identifier: MPL-2.0

// Package app computes the TeX Live packages a document used.
//
// Run checks that the document's .fls trace exists, loads the package
// database, maps every distribution file in the trace to its owning package
// and, unless ListAll is set, removes the packages a baseline installation
// already provides.
package app

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tlpkgs/tlpkgs/internal/issue"
	"github.com/tlpkgs/tlpkgs/internal/texlive"
	"github.com/tlpkgs/tlpkgs/internal/trace"
)

type (
	// Options describe one run.
	Options struct {
		// RootFile is the root .tex file of the document.
		RootFile string
		// ListAll keeps preinstalled packages in the result.
		ListAll bool
		// Preinstalled seeds the set of packages a baseline installation
		// provides; their dependency closure is subtracted.
		Preinstalled []string
	}

	// Result is the outcome of a run.
	Result struct {
		// Packages are the packages to install, sorted.
		Packages []string
		// Unresolved are trace keys under the distribution root that no
		// package owns, in first-seen order without duplicates.
		Unresolved []string
		// Subtracted counts used packages dropped because they are preinstalled.
		Subtracted int
	}

	// App wires the TeX Live client to the trace parser.
	App struct {
		client *texlive.Client
		logger *log.Logger
	}
)

// New creates an App. A nil logger discards all log output.
func New(client *texlive.Client, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &App{client: client, logger: logger}
}

// Run executes the whole pipeline. It stops at the first error.
func (a *App) Run(ctx context.Context, opts Options) (*Result, error) {
	flsPath := trace.Path(opts.RootFile)
	if err := trace.Check(flsPath); err != nil {
		return nil, issue.Wrap(err, "locate trace file",
			issue.WithIssue(issue.TraceNotFoundId),
			issue.WithSuggestions(
				"Compile the document with latexmk, which records every file it reads",
				"Pass the root file of the document, not an included chapter",
			))
	}

	dumpCmd := strings.Join(a.client.DatabaseCommand(), " ")
	a.logger.Debug("dumping package database", "command", dumpCmd)
	db, err := a.client.Database(ctx)
	if err != nil {
		var parseErr *texlive.ParseError
		if errors.As(err, &parseErr) {
			return nil, issue.Wrap(err, "dump package database",
				issue.WithIssue(issue.DatabaseInvalidId),
				issue.WithSuggestions("Run `"+dumpCmd+"` and check that it prints JSON only"))
		}
		return nil, issue.Wrap(err, "dump package database",
			issue.WithIssue(issue.ToolFailedId),
			issue.WithSuggestions(
				"Check that tlmgr is installed and on PATH, or set tlmgr in the config file",
				"Run `"+dumpCmd+"` by hand to see its output",
			))
	}
	idx, err := texlive.BuildIndex(db)
	if err != nil {
		return nil, issue.Wrap(err, "index package database",
			issue.WithIssue(issue.DatabaseInvalidId),
			issue.WithSuggestions("Update TeX Live; older tlmgr releases print a different dump layout"))
	}
	a.logger.Debug("indexed package database", "packages", len(idx.Depends), "files", len(idx.Files))

	texmfDist, err := a.client.TexmfDist(ctx)
	if err != nil {
		return nil, issue.Wrap(err, "query kpsewhich",
			issue.WithIssue(issue.ToolFailedId),
			issue.WithSuggestions(
				"Check that kpsewhich is installed and on PATH, or set kpsewhich in the config file",
				"Run `"+strings.Join(a.client.TexmfDistCommand(), " ")+"` by hand to see its output",
			))
	}
	a.logger.Debug("located distribution root", "texmfdist", texmfDist)

	keys, err := trace.ParseFile(flsPath, texmfDist)
	if err != nil {
		return nil, issue.Wrap(err, "read trace file")
	}
	a.logger.Debug("parsed trace", "file", flsPath, "inputs", len(keys))

	used, unresolved := Collect(keys, idx)
	for _, key := range unresolved {
		a.logger.Warn("no package owns input file", "file", key)
	}

	res := &Result{Unresolved: unresolved}
	if !opts.ListAll {
		preinstalled := NewSet(idx.Graph().Closure(opts.Preinstalled...)...)
		a.logger.Debug("resolved preinstalled packages", "seeds", opts.Preinstalled, "closure", len(preinstalled))
		res.Subtracted = used.Subtract(preinstalled)
	}
	res.Packages = used.Sorted()
	return res, nil
}

// Collect maps trace keys to their owning packages. Keys that no package owns
// are returned separately, deduplicated, and never enter the set.
func Collect(keys []string, idx *texlive.Index) (Set, []string) {
	used := NewSet()
	var unresolved []string
	for _, key := range keys {
		name, ok := idx.Owner(key)
		if !ok {
			if !slices.Contains(unresolved, key) {
				unresolved = append(unresolved, key)
			}
			continue
		}
		used.Add(name)
	}
	return used, unresolved
}

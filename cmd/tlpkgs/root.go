// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tlpkgs/tlpkgs/internal/app"
	"github.com/tlpkgs/tlpkgs/internal/config"
	"github.com/tlpkgs/tlpkgs/internal/texlive"
)

// exitInterrupted is the conventional status for a run stopped by SIGINT.
const exitInterrupted = 130

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootOptions holds the flag values and collaborators of one root command.
type rootOptions struct {
	listAll    bool
	verbose    bool
	configFile string
	format     string

	runner   texlive.Runner
	provider config.Provider
}

// newRootCmd builds the root command. runner and provider are the seams
// tests replace; Execute passes the real implementations.
func newRootCmd(runner texlive.Runner, provider config.Provider) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{runner: runner, provider: provider}

	cmd := &cobra.Command{
		Use:   "tlpkgs [options] <root_file>",
		Short: "List all TeX Live packages used by a document",
		Long: TitleStyle.Render("tlpkgs") + SubtitleStyle.Render(" - List all TeX Live packages used by a document") + `

tlpkgs reads the .fls file list written by a latexmk run next to the root
file, maps every file it read from the TeX Live distribution to the package
that owns it, and prints the package names sorted on a single line.

Packages that a baseline installation (scheme-small,
collection-fontsrecommended and biblatex plus their dependencies) already
provides are left out unless --list-all is given.

` + SubtitleStyle.Render("Arguments:") + `
  <root_file>   Path to the root TeX file

` + SubtitleStyle.Render("Examples:") + `
  latexmk -pdf paper.tex && tlpkgs paper.tex
  tlmgr install $(tlpkgs paper.tex)
  tlpkgs --list-all --format json thesis/main.tex`,
		Args:          exactlyOneRootFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          opts.run,
	}

	cmd.Flags().BoolVar(&opts.listAll, "list-all", false, "include the preinstalled packages (for environments where they are not present)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/tlpkgs/config.cue)")
	cmd.Flags().StringVar(&opts.format, "format", string(app.FormatText), "output format: text or json")

	return cmd, opts
}

// exactlyOneRootFile rejects any argument count but one with a UsageError.
func exactlyOneRootFile(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return nil
	}
	return &UsageError{
		Msg:   fmt.Sprintf("expected exactly one <root_file> argument, got %d", len(args)),
		Usage: cmd.UsageString(),
	}
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := o.provider.Load(ctx, config.LoadOptions{ConfigFilePath: o.configFile})
	if err != nil {
		return err
	}

	// Flags take precedence over the config file.
	if !cmd.Flags().Changed("verbose") {
		o.verbose = cfg.Verbose
	}
	format := app.Format(o.format)
	if !cmd.Flags().Changed("format") {
		format = app.Format(cfg.Format)
	}
	if err := format.Validate(); err != nil {
		return err
	}

	tools, err := texlive.NewTools(cfg.Kpsewhich, cfg.Tlmgr)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), o.verbose)
	a := app.New(texlive.NewClient(o.runner, tools).WithLogger(logger), logger)

	res, err := a.Run(ctx, app.Options{
		RootFile:     args[0],
		ListAll:      o.listAll,
		Preinstalled: cfg.Preinstalled,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return &ExitError{Code: exitInterrupted, Err: err}
		}
		return err
	}

	return app.Write(cmd.OutOrStdout(), res, format)
}

// newLogger creates the stderr logger. Only warnings are shown unless verbose.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "tlpkgs",
		Level:  log.WarnLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command and exits the process on failure.
// This is called by main.main().
func Execute() {
	rootCmd, opts := newRootCmd(texlive.ExecRunner{}, config.NewProvider())

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			renderError(w, err, opts.verbose)
		}),
	); err != nil {
		os.Exit(exitCode(err))
	}
}

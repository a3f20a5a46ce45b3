// Package synccmd implements the pnpmsync command action: it loads the
// configuration, applies the command-line flags, runs the version sync and
// reports the outcome.
package synccmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/indaco/pnpmsync/internal/config"
	"github.com/indaco/pnpmsync/internal/core"
	"github.com/indaco/pnpmsync/internal/tui"
	"github.com/indaco/pnpmsync/internal/versionsync"
	"github.com/urfave/cli/v3"
)

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	Confirm(title, description string) (bool, error)
	Spin(title string, action func() error) error
}

// TUIPrompter implements Prompter using the tui package.
type TUIPrompter struct{}

// Confirm shows a yes/no confirmation prompt.
func (TUIPrompter) Confirm(title, description string) (bool, error) {
	return tui.Confirm(title, description)
}

// Spin runs action behind a spinner.
func (TUIPrompter) Spin(title string, action func() error) error {
	return tui.Spin(title, action)
}

// Command holds the collaborators of the sync action.
type Command struct {
	FS          core.FileSystem
	Runner      core.CommandRunner
	Prompter    Prompter
	Interactive func() bool
	Stdout      io.Writer
	Stderr      io.Writer
}

// New returns a Command wired to the real filesystem, processes and terminal.
func New() *Command {
	return &Command{
		FS:          core.NewOSFileSystem(),
		Runner:      core.NewOSCommandRunner(),
		Prompter:    TUIPrompter{},
		Interactive: tui.IsInteractive,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}

// Flags returns the flags understood by Action.
func (c *Command) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Aliases:     []string{"C"},
			Usage:       "Directory to start the package.json search from",
			DefaultText: "current directory",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to a .pnpmsync.yaml or .pnpmsync.toml file",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Fail when the manifest already pins the installed version",
		},
		&cli.BoolFlag{
			Name:  "no-runtime",
			Usage: "Do not pin engines.node or remove the only-allow preinstall",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Show the changes without writing package.json",
		},
		&cli.BoolFlag{
			Name:  "check",
			Usage: "Exit with an error when package.json is out of date, never write",
		},
		&cli.BoolFlag{
			Name:  "confirm",
			Usage: "Ask before writing package.json (interactive terminals only)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: text, json",
			Value:   string(FormatText),
		},
	}
}

// Action runs the sync for the parsed command line.
func (c *Command) Action(ctx context.Context, cmd *cli.Command) error {
	format, err := ParseOutputFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	dir := cmd.String("dir")
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	cfg, err := config.Load(ctx, c.FS, dir, cmd.String("config"))
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	tui.SetTheme(cfg.Theme)

	c.applyFlags(cmd, &opts, format)

	result, runErr := versionsync.New(c.FS, c.Runner, opts).Run(ctx, dir)
	if result == nil {
		return runErr
	}

	formatter := NewFormatter(format, opts.ToolIdentifier)
	if format == FormatJSON {
		out, err := formatter.FormatJSON(result)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(c.Stdout, out)
		return runErr
	}

	switch {
	case result.Current:
		_, _ = fmt.Fprintln(c.Stderr, formatter.AlreadyCurrent(result))
	case runErr == nil || errors.Is(runErr, core.ErrDrift):
		_, _ = fmt.Fprint(c.Stdout, formatter.FormatText(result))
	}
	return runErr
}

// applyFlags layers explicitly set flags over the configured options and
// installs the interactive hooks.
func (c *Command) applyFlags(cmd *cli.Command, opts *versionsync.Options, format OutputFormat) {
	if cmd.IsSet("strict") {
		opts.Strict = cmd.Bool("strict")
	}
	if cmd.Bool("no-runtime") {
		opts.SyncRuntime = false
	}
	opts.DryRun = cmd.Bool("dry-run")
	opts.Check = cmd.Bool("check")

	if format != FormatText || c.Interactive == nil || !c.Interactive() {
		return
	}

	opts.Spin = c.Prompter.Spin
	if cmd.Bool("confirm") {
		identifier := opts.ToolIdentifier
		opts.Confirm = func(r *versionsync.Result) (bool, error) {
			return c.Prompter.Confirm("Update "+r.Path+"?", NewFormatter(FormatText, identifier).Changes(r))
		}
	}
}

// Package toolchain asks installed command-line tools for their version.
package toolchain

import (
	"context"
	"strings"

	"github.com/indaco/pnpmsync/internal/core"
	"github.com/indaco/pnpmsync/internal/semver"
)

// Command describes how to ask a tool for its version.
type Command struct {
	// Name is the executable, resolved on PATH.
	Name string

	// Args are passed to the executable, usually "--version".
	Args []string

	// StripPrefix drops a single leading non-digit marker from the output,
	// e.g. node's "v18.2.0".
	StripPrefix bool
}

// ParseCommand splits a command line such as "pnpm --version" on whitespace.
func ParseCommand(line string, stripPrefix bool) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{StripPrefix: stripPrefix}
	}
	return Command{Name: fields[0], Args: fields[1:], StripPrefix: stripPrefix}
}

// String returns the command line.
func (c Command) String() string {
	return strings.TrimSpace(strings.Join(append([]string{c.Name}, c.Args...), " "))
}

// QueryVersion runs cmd and returns the version it prints.
//
// A failed command or empty output means the tool is not available and
// yields core.CodeToolNotFound. Output that is not a semantic version yields
// core.CodeMalformedVersion.
func QueryVersion(ctx context.Context, runner core.CommandRunner, cmd Command) (string, error) {
	if cmd.Name == "" {
		return "", core.NewError(core.CodeToolNotFound, "no version command configured")
	}

	out, err := runner.Run(ctx, cmd.Name, cmd.Args...)
	if err != nil {
		return "", core.WrapError(core.CodeToolNotFound, err, "%q failed, is %s installed?", cmd.String(), cmd.Name)
	}

	version := strings.TrimSpace(string(out))
	if version == "" {
		return "", core.NewError(core.CodeToolNotFound, "%q printed nothing, is %s installed?", cmd.String(), cmd.Name)
	}

	if cmd.StripPrefix && !isDigit(version[0]) {
		version = version[1:]
	}

	if _, err := semver.ParseVersion(version); err != nil {
		return "", core.WrapError(core.CodeMalformedVersion, err, "%q printed an unexpected version", cmd.String())
	}

	return version, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

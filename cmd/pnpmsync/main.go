package main

import (
	"context"
	"os"

	"github.com/indaco/pnpmsync/internal/cli"
	"github.com/indaco/pnpmsync/internal/commands/synccmd"
	"github.com/indaco/pnpmsync/internal/core"
	"github.com/indaco/pnpmsync/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError("Error: " + err.Error())
		os.Exit(core.ExitCode(err))
	}
}

// runCLI runs the root command with args and returns its error.
func runCLI(args []string) error {
	return cli.New(synccmd.New()).Run(context.Background(), args)
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/pnpmsync/internal/commands/synccmd"
	"github.com/indaco/pnpmsync/internal/printer"
	"github.com/indaco/pnpmsync/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command. sync carries the collaborators
// of the single sync action.
func New(sync *synccmd.Command) *urfavecli.Command {
	var noColor bool

	return &urfavecli.Command{
		Name:    "pnpmsync",
		Version: fmt.Sprintf("v%s", version.GetVersion()),
		Usage:   "Pin package.json to the installed pnpm version",
		UsageText: `pnpmsync [options]

Finds the nearest package.json, checks that engines.pnpm and packageManager
agree, then rewrites both to the version printed by "pnpm --version".
Unless --no-runtime is set, engines.node is pinned to "node --version" and a
"npx -y only-allow pnpm" preinstall is removed.`,
		Flags: append(sync.Flags(),
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output (also NO_COLOR)",
				Destination: &noColor,
			},
		),
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColor || os.Getenv("NO_COLOR") != "")
			return ctx, nil
		},
		Action: sync.Action,
	}
}

package commands

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// NewVersionCommand returns a cli.Command for "bed version".
func NewVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Shows the bed CLI version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer

			info, ok := debug.ReadBuildInfo()
			if !ok {
				fmt.Fprintln(w, `version not available in GOPATH mode; use "go install" with Go modules enabled`)
				return nil
			}

			fmt.Fprintf(w, "bed %v (%v)\n", info.Main.Version, info.GoVersion)
			return nil
		},
	}
}

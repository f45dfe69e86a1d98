package commands

import (
	"context"
	"io"

	"github.com/chaisql/bed/cmd/bed/bedutil"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewDumpCommand returns a cli.Command for "bed dump".
func NewDumpCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "dump",
		Usage:     "Decode a BED file and write it back.",
		UsageText: `bed dump [options] file`,
		Description: `The dump command decodes every record of a BED file and writes the header
and the records back, with fields separated by tabs.
Comments, browser lines and blank lines are dropped.

By default, the records are sent to the standard output:

$ bed dump peaks.bed
track name="peaks"
chr1	85000835	85003645
...

The dump command can also write directly into a file:

$ bed dump -f clean.bed peaks.bed.gz`,
		Flags: []cli.Flag{
			schemaFlag(),
			fileFlag(),
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		path := cmd.Args().First()
		if path == "" {
			return errors.New(cmd.UsageText)
		}

		s, err := bedutil.ParseSchema(cmd.String("schema"))
		if err != nil {
			return err
		}

		r, c, err := bedutil.OpenReader(path, s)
		if err != nil {
			return err
		}
		defer c.Close()

		return bedutil.WriteOutput(cmd.String("file"), cmd.Root().Writer, func(w io.Writer) error {
			_, err := bedutil.Dump(ctx, r, w)
			return err
		})
	}

	return &cmd
}

package commands

import (
	"context"
	"fmt"

	"github.com/chaisql/bed/cmd/bed/bedutil"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewCheckCommand returns a cli.Command for "bed check".
func NewCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check that BED files can be decoded",
		UsageText: `bed check [options] file...`,
		Description: `The check command decodes every record of the given files, concurrently,
and reports the number of records of each file or the first error found:

$ bed check -s bed6 a.bed b.bed.gz
a.bed: 1024 records
b.bed.gz: line 12: field 1 (chromStart): field type mismatch`,
		Flags: []cli.Flag{
			schemaFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				return errors.New(cmd.UsageText)
			}

			s, err := bedutil.ParseSchema(cmd.String("schema"))
			if err != nil {
				return err
			}

			results, err := bedutil.Check(ctx, s, paths...)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			var failed int
			for _, res := range results {
				if res.Err != nil {
					failed++
					fmt.Fprintf(w, "%s: %v\n", res.Path, res.Err)
					continue
				}
				fmt.Fprintf(w, "%s: %d records\n", res.Path, res.Records)
			}

			if failed > 0 {
				return errors.Errorf("%d of %d files are invalid", failed, len(results))
			}
			return nil
		},
	}
}

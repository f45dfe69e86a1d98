package commands

import (
	"context"
	"io"

	"github.com/chaisql/bed"
	"github.com/chaisql/bed/cmd/bed/bedutil"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewConvertCommand returns a cli.Command for "bed convert".
func NewConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert BED records to and from json",
		UsageText: `bed convert [options] file`,
		Description: `The convert command converts a BED file to a stream of json objects, one per line,
keyed by field name:

$ bed convert -s bed3 peaks.bed
{"chrom": "chr1", "chromStart": 85000835, "chromEnd": 85003645}

With --to bed, it reads such a stream and writes BED records.
The schema is required in that case:

$ bed convert --to bed -s bed3 peaks.json`,
		Flags: []cli.Flag{
			schemaFlag(),
			fileFlag(),
			&cli.StringFlag{
				Name:  "to",
				Usage: `output format, either "json" or "bed"`,
				Value: "json",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return errors.New(cmd.UsageText)
			}

			s, err := bedutil.ParseSchema(cmd.String("schema"))
			if err != nil {
				return err
			}

			to := cmd.String("to")
			if to != "json" && to != "bed" {
				return errors.Errorf("unsupported output format %q", to)
			}

			return bedutil.WriteOutput(cmd.String("file"), cmd.Root().Writer, func(w io.Writer) error {
				if to == "json" {
					r, c, err := bedutil.OpenReader(path, s)
					if err != nil {
						return err
					}
					defer c.Close()

					_, err = bedutil.ToJSON(ctx, r, w)
					return err
				}

				f, err := bed.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()

				_, err = bedutil.FromJSON(ctx, s, f, w)
				return err
			})
		},
	}
}

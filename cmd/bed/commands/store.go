package commands

import (
	"context"
	"io"
	"fmt"

	"github.com/chaisql/bed/cmd/bed/bedutil"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewLoadCommand returns a cli.Command for "bed load".
func NewLoadCommand() *cli.Command {
	return &cli.Command{
		Name:      "load",
		Usage:     "Load a BED file into a database",
		UsageText: `bed load [options] file dbpath`,
		Description: `The load command inserts every record of a BED file into a database,
creating it if necessary. Records are sorted by chromosome and start position.

$ bed load -s bed6 peaks.bed peaks.db
1024 records loaded`,
		Flags: []cli.Flag{
			schemaFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 2 {
				return errors.New(cmd.UsageText)
			}

			s, err := bedutil.ParseSchema(cmd.String("schema"))
			if err != nil {
				return err
			}

			r, c, err := bedutil.OpenReader(args.First(), s)
			if err != nil {
				return err
			}
			defer c.Close()

			n, err := bedutil.Load(ctx, r, args.Get(1), nil)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.Root().Writer, "%d records loaded\n", n)
			return nil
		},
	}
}

// NewExportCommand returns a cli.Command for "bed export".
func NewExportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export the content of a database as a BED file",
		UsageText: `bed export [options] dbpath`,
		Description: `The export command writes the header and every record of a database,
sorted by chromosome and start position:

$ bed export -f sorted.bed peaks.db`,
		Flags: []cli.Flag{
			fileFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dbPath := cmd.Args().First()
			if dbPath == "" {
				return errors.New(cmd.UsageText)
			}

			st, err := bedutil.OpenStore(dbPath, nil, nil)
			if err != nil {
				return err
			}
			defer st.Close()

			return bedutil.WriteOutput(cmd.String("file"), cmd.Root().Writer, func(w io.Writer) error {
				return bedutil.Export(ctx, st, w)
			})
		},
	}
}

// NewQueryCommand returns a cli.Command for "bed query".
func NewQueryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Select the records of a database starting in a region",
		UsageText: `bed query [options] dbpath region`,
		Description: `The query command writes the records of a database whose start position
is within a region. A region is a chromosome, optionally followed by a range:

$ bed query peaks.db chr1:85,000,000-85,100,000
$ bed query peaks.db chrX`,
		Flags: []cli.Flag{
			fileFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 2 {
				return errors.New(cmd.UsageText)
			}

			reg, err := bedutil.ParseRegion(args.Get(1))
			if err != nil {
				return err
			}

			st, err := bedutil.OpenStore(args.First(), nil, nil)
			if err != nil {
				return err
			}
			defer st.Close()

			return bedutil.WriteOutput(cmd.String("file"), cmd.Root().Writer, func(w io.Writer) error {
				_, err := bedutil.Query(ctx, st, reg, w)
				return err
			})
		},
	}
}

package commands

import (
	"github.com/urfave/cli/v3"
)

// NewApp creates the bed CLI app.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:  "bed",
		Usage: "Read, check and convert BED files",
		Commands: []*cli.Command{
			NewCheckCommand(),
			NewDumpCommand(),
			NewConvertCommand(),
			NewLoadCommand(),
			NewExportCommand(),
			NewQueryCommand(),
			NewVersionCommand(),
		},
	}
}

func schemaFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "schema",
		Aliases: []string{"s"},
		Usage:   `schema of the records, either "bed3" to "bed12" or a definition such as "chrom:text,start:int,end:int". Defaults to the standard schema matching the first record.`,
	}
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "name of the file to output to. Defaults to STDOUT.",
	}
}

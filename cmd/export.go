package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/orbtrade"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output    string
	printName bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the catalog as an interchange payload" }
func (*exportCmd) Usage() string {
	return `obt export [-o <file>] [-name]

  Writes the whole catalog in the interchange format, to stdout by
  default. -name only prints the suggested dated filename for today's
  export.

Usage Examples:
$ obt export -o "$(obt export -name)"
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write the payload to this file instead of stdout")
	f.BoolVar(&c.printName, "name", false, "Only print the suggested export filename")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.printName {
		fmt.Println(orbtrade.ExportName(time.Now()))
		return subcommands.ExitSuccess
	}

	store := OpenStore()
	if c.output == "" {
		if err := store.Export(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	file, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	if err := store.Export(file); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Exported %d item prices to %s\n", store.All().Len(), c.output)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/orbtrade"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the catalog with an interchange payload" }
func (*importCmd) Usage() string {
	return `obt import [-f <file>]

  Reads an interchange payload (a flat JSON object of item names to
  non-negative prices) from stdin or from a file, replaces the whole
  catalog with it, and persists the result. A malformed payload is
  rejected and leaves the catalog untouched.

Usage Examples:
$ obt import -f orbtrade_prices_2026-01-31.json
$ obt export | ssh elsewhere obt import
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Read the payload from this file instead of stdin")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if c.file != "" {
		file, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	store := OpenStore()
	switch err := store.Import(r); {
	case errors.Is(err, orbtrade.ErrParse):
		fmt.Fprintf(os.Stderr, "Error: the payload is not valid JSON: %v\n", err)
		return subcommands.ExitFailure
	case errors.Is(err, orbtrade.ErrValidation):
		fmt.Fprintf(os.Stderr, "Error: the payload is not a catalog: %v\n", err)
		return subcommands.ExitFailure
	case errors.Is(err, orbtrade.ErrPersist):
		fmt.Fprintf(os.Stderr, "Error: prices imported but not saved: %v\n", err)
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d item prices.\n", store.All().Len())
	return subcommands.ExitSuccess
}

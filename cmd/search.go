package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type searchCmd struct {
	limit int
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search items by name" }
func (*searchCmd) Usage() string {
	return `obt search [-n <limit>] <query>

  Lists the items whose name contains the query, case-insensitive,
  with their current unit price. Results follow catalog order.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 10, "Maximum number of matches to display")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search query is required.")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	store := OpenStore()
	matches := store.Search(query, c.limit)
	if len(matches) == 0 {
		fmt.Printf("No items matching %q.\n", query)
		return subcommands.ExitSuccess
	}
	for _, m := range matches {
		fmt.Println(m.Display)
	}
	return subcommands.ExitSuccess
}

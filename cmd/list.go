package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/orbtrade/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the whole price catalog" }
func (*listCmd) Usage() string {
	return `obt list

  Displays every item and its unit price, in catalog order.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	catalog := store.All()

	if catalog.Len() == 0 {
		fmt.Println("The catalog is empty. Use set-price or import to add items.")
		return subcommands.ExitSuccess
	}

	listing := &renderer.Listing{}
	for _, name := range catalog.Names() {
		price, _ := catalog.Get(name)
		listing.Rows = append(listing.Rows, renderer.ListingRow{Name: name, Price: price.String()})
	}
	printMarkdown(renderer.ListingMarkdown(listing))
	return subcommands.ExitSuccess
}

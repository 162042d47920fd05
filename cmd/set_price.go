package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/orbtrade"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type setPriceCmd struct{}

func (*setPriceCmd) Name() string     { return "set-price" }
func (*setPriceCmd) Synopsis() string { return "set the unit price of one item" }
func (*setPriceCmd) Usage() string {
	return `obt set-price <item> <price>

  Sets the unit price of an item, adding it to the catalog if needed,
  and persists the whole catalog. The price must be a non-negative
  number expressed in the unit of account.

Usage Examples:
$ obt set-price 'Divine Orb' 180.5
`
}

func (*setPriceCmd) SetFlags(f *flag.FlagSet) {}

func (c *setPriceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected an item name and a price.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	price, err := decimal.NewFromString(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is not a number.\n", f.Arg(1))
		return subcommands.ExitUsageError
	}
	if price.IsNegative() {
		fmt.Fprintln(os.Stderr, "Error: the price cannot be negative.")
		return subcommands.ExitUsageError
	}

	store := OpenStore()
	catalog := store.All()
	catalog.Set(name, orbtrade.A(price))

	if err := store.ReplaceAll(catalog); err != nil {
		if errors.Is(err, orbtrade.ErrPersist) {
			fmt.Fprintf(os.Stderr, "Error: price updated but not saved: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return subcommands.ExitFailure
	}

	fmt.Printf("%s is now worth %s.\n", name, orbtrade.A(price))
	return subcommands.ExitSuccess
}

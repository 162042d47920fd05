package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/orbtrade/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type convertCmd struct {
	from, to string
	quantity string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert a quantity of one item into another" }
func (*convertCmd) Usage() string {
	return `obt convert -from <item> -to <item> [-qty <n>]

  Computes how many of the target item a quantity of the source item
  is worth, going through the unit of account.

Usage Examples:
$ obt convert -from 'Divine Orb' -to 'Chaos Orb' -qty 3
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Item to convert from")
	f.StringVar(&c.to, "to", "", "Item to convert into")
	f.StringVar(&c.quantity, "qty", "1", "How many to convert")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: both -from and -to are required.")
		return subcommands.ExitUsageError
	}
	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is not a number.\n", c.quantity)
		return subcommands.ExitUsageError
	}

	store := OpenStore()
	conv, err := store.Convert(c.from, c.to, quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ConversionMarkdown(&renderer.Conversion{
		From:      conv.From,
		To:        conv.To,
		Quantity:  conv.Quantity.String(),
		Result:    conv.Result.String(),
		Rate:      conv.Rate.String(),
		UnitValue: conv.UnitValue.String(),
	}))
	return subcommands.ExitSuccess
}

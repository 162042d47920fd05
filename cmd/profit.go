package cmd

import (
	"context"
	"flag"

	"github.com/etnz/orbtrade"
	"github.com/etnz/orbtrade/renderer"
	"github.com/google/subcommands"
)

type profitCmd struct {
	sell, buy       string
	sellQty, buyQty string
}

func (*profitCmd) Name() string     { return "profit" }
func (*profitCmd) Synopsis() string { return "calculate the profit or loss of an exchange" }
func (*profitCmd) Usage() string {
	return `obt profit [-sell <item>] [-sell-qty <n>] [-buy <item>] [-buy-qty <n>]

  Values both legs of a hypothetical exchange at current catalog
  prices and reports the net outcome. An unknown item or an invalid
  quantity values its leg at zero rather than failing; with no item
  selected at all there is nothing to calculate.

Usage Examples:
$ obt profit -sell 'Divine Orb' -buy 'Chaos Orb' -buy-qty 200
`
}

func (c *profitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sell, "sell", "", "Item to sell")
	f.StringVar(&c.sellQty, "sell-qty", "1", "How many to sell")
	f.StringVar(&c.buy, "buy", "", "Item to buy")
	f.StringVar(&c.buyQty, "buy-qty", "1", "How many to buy")
}

func (c *profitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	calc := orbtrade.NewCalculator(store)
	calc.SelectSell(c.sell)
	calc.SelectBuy(c.buy)
	calc.SetSellQuantity(c.sellQty)
	calc.SetBuyQuantity(c.buyQty)

	res, ok := calc.Compute()
	if !ok {
		printMarkdown(renderer.NoSelection)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.TradeMarkdown(&renderer.Trade{
		SellItem:      itemCell(c.sell),
		BuyItem:       itemCell(c.buy),
		SellUnitPrice: priceCell(store, c.sell),
		BuyUnitPrice:  priceCell(store, c.buy),
		SellQuantity:  c.sellQty,
		BuyQuantity:   c.buyQty,
		SellTotal:     res.SellTotal.String(),
		BuyTotal:      res.BuyTotal.String(),
		Net:           res.Net.SignedString(),
		Verdict:       renderer.Verdict(res.Status),
	}))
	return subcommands.ExitSuccess
}

// itemCell renders an item name in a trade table, "-" when no item is
// selected on that leg.
func itemCell(name string) string {
	if name == "" {
		return "-"
	}
	return name
}

// priceCell renders the unit price of an item, "unknown" when the catalog
// has no price for it. An unknown price is display information only, the
// leg still computes to zero.
func priceCell(store *orbtrade.Store, name string) string {
	if name == "" {
		return "-"
	}
	price, ok := store.GetPrice(name)
	if !ok {
		return "unknown"
	}
	return price.String()
}

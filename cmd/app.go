// Package cmd implements the CLI application to search prices and
// calculate trade profits.
package cmd

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/charmbracelet/glamour"
	"github.com/etnz/orbtrade"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&searchCmd{}, "catalog")
	c.Register(&listCmd{}, "catalog")
	c.Register(&setPriceCmd{}, "catalog")

	c.Register(&importCmd{}, "interchange")
	c.Register(&exportCmd{}, "interchange")

	c.Register(&profitCmd{}, "trading")
	c.Register(&convertCmd{}, "trading")

	c.Register(&topicCmd{}, "documentation")
}

// config carries the environment defaults for the global flags. A .env
// file next to the working directory is honored when present.
type config struct {
	ItemsFile  string `env:"ORBTRADE_ITEMS_FILE" envDefault:"items.json"`
	PricesFile string `env:"ORBTRADE_PRICES_FILE" envDefault:"prices.json"`
	Unit       string `env:"ORBTRADE_UNIT"`
}

var cfg = loadConfig()

func loadConfig() config {
	_ = godotenv.Load()
	var c config
	if err := env.Parse(&c); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot parse environment: %v\n", err)
	}
	return c
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var itemsFile = flag.String("items-file", cfg.ItemsFile, "Path to the baseline item price dataset (JSON)")
var pricesFile = flag.String("prices-file", cfg.PricesFile, "Path to the persisted price overrides (JSON)")
var unitLabel = flag.String("unit", cfg.Unit, "Display label for the unit of account")

// OpenStore is the central function to open the price store.
//
// A missing baseline dataset is not fatal: the store opens on an empty
// catalog and the user is warned, so editing and importing keep working.
func OpenStore() *orbtrade.Store {
	if *unitLabel != "" {
		orbtrade.RegisterUnit(*unitLabel)
	}
	s, err := orbtrade.Open(*itemsFile, *pricesFile)
	if err != nil {
		slog.Warn("baseline dataset unavailable, starting with an empty catalog", "err", err)
	}
	return s
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

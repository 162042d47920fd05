package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/etnz/orbtrade/cmd"
	"github.com/google/subcommands"
	"github.com/lmittmann/tint"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the shell completion tree. Complete returns
// immediately unless the binary is invoked by the shell completion hook.
func completion() {
	jsonFiles := predict.Files("*.json")
	(&complete.Command{
		Sub: map[string]*complete.Command{
			"search":    {Flags: map[string]complete.Predictor{"n": predict.Something}, Args: predict.Something},
			"list":      {},
			"set-price": {Args: predict.Something},
			"profit": {Flags: map[string]complete.Predictor{
				"sell":     predict.Something,
				"buy":      predict.Something,
				"sell-qty": predict.Something,
				"buy-qty":  predict.Something,
			}},
			"convert": {Flags: map[string]complete.Predictor{
				"from": predict.Something,
				"to":   predict.Something,
				"qty":  predict.Something,
			}},
			"import": {Flags: map[string]complete.Predictor{"f": jsonFiles}},
			"export": {Flags: map[string]complete.Predictor{"o": jsonFiles, "name": predict.Nothing}},
			"topic":  {Args: predict.Something},
		},
		Flags: map[string]complete.Predictor{
			"items-file":  jsonFiles,
			"prices-file": jsonFiles,
			"unit":        predict.Something,
		},
	}).Complete("obt")
}

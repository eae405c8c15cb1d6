package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/kavyad/spendwise/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: a no-op outside of completion mode.
	completion().Complete("sw")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	files := predict.Files("*")
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"signup": {Flags: map[string]complete.Predictor{
				"name": predict.Nothing, "email": predict.Nothing,
				"password": predict.Nothing, "confirm": predict.Nothing,
				"agree-terms": predict.Nothing,
			}},
			"login": {Flags: map[string]complete.Predictor{
				"email": predict.Nothing, "password": predict.Nothing,
			}},
			"logout": {},
			"onboard": {Flags: map[string]complete.Predictor{
				"budget":   predict.Nothing,
				"currency": predict.Set{"USD", "EUR", "GBP", "INR", "JPY"},
				"mode":     predict.Set{"topup", "replace"},
			}},
			"add": {Flags: map[string]complete.Predictor{
				"a": predict.Nothing,
				"c": predict.Set{"FOOD", "TRANSPORT", "FUEL", "ENTERTAINMENT", "UTILITIES", "SHOPPING", "OTHERS"},
				"from": predict.Set{"CASH", "BANK", "CREDIT CARD", "WALLET"},
				"d":    predict.Nothing,
			}},
			"tx": {Flags: map[string]complete.Predictor{
				"p": predict.Set{"day", "week", "month", "quarter", "year"},
				"s": predict.Nothing, "d": predict.Nothing, "q": predict.Nothing,
				"head": predict.Nothing, "tail": predict.Nothing,
			}},
			"summary": {Flags: map[string]complete.Predictor{
				"days": predict.Nothing, "d": predict.Nothing, "recent": predict.Nothing,
			}},
			"budget": {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"export": {Flags: map[string]complete.Predictor{"o": files}},
			"fmt":    {},
			"assist": {},
			"topic":  {Args: predict.Set{"readme", "dates", "accounts", "budget"}},
		},
		Flags: map[string]complete.Predictor{
			"store":   files,
			"session": files,
		},
	}
}

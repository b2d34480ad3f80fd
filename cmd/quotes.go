package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/gm1616bd-oss/stock-calc/renderer"
)

type quotesCmd struct{}

func (*quotesCmd) Name() string     { return "quotes" }
func (*quotesCmd) Synopsis() string { return "fetch and show current prices and the FX rate" }
func (*quotesCmd) Usage() string {
	return `scalc quotes

  Fetches the current price of every asset in the model plus the USD/KRW
  rate, and prints them. Useful to check data availability before planning.

`
}

func (*quotesCmd) SetFlags(f *flag.FlagSet) {}

func (c *quotesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	planner, err := NewPlanner()
	if err != nil {
		return fail(err)
	}
	quotes := FetchQuotes(ctx, planner.Model())
	printMarkdown(renderer.QuotesMarkdown(planner.Model(), quotes))
	return subcommands.ExitSuccess
}

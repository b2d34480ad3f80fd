// Package cmd implements the CLI application to compute rebalancing plans.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	stockcalc "github.com/gm1616bd-oss/stock-calc"
	"github.com/gm1616bd-oss/stock-calc/yahoo"
)

// Commands are registered by the main package in this order.
var Commands = []subcommands.Command{
	&planCmd{},
	&rebalanceCmd{},
	&modelCmd{},
	&quotesCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var fxRate = flag.Float64("fx", 0, "fixed USD/KRW rate to use instead of fetching the live one")
var fetchTimeout = flag.Duration("timeout", stockcalc.DefaultFetchTimeout, "timeout for each individual price or FX fetch")

// NewPlanner builds the planner over the default model. A validation
// failure here is a programming error in the model declaration and is fatal.
func NewPlanner() (*stockcalc.Planner, error) {
	return stockcalc.NewPlanner(stockcalc.DefaultModel())
}

// FetchQuotes resolves all prices and the FX rate for one run using the
// Yahoo Finance source and the shared flags.
func FetchQuotes(ctx context.Context, model stockcalc.PortfolioModel) *stockcalc.QuoteSet {
	client := yahoo.New()
	return stockcalc.FetchQuotes(ctx, model, client, client, stockcalc.FetchOptions{
		Timeout:   *fetchTimeout,
		FixedRate: *fxRate,
	})
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown, still readable
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	stockcalc "github.com/gm1616bd-oss/stock-calc"
	"github.com/gm1616bd-oss/stock-calc/renderer"
)

type rebalanceCmd struct {
	cash     int64
	holdings string
}

func (*rebalanceCmd) Name() string { return "rebalance" }
func (*rebalanceCmd) Synopsis() string {
	return "re-allocate the current value of holdings plus cash"
}
func (*rebalanceCmd) Usage() string {
	return `scalc rebalance -holdings "<qty...>" [-cash <krw>]

  Values every held position at its current KRW price, adds cash on hand,
  and re-allocates the resulting total across the model. Quotes are
  resolved once and reused for both the valuation and the plan.

Usage Examples:
$ scalc rebalance -cash 5000000 -holdings "3 2 0 0 5 10 4 1 2 1 8 3 0 5 12 7"

`
}

func (p *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.cash, "cash", 0, "Cash on hand in KRW.")
	f.StringVar(&p.holdings, "holdings", "", "Current share counts, whitespace separated, in model order.")
}

func (p *rebalanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.cash < 0 {
		return fail(fmt.Errorf("-cash must be non-negative, got %d", p.cash))
	}

	planner, err := NewPlanner()
	if err != nil {
		return fail(err)
	}
	holdings, padded, err := stockcalc.ParseHoldings(p.holdings, planner.Model().NumAssets())
	if err != nil {
		return fail(err)
	}

	quotes := FetchQuotes(ctx, planner.Model())
	total, warnings := planner.TotalFromHoldings(quotes, holdings, stockcalc.M(p.cash, "KRW"))

	plan, err := planner.Plan(total, quotes, holdings)
	if err != nil {
		return fail(fmt.Errorf("holdings and cash value to %s: %w", total, err))
	}
	plan.Warnings = append(plan.Warnings, warnings...)
	if padded {
		plan.Warnings = append(plan.Warnings, "fewer holdings than assets, missing quantities assumed zero")
	}
	printMarkdown(renderer.PlanMarkdown(plan))
	return subcommands.ExitSuccess
}

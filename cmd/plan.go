package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	stockcalc "github.com/gm1616bd-oss/stock-calc"
	"github.com/gm1616bd-oss/stock-calc/renderer"
)

type planCmd struct {
	total    int64
	domestic int64
	foreign  int64
	cash     int64
	holdings string
}

func (*planCmd) Name() string { return "plan" }
func (*planCmd) Synopsis() string {
	return "allocate a total budget across the portfolio model"
}
func (*planCmd) Usage() string {
	return `scalc plan [-total <krw>] [-domestic <krw> -foreign <krw> -cash <krw>] [-holdings "<qty...>"]

  Computes, for every asset in the model, the target amount, the rounded
  share quantity and the buy/sell/hold delta against current holdings.
  The total budget is given directly with -total, or as the sum of the
  -domestic, -foreign and -cash components.

Usage Examples:
# Allocate a 100M KRW budget.
$ scalc plan -total 100000000

# Same budget given as components, with current holdings.
$ scalc plan -domestic 20000000 -foreign 50000000 -cash 30000000 -holdings "3 2 0 0 5"

`
}

func (p *planCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.total, "total", 0, "Total budget in KRW.")
	f.Int64Var(&p.domestic, "domestic", 0, "Current domestic stock value in KRW.")
	f.Int64Var(&p.foreign, "foreign", 0, "Current foreign stock value in KRW.")
	f.Int64Var(&p.cash, "cash", 0, "Cash on hand in KRW.")
	f.StringVar(&p.holdings, "holdings", "", "Current share counts, whitespace separated, in model order.")
}

func (p *planCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for name, v := range map[string]int64{"total": p.total, "domestic": p.domestic, "foreign": p.foreign, "cash": p.cash} {
		if v < 0 {
			return fail(fmt.Errorf("-%s must be non-negative, got %d", name, v))
		}
	}
	total := p.total
	if total == 0 {
		total = p.domestic + p.foreign + p.cash
	}

	planner, err := NewPlanner()
	if err != nil {
		return fail(err)
	}
	holdings, padded, err := stockcalc.ParseHoldings(p.holdings, planner.Model().NumAssets())
	if err != nil {
		return fail(err)
	}
	if total <= 0 {
		return fail(stockcalc.ErrInvalidInput)
	}

	quotes := FetchQuotes(ctx, planner.Model())
	plan, err := planner.Plan(stockcalc.M(total, "KRW"), quotes, holdings)
	if err != nil {
		return fail(err)
	}
	if padded {
		plan.Warnings = append(plan.Warnings, "fewer holdings than assets, missing quantities assumed zero")
	}
	printMarkdown(renderer.PlanMarkdown(plan))
	return subcommands.ExitSuccess
}

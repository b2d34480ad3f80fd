package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/gm1616bd-oss/stock-calc/renderer"
)

type modelCmd struct{}

func (*modelCmd) Name() string     { return "model" }
func (*modelCmd) Synopsis() string { return "show the declared portfolio model" }
func (*modelCmd) Usage() string {
	return `scalc model

  Prints the tiers, weights and effective share of total assets for every
  asset in the model, plus the residual cash line. No network access.

`
}

func (*modelCmd) SetFlags(f *flag.FlagSet) {}

func (c *modelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	planner, err := NewPlanner()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ModelMarkdown(planner.Model()))
	return subcommands.ExitSuccess
}

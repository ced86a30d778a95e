package cmd

import (
	"context"
	"flag"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display total income, total expense and how they compare" }
func (*summaryCmd) Usage() string {
	return `cb summary

  Displays the total income, the total expense, the balance and whether
  income is greater than, less than or equal to expenses.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		return exitStatus(err)
	}

	income, expense, comparison := cashbook.Totals(ledger.List())
	logger.Debug("totals compared", "comparison", comparison.String(), "balance", comparison.Balance())

	printMarkdown(renderer.Summary(income, expense, comparison.Outcome))
	return subcommands.ExitSuccess
}

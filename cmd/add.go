package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	kind        string
	description string
	value       string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or an expense" }
func (*addCmd) Usage() string {
	return `cb add -k <income|expense> -d <description> -v <value>

  Records a new transaction and saves the ledger. The description must not be
  blank and the value must be a number greater than zero.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "", "Kind of transaction: income (i, +) or expense (e, -)")
	f.StringVar(&c.description, "d", "", "Description of the transaction")
	f.StringVar(&c.value, "v", "", "Value of the transaction, greater than zero")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := cashbook.ParseKind(c.kind)
	if err != nil {
		logger.Error(err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return exitStatus(err)
	}

	rec, err := ledger.Add(kind, c.description, c.value)
	if err != nil {
		return exitStatus(err)
	}
	if err := EncodeLedger(ledger); err != nil {
		return exitStatus(err)
	}

	fmt.Fprintf(out, "Recorded %s\n", renderer.Transaction(rec))
	return subcommands.ExitSuccess
}

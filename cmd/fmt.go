package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	coerce bool
	drop   bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `cb fmt [-coerce] [-drop]

  Validates and formats the ledger file. This command reads all transactions,
  validates them, and writes them back in a canonical CSV form.

  A transaction whose type is neither "Income" nor "Expense" is an error,
  unless -coerce is given, in which case it is rewritten as an expense.

  Any other invalid row (blank description, value not greater than zero,
  duplicate id) is an error naming its line, unless -drop is given, in which
  case the row is removed from the file.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.coerce, "coerce", false, "Rewrite transactions with an unknown type as expenses.")
	f.BoolVar(&p.drop, "drop", false, "Remove invalid transactions from the ledger file.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := LedgerPath()
	ledger, err := cashbook.LoadLedgerWith(path, cashbook.DecodeOptions{
		CoerceUnknownKind: p.coerce,
		DropInvalid:       p.drop,
		Logger:            logger,
	})
	if err != nil {
		return exitStatus(err)
	}

	if err := EncodeLedger(ledger); err != nil {
		return exitStatus(err)
	}

	fmt.Fprintf(out, "Ledger file %q has been formatted.\n", path)
	return subcommands.ExitSuccess
}

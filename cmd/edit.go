package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	id    int
	field string
	to    string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change the description or the value of a transaction" }
func (*editCmd) Usage() string {
	return `cb edit -id <id> -f <description|value> -to <new value>

  Updates one field of a transaction and saves the ledger. The id and the kind
  of a transaction cannot be changed.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the transaction to edit")
	f.StringVar(&c.field, "f", "", "Field to change: description or value")
	f.StringVar(&c.to, "to", "", "New content of the field")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	field, err := cashbook.ParseField(c.field)
	if err != nil {
		logger.Error(err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return exitStatus(err)
	}

	rec, err := ledger.Update(c.id, field, c.to)
	if err != nil {
		return exitStatus(err)
	}
	if err := EncodeLedger(ledger); err != nil {
		return exitStatus(err)
	}

	fmt.Fprintf(out, "Updated %s\n", renderer.Transaction(rec))
	return subcommands.ExitSuccess
}

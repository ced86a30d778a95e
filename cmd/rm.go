package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type rmCmd struct {
	id  int
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction" }
func (*rmCmd) Usage() string {
	return `cb rm -id <id> [-y]

  Deletes a transaction and saves the ledger. Asks for confirmation unless -y
  is given.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the transaction to delete")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		return exitStatus(err)
	}

	rec, err := ledger.Find(c.id)
	if err != nil {
		return exitStatus(err)
	}

	confirmed := c.yes
	if !confirmed {
		confirmed = confirm(fmt.Sprintf("Delete %s?", renderer.Transaction(rec)))
	}

	res, err := ledger.Delete(c.id, confirmed)
	if err != nil {
		return exitStatus(err)
	}
	if res == cashbook.Cancelled {
		fmt.Fprintln(out, "Cancelled, nothing deleted.")
		return subcommands.ExitSuccess
	}
	if err := EncodeLedger(ledger); err != nil {
		return exitStatus(err)
	}

	fmt.Fprintf(out, "Deleted %s\n", renderer.Transaction(rec))
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question on the standard input, no is the default.
func confirm(question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

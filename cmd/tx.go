package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	kind string
	json bool
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions in the ledger" }
func (*txCmd) Usage() string {
	return `cb tx [-k <income|expense>] [-head <n>] [-tail <n>] [-json]

  Lists transactions in the order they were recorded, with options for
  filtering and limiting the output. With -json, prints one JSON object per line.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "k", "", "Only list transactions of this kind (income or expense).")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
	f.BoolVar(&p.json, "json", false, "Print transactions as JSON lines.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		logger.Error("-head and -tail flags cannot be used together")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return exitStatus(err)
	}

	transactions := ledger.Select(cashbook.AcceptAll)
	if p.kind != "" {
		kind, err := cashbook.ParseKind(p.kind)
		if err != nil {
			logger.Error(err)
			return subcommands.ExitUsageError
		}
		transactions = ledger.ByKind(kind)
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	if p.json {
		enc := json.NewEncoder(out)
		for _, tx := range transactions {
			if err := enc.Encode(tx); err != nil {
				return exitStatus(fmt.Errorf("could not encode transaction %d: %w", tx.ID, err))
			}
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}

// Package cmd implements the CLI application to manage a cashbook.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")

	c.Register(&txCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&fmtCmd{}, "maintenance")

	c.Register(&topicCmd{}, "documentation")
}

// DefaultLedgerFile is used when neither -ledger-file nor $CASHBOOK_FILE is set.
const DefaultLedgerFile = "transactions.csv"

// EnvLedgerFile names the environment variable holding the ledger file path.
const EnvLedgerFile = "CASHBOOK_FILE"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (CSV format). Defaults to $"+EnvLedgerFile+" or "+DefaultLedgerFile)
var verbose = flag.Bool("verbose", false, "Log debug messages")
var rawMarkdown = flag.Bool("markdown", false, "Print reports as raw markdown instead of rendering them for the terminal")

// out and in are the command's standard output and input.
var (
	out io.Writer = os.Stdout
	in  io.Reader = os.Stdin
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "cb"})

// SetupLogger applies the logging flags, it must be called after flag.Parse.
func SetupLogger() {
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// LedgerPath returns the path of the ledger file to work on.
func LedgerPath() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	if p := os.Getenv(EnvLedgerFile); p != "" {
		return p
	}
	return DefaultLedgerFile
}

// DecodeLedger loads the app ledger file. A missing file is an empty ledger.
func DecodeLedger() (*cashbook.Ledger, error) {
	path := LedgerPath()
	ledger, err := cashbook.LoadLedger(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("ledger file does not exist, starting with an empty ledger", "file", path)
		return cashbook.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("ledger loaded", "file", path, "transactions", ledger.Len())
	return ledger, nil
}

// EncodeLedger replaces the app ledger file with the ledger content.
func EncodeLedger(ledger *cashbook.Ledger) error {
	path := LedgerPath()
	if err := cashbook.SaveLedger(path, ledger.List()); err != nil {
		return err
	}
	logger.Info("ledger saved", "file", path, "transactions", ledger.Len())
	return nil
}

// exitStatus logs err and maps it to an exit status.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	logger.Error(err)
	switch {
	case errors.Is(err, cashbook.ErrInvalidKind),
		errors.Is(err, cashbook.ErrImmutableField),
		errors.Is(err, cashbook.ErrUnknownField):
		return subcommands.ExitUsageError
	default:
		return subcommands.ExitFailure
	}
}

// printMarkdown renders md for the terminal, or prints it as is with -markdown.
func printMarkdown(md string) {
	if *rawMarkdown {
		fmt.Fprint(out, md)
		return
	}
	s, err := renderMarkdown(md)
	if err != nil {
		logger.Debug("could not render markdown, printing it raw", "err", err)
		s = md
	}
	fmt.Fprint(out, s)
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// createTempLedger writes content to a ledger file in a temporary directory
// and makes it the app ledger file for the duration of the test.
func createTempLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write temp ledger: %v", err)
		}
	}

	oldLedgerFile := ledgerFile
	ledgerFile = &path
	t.Cleanup(func() { ledgerFile = oldLedgerFile })
	return path
}

// captureOutput redirects the command output and feeds input to it.
func captureOutput(t *testing.T, input string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldIn, oldRaw := out, in, *rawMarkdown
	out, in, *rawMarkdown = &buf, strings.NewReader(input), true
	t.Cleanup(func() { out, in, *rawMarkdown = oldOut, oldIn, oldRaw })
	return &buf
}

// run parses args with the command flags and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid flags %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

// readLedger returns the content of the ledger file.
func readLedger(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read ledger file: %v", err)
	}
	return string(b)
}

// Command cb records income and expenses in a CSV ledger and reports how they compare.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cashbook/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// a .env file may set CASHBOOK_FILE, it is fine not to have one.
	_ = godotenv.Load()

	name := path.Base(os.Args[0])
	cmd.Completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogger()
	os.Exit(int(commander.Execute(context.Background())))
}

package cmd

import (
	"context"
	"flag"

	"github.com/etnz/cashbook/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `cb topic [<topic>...]

  Shows documentation for the given topics, or the list of topics. Use "*" for
  all of them.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Index}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return exitStatus(err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

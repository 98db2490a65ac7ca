package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"
	"github.com/wealthtrack/wealth"
	"github.com/wealthtrack/wealth/renderer"
)

type txCmd struct {
	category string
	account  string
	query    string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, newest first" }
func (*txCmd) Usage() string {
	return `wt tx [-c <category>] [-a <account_id>] [-q <text>]

  Lists transactions from the log, newest first, with optional filters on
  category, account and merchant text.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Only transactions with this category.")
	f.StringVar(&c.account, "a", "", "Only transactions on this account id.")
	f.StringVar(&c.query, "q", "", "Only transactions whose merchant contains this text.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state := openStore().Load()

	q := strings.ToLower(c.query)
	var matching []wealth.Transaction
	// Newest first: walk the date-sorted log backwards.
	for i := len(state.Transactions) - 1; i >= 0; i-- {
		t := state.Transactions[i]
		if c.category != "" && t.Category != c.category {
			continue
		}
		if c.account != "" && t.AccountID != c.account {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.Merchant), q) {
			continue
		}
		matching = append(matching, t)
	}

	printMarkdown(renderer.TransactionsMarkdown(state, matching))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type setCurrencyCmd struct{}

func (*setCurrencyCmd) Name() string     { return "set-currency" }
func (*setCurrencyCmd) Synopsis() string { return "set the base currency" }
func (*setCurrencyCmd) Usage() string {
	return `wt set-currency <code>

  Sets the base currency all aggregates and balances are expressed in.
`
}

func (*setCurrencyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *setCurrencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one currency code.")
		return subcommands.ExitUsageError
	}

	store := openStore()
	state := store.Load()
	state.BaseCurrency = f.Arg(0)
	store.Save(state)

	fmt.Printf("Base currency set to %s.\n", state.BaseCurrency)
	return subcommands.ExitSuccess
}

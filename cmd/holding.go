package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/wealthtrack/wealth/renderer"
)

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list investment holdings valued at mock prices" }
func (*holdingsCmd) Usage() string {
	return `wt holdings

  Lists holdings with their current mock price, position value and P/L.
`
}

func (*holdingsCmd) SetFlags(_ *flag.FlagSet) {}

func (*holdingsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	state := store.Load()
	positions := state.Positions(time.Now())
	// Positions refreshes the advisory price cache; keep it.
	store.Save(state)

	printMarkdown(renderer.HoldingsMarkdown(state, positions))
	return subcommands.ExitSuccess
}

type addHoldingCmd struct {
	symbol   string
	quantity string
	cost     string
}

func (*addHoldingCmd) Name() string     { return "add-holding" }
func (*addHoldingCmd) Synopsis() string { return "record a new investment position" }
func (*addHoldingCmd) Usage() string {
	return `wt add-holding -symbol <SYM> -quantity <n> -cost <total>

  Records a position. Cost is the total cost basis, not per unit. Quantity
  and cost are immutable once created; delete and recreate to change them.
`
}

func (c *addHoldingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol of the position.")
	f.StringVar(&c.quantity, "quantity", "", "Number of units held.")
	f.StringVar(&c.cost, "cost", "", "Total cost basis.")
}

func (c *addHoldingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required.")
		return subcommands.ExitUsageError
	}
	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
		return subcommands.ExitUsageError
	}
	cost, err := decimal.NewFromString(c.cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost: %v\n", err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	state := store.Load()
	h := state.AddHolding(c.symbol, quantity, cost)
	store.Save(state)

	fmt.Printf("Added holding %s (%s units).\n", h.Symbol, h.Quantity)
	return subcommands.ExitSuccess
}

type deleteHoldingCmd struct {
	id string
}

func (*deleteHoldingCmd) Name() string     { return "delete-holding" }
func (*deleteHoldingCmd) Synopsis() string { return "delete an investment position" }
func (*deleteHoldingCmd) Usage() string {
	return `wt delete-holding -id <holding_id>

  Deletes the holding with the given id.
`
}

func (c *deleteHoldingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the holding to delete.")
}

func (c *deleteHoldingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	state := store.Load()
	if !state.DeleteHolding(c.id) {
		fmt.Fprintf(os.Stderr, "Error: no holding with id %q.\n", c.id)
		return subcommands.ExitFailure
	}
	store.Save(state)

	fmt.Println("Holding deleted.")
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/wealthtrack/wealth"
	"github.com/wealthtrack/wealth/renderer"
)

type subscriptionsCmd struct{}

func (*subscriptionsCmd) Name() string     { return "subscriptions" }
func (*subscriptionsCmd) Synopsis() string { return "list subscriptions and the monthly burn" }
func (*subscriptionsCmd) Usage() string {
	return `wt subscriptions

  Lists recurring charges and the estimated monthly burn rate.
`
}

func (*subscriptionsCmd) SetFlags(_ *flag.FlagSet) {}

func (*subscriptionsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state := openStore().Load()
	printMarkdown(renderer.SubscriptionsMarkdown(state.Subscriptions, state.MonthlyBurn()))
	return subcommands.ExitSuccess
}

type addSubscriptionCmd struct {
	name    string
	amount  string
	cadence string
	next    string
}

func (*addSubscriptionCmd) Name() string     { return "add-subscription" }
func (*addSubscriptionCmd) Synopsis() string { return "record a recurring charge" }
func (*addSubscriptionCmd) Usage() string {
	return `wt add-subscription -name <name> -amount <n> [-cadence monthly|yearly] [-next <date>]

  Records a recurring charge used for burn-rate estimation. Subscriptions
  never generate transactions.
`
}

func (c *addSubscriptionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the subscription.")
	f.StringVar(&c.amount, "amount", "", "Amount charged per period.")
	f.StringVar(&c.cadence, "cadence", string(wealth.Monthly), "Cadence: monthly or yearly.")
	f.StringVar(&c.next, "next", wealth.Today().String(), "Next charge date (YYYY-MM-DD).")
}

func (c *addSubscriptionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	cadence, err := wealth.ParseCadence(c.cadence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	next, err := wealth.ParseDate(c.next)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing next date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	state := store.Load()
	sub := state.AddSubscription(c.name, amount, cadence, next)
	store.Save(state)

	fmt.Printf("Added subscription %s (%s, %s).\n", sub.Name, sub.Amount.StringFixed(2), sub.Cadence)
	return subcommands.ExitSuccess
}

type deleteSubscriptionCmd struct {
	id string
}

func (*deleteSubscriptionCmd) Name() string     { return "delete-subscription" }
func (*deleteSubscriptionCmd) Synopsis() string { return "delete a recurring charge" }
func (*deleteSubscriptionCmd) Usage() string {
	return `wt delete-subscription -id <subscription_id>

  Deletes the subscription with the given id.
`
}

func (c *deleteSubscriptionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the subscription to delete.")
}

func (c *deleteSubscriptionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	state := store.Load()
	if !state.DeleteSubscription(c.id) {
		fmt.Fprintf(os.Stderr, "Error: no subscription with id %q.\n", c.id)
		return subcommands.ExitFailure
	}
	store.Save(state)

	fmt.Println("Subscription deleted.")
	return subcommands.ExitSuccess
}

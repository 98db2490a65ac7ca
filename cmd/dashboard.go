package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wealthtrack/wealth"
	"github.com/wealthtrack/wealth/renderer"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	date string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display net worth, cashflow and category KPIs" }
func (*dashboardCmd) Usage() string {
	return `wt dashboard [-d <date>]

  Displays the dashboard: net worth, month-to-date spend and savings rate,
  the net worth series, monthly cashflow, the 90-day category breakdown and
  the latest transactions.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealth.Today().String(), "Date for the dashboard (YYYY-MM-DD).")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := wealth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	state := openStore().Load()
	printMarkdown(renderer.DashboardMarkdown(state, wealth.NewDashboard(state, on)))
	return subcommands.ExitSuccess
}

// Package cmd implements the CLI application to manage the wealth tracker.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/wealthtrack/wealth"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&txCmd{}, "reports")

	c.Register(&importCmd{}, "imports")

	c.Register(&holdingsCmd{}, "investments")
	c.Register(&addHoldingCmd{}, "investments")
	c.Register(&deleteHoldingCmd{}, "investments")

	c.Register(&subscriptionsCmd{}, "subscriptions")
	c.Register(&addSubscriptionCmd{}, "subscriptions")
	c.Register(&deleteSubscriptionCmd{}, "subscriptions")

	c.Register(&assistCmd{}, "assistant")

	c.Register(&exportCmd{}, "settings")
	c.Register(&resetCmd{}, "settings")
	c.Register(&setCurrencyCmd{}, "settings")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", defaultDataDir(), "Path to the data directory holding the snapshot file")

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".wealth")
}

// openStore binds the store to the app data directory.
func openStore() *wealth.Store {
	return wealth.OpenStore(*dataDir)
}

// printMarkdown renders a markdown report for the terminal. If rendering
// fails, the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wealthtrack/wealth"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the whole snapshot as pretty-printed JSON" }
func (*exportCmd) Usage() string {
	return `wt export [-o <file>]

  Writes the entire snapshot, pretty-printed, to the export file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", wealth.ExportFile, "Output file for the export.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state := openStore().Load()

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := wealth.Export(out, state); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Snapshot exported to %s\n", c.output)
	return subcommands.ExitSuccess
}

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete the snapshot and start over with demo data" }
func (*resetCmd) Usage() string {
	return `wt reset

  Deletes the persisted snapshot. The next command seeds fresh demo data.
`
}

func (*resetCmd) SetFlags(_ *flag.FlagSet) {}

func (*resetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := openStore().Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Snapshot deleted.")
	return subcommands.ExitSuccess
}

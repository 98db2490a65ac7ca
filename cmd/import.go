package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wealthtrack/wealth"
	"github.com/wealthtrack/wealth/renderer"
)

// The interactive preview is capped; the full file is still imported.
const (
	previewRows = 100
	sampleRows  = 50
)

type importCmd struct {
	file   string
	source string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a CSV file" }
func (*importCmd) Usage() string {
	return `wt import -f <file.csv> [-s <source>]

  Parses a CSV file with a header row, infers a column mapping, normalizes
  and deduplicates the rows, converts them to the base currency, assigns
  categories and appends them to the transaction log as one import batch.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "CSV file to import.")
	f.StringVar(&c.source, "s", "generic", "Source tag recorded on the import batch (e.g. revolut).")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <file.csv> is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	headers, rows, err := wealth.ParseCSV(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	if len(rows) == 0 {
		// Empty file: nothing is added, no batch record is created.
		fmt.Println("Nothing to import.")
		return subcommands.ExitSuccess
	}

	preview := rows
	if len(preview) > previewRows {
		preview = preview[:previewRows]
	}
	sample := preview
	if len(sample) > sampleRows {
		sample = sample[:sampleRows]
	}

	plan := wealth.InferPlan(headers, sample, c.source)
	planJSON, _ := json.MarshalIndent(plan, "", "  ")
	fmt.Printf("Proposed mapping:\n%s\n\n", planJSON)

	cleaned, _ := wealth.ApplyPlan(plan, sample)
	if len(cleaned) > 5 {
		cleaned = cleaned[:5]
	}
	cleanedJSON, _ := json.MarshalIndent(cleaned, "", "  ")
	fmt.Printf("Preview of first cleaned rows:\n%s\n\n", cleanedJSON)

	store := openStore()
	state := store.Load()
	result := wealth.Import(state, plan, rows, c.source)
	store.Save(state)

	printMarkdown(renderer.ImportResultMarkdown(result))
	printMarkdown(renderer.ImportsMarkdown(state.Imports))
	return subcommands.ExitSuccess
}

// Package agent implements the local assistant that answers free-text
// questions over the shared snapshot. It is a rule-based responder routing
// keyword matches into the domain aggregates, not a reasoning system; no
// conversation state is retained between calls.
package agent

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wealthtrack/wealth"
)

// Assistant answers questions about one state object.
type Assistant struct {
	state *wealth.State
}

// New creates an Assistant over the given state.
func New(state *wealth.State) *Assistant {
	return &Assistant{state: state}
}

const disclaimer = "The assistant runs locally on your own data. Ask about your subscriptions, spending, or net worth."

// Answer returns a single text reply for a free-text question, computed by
// keyword containment checks against a fixed phrase set.
func (a *Assistant) Answer(q string) string {
	s := strings.ToLower(q)
	switch {
	case strings.Contains(s, "subscriptions"):
		return fmt.Sprintf("You have %d subscriptions. Monthly burn ≈ %s.",
			len(a.state.Subscriptions), a.state.MonthlyBurn().SignedString())
	case strings.Contains(s, "spend"), strings.Contains(s, "expense"):
		on := wealth.Today()
		return fmt.Sprintf("Estimated expenses for %s: %s.",
			on.YearMonth(), a.state.MonthSpend(on).SignedString())
	case strings.Contains(s, "net worth"):
		return fmt.Sprintf("Current net worth (approx): %s.",
			a.state.NetWorth().SignedString())
	default:
		return disclaimer
	}
}

const prompt = "assist> "

// Run starts the interactive session for the assistant, reading questions
// from r line by line and writing replies to w. Initial prompts, if any, are
// answered before reading. Typing 'bye' (or closing the input) ends the
// session.
func (a *Assistant) Run(w io.Writer, r io.Reader, prompts ...string) error {
	fmt.Fprintln(w, "Welcome to wt assist. Type 'bye' to exit.")

	for _, p := range prompts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		fmt.Fprintln(w, prompt+p)
		fmt.Fprintln(w, a.Answer(p))
	}

	br := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)
		line, err := br.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		q := strings.TrimSpace(line)
		if q == "" {
			continue
		}
		if q == "bye" {
			fmt.Fprintln(w, "Goodbye.")
			return nil
		}
		fmt.Fprintln(w, a.Answer(q))
	}
}

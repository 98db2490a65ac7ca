// Package renderer formats domain reports as markdown for the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/wealthtrack/wealth"
)

// mdRenderer formats report output into a markdown string.
type mdRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// DashboardMarkdown renders the dashboard report: the KPI row, the three
// chart datasets as tables, and the latest transactions.
func DashboardMarkdown(s *wealth.State, d *wealth.Dashboard) string {
	r := &mdRenderer{Builder: &strings.Builder{}}

	r.Printf("# Dashboard on %s\n\n", d.Date)
	r.Printf("Net worth: %s\n\n", d.NetWorth.SignedString())
	r.Printf("Spend this month: %s\n\n", d.MonthSpend.SignedString())
	if d.HasIncome {
		r.Printf("Savings rate (MTD): %d%%\n\n", d.SavingsRate)
	} else {
		r.Printf("Savings rate (MTD): —\n\n")
	}

	if len(d.NetWorthSeries.Labels) > 0 {
		r.Printf("## Net Worth Over Time\n\n")
		r.Printf("| Date | Net Worth |\n")
		r.Printf("|:---|---:|\n")
		for i, label := range d.NetWorthSeries.Labels {
			r.Printf("| %s | %s |\n", label, d.NetWorthSeries.Values[i].StringFixed(2))
		}
		r.Printf("\n")
	}

	if len(d.Cashflow.Labels) > 0 {
		r.Printf("## Cashflow by Month\n\n")
		r.Printf("| Month | Income | Expenses |\n")
		r.Printf("|:---|---:|---:|\n")
		for i, label := range d.Cashflow.Labels {
			r.Printf("| %s | %s | %s |\n", label,
				d.Cashflow.Income[i].StringFixed(2), d.Cashflow.Expenses[i].StringFixed(2))
		}
		r.Printf("\n")
	}

	if len(d.Categories.Labels) > 0 {
		r.Printf("## Spending by Category (90 days)\n\n")
		r.Printf("| Category | Spent |\n")
		r.Printf("|:---|---:|\n")
		for i, label := range d.Categories.Labels {
			r.Printf("| %s | %s |\n", label, d.Categories.Values[i].StringFixed(2))
		}
		r.Printf("\n")
	}

	if len(d.Latest) > 0 {
		r.Printf("## Latest Transactions\n\n")
		renderTransactionTable(r, s, d.Latest)
	}
	return r.String()
}

// TransactionsMarkdown renders a transaction list as a markdown table.
func TransactionsMarkdown(s *wealth.State, txs []wealth.Transaction) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	r.Printf("# Transactions\n\n")
	if len(txs) == 0 {
		r.Printf("No matching transactions.\n")
		return r.String()
	}
	renderTransactionTable(r, s, txs)
	return r.String()
}

func renderTransactionTable(r *mdRenderer, s *wealth.State, txs []wealth.Transaction) {
	r.Printf("| Date | Account | Merchant | Category | Amount |\n")
	r.Printf("|:---|:---|:---|:---|---:|\n")
	for _, t := range txs {
		category := t.Category
		if category == "" {
			category = "—"
		}
		amount := wealth.M(t.AmountBase, s.BaseCurrency)
		r.Printf("| %s | %s | %s | %s | %s |\n",
			t.Date, s.AccountName(t.AccountID), t.Merchant, category, amount.SignedString())
	}
	r.Printf("\n")
}

// HoldingsMarkdown renders the valued positions as a markdown table.
func HoldingsMarkdown(s *wealth.State, positions []wealth.Position) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	r.Printf("# Holdings\n\n")
	if len(positions) == 0 {
		r.Printf("No holdings recorded.\n")
		return r.String()
	}
	r.Printf("| Symbol | Quantity | Cost | Price | Value | P/L |\n")
	r.Printf("|:---|---:|---:|---:|---:|---:|\n")
	for _, p := range positions {
		r.Printf("| %s | %s | %s | %s | %s | %s |\n",
			p.Symbol, p.Quantity.String(), p.Cost.StringFixed(2),
			p.Price.StringFixed(2), p.Value.StringFixed(2), p.PL.StringFixed(2))
	}
	r.Printf("\n")
	return r.String()
}

// SubscriptionsMarkdown renders the subscription list and the monthly burn.
func SubscriptionsMarkdown(subs []wealth.Subscription, burn wealth.Money) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	r.Printf("# Subscriptions\n\n")
	if len(subs) == 0 {
		r.Printf("No subscriptions recorded.\n")
		return r.String()
	}
	r.Printf("| Name | Amount | Cadence | Next date |\n")
	r.Printf("|:---|---:|:---|:---|\n")
	for _, sub := range subs {
		r.Printf("| %s | %s | %s | %s |\n",
			sub.Name, sub.Amount.StringFixed(2), sub.Cadence, sub.NextDate)
	}
	r.Printf("\nMonthly burn ≈ %s\n", burn.SignedString())
	return r.String()
}

// ImportsMarkdown renders the import history, most recent first.
func ImportsMarkdown(records []wealth.ImportRecord) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	r.Printf("# Import History\n\n")
	if len(records) == 0 {
		r.Printf("No imports yet.\n")
		return r.String()
	}
	for _, rec := range records {
		r.Printf("- #%s · %d rows · %s · %s\n",
			shortID(rec.ID), rec.Rows, rec.Source, rec.When.Format("2006-01-02 15:04"))
	}
	return r.String()
}

// ImportResultMarkdown renders the one-line import summary plus any soft
// warnings the pipeline collected.
func ImportResultMarkdown(res wealth.ImportResult) string {
	r := &mdRenderer{Builder: &strings.Builder{}}
	r.Printf("%s\n", res.Summary())
	if len(res.Warnings) > 0 {
		r.Printf("\n## Warnings\n\n")
		for _, w := range res.Warnings {
			r.Printf("- %s\n", w)
		}
	}
	return r.String()
}

// shortID abbreviates a batch identifier for display.
func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[:6]
}

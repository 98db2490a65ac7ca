package wealth

import (
	"sort"

	"github.com/shopspring/decimal"
)

// This file contains the pure aggregate reads over the transaction log.
// None of these functions mutate state.

// AccountBalance computes the lifetime balance of an account: the sum of
// base-currency amounts over all transactions on this account, with no date
// filtering.
func (s *State) AccountBalance(id string) Money {
	total := decimal.Zero
	for _, t := range s.Transactions {
		if t.AccountID == id {
			total = total.Add(t.AmountBase)
		}
	}
	return M(total, s.BaseCurrency)
}

// NetWorth is the sum of all account balances.
func (s *State) NetWorth() Money {
	total := decimal.Zero
	for _, a := range s.Accounts {
		total = total.Add(s.AccountBalance(a.ID).Amount())
	}
	return M(total, s.BaseCurrency)
}

// Series is a label-aligned value sequence for a chart or table.
type Series struct {
	Labels []string
	Values []decimal.Decimal
}

// NetWorthSeries returns the running cumulative net delta per transaction
// date, aligned to sorted unique dates. Dates with no transactions are not
// interpolated, so the series is sparse rather than a smooth daily line.
func (s *State) NetWorthSeries() Series {
	deltas := make(map[string]decimal.Decimal)
	for _, t := range s.Transactions {
		key := t.Date.String()
		deltas[key] = deltas[key].Add(t.AmountBase)
	}
	labels := make([]string, 0, len(deltas))
	for key := range deltas {
		labels = append(labels, key)
	}
	sort.Strings(labels)

	cum := decimal.Zero
	values := make([]decimal.Decimal, 0, len(labels))
	for _, key := range labels {
		cum = cum.Add(deltas[key])
		values = append(values, cum)
	}
	return Series{Labels: labels, Values: values}
}

// Cashflow holds per-month income and expense totals, month-sorted.
type Cashflow struct {
	Labels   []string
	Income   []decimal.Decimal
	Expenses []decimal.Decimal
}

// CashflowByMonth groups transactions by their "YYYY-MM" prefix. Within each
// bucket non-negative amounts sum into income and the absolute value of
// negative amounts into expenses, each rounded to 2 decimals.
func (s *State) CashflowByMonth() Cashflow {
	type bucket struct {
		income   decimal.Decimal
		expenses decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for _, t := range s.Transactions {
		key := t.Date.YearMonth()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		if t.AmountBase.IsNegative() {
			b.expenses = b.expenses.Add(t.AmountBase.Abs())
		} else {
			b.income = b.income.Add(t.AmountBase)
		}
	}
	labels := make([]string, 0, len(buckets))
	for key := range buckets {
		labels = append(labels, key)
	}
	sort.Strings(labels)

	cf := Cashflow{Labels: labels}
	for _, key := range labels {
		cf.Income = append(cf.Income, buckets[key].income.Round(2))
		cf.Expenses = append(cf.Expenses, buckets[key].expenses.Round(2))
	}
	return cf
}

// Categories returns the expense breakdown by category over the trailing
// window of days ending on 'on'. Only the expense portion of each transaction
// counts; income is ignored. Transactions without a category fall into
// "Uncategorized". Labels follow first-seen order among matching
// transactions, not sorted order.
func (s *State) Categories(days int, on Date) Series {
	since := on.Add(-days)
	totals := make(map[string]decimal.Decimal)
	var labels []string
	for _, t := range s.Transactions {
		if t.Date.Before(since) {
			continue
		}
		key := t.Category
		if key == "" {
			key = "Uncategorized"
		}
		if _, seen := totals[key]; !seen {
			labels = append(labels, key)
		}
		expense := decimal.Zero
		if t.AmountBase.IsNegative() {
			expense = t.AmountBase.Abs()
		}
		totals[key] = totals[key].Add(expense)
	}
	values := make([]decimal.Decimal, 0, len(labels))
	for _, key := range labels {
		values = append(values, totals[key].Round(2))
	}
	return Series{Labels: labels, Values: values}
}

// MonthIncome sums the strictly positive amounts of the month containing 'on'.
func (s *State) MonthIncome(on Date) Money {
	month := on.YearMonth()
	total := decimal.Zero
	for _, t := range s.Transactions {
		if t.Date.YearMonth() == month && t.AmountBase.IsPositive() {
			total = total.Add(t.AmountBase)
		}
	}
	return M(total, s.BaseCurrency)
}

// MonthSpend sums the negative amounts of the month containing 'on'. The
// result is negative or zero.
func (s *State) MonthSpend(on Date) Money {
	month := on.YearMonth()
	total := decimal.Zero
	for _, t := range s.Transactions {
		if t.Date.YearMonth() == month && t.AmountBase.IsNegative() {
			total = total.Add(t.AmountBase)
		}
	}
	return M(total, s.BaseCurrency)
}

// SavingsRate computes the month-to-date savings rate in percent:
// (income + spend) / income * 100, rounded to the nearest integer, where
// spend is naturally negative. It is undefined when the month has no income,
// in which case ok is false.
func (s *State) SavingsRate(on Date) (rate int64, ok bool) {
	income := s.MonthIncome(on).Amount()
	if !income.IsPositive() {
		return 0, false
	}
	spend := s.MonthSpend(on).Amount()
	return income.Add(spend).Div(income).Mul(decimal.NewFromInt(100)).Round(0).IntPart(), true
}

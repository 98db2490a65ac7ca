package wealth

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CleanRow is one normalized, deduplicated record, ready to become a
// transaction.
type CleanRow struct {
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	AmountCHF   decimal.Decimal `json:"amount_chf"`
	AccountID   string          `json:"account_id"`
	Category    string          `json:"category,omitempty"` // pre-set by the source data, wins over rules
}

// ImportResult reports one completed pipeline run: how many rows survived,
// their direction split, the net monetary impact, and the soft warnings
// collected along the way. The pipeline itself never fails on a documented
// input; callers decide whether to surface the warnings.
type ImportResult struct {
	ImportID string
	Rows     int
	Positive int
	Negative int
	Net      Money
	Warnings []string
}

// Summary returns the one-line textual description of the import.
func (r ImportResult) Summary() string {
	return fmt.Sprintf("Import complete: %d rows. Income: %d, Expenses: %d. Net impact: %s.",
		r.Rows, r.Positive, r.Negative, r.Net.SignedString())
}

// normalizeAmount coerces a raw cell into a number after replacing a decimal
// comma with a decimal point. Thousands separators are not handled and will
// corrupt the value; this is a known limitation of the one supported
// convention, not something to fix here. Malformed input becomes zero.
func normalizeAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(strings.Replace(raw, ",", ".", 1))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ApplyPlan runs stages 2 to 4 of the pipeline over the raw rows: it
// normalizes dates, amounts, currencies and descriptions, drops exact
// duplicates (first occurrence wins), converts to the base currency and
// keeps any pre-set category. No row is ever rejected; degraded rows fall
// back to defaults and produce a warning.
//
// Dedup state lives entirely in this call: running ApplyPlan twice on the
// same rows yields the same output as running it once.
func ApplyPlan(plan Plan, rows []Row) ([]CleanRow, []string) {
	var warnings []string
	if plan.ColumnMapping.Date == "" {
		warnings = append(warnings, "no date column mapped; using today's date")
	}
	if plan.ColumnMapping.Amount == "" {
		warnings = append(warnings, "no amount column mapped; amounts default to 0")
	}

	out := make([]CleanRow, 0, len(rows))
	seen := make(map[string]struct{})
	for i, row := range rows {
		day, dateOK := NormalizeDate(row[plan.ColumnMapping.Date])
		if !dateOK && plan.ColumnMapping.Date != "" {
			warnings = append(warnings, fmt.Sprintf("row %d: unparseable date %q, using today", i+1, row[plan.ColumnMapping.Date]))
		}

		amount, amountOK := normalizeAmount(row[plan.ColumnMapping.Amount])
		if !amountOK && plan.ColumnMapping.Amount != "" && strings.TrimSpace(row[plan.ColumnMapping.Amount]) != "" {
			warnings = append(warnings, fmt.Sprintf("row %d: unparseable amount %q, using 0", i+1, row[plan.ColumnMapping.Amount]))
		}

		currency := strings.TrimSpace(row[plan.ColumnMapping.Currency])
		if currency == "" {
			currency = "CHF"
		} else if _, known := fxRates[currency]; !known {
			warnings = append(warnings, fmt.Sprintf("row %d: unknown currency %q, converting at rate 1", i+1, currency))
		}

		desc := row[plan.ColumnMapping.Description]

		// Exact composite key; the fuzzy knobs of the plan are advisory and
		// deliberately not consulted here.
		key := day.String() + "|" + amount.String() + "|" + desc
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		out = append(out, CleanRow{
			Date:        day,
			Amount:      amount,
			Currency:    currency,
			Description: desc,
			AmountCHF:   FxToCHF(amount, currency),
			AccountID:   plan.AccountID,
			Category:    strings.TrimSpace(row["category"]),
		})
	}
	return out, warnings
}

// Import runs the whole pipeline over one parsed file and applies its side
// effects to the state: fresh transactions sharing one batch id are appended
// to the log (which is then re-sorted by date) and an audit record is
// prepended to the import history. Empty input is a no-op: nothing is added
// and no record is created. Persisting the mutated state is the caller's
// responsibility.
func Import(s *State, plan Plan, rows []Row, source string) ImportResult {
	if len(rows) == 0 {
		return ImportResult{Net: M(0, s.BaseCurrency)}
	}

	cleaned, warnings := ApplyPlan(plan, rows)
	importID := uuid.NewString()

	net := decimal.Zero
	result := ImportResult{ImportID: importID, Rows: len(cleaned), Warnings: warnings}
	txs := make([]Transaction, 0, len(cleaned))
	for _, r := range cleaned {
		category := r.Category
		if category == "" {
			category = RuleCategory(r.Description, r.AmountCHF)
		}
		accountID := r.AccountID
		if accountID == "" {
			accountID = "acc_bank"
		}
		txs = append(txs, Transaction{
			ID:           uuid.NewString(),
			Date:         r.Date,
			AccountID:    accountID,
			Merchant:     r.Description,
			Category:     category,
			AmountBase:   r.AmountCHF,
			ImportID:     importID,
			CurrencyOrig: r.Currency,
			AmountOrig:   r.Amount,
		})
		if r.AmountCHF.IsPositive() {
			result.Positive++
		} else if r.AmountCHF.IsNegative() {
			result.Negative++
		}
		net = net.Add(r.AmountCHF)
	}
	s.Append(txs...)
	s.Imports = append([]ImportRecord{{
		ID:     importID,
		When:   time.Now(),
		Rows:   len(cleaned),
		Source: source,
	}}, s.Imports...)

	result.Net = M(net.Round(2), s.BaseCurrency)
	return result
}

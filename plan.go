package wealth

import "strings"

// Row is one raw record of a parsed tabular file, keyed by column header.
type Row map[string]string

// ColumnMapping assigns each canonical field to a source column header.
// An empty value means no header matched; downstream stages substitute
// defaults (today's date, zero amount, base currency, empty description).
type ColumnMapping struct {
	Date        string `json:"date,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Currency    string `json:"currency,omitempty"`
	Description string `json:"description,omitempty"`
}

// Normalization describes how raw cells are coerced. All knobs are currently
// "auto": one decimal-comma convention, no thousands separators.
type Normalization struct {
	DateFormat       string `json:"date_format"`
	DecimalSeparator string `json:"decimal_separator"`
	Sign             string `json:"sign"`
}

// DuplicateDetection configures the dedup stage. Only Hash is consulted;
// the fuzzy knobs are declared but advisory only.
type DuplicateDetection struct {
	Hash        []string `json:"hash"`
	FuzzyDays   int      `json:"fuzzy_days"`
	FuzzyAmount float64  `json:"fuzzy_amount"`
}

// SubscriptionDetection configures recurring-charge suggestions. Advisory only.
type SubscriptionDetection struct {
	CadenceDays int `json:"cadence_days"`
	MinRepeats  int `json:"min_repeats"`
}

// Plan is the ephemeral import plan: produced fresh per import attempt by
// InferPlan and consumed immediately by ApplyPlan. It is never persisted.
type Plan struct {
	ColumnMapping         ColumnMapping         `json:"column_mapping"`
	Normalization         Normalization         `json:"normalization"`
	DuplicateDetection    DuplicateDetection    `json:"duplicate_detection"`
	SubscriptionDetection SubscriptionDetection `json:"subscription_detection"`
	AccountID             string                `json:"account_id"`
}

// Keyword sets for column mapping inference, per canonical field. Matching
// is case-insensitive containment on the header name.
var (
	dateKeywords        = []string{"date", "datum", "booking", "valuta"}
	amountKeywords      = []string{"amount", "betrag", "importo", "value"}
	currencyKeywords    = []string{"currency", "währung", "divisa"}
	descriptionKeywords = []string{"description", "merchant", "text", "note"}
)

func findHeader(headers []string, keywords []string) string {
	for _, h := range headers {
		name := strings.ToLower(h)
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				return h
			}
		}
	}
	return ""
}

// InferPlan heuristically builds an import plan from the column headers of
// an uploaded file. The sample rows are accepted for interface compatibility
// but the current inference only looks at headers.
func InferPlan(headers []string, sample []Row, source string) Plan {
	_ = sample
	return Plan{
		ColumnMapping: ColumnMapping{
			Date:        findHeader(headers, dateKeywords),
			Amount:      findHeader(headers, amountKeywords),
			Currency:    findHeader(headers, currencyKeywords),
			Description: findHeader(headers, descriptionKeywords),
		},
		Normalization:         Normalization{DateFormat: "auto", DecimalSeparator: "auto", Sign: "auto"},
		DuplicateDetection:    DuplicateDetection{Hash: []string{"date", "amount", "description"}, FuzzyDays: 2, FuzzyAmount: 0.05},
		SubscriptionDetection: SubscriptionDetection{CadenceDays: 30, MinRepeats: 3},
		// Source-specific account routing is a placeholder: every source
		// maps to the default bank account for now.
		AccountID: "acc_bank",
	}
}

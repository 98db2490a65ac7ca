package wealth

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// AccountType distinguishes the two kinds of reference accounts.
type AccountType string

const (
	AccountBank   AccountType = "bank"
	AccountBroker AccountType = "broker"
)

// Account is a static reference entry; it is not mutated by normal use.
type Account struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     AccountType `json:"type"`
	Currency string      `json:"currency"`
}

// Transaction is one entry of the transaction log. The sign of AmountBase
// encodes direction: negative is an outflow, non-negative an inflow.
// Transactions are never mutated after creation.
type Transaction struct {
	ID           string
	Date         Date
	AccountID    string
	Merchant     string
	Category     string
	AmountBase   decimal.Decimal // in the base currency
	ImportID     string          // empty for seeded or manually entered rows
	CurrencyOrig string
	AmountOrig   decimal.Decimal
}

// MarshalJSON writes the snapshot form of a transaction. A transaction that
// did not come from an import batch stores an explicit null import_id.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("account_id", t.AccountID)
	w.Append("merchant", t.Merchant)
	w.Append("category", t.Category)
	w.Append("amount_base_chf", t.AmountBase)
	if t.ImportID == "" {
		w.Append("import_id", nil)
	} else {
		w.Append("import_id", t.ImportID)
	}
	w.Append("currency_orig", t.CurrencyOrig)
	w.Append("amount_orig", t.AmountOrig)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID           string          `json:"id"`
		Date         Date            `json:"date"`
		AccountID    string          `json:"account_id"`
		Merchant     string          `json:"merchant"`
		Category     string          `json:"category"`
		AmountBase   decimal.Decimal `json:"amount_base_chf"`
		ImportID     *string         `json:"import_id"`
		CurrencyOrig string          `json:"currency_orig"`
		AmountOrig   decimal.Decimal `json:"amount_orig"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.ID = temp.ID
	t.Date = temp.Date
	t.AccountID = temp.AccountID
	t.Merchant = temp.Merchant
	t.Category = temp.Category
	t.AmountBase = temp.AmountBase
	if temp.ImportID != nil {
		t.ImportID = *temp.ImportID
	} else {
		t.ImportID = ""
	}
	t.CurrencyOrig = temp.CurrencyOrig
	t.AmountOrig = temp.AmountOrig
	return nil
}

// Holding represents a position in an investment symbol. Cost is the total
// cost basis, not per unit. Quantity and cost are immutable once created.
type Holding struct {
	ID       string          `json:"id"`
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
}

// Cadence is the recurrence of a subscription charge.
type Cadence string

const (
	Monthly Cadence = "monthly"
	Yearly  Cadence = "yearly"
)

// ParseCadence parses a string into a Cadence.
func ParseCadence(s string) (Cadence, error) {
	switch Cadence(s) {
	case Monthly:
		return Monthly, nil
	case Yearly:
		return Yearly, nil
	default:
		return "", fmt.Errorf("unknown cadence: %q", s)
	}
}

// Subscription represents a recurring charge. It is used only for burn-rate
// estimation; it never generates transactions.
type Subscription struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Cadence  Cadence         `json:"cadence"`
	NextDate Date            `json:"next_date"`
}

// ImportRecord is the append-only audit entry of one completed import,
// kept most-recent-first for display.
type ImportRecord struct {
	ID     string    `json:"id"`
	When   time.Time `json:"when"`
	Rows   int       `json:"rows"`
	Source string    `json:"source"`
}

// State is the single root object holding all collections. The Store owns
// it; every other component receives it by reference, mutates it in place,
// and hands it back for persistence.
type State struct {
	BaseCurrency  string                     `json:"baseCurrency"`
	Accounts      []Account                  `json:"accounts"`
	Transactions  []Transaction              `json:"transactions"`
	Holdings      []Holding                  `json:"holdings"`
	Prices        map[string]decimal.Decimal `json:"prices"` // symbol -> last computed price, advisory cache
	Subscriptions []Subscription             `json:"subscriptions"`
	Imports       []ImportRecord             `json:"imports"`
}

// NewState creates the default state: base currency CHF and the two static
// reference accounts, everything else empty.
func NewState() *State {
	return &State{
		BaseCurrency: "CHF",
		Accounts: []Account{
			{ID: "acc_bank", Name: "Bank", Type: AccountBank, Currency: "CHF"},
			{ID: "acc_broker", Name: "Broker", Type: AccountBroker, Currency: "CHF"},
		},
		Transactions:  make([]Transaction, 0),
		Holdings:      make([]Holding, 0),
		Prices:        make(map[string]decimal.Decimal),
		Subscriptions: make([]Subscription, 0),
		Imports:       make([]ImportRecord, 0),
	}
}

// Account returns the account declared with this id, or nil if unknown.
func (s *State) Account(id string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

// AccountName resolves an account id into its display name, falling back to
// the id itself for unknown accounts.
func (s *State) AccountName(id string) string {
	if a := s.Account(id); a != nil {
		return a.Name
	}
	return id
}

// Append appends transactions to the log and maintains the chronological
// order of transactions.
func (s *State) Append(txs ...Transaction) {
	s.Transactions = append(s.Transactions, txs...)
	s.stableSort()
}

// stableSort sorts the transaction log by date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (s *State) stableSort() {
	sort.SliceStable(s.Transactions, func(i, j int) bool {
		return s.Transactions[i].Date.Before(s.Transactions[j].Date)
	})
}

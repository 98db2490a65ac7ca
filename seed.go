package wealth

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Demo pools for expense rows. Income rows are always labeled Salary/Income.
var (
	demoMerchants  = []string{"COOP", "MIGROS", "UBER", "SPOTIFY", "SBB"}
	demoCategories = []string{"Groceries", "Transport", "Entertainment", "Subscriptions"}
)

// SeedDemo fills the transaction log with 60 synthetic transactions spanning
// the past ~180 days at 3-day intervals, so first-time users see non-empty
// dashboards. Each row is an expense with probability 0.6 (magnitude 10-210,
// from the fixed pools) or income otherwise, rounded to 2 decimals, sorted
// ascending by date. The generator is injected so tests can fix the seed.
func SeedDemo(s *State, rng *rand.Rand) {
	today := Today()
	txs := make([]Transaction, 0, 60)
	for i := 0; i < 60; i++ {
		day := today.Add(-i * 3)
		sign := -1.0
		if rng.Float64() > 0.6 {
			sign = 1.0
		}
		amount := decimal.NewFromFloat(sign * (10 + rng.Float64()*200)).Round(2)

		merchant, category := "Salary", "Income"
		if amount.IsNegative() {
			merchant = demoMerchants[rng.Intn(len(demoMerchants))]
			category = demoCategories[rng.Intn(len(demoCategories))]
		}

		txs = append(txs, Transaction{
			ID:           uuid.NewString(),
			Date:         day,
			AccountID:    "acc_bank",
			Merchant:     merchant,
			Category:     category,
			AmountBase:   amount,
			CurrencyOrig: "CHF",
			AmountOrig:   amount,
		})
	}
	s.Transactions = txs
	s.stableSort()
}

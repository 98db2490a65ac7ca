package wealth

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

// tx is a test helper building a minimal transaction.
func tx(day, account string, amount string, category string) Transaction {
	return Transaction{
		ID:         "tx_" + day + "_" + amount,
		Date:       MustParseDate(day),
		AccountID:  account,
		Merchant:   "test",
		Category:   category,
		AmountBase: decimal.RequireFromString(amount),
	}
}

func TestAccountBalanceAndNetWorth(t *testing.T) {
	s := NewState()
	s.Append(
		tx("2025-01-01", "acc_bank", "1000", "Income"),
		tx("2025-01-05", "acc_bank", "-250", "Groceries"),
		tx("2025-01-10", "acc_broker", "500", ""),
	)

	bank := s.AccountBalance("acc_bank").Amount()
	broker := s.AccountBalance("acc_broker").Amount()
	if !bank.Equal(decimal.RequireFromString("750")) {
		t.Errorf("bank balance = %s, want 750", bank)
	}
	if !broker.Equal(decimal.RequireFromString("500")) {
		t.Errorf("broker balance = %s, want 500", broker)
	}

	// Net worth is the sum of the per-account balances.
	net := s.NetWorth().Amount()
	if !net.Equal(bank.Add(broker)) {
		t.Errorf("net worth %s != bank %s + broker %s", net, bank, broker)
	}

	if got := s.AccountBalance("acc_unknown").Amount(); !got.IsZero() {
		t.Errorf("unknown account balance = %s, want 0", got)
	}
}

func TestNetWorthSeries(t *testing.T) {
	s := NewState()
	s.Append(
		tx("2025-01-03", "acc_bank", "10", ""),
		tx("2025-01-01", "acc_bank", "100", ""),
		tx("2025-01-01", "acc_bank", "-50", ""),
		tx("2025-01-02", "acc_bank", "-25", ""),
	)

	got := s.NetWorthSeries()
	wantLabels := []string{"2025-01-01", "2025-01-02", "2025-01-03"}
	if !reflect.DeepEqual(got.Labels, wantLabels) {
		t.Fatalf("Labels = %v, want %v", got.Labels, wantLabels)
	}
	wantValues := []string{"50", "25", "35"}
	for i, w := range wantValues {
		if !got.Values[i].Equal(decimal.RequireFromString(w)) {
			t.Errorf("Values[%d] = %s, want %s", i, got.Values[i], w)
		}
	}
}

func TestCashflowByMonth(t *testing.T) {
	s := NewState()
	s.Append(
		tx("2025-01-01", "acc_bank", "1000", "Income"),
		tx("2025-01-15", "acc_bank", "-40", "Groceries"),
		tx("2025-02-03", "acc_bank", "-10.555", "Transport"),
		tx("2025-02-20", "acc_bank", "0", ""),
	)

	cf := s.CashflowByMonth()
	if want := []string{"2025-01", "2025-02"}; !reflect.DeepEqual(cf.Labels, want) {
		t.Fatalf("Labels = %v, want %v", cf.Labels, want)
	}
	if !cf.Income[0].Equal(decimal.RequireFromString("1000")) || !cf.Expenses[0].Equal(decimal.RequireFromString("40")) {
		t.Errorf("2025-01 = income %s, expenses %s; want 1000 / 40", cf.Income[0], cf.Expenses[0])
	}
	// Expenses are stored as absolute values, rounded to 2 decimals, and a
	// zero amount counts as income.
	if !cf.Expenses[1].Equal(decimal.RequireFromString("10.56")) {
		t.Errorf("2025-02 expenses = %s, want 10.56", cf.Expenses[1])
	}
	if !cf.Income[1].IsZero() {
		t.Errorf("2025-02 income = %s, want 0", cf.Income[1])
	}
}

func TestCategories(t *testing.T) {
	on := MustParseDate("2025-06-30")
	s := NewState()
	s.Append(
		tx("2025-06-01", "acc_bank", "-30", "Transport"),
		tx("2025-06-10", "acc_bank", "-50", "Groceries"),
		tx("2025-06-20", "acc_bank", "-20", "Transport"),
		tx("2025-06-25", "acc_bank", "-15", ""),
		tx("2025-06-05", "acc_bank", "2000", "Income"), // income contributes 0 but claims its slot
		tx("2024-01-01", "acc_bank", "-999", "Old"),    // outside the window
	)

	got := s.Categories(90, on)
	wantLabels := []string{"Transport", "Income", "Groceries", "Uncategorized"}
	if !reflect.DeepEqual(got.Labels, wantLabels) {
		t.Fatalf("Labels = %v, want first-seen order %v", got.Labels, wantLabels)
	}
	wantValues := []string{"50", "0", "50", "15"}
	for i, w := range wantValues {
		if !got.Values[i].Equal(decimal.RequireFromString(w)) {
			t.Errorf("Values[%d] (%s) = %s, want %s", i, got.Labels[i], got.Values[i], w)
		}
	}
}

func TestCategoriesWindowBoundary(t *testing.T) {
	on := MustParseDate("2025-06-30")
	s := NewState()
	s.Append(
		tx("2025-04-01", "acc_bank", "-10", "Boundary"), // exactly 90 days before
		tx("2025-03-31", "acc_bank", "-10", "Outside"),
	)

	got := s.Categories(90, on)
	if len(got.Labels) != 1 || got.Labels[0] != "Boundary" {
		t.Errorf("Labels = %v, want only the transaction on the boundary day", got.Labels)
	}
}

func TestSavingsRate(t *testing.T) {
	on := MustParseDate("2025-06-15")

	t.Run("with income", func(t *testing.T) {
		s := NewState()
		s.Append(
			tx("2025-06-01", "acc_bank", "1000", "Income"),
			tx("2025-06-10", "acc_bank", "-250", "Groceries"),
		)
		rate, ok := s.SavingsRate(on)
		if !ok || rate != 75 {
			t.Errorf("SavingsRate = (%d, %v), want (75, true)", rate, ok)
		}
	})

	t.Run("no income", func(t *testing.T) {
		s := NewState()
		s.Append(tx("2025-06-10", "acc_bank", "-250", "Groceries"))
		if rate, ok := s.SavingsRate(on); ok {
			t.Errorf("SavingsRate = (%d, %v), want undefined without income", rate, ok)
		}
	})

	t.Run("overspent month goes negative", func(t *testing.T) {
		s := NewState()
		s.Append(
			tx("2025-06-01", "acc_bank", "100", "Income"),
			tx("2025-06-10", "acc_bank", "-150", "Groceries"),
		)
		rate, ok := s.SavingsRate(on)
		if !ok || rate != -50 {
			t.Errorf("SavingsRate = (%d, %v), want (-50, true)", rate, ok)
		}
	})

	t.Run("other months do not bleed in", func(t *testing.T) {
		s := NewState()
		s.Append(
			tx("2025-05-31", "acc_bank", "9999", "Income"),
			tx("2025-06-01", "acc_bank", "1000", "Income"),
			tx("2025-06-10", "acc_bank", "-500", "Rent"),
		)
		rate, ok := s.SavingsRate(on)
		if !ok || rate != 50 {
			t.Errorf("SavingsRate = (%d, %v), want (50, true)", rate, ok)
		}
	})
}

func TestMonthIncomeAndSpend(t *testing.T) {
	on := MustParseDate("2025-06-15")
	s := NewState()
	s.Append(
		tx("2025-06-01", "acc_bank", "1000", "Income"),
		tx("2025-06-10", "acc_bank", "-250", "Groceries"),
		tx("2025-06-20", "acc_bank", "-50", "Transport"),
		tx("2025-07-01", "acc_bank", "-77", "Groceries"),
	)

	if got := s.MonthIncome(on).Amount(); !got.Equal(decimal.RequireFromString("1000")) {
		t.Errorf("MonthIncome = %s, want 1000", got)
	}
	if got := s.MonthSpend(on).Amount(); !got.Equal(decimal.RequireFromString("-300")) {
		t.Errorf("MonthSpend = %s, want -300", got)
	}
}

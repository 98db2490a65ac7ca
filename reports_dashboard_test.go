package wealth

import (
	"fmt"
	"testing"
)

func TestNewDashboardLatest(t *testing.T) {
	s := NewState()
	for i := 1; i <= 15; i++ {
		s.Append(tx(fmt.Sprintf("2025-06-%02d", i), "acc_bank", "-1", "Groceries"))
	}

	d := NewDashboard(s, MustParseDate("2025-06-15"))
	if len(d.Latest) != 10 {
		t.Fatalf("got %d latest transactions, want 10", len(d.Latest))
	}
	if d.Latest[0].Date != MustParseDate("2025-06-15") {
		t.Errorf("Latest[0] = %s, want the newest transaction first", d.Latest[0].Date)
	}
	if d.Latest[9].Date != MustParseDate("2025-06-06") {
		t.Errorf("Latest[9] = %s, want 2025-06-06", d.Latest[9].Date)
	}
}

func TestNewDashboardIsPureRead(t *testing.T) {
	s := NewState()
	s.Append(
		tx("2025-06-01", "acc_bank", "1000", "Income"),
		tx("2025-06-10", "acc_bank", "-250", "Groceries"),
	)
	before := len(s.Transactions)

	d := NewDashboard(s, MustParseDate("2025-06-15"))
	if !d.HasIncome || d.SavingsRate != 75 {
		t.Errorf("savings rate = (%d, %v), want (75, true)", d.SavingsRate, d.HasIncome)
	}
	if len(s.Transactions) != before {
		t.Error("dashboard computation must not mutate the log")
	}
}

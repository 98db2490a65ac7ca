package wealth

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRuleCategory(t *testing.T) {
	testCases := []struct {
		name        string
		description string
		amountCHF   string
		want        string
	}{
		{"spotify keyword", "SPOTIFY P2B4C", "-12.95", "Subscriptions"},
		{"first matching rule wins", "Spotify Fee", "-12.95", "Subscriptions"},
		{"migros keyword", "MIGROS Bern Bahnhof", "-44.20", "Groceries"},
		{"coop keyword, case-insensitive", "Coop Pronto", "-8.10", "Groceries"},
		{"sbb keyword", "SBB EasyRide", "-3.80", "Transport"},
		{"fee keyword", "Overdraft fee", "-5.00", "Bank Fees"},
		{"positive amount without keyword", "ACME CORP PAYROLL", "6500", "Income"},
		{"negative amount without keyword", "Some shop", "-20", "Other"},
		{"zero amount without keyword", "Adjustment", "0", "Other"},
		{"keyword beats sign", "spotify refund", "12.95", "Subscriptions"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := RuleCategory(tc.description, decimal.RequireFromString(tc.amountCHF))
			if got != tc.want {
				t.Errorf("RuleCategory(%q, %s) = %q, want %q", tc.description, tc.amountCHF, got, tc.want)
			}
		})
	}
}

package wealth

import (
	"strings"

	"github.com/shopspring/decimal"
)

// categoryRule maps description keywords to a category. Rules are evaluated
// in order against the lowercased description; the first match wins.
type categoryRule struct {
	keywords []string
	category string
}

var categoryRules = []categoryRule{
	{[]string{"spotify"}, "Subscriptions"},
	{[]string{"migros", "coop"}, "Groceries"},
	{[]string{"sbb"}, "Transport"},
	{[]string{"fee"}, "Bank Fees"},
}

// RuleCategory assigns a category to a normalized row. When no keyword rule
// matches, a positive converted amount is Income and anything else Other.
func RuleCategory(description string, amountCHF decimal.Decimal) string {
	d := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(d, kw) {
				return rule.category
			}
		}
	}
	if amountCHF.IsPositive() {
		return "Income"
	}
	return "Other"
}

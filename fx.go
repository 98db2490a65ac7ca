package wealth

import "github.com/shopspring/decimal"

// fxRates are the fixed demo conversion rates into CHF. There is no
// external price feed; these values are part of the contract.
var fxRates = map[string]decimal.Decimal{
	"CHF": decimal.NewFromInt(1),
	"EUR": decimal.RequireFromString("1.05"),
	"USD": decimal.RequireFromString("0.92"),
}

// FxToCHF converts an amount in the given currency into CHF using the fixed
// rate table, rounded to 2 decimals. Unknown currency codes convert at rate 1.
func FxToCHF(amount decimal.Decimal, currency string) decimal.Decimal {
	rate, ok := fxRates[currency]
	if !ok {
		rate = decimal.NewFromInt(1)
	}
	return amount.Mul(rate).Round(2)
}

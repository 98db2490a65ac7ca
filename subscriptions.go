package wealth

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddSubscription records a recurring charge. Subscriptions only feed the
// burn-rate estimate; they never generate transactions.
func (s *State) AddSubscription(name string, amount decimal.Decimal, cadence Cadence, next Date) Subscription {
	sub := Subscription{
		ID:       uuid.NewString(),
		Name:     name,
		Amount:   amount,
		Cadence:  cadence,
		NextDate: next,
	}
	s.Subscriptions = append(s.Subscriptions, sub)
	return sub
}

// DeleteSubscription removes the subscription with this id and reports
// whether it existed.
func (s *State) DeleteSubscription(id string) bool {
	for i, sub := range s.Subscriptions {
		if sub.ID == id {
			s.Subscriptions = append(s.Subscriptions[:i], s.Subscriptions[i+1:]...)
			return true
		}
	}
	return false
}

// MonthlyBurn estimates the monthly recurring spend: monthly amounts as-is,
// yearly amounts divided by 12, rounded to 2 decimals.
func (s *State) MonthlyBurn() Money {
	total := decimal.Zero
	twelve := decimal.NewFromInt(12)
	for _, sub := range s.Subscriptions {
		if sub.Cadence == Yearly {
			total = total.Add(sub.Amount.Div(twelve))
		} else {
			total = total.Add(sub.Amount)
		}
	}
	return M(total.Round(2), s.BaseCurrency)
}

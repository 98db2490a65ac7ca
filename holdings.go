package wealth

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockPrice derives a deterministic pseudo-price from the symbol itself:
// the character-code sum folded into 20-220, plus a gentle clock-driven
// wiggle, floored at 1 and rounded to 2 decimals. There is no external
// quote feed; the clock is a parameter so tests can pin the wiggle.
func MockPrice(symbol string, now time.Time) decimal.Decimal {
	base := 0
	for _, c := range symbol {
		base += int(c)
	}
	base = base%200 + 20
	jitter := math.Sin(float64(now.UnixMilli())/60000+float64(len(symbol))) * 2
	price := math.Max(1, float64(base)+jitter)
	return decimal.NewFromFloat(price).Round(2)
}

// RefreshPrice computes the mock price for a symbol and caches it in the
// advisory price map.
func (s *State) RefreshPrice(symbol string, now time.Time) decimal.Decimal {
	price := MockPrice(symbol, now)
	if s.Prices == nil {
		s.Prices = make(map[string]decimal.Decimal)
	}
	s.Prices[symbol] = price
	return price
}

// AddHolding records a new position. Quantity and cost are immutable once
// created; the only edit is delete and recreate.
func (s *State) AddHolding(symbol string, quantity, cost decimal.Decimal) Holding {
	h := Holding{
		ID:       uuid.NewString(),
		Symbol:   strings.ToUpper(strings.TrimSpace(symbol)),
		Quantity: quantity,
		Cost:     cost,
	}
	s.Holdings = append(s.Holdings, h)
	return h
}

// DeleteHolding removes the holding with this id and reports whether it
// existed.
func (s *State) DeleteHolding(id string) bool {
	for i, h := range s.Holdings {
		if h.ID == id {
			s.Holdings = append(s.Holdings[:i], s.Holdings[i+1:]...)
			return true
		}
	}
	return false
}

// Position is a holding valued at its current mock price.
type Position struct {
	Holding
	Price decimal.Decimal
	Value decimal.Decimal
	PL    decimal.Decimal // value minus total cost basis
}

// Positions values every holding at the mock price for 'now', refreshing the
// price cache along the way.
func (s *State) Positions(now time.Time) []Position {
	positions := make([]Position, 0, len(s.Holdings))
	for _, h := range s.Holdings {
		price := s.RefreshPrice(h.Symbol, now)
		value := price.Mul(h.Quantity).Round(2)
		positions = append(positions, Position{
			Holding: h,
			Price:   price,
			Value:   value,
			PL:      value.Sub(h.Cost),
		})
	}
	return positions
}

package wealth

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMockPrice(t *testing.T) {
	now := time.Unix(1700000000, 0)

	a := MockPrice("AAPL", now)
	b := MockPrice("AAPL", now)
	if !a.Equal(b) {
		t.Errorf("same symbol and clock should price identically: %s != %s", a, b)
	}

	if g := MockPrice("GOOG", now); g.Equal(a) {
		t.Errorf("AAPL and GOOG priced identically at %s", g)
	}

	// The base falls in 20-220 and the wiggle is at most ±2.
	if a.LessThan(decimal.NewFromInt(18)) || a.GreaterThan(decimal.NewFromInt(222)) {
		t.Errorf("price %s outside plausible mock range", a)
	}
	if !a.Equal(a.Round(2)) {
		t.Errorf("price %s not rounded to 2 decimals", a)
	}
}

func TestAddHolding(t *testing.T) {
	s := NewState()
	h := s.AddHolding(" vt ", decimal.NewFromInt(10), decimal.RequireFromString("950.25"))

	if h.Symbol != "VT" {
		t.Errorf("Symbol = %q, want trimmed and uppercased VT", h.Symbol)
	}
	if h.ID == "" {
		t.Error("holding has no id")
	}
	if len(s.Holdings) != 1 {
		t.Errorf("got %d holdings, want 1", len(s.Holdings))
	}
}

func TestDeleteHolding(t *testing.T) {
	s := NewState()
	h := s.AddHolding("VT", decimal.NewFromInt(10), decimal.NewFromInt(900))
	s.AddHolding("VWRL", decimal.NewFromInt(5), decimal.NewFromInt(500))

	if !s.DeleteHolding(h.ID) {
		t.Error("DeleteHolding returned false for an existing id")
	}
	if len(s.Holdings) != 1 || s.Holdings[0].Symbol != "VWRL" {
		t.Errorf("remaining holdings = %+v, want only VWRL", s.Holdings)
	}
	if s.DeleteHolding("nope") {
		t.Error("DeleteHolding returned true for an unknown id")
	}
}

func TestPositions(t *testing.T) {
	now := time.Unix(1700000000, 0)
	s := NewState()
	h := s.AddHolding("VT", decimal.NewFromInt(2), decimal.NewFromInt(200))

	positions := s.Positions(now)
	if len(positions) != 1 {
		t.Fatalf("got %d positions, want 1", len(positions))
	}
	p := positions[0]
	price := MockPrice("VT", now)
	if !p.Price.Equal(price) {
		t.Errorf("Price = %s, want %s", p.Price, price)
	}
	if want := price.Mul(decimal.NewFromInt(2)).Round(2); !p.Value.Equal(want) {
		t.Errorf("Value = %s, want %s", p.Value, want)
	}
	if want := p.Value.Sub(decimal.NewFromInt(200)); !p.PL.Equal(want) {
		t.Errorf("PL = %s, want %s", p.PL, want)
	}
	if p.ID != h.ID {
		t.Errorf("position id %q does not match holding %q", p.ID, h.ID)
	}

	// Valuing positions refreshes the advisory price cache.
	if cached, ok := s.Prices["VT"]; !ok || !cached.Equal(price) {
		t.Errorf("price cache = %v, want VT at %s", s.Prices, price)
	}
}

func TestRefreshPriceNilMap(t *testing.T) {
	s := &State{} // e.g. decoded from a snapshot without a prices section
	price := s.RefreshPrice("VT", time.Unix(0, 0))
	if cached, ok := s.Prices["VT"]; !ok || !cached.Equal(price) {
		t.Errorf("price cache = %v, want VT at %s", s.Prices, price)
	}
}

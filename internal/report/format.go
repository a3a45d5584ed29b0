package report

import (
	"math"

	"github.com/shopspring/decimal"
)

// Placeholders for values that overflowed float64 in the engine.
const (
	PosInf       = "∞"
	NegInf       = "-∞"
	NotAvailable = "n/a"
)

// nonFinite returns the placeholder for v, or "" when v is finite.
func nonFinite(v float64) string {
	switch {
	case math.IsNaN(v):
		return NotAvailable
	case math.IsInf(v, 1):
		return PosInf
	case math.IsInf(v, -1):
		return NegInf
	}
	return ""
}

// Fixed formats v with the given number of decimal places.
func Fixed(v float64, places int32) string {
	if s := nonFinite(v); s != "" {
		return s
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// Signed formats v with one decimal place and an explicit "+" when the
// formatted value is positive.
func Signed(v float64) string {
	if s := nonFinite(v); s != "" {
		if s == PosInf {
			return "+" + s
		}
		return s
	}
	d := decimal.NewFromFloat(v).Round(1)
	if d.IsPositive() {
		return "+" + d.StringFixed(1)
	}
	return d.StringFixed(1)
}

// Ratio formats a load ratio as "1.23×".
func Ratio(v float64) string {
	return Fixed(v, 2) + "×"
}

package rebalance

import (
	"github.com/shopspring/decimal"
)

// Fraction is a share of a whole: a target allocation, a current allocation
// or a drift threshold. 0.3 means 30%.
//
// Fractions are not bounded, a target can be above 1 or below 0, and a set of
// targets is not required to sum to 1.
type Fraction struct {
	value decimal.Decimal
}

func F[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Fraction {
	return Fraction{value: newDecimal(value)}
}

// ParseFraction parses a fraction as typed by the operator (e.g. "0.30").
func ParseFraction(s string) (Fraction, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Fraction{}, err
	}
	return Fraction{value: d}, nil
}

func (f Fraction) Equal(g Fraction) bool       { return f.value.Equal(g.value) }
func (f Fraction) GreaterThan(g Fraction) bool { return f.value.GreaterThan(g.value) }
func (f Fraction) Add(g Fraction) Fraction     { return Fraction{value: f.value.Add(g.value)} }
func (f Fraction) Sub(g Fraction) Fraction     { return Fraction{value: f.value.Sub(g.value)} }
func (f Fraction) Abs() Fraction               { return Fraction{value: f.value.Abs()} }
func (f Fraction) Neg() Fraction               { return Fraction{value: f.value.Neg()} }
func (f Fraction) IsZero() bool                { return f.value.IsZero() }
func (f Fraction) IsPositive() bool            { return f.value.IsPositive() }
func (f Fraction) IsNegative() bool            { return f.value.IsNegative() }
func (f Fraction) Decimal() decimal.Decimal    { return f.value }

// InexactFloat64 is for tests and tolerance checks only.
func (f Fraction) InexactFloat64() float64 { return f.value.InexactFloat64() }

// String returns the fraction as a percentage, e.g. "30.00%".
func (f Fraction) String() string {
	return f.value.Shift(2).StringFixed(2) + "%"
}

// SignedString returns the percentage with an explicit sign.
// 0 is represented as a "-"
func (f Fraction) SignedString() string {
	res := f.value.Shift(2).StringFixed(2)
	if res == "0.00" || res == "-0.00" {
		return "-"
	}
	if f.value.IsPositive() {
		return "+" + res + "%"
	}
	return res + "%"
}

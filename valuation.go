package rebalance

import (
	"iter"
	"maps"
	"slices"
)

// Valuation is a snapshot of the portfolio value at the time it was computed.
// It is never persisted, and must be treated as immutable once returned.
type Valuation struct {
	Currency    string
	Total       Money
	Values      map[string]Money    // per held symbol, quantity × price
	Prices      map[string]Money    // prices returned by the oracle
	Allocations map[string]Fraction // per held symbol, value / total
}

// Value computes the valuation of the holdings using the oracle prices.
//
// Symbols unknown to the oracle are valued at zero but still appear in the
// valuation. When the total is zero (no holdings, or only unpriced ones)
// every allocation is zero.
func Value(holdings Holdings, oracle PriceOracle) Valuation {
	cur := oracle.Currency()
	v := Valuation{
		Currency:    cur,
		Total:       M(0, cur),
		Values:      make(map[string]Money, len(holdings)),
		Prices:      make(map[string]Money, len(holdings)),
		Allocations: make(map[string]Fraction, len(holdings)),
	}

	for symbol, qty := range holdings {
		price := oracle.PriceOf(symbol)
		value := price.Mul(qty)
		v.Prices[symbol] = price
		v.Values[symbol] = value
		v.Total = v.Total.Add(value)
	}

	positive := v.Total.IsPositive()
	for symbol, value := range v.Values {
		if positive {
			v.Allocations[symbol] = value.DivMoney(v.Total)
		} else {
			v.Allocations[symbol] = Fraction{}
		}
	}
	return v
}

// Symbols returns the valued symbols in lexicographic order.
func (v Valuation) Symbols() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(v.Values)))
}

// Allocation returns the current allocation of symbol, zero if not held.
func (v Valuation) Allocation(symbol string) Fraction {
	return v.Allocations[symbol]
}

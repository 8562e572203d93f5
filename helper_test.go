package rebalance

import "github.com/rs/zerolog"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// prices is a helper for test to create a USD price table.
func prices(kv map[string]float64) *PriceTable {
	t := NewPriceTable("USD")
	for symbol, p := range kv {
		if err := t.Set(symbol, newDecimal(p)); err != nil {
			panic(err)
		}
	}
	return t
}

// nolog discards logs in tests.
var nolog = zerolog.Nop()

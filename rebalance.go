package rebalance

// DefaultThreshold is the drift tolerated before a trade is suggested.
var DefaultThreshold = F(0.05)

// amountPlaces is the number of decimals suggestions are rounded to.
const amountPlaces = 2

// Drift is the deviation of a symbol's current allocation from its target.
type Drift struct {
	Symbol  string
	Current Fraction
	Target  Fraction
	Diff    Fraction // Current - Target: positive is over-allocated
}

// Suggestion is a trade that brings a symbol back towards its target.
// A positive amount is a buy, a negative amount is a sell.
type Suggestion struct {
	Symbol string
	Amount Money
}

// Side returns "buy" or "sell".
func (s Suggestion) Side() string {
	if s.Amount.IsNegative() {
		return "sell"
	}
	return "buy"
}

// Drifts returns the drift of every symbol either held or targeted, in
// lexicographic order. Missing allocations and missing targets count as zero.
func Drifts(v Valuation, targets Targets) []Drift {
	symbols := union(v.Symbols(), targets.Symbols())
	drifts := make([]Drift, 0, len(symbols))
	for _, symbol := range symbols {
		current, target := v.Allocation(symbol), targets[symbol]
		drifts = append(drifts, Drift{
			Symbol:  symbol,
			Current: current,
			Target:  target,
			Diff:    current.Sub(target),
		})
	}
	return drifts
}

// Suggest returns, in lexicographic order of symbols, the trades needed for
// every symbol whose drift strictly exceeds threshold.
//
// The amount is the drift applied to the total value, rounded to cents half
// away from zero. Nothing is suggested for a portfolio without value.
//
// A negative threshold is accepted and suggests every symbol.
func Suggest(v Valuation, targets Targets, threshold Fraction) []Suggestion {
	if !v.Total.IsPositive() {
		return nil
	}
	var suggestions []Suggestion
	for _, d := range Drifts(v, targets) {
		if !d.Diff.Abs().GreaterThan(threshold) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Symbol: d.Symbol,
			Amount: v.Total.MulFraction(d.Diff.Neg()).Round(amountPlaces),
		})
	}
	return suggestions
}

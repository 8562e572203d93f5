package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
)

// HoldingsMarkdown renders the total value and one line per holding:
// quantity, price, value and allocation.
func HoldingsMarkdown(h rebalance.Holdings, v rebalance.Valuation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")
	fmt.Fprintf(&b, "Total %s: **%s**\n\n", v.Currency, v.Total)

	if len(h) == 0 {
		fmt.Fprintln(&b, "No holdings.")
		return b.String()
	}

	table(&b, []string{":---", "---:", "---:", "---:", "---:"}, "Symbol", "Quantity", "Price", "Value", "Allocation")
	for symbol := range v.Symbols() {
		row(&b,
			symbol,
			h[symbol].String(),
			v.Prices[symbol].String(),
			v.Values[symbol].String(),
			v.Allocation(symbol).String(),
		)
	}
	return b.String()
}

// TargetsMarkdown renders the declared targets and their sum.
func TargetsMarkdown(t rebalance.Targets) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Targets\n\n")
	if len(t) == 0 {
		fmt.Fprintln(&b, "No targets.")
		return b.String()
	}

	table(&b, []string{":---", "---:"}, "Symbol", "Target")
	for symbol := range t.Symbols() {
		row(&b, symbol, t[symbol].String())
	}
	row(&b, "**Total**", "**"+t.Sum().String()+"**")
	return b.String()
}

package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
)

// SuggestionsMarkdown renders the suggested trades, amounts in currency.
func SuggestionsMarkdown(suggestions []rebalance.Suggestion, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Suggestions\n\n")
	if len(suggestions) == 0 {
		fmt.Fprintln(&b, "No suggestions (within threshold).")
		return b.String()
	}

	fmt.Fprintf(&b, "Positive amounts buy, negative amounts sell (%s).\n\n", currency)
	table(&b, []string{":---", ":---", "---:"}, "Symbol", "Trade", "Amount")
	for _, s := range suggestions {
		row(&b, s.Symbol, s.Side(), s.Amount.Fixed())
	}
	return b.String()
}

// DriftMarkdown renders the deviation of each symbol from its target.
func DriftMarkdown(drifts []rebalance.Drift) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Drift\n\n")
	if len(drifts) == 0 {
		fmt.Fprintln(&b, "Nothing held, nothing targeted.")
		return b.String()
	}

	table(&b, []string{":---", "---:", "---:", "---:"}, "Symbol", "Current", "Target", "Drift")
	for _, d := range drifts {
		row(&b, d.Symbol, d.Current.String(), d.Target.String(), d.Diff.SignedString())
	}
	return b.String()
}

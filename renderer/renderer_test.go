package renderer

import (
	"testing"

	"github.com/etnz/rebalance"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// tableRows parses md as GitHub flavored markdown and returns the number of
// body rows of each table.
func tableRows(t *testing.T, md string) []int {
	t.Helper()
	source := []byte(md)
	root := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser().Parse(text.NewReader(source))

	var rows []int
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case extast.KindTable:
			rows = append(rows, 0)
		case extast.KindTableRow:
			rows[len(rows)-1]++
		}
		return ast.WalkContinue, nil
	})
	return rows
}

func sampleValuation() (rebalance.Holdings, rebalance.Valuation) {
	h := rebalance.Holdings{
		"bitcoin":  rebalance.Q(1),
		"ethereum": rebalance.Q(5),
		"dogecoin": rebalance.Q(100),
	}
	return h, rebalance.Value(h, rebalance.DefaultPrices())
}

func TestHoldingsMarkdown(t *testing.T) {
	h, v := sampleValuation()

	got := HoldingsMarkdown(h, v)
	want := `# Holdings

Total USD: **$40,000.00**

| Symbol | Quantity | Price | Value | Allocation |
|:---|---:|---:|---:|---:|
| bitcoin | 1 | $30,000.00 | $30,000.00 | 75.00% |
| dogecoin | 100 | $0.00 | $0.00 | 0.00% |
| ethereum | 5 | $2,000.00 | $10,000.00 | 25.00% |
`
	if got != want {
		t.Errorf("HoldingsMarkdown() =\n%s\nwant\n%s", got, want)
	}

	rows := tableRows(t, got)
	if len(rows) != 1 || rows[0] != 3 {
		t.Errorf("HoldingsMarkdown() tables rows = %v, want [3]", rows)
	}
}

func TestHoldingsMarkdown_Empty(t *testing.T) {
	h := rebalance.Holdings{}
	got := HoldingsMarkdown(h, rebalance.Value(h, rebalance.DefaultPrices()))
	want := "# Holdings\n\nTotal USD: **$0.00**\n\nNo holdings.\n"
	if got != want {
		t.Errorf("HoldingsMarkdown() = %q, want %q", got, want)
	}
}

func TestSuggestionsMarkdown(t *testing.T) {
	h := rebalance.Holdings{"bitcoin": rebalance.Q(1)}
	v := rebalance.Value(h, rebalance.DefaultPrices())
	targets := rebalance.Targets{"bitcoin": rebalance.F(0.5), "ethereum": rebalance.F(0.5)}

	got := SuggestionsMarkdown(rebalance.Suggest(v, targets, rebalance.DefaultThreshold), v.Currency)
	want := `# Suggestions

Positive amounts buy, negative amounts sell (USD).

| Symbol | Trade | Amount |
|:---|:---|---:|
| bitcoin | sell | -15000.00 |
| ethereum | buy | 15000.00 |
`
	if got != want {
		t.Errorf("SuggestionsMarkdown() =\n%s\nwant\n%s", got, want)
	}
	if rows := tableRows(t, got); len(rows) != 1 || rows[0] != 2 {
		t.Errorf("SuggestionsMarkdown() tables rows = %v, want [2]", rows)
	}
}

func TestSuggestionsMarkdown_None(t *testing.T) {
	got := SuggestionsMarkdown(nil, "USD")
	want := "# Suggestions\n\nNo suggestions (within threshold).\n"
	if got != want {
		t.Errorf("SuggestionsMarkdown() = %q, want %q", got, want)
	}
}

func TestDriftMarkdown(t *testing.T) {
	h := rebalance.Holdings{"bitcoin": rebalance.Q(1)}
	v := rebalance.Value(h, rebalance.DefaultPrices())
	targets := rebalance.Targets{"bitcoin": rebalance.F(0.5), "ethereum": rebalance.F(0.5)}

	got := DriftMarkdown(rebalance.Drifts(v, targets))
	want := `# Drift

| Symbol | Current | Target | Drift |
|:---|---:|---:|---:|
| bitcoin | 100.00% | 50.00% | +50.00% |
| ethereum | 0.00% | 50.00% | -50.00% |
`
	if got != want {
		t.Errorf("DriftMarkdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestTargetsMarkdown(t *testing.T) {
	targets := rebalance.Targets{"ethereum": rebalance.F(0.3), "bitcoin": rebalance.F(0.6)}

	got := TargetsMarkdown(targets)
	want := `# Targets

| Symbol | Target |
|:---|---:|
| bitcoin | 60.00% |
| ethereum | 30.00% |
| **Total** | **90.00%** |
`
	if got != want {
		t.Errorf("TargetsMarkdown() =\n%s\nwant\n%s", got, want)
	}
}

package rebalance

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPrices(t *testing.T) {
	p := DefaultPrices()
	assert.Equal(t, "USD", p.Currency())
	assert.True(t, p.PriceOf("bitcoin").Equal(USD(30000)))
	assert.True(t, p.PriceOf("ethereum").Equal(USD(2000)))
	assert.True(t, p.PriceOf("cardano").Equal(USD(0.5)))

	unknown := p.PriceOf("dogecoin")
	assert.True(t, unknown.IsZero())
	assert.Equal(t, "USD", unknown.Currency())
	// symbols are case sensitive
	assert.True(t, p.PriceOf("Bitcoin").IsZero())
}

func TestPriceTable_Set(t *testing.T) {
	p := NewPriceTable("EUR")
	require.NoError(t, p.Set("gold", decimal.NewFromInt(1800)))
	require.NoError(t, p.Set("free", decimal.Zero))
	assert.ErrorIs(t, p.Set("bad", decimal.NewFromInt(-1)), ErrNegativePrice)

	assert.Equal(t, 2, p.Len())
	assert.True(t, p.PriceOf("gold").Equal(M(1800, "EUR")))
	assert.True(t, p.PriceOf("bad").IsZero())
}

func TestDecodeYAMLPrices(t *testing.T) {
	input := `
currency: eur
prices:
  bitcoin: 27500.125
  ethereum: 1850
  broken: -3
`
	p, err := DecodeYAMLPrices(strings.NewReader(input), nolog)
	require.NoError(t, err)
	assert.Equal(t, "EUR", p.Currency())
	assert.Equal(t, 2, p.Len())
	assert.True(t, p.PriceOf("bitcoin").Equal(M(decimal.RequireFromString("27500.125"), "EUR")))
	assert.True(t, p.PriceOf("ethereum").Equal(M(1850, "EUR")))
	assert.True(t, p.PriceOf("broken").IsZero())
}

func TestDecodeYAMLPrices_Defaults(t *testing.T) {
	p, err := DecodeYAMLPrices(strings.NewReader(""), nolog)
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, p.Currency())
	assert.Equal(t, 0, p.Len())
}

func TestDecodeYAMLPrices_Invalid(t *testing.T) {
	_, err := DecodeYAMLPrices(strings.NewReader("prices:\n  bitcoin: lots\n"), nolog)
	assert.ErrorContains(t, err, `invalid price "lots"`)
}

func TestDecodeJSONPrices(t *testing.T) {
	input := `{
		"bitcoin": {"usd": 30000, "eur": 27500},
		"ethereum": {"usd": 2000.5},
		"cardano": {"eur": 0.45},
		"weird": {"usd": "cheap"},
		"scam": {"usd": -1}
	}`
	p, err := DecodeJSONPrices(strings.NewReader(input), "USD", nolog)
	require.NoError(t, err)
	assert.Equal(t, "USD", p.Currency())
	assert.Equal(t, 2, p.Len())
	assert.True(t, p.PriceOf("bitcoin").Equal(USD(30000)))
	assert.True(t, p.PriceOf("ethereum").Equal(USD(2000.5)))
	assert.True(t, p.PriceOf("cardano").IsZero())
	assert.True(t, p.PriceOf("weird").IsZero())
	assert.True(t, p.PriceOf("scam").IsZero())
}

func TestDecodeJSONPrices_Invalid(t *testing.T) {
	_, err := DecodeJSONPrices(strings.NewReader("not json"), "USD", nolog)
	assert.ErrorContains(t, err, "format error")
}

func TestLoadPrices(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	p, err := LoadPrices(write("prices.yaml", "prices:\n  bitcoin: 1\n"), nolog)
	require.NoError(t, err)
	assert.True(t, p.PriceOf("bitcoin").Equal(USD(1)))

	p, err = LoadPrices(write("snapshot.json", `{"bitcoin":{"usd":2}}`), nolog)
	require.NoError(t, err)
	assert.True(t, p.PriceOf("bitcoin").Equal(USD(2)))

	_, err = LoadPrices(write("prices.txt", "bitcoin 3"), nolog)
	assert.ErrorContains(t, err, "unsupported prices format")

	_, err = LoadPrices(filepath.Join(dir, "missing.yaml"), nolog)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

package rebalance

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrNegativePrice is returned when a negative price is set.
var ErrNegativePrice = errors.New("price cannot be negative")

// PriceOracle gives the unit price of a symbol in a reference currency.
//
// PriceOf never fails: symbols without a price are worth zero.
type PriceOracle interface {
	Currency() string
	PriceOf(symbol string) Money
}

// PriceTable is a fixed lookup table of prices in a single currency.
type PriceTable struct {
	cur    string
	prices map[string]decimal.Decimal
}

// NewPriceTable returns an empty table.
func NewPriceTable(currency string) *PriceTable {
	return &PriceTable{cur: currency, prices: make(map[string]decimal.Decimal)}
}

// DefaultPrices returns the built-in simulated prices, in USD.
func DefaultPrices() *PriceTable {
	t := NewPriceTable(DefaultCurrency)
	t.prices["bitcoin"] = decimal.NewFromInt(30000)
	t.prices["ethereum"] = decimal.NewFromInt(2000)
	t.prices["cardano"] = decimal.RequireFromString("0.5")
	return t
}

// Set sets the price of a symbol.
func (t *PriceTable) Set(symbol string, price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: %s=%s", ErrNegativePrice, symbol, price)
	}
	t.prices[symbol] = price
	return nil
}

// Currency returns the currency all prices are expressed in.
func (t *PriceTable) Currency() string { return t.cur }

// PriceOf returns the price of symbol, zero if unknown.
func (t *PriceTable) PriceOf(symbol string) Money {
	return M(t.prices[symbol], t.cur)
}

// Len returns the number of priced symbols.
func (t *PriceTable) Len() int { return len(t.prices) }

// LoadPrices reads a price table from a file. The format is chosen from the
// extension: ".yaml"/".yml" or ".json" (see DecodeYAMLPrices and
// DecodeJSONPrices).
//
// Rejected entries are logged and skipped.
func LoadPrices(path string, log zerolog.Logger) (*PriceTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open prices %q: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return DecodeYAMLPrices(f, log)
	case ".json":
		return DecodeJSONPrices(f, DefaultCurrency, log)
	default:
		return nil, fmt.Errorf("unsupported prices format %q", ext)
	}
}

// yamlPrice reads a yaml scalar as an exact decimal.
type yamlPrice struct{ decimal.Decimal }

func (p *yamlPrice) UnmarshalYAML(value *yaml.Node) error {
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid price %q: %w", value.Line, value.Value, err)
	}
	p.Decimal = d
	return nil
}

// DecodeYAMLPrices decodes a price table like:
//
//	currency: USD
//	prices:
//	  bitcoin: 30000
//	  cardano: 0.5
func DecodeYAMLPrices(r io.Reader, log zerolog.Logger) (*PriceTable, error) {
	var doc struct {
		Currency string               `yaml:"currency"`
		Prices   map[string]yamlPrice `yaml:"prices"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("format error: %w", err)
	}
	if doc.Currency == "" {
		doc.Currency = DefaultCurrency
	}
	t := NewPriceTable(strings.ToUpper(doc.Currency))
	for symbol, p := range doc.Prices {
		if err := t.Set(symbol, p.Decimal); err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("skipping price")
		}
	}
	return t, nil
}

// DecodeJSONPrices decodes a market data snapshot where each symbol maps to
// its prices by lowercase currency:
//
//	{"bitcoin": {"usd": 30000}, "ethereum": {"usd": 2000, "eur": 1850}}
//
// Symbols without a price in currency are skipped.
func DecodeJSONPrices(r io.Reader, currency string, log zerolog.Logger) (*PriceTable, error) {
	var jobj map[string]any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}

	t := NewPriceTable(strings.ToUpper(currency))
	key := strings.ToLower(currency)
	for symbol := range jobj {
		path := fmt.Sprintf("$[%q][%q]", symbol, key)
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Str("path", path).Msg("no price")
			continue
		}
		val, ok := jval.(float64)
		if !ok {
			log.Warn().Str("symbol", symbol).Interface("value", jval).Msg("price is not a number")
			continue
		}
		if err := t.Set(symbol, decimal.NewFromFloat(val)); err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("skipping price")
		}
	}
	return t, nil
}

package rebalance

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"unicode"
)

var (
	// ErrInvalidSymbol is returned for symbols the persisted format cannot represent.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrNegativeQuantity is returned when a holding would become negative.
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
)

// Holdings maps a symbol to the quantity held. Symbols are case-sensitive.
//
// A symbol with a zero quantity is not held and is never stored.
type Holdings map[string]Quantity

// Symbols returns the held symbols in lexicographic order.
func (h Holdings) Symbols() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(h)))
}

// Targets maps a symbol to its desired allocation.
type Targets map[string]Fraction

// Symbols returns the symbols with a target in lexicographic order.
func (t Targets) Symbols() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(t)))
}

// Sum returns the sum of all targets. Targets are not required to sum to 1,
// this is informative only.
func (t Targets) Sum() Fraction {
	var sum Fraction
	for _, f := range t {
		sum = sum.Add(f)
	}
	return sum
}

// ValidateSymbol checks that a symbol can be stored and reloaded.
// The persisted format has no escaping, so quotes, colons, spaces and control
// characters are rejected.
func ValidateSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("%w: symbol is empty", ErrInvalidSymbol)
	}
	if strings.ContainsAny(symbol, `":`) {
		return fmt.Errorf("%w: %q contains a quote or a colon", ErrInvalidSymbol, symbol)
	}
	if i := strings.IndexFunc(symbol, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }); i >= 0 {
		return fmt.Errorf("%w: %q contains a blank or control character", ErrInvalidSymbol, symbol)
	}
	return nil
}

// union returns the symbols present in any of the given sequences, sorted and
// without duplicates.
func union(seqs ...iter.Seq[string]) []string {
	var all []string
	for _, seq := range seqs {
		all = slices.AppendSeq(all, seq)
	}
	slices.Sort(all)
	return slices.Compact(all)
}

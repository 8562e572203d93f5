package rebalance

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Store owns the holdings and targets of the portfolio, and persists them in
// two files, rewritten after each mutation.
//
// A Store has a single owner: it is not safe for concurrent use.
type Store struct {
	holdingsFile string
	targetsFile  string
	holdings     Holdings
	targets      Targets
	log          zerolog.Logger
}

// OpenStore loads the store from its two files.
//
// It never fails: a missing or unreadable file is an empty mapping.
func OpenStore(holdingsFile, targetsFile string, log zerolog.Logger) *Store {
	s := &Store{
		holdingsFile: holdingsFile,
		targetsFile:  targetsFile,
		holdings:     make(Holdings),
		targets:      make(Targets),
		log:          log.With().Str("component", "store").Logger(),
	}
	for symbol, v := range s.load(holdingsFile) {
		// a stored zero or negative quantity is not a holding.
		if !v.IsPositive() {
			s.log.Warn().Str("symbol", symbol).Str("quantity", v.String()).Msg("ignoring holding")
			continue
		}
		s.holdings[symbol] = Q(v)
	}
	for symbol, v := range s.load(targetsFile) {
		s.targets[symbol] = F(v)
	}
	return s
}

func (s *Store) load(filename string) map[string]decimal.Decimal {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Str("file", filename).Msg("file does not exist, starting empty")
		return nil
	}
	if err != nil {
		s.log.Warn().Err(err).Str("file", filename).Msg("cannot read file, starting empty")
		return nil
	}
	defer f.Close()

	m, err := DecodeMapping(f)
	if err != nil {
		// keep what could be read, the next save must not drop it.
		s.log.Warn().Err(err).Str("file", filename).Int("entries", len(m)).Msg("cannot read the whole file")
		return m
	}
	s.log.Debug().Str("file", filename).Int("entries", len(m)).Msg("loaded")
	return m
}

// Holdings returns a copy of the current holdings.
func (s *Store) Holdings() Holdings { return maps.Clone(s.holdings) }

// Targets returns a copy of the current targets.
func (s *Store) Targets() Targets { return maps.Clone(s.targets) }

// UpsertHolding sets the quantity held of symbol, a zero quantity removes it.
// The holdings file is rewritten.
//
// On a persistence error the in-memory holdings are updated anyway.
func (s *Store) UpsertHolding(symbol string, qty Quantity) error {
	if err := ValidateSymbol(symbol); err != nil {
		return err
	}
	if qty.IsNegative() {
		return fmt.Errorf("%w: %s %s", ErrNegativeQuantity, symbol, qty)
	}
	if qty.IsZero() {
		delete(s.holdings, symbol)
	} else {
		s.holdings[symbol] = qty
	}

	m := make(map[string]decimal.Decimal, len(s.holdings))
	for symbol, q := range s.holdings {
		m[symbol] = q.value
	}
	return s.save(s.holdingsFile, m)
}

// UpsertTarget sets the target of symbol. The targets file is rewritten.
func (s *Store) UpsertTarget(symbol string, target Fraction) error {
	if err := ValidateSymbol(symbol); err != nil {
		return err
	}
	s.targets[symbol] = target

	m := make(map[string]decimal.Decimal, len(s.targets))
	for symbol, f := range s.targets {
		m[symbol] = f.value
	}
	return s.save(s.targetsFile, m)
}

// save replaces filename with the encoded mapping.
func (s *Store) save(filename string, m map[string]decimal.Decimal) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return fmt.Errorf("cannot save %q: %w", filename, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot save %q: %w", filename, err)
	}
	if err := EncodeMapping(tmp, m); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot save %q: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot save %q: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("cannot save %q: %w", filename, err)
	}
	s.log.Debug().Str("file", filename).Int("entries", len(m)).Msg("saved")
	return nil
}

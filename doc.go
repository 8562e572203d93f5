// Package rebalance tracks a set of asset holdings, values them with a price
// oracle, and proposes the trades needed to bring the allocation back to the
// declared targets.
//
// The core functionalities include:
//   - Store: holdings (symbol to quantity) and targets (symbol to fraction),
//     persisted in two small line oriented files, rewritten on each change.
//   - Price Oracle: a lookup of unit prices in a single reference currency.
//     Unknown symbols are worth zero.
//   - Valuation: a stateless computation of the value and allocation of each
//     holding.
//   - Rebalance: a stateless computation of the drift of each symbol and of
//     the trades (in currency units) for those drifting beyond a threshold.
//
// This package serves as the foundational logic for the `pm` command-line
// tool.
package rebalance

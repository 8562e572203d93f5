package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

func (sh *Shell) addHold(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(sh.w, "Usage: add_hold SYMBOL QTY")
		return
	}
	symbol := args[0]
	qty, err := rebalance.ParseQuantity(args[1])
	if err != nil {
		fmt.Fprintln(sh.w, "Usage: add_hold SYMBOL QTY")
		return
	}

	if err := sh.store.UpsertHolding(symbol, qty); err != nil {
		if !saved(err) {
			sh.reportError(err)
			return
		}
		sh.log.Error().Err(err).Str("symbol", symbol).Msg("holding not persisted")
		fmt.Fprintf(sh.w, "Warning: holding kept in memory only: %v\n", err)
	}
	if qty.IsZero() {
		fmt.Fprintf(sh.w, "Removed holding %s\n", symbol)
		return
	}
	fmt.Fprintf(sh.w, "Saved holding %s = %s\n", symbol, qty)
}

// addHoldCmd holds the flags for the 'add-hold' subcommand.
type addHoldCmd struct{}

func (*addHoldCmd) Name() string     { return "add-hold" }
func (*addHoldCmd) Synopsis() string { return "set the quantity held of an asset" }
func (*addHoldCmd) Usage() string {
	return `pm add-hold SYMBOL QTY

  Sets the quantity held of SYMBOL. A quantity of 0 removes the holding.
`
}

func (*addHoldCmd) SetFlags(f *flag.FlagSet) {}

func (*addHoldCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execOnce("add_hold " + strings.Join(f.Args(), " "))
}

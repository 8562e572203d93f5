package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

func (sh *Shell) addTarget(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(sh.w, "Usage: add_target SYMBOL PERCENT")
		return
	}
	symbol := args[0]
	target, err := rebalance.ParseFraction(args[1])
	if err != nil {
		fmt.Fprintln(sh.w, "Usage: add_target SYMBOL PERCENT")
		return
	}

	if err := sh.store.UpsertTarget(symbol, target); err != nil {
		if !saved(err) {
			sh.reportError(err)
			return
		}
		sh.log.Error().Err(err).Str("symbol", symbol).Msg("target not persisted")
		fmt.Fprintf(sh.w, "Warning: target kept in memory only: %v\n", err)
	}
	fmt.Fprintf(sh.w, "Saved target %s = %s\n", symbol, target.Decimal())
}

// saved tells whether a store error happened after the change was applied in
// memory, i.e. it is a persistence error, not a rejected change.
func saved(err error) bool {
	return !errors.Is(err, rebalance.ErrInvalidSymbol) && !errors.Is(err, rebalance.ErrNegativeQuantity)
}

// addTargetCmd holds the flags for the 'add-target' subcommand.
type addTargetCmd struct{}

func (*addTargetCmd) Name() string     { return "add-target" }
func (*addTargetCmd) Synopsis() string { return "set the target allocation of an asset" }
func (*addTargetCmd) Usage() string {
	return `pm add-target SYMBOL FRACTION

  Sets the target allocation of SYMBOL, as a fraction: 0.30 is 30%.
  Targets are not required to sum to 1.
`
}

func (*addTargetCmd) SetFlags(f *flag.FlagSet) {}

func (*addTargetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execOnce("add_target " + strings.Join(f.Args(), " "))
}

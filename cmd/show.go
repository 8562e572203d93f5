package cmd

import (
	"context"
	"flag"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

func (sh *Shell) show(_ []string) {
	holdings := sh.store.Holdings()
	v := rebalance.Value(holdings, sh.oracle)
	sh.markdown(renderer.HoldingsMarkdown(holdings, v))
}

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the value and allocation of each holding" }
func (*showCmd) Usage() string {
	return `pm show

  Displays the total value of the portfolio and, for each holding, its
  quantity, price, value and allocation.
`
}

func (*showCmd) SetFlags(f *flag.FlagSet) {}

func (*showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execOnce("show")
}

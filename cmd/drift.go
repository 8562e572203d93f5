package cmd

import (
	"context"
	"flag"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

func (sh *Shell) drift(_ []string) {
	v := rebalance.Value(sh.store.Holdings(), sh.oracle)
	sh.markdown(renderer.DriftMarkdown(rebalance.Drifts(v, sh.store.Targets())))
}

func (sh *Shell) targets(_ []string) {
	sh.markdown(renderer.TargetsMarkdown(sh.store.Targets()))
}

// driftCmd holds the flags for the 'drift' subcommand.
type driftCmd struct{}

func (*driftCmd) Name() string     { return "drift" }
func (*driftCmd) Synopsis() string { return "display the drift of each asset from its target" }
func (*driftCmd) Usage() string {
	return `pm drift

  Displays, for every asset held or targeted, its current allocation, its
  target and the difference.
`
}

func (*driftCmd) SetFlags(f *flag.FlagSet) {}

func (*driftCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execOnce("drift")
}

// targetsCmd holds the flags for the 'targets' subcommand.
type targetsCmd struct{}

func (*targetsCmd) Name() string     { return "targets" }
func (*targetsCmd) Synopsis() string { return "list the target allocations" }
func (*targetsCmd) Usage() string {
	return `pm targets

  Lists the target allocations and their sum.
`
}

func (*targetsCmd) SetFlags(f *flag.FlagSet) {}

func (*targetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execOnce("targets")
}

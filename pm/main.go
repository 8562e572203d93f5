// Command pm tracks asset holdings and suggests trades to rebalance them.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/rebalance/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	cmd.Register(commander)

	flag.Parse()
	if err := cmd.ApplyEnv(flag.CommandLine); err != nil {
		// the logger needs the flags and the environment, ApplyEnv comes first.
		log := cmd.NewLogger()
		log.Warn().Err(err).Msg("ignoring part of the environment")
	}

	if flag.NArg() == 0 {
		os.Exit(int(cmd.RunShell()))
	}
	os.Exit(int(commander.Execute(context.Background())))
}

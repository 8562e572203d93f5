package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/docs"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

const prompt = "> "

// Shell reads commands, one per line, and executes them against the store.
type Shell struct {
	w         io.Writer
	store     *rebalance.Store
	oracle    rebalance.PriceOracle
	threshold rebalance.Fraction // default threshold for suggest
	pretty    bool
	log       zerolog.Logger
	handlers  map[string]func(args []string)
}

func newShell(w io.Writer, store *rebalance.Store, oracle rebalance.PriceOracle, log zerolog.Logger) *Shell {
	sh := &Shell{
		w:         w,
		store:     store,
		oracle:    oracle,
		threshold: rebalance.DefaultThreshold,
		log:       log.With().Str("component", "shell").Logger(),
	}
	sh.handlers = map[string]func([]string){
		"add_hold":   sh.addHold,
		"add_target": sh.addTarget,
		"show":       sh.show,
		"suggest":    sh.suggest,
		"drift":      sh.drift,
		"targets":    sh.targets,
		"help":       sh.help,
	}
	return sh
}

// Run starts the interactive session, until the end of input or an 'exit'
// command.
func (sh *Shell) Run(r io.Reader) error {
	in := bufio.NewReader(r)
	fmt.Fprintln(sh.w, "Simple Crypto Portfolio Manager")
	sh.help(nil)

	defer fmt.Fprintln(sh.w, "Bye")
	for {
		fmt.Fprint(sh.w, "\n"+prompt)
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		// the last line might not be terminated.
		if line != "" && !sh.Exec(line) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(sh.w)
			return nil // Clean exit on Ctrl+D
		}
	}
}

// Exec executes a single command line. It returns false if the session must
// end.
func (sh *Shell) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	name, args := fields[0], fields[1:]
	if name == "exit" || name == "quit" {
		return false
	}
	handler, ok := sh.handlers[name]
	if !ok {
		fmt.Fprintf(sh.w, "Unknown command %q, type 'help' for the list of commands.\n", name)
		return true
	}
	sh.log.Debug().Str("command", name).Strs("args", args).Msg("exec")
	handler(args)
	return true
}

// markdown prints a rendered report.
func (sh *Shell) markdown(md string) { printMarkdown(sh.w, md, sh.pretty) }

// reportError prints a user facing error about a command.
func (sh *Shell) reportError(err error) { fmt.Fprintf(sh.w, "Error: %v\n", err) }

func (sh *Shell) help(args []string) {
	topic := "commands"
	if len(args) > 0 {
		topic = args[0]
	}
	doc, err := docs.GetTopic(topic)
	if err != nil {
		sh.reportError(err)
		return
	}
	if topic == "commands" {
		fmt.Fprint(sh.w, doc)
		return
	}
	sh.markdown(doc)
}

// shellCmd holds the flags for the 'shell' subcommand.
type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start the interactive session (default)" }
func (*shellCmd) Usage() string {
	return `pm shell

  Reads commands from the standard input, one per line, until 'exit' or the
  end of input. Type 'help' in the session for the list of commands.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (*shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return RunShell()
}

// RunShell runs an interactive session on the standard input and output.
func RunShell() subcommands.ExitStatus {
	sh := NewShell(os.Stdout)
	if err := sh.Run(os.Stdin); err != nil {
		sh.log.Error().Err(err).Msg("cannot read input")
	}
	return subcommands.ExitSuccess
}

// execOnce runs a single command line, for the one-shot subcommands.
func execOnce(line string) subcommands.ExitStatus {
	NewShell(os.Stdout).Exec(line)
	return subcommands.ExitSuccess
}

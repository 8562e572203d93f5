package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

func (sh *Shell) suggest(args []string) {
	threshold := sh.threshold
	if len(args) > 0 {
		var err error
		if threshold, err = rebalance.ParseFraction(args[0]); err != nil {
			fmt.Fprintln(sh.w, "Usage: suggest [THRESHOLD]")
			return
		}
	}

	v := rebalance.Value(sh.store.Holdings(), sh.oracle)
	suggestions := rebalance.Suggest(v, sh.store.Targets(), threshold)
	sh.log.Debug().Str("threshold", threshold.Decimal().String()).Int("suggestions", len(suggestions)).Msg("rebalanced")
	sh.markdown(renderer.SuggestionsMarkdown(suggestions, v.Currency))
}

// suggestCmd holds the flags for the 'suggest' subcommand.
type suggestCmd struct{}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest trades to get back to the target allocation" }
func (*suggestCmd) Usage() string {
	return `pm suggest [THRESHOLD]

  Suggests a trade, in currency, for every asset whose allocation drifts from
  its target by more than THRESHOLD (a fraction, default -threshold).
  Positive amounts buy, negative amounts sell.
`
}

func (*suggestCmd) SetFlags(f *flag.FlagSet) {}

func (*suggestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return execOnce(strings.TrimSpace("suggest " + strings.Join(f.Args(), " ")))
}

// Package cmd implements the CLI application to rebalance a portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/logger"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
	c.Register(c.HelpCommand(), "usage")
	c.Register(c.FlagsCommand(), "usage")
}

// Commands lists the application subcommands.
var Commands = []subcommands.Command{
	&shellCmd{},
	&addHoldCmd{},
	&addTargetCmd{},
	&showCmd{},
	&suggestCmd{},
	&driftCmd{},
	&targetsCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	holdingsFile = flag.String("holdings-file", "holdings.json", "Path to the holdings file")
	targetsFile  = flag.String("targets-file", "targets.json", "Path to the targets file")
	pricesFile   = flag.String("prices", "", "Path to a prices file (.yaml or .json), built-in prices if empty")
	logLevel     = flag.String("log-level", "warn", "Log level: debug, info, warn, error or disabled")
	logJSON      = flag.Bool("log-json", false, "Log as json lines instead of console messages")
	pretty       = flag.Bool("pretty", false, "Render reports as styled markdown for the terminal")
	threshold    = thresholdFlag{value: rebalance.DefaultThreshold}
)

func init() {
	flag.Var(&threshold, "threshold", "Default drift threshold for 'suggest', as a fraction")
}

// thresholdFlag is a flag.Value for a fraction.
type thresholdFlag struct{ value rebalance.Fraction }

func (f *thresholdFlag) String() string { return f.value.Decimal().String() }
func (f *thresholdFlag) Set(s string) (err error) {
	f.value, err = rebalance.ParseFraction(s)
	return err
}

// EnvKey returns the environment variable that provides the default of a
// flag: "holdings-file" is PM_HOLDINGS_FILE.
func EnvKey(name string) string {
	return "PM_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// ApplyEnv sets the flags that were not given on the command line from the
// environment. A .env file in the current directory, if any, is loaded first
// and never overrides the actual environment.
//
// A .env file that cannot be read is reported in the returned error, the
// environment is applied anyway.
func ApplyEnv(flags *flag.FlagSet) error {
	var errs []string
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		errs = append(errs, fmt.Sprintf(".env: %v", err))
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	flags.VisitAll(func(f *flag.Flag) {
		if set[f.Name] {
			return
		}
		value, ok := os.LookupEnv(EnvKey(f.Name))
		if !ok || value == "" {
			return
		}
		if err := flags.Set(f.Name, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s=%q: %v", EnvKey(f.Name), value, err))
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("invalid environment: %s", strings.Join(errs, "; "))
	}
	return nil
}

// NewLogger returns the application logger configured from the flags.
func NewLogger() zerolog.Logger {
	return logger.New(logger.Config{Level: *logLevel, Pretty: !*logJSON})
}

// OpenPrices returns the price oracle configured from the flags.
// An unreadable prices file falls back on the built-in prices.
func OpenPrices(log zerolog.Logger) rebalance.PriceOracle {
	if *pricesFile == "" {
		return rebalance.DefaultPrices()
	}
	log = log.With().Str("component", "prices").Logger()
	prices, err := rebalance.LoadPrices(*pricesFile, log)
	if err != nil {
		log.Warn().Err(err).Msg("using built-in prices instead")
		return rebalance.DefaultPrices()
	}
	log.Debug().Str("file", *pricesFile).Int("prices", prices.Len()).Msg("loaded")
	return prices
}

// NewShell opens the store and the prices configured from the flags.
func NewShell(w io.Writer) *Shell {
	log := NewLogger()
	store := rebalance.OpenStore(*holdingsFile, *targetsFile, log)
	sh := newShell(w, store, OpenPrices(log), log)
	sh.threshold = threshold.value
	sh.pretty = *pretty
	return sh
}

// printMarkdown prints md, styled for the terminal if pretty is set.
func printMarkdown(w io.Writer, md string, pretty bool) {
	if pretty {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
		if err == nil {
			if out, err := r.Render(md); err == nil {
				fmt.Fprint(w, out)
				return
			}
		}
	}
	fmt.Fprint(w, md)
}

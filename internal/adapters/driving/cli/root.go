// Package cli provides the command-line interface for search.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/search-cli/internal/core/domain"
	"github.com/custodia-labs/search-cli/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Usage lines printed when no query is given.
const (
	usageLine   = "Usage: search <query>"
	exampleLine = "Example: search rust programming"
)

var (
	flagTimeout time.Duration
	flagProxy   string
	flagLimit   int
	flagPlain   bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "search [flags] <query...>",
	Short: "Search the web anonymously from the terminal",
	Long: `Search sends the query to DuckDuckGo's HTML endpoint without cookies or
tracking and lets you browse the results in the terminal.

All arguments are joined into one query.

Controls:
  i        - Insert mode (select results)
  ↑/k, ↓/j - Move selection (insert mode)
  Enter    - Open the selected result in the browser
  Esc      - Back to normal mode
  q        - Quit (normal mode)
  ctrl+c   - Quit from anywhere`,
	Example:       "  search rust programming\n  search --proxy 127.0.0.1:9050 privacy tools",
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

func init() {
	flags := rootCmd.Flags()
	flags.DurationVar(&flagTimeout, "timeout", domain.DefaultTimeout, "request timeout")
	flags.StringVar(&flagProxy, "proxy", "", "SOCKS5 proxy address, e.g. 127.0.0.1:9050 for Tor")
	flags.IntVarP(&flagLimit, "limit", "n", domain.MaxResults, "maximum number of results")
	flags.BoolVar(&flagPlain, "plain", false, "print results instead of opening the browser view")
	flags.BoolVar(&flagJSON, "json", false, "output results as JSON")
	flags.StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/search/config.toml)")

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	}
}

// reportedError marks an error already written to stderr.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the root command and prints any error not yet reported.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// printUsage writes the short usage hint to stderr.
func printUsage(cmd *cobra.Command) {
	errOut := cmd.ErrOrStderr()
	fmt.Fprintln(errOut, usageLine)
	fmt.Fprintln(errOut, exampleLine)
}


package cli

import (
	"context"
	"os"

	"golang.org/x/term"

	"github.com/custodia-labs/search-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/search-cli/internal/core/domain"
	"github.com/custodia-labs/search-cli/internal/core/ports/driving"
)

// Config holds the collaborators the root command runs with.
// The search pipeline depends on flags, so it is built per invocation.
type Config struct {
	// LoadSettings resolves settings from the config file at path.
	// An empty path means the default location.
	LoadSettings func(path string) (domain.Settings, error)

	// NewSearchService builds the search pipeline for settings.
	NewSearchService func(settings domain.Settings) (driving.SearchService, error)

	// ResultActionService opens results selected in the browser.
	ResultActionService driving.ResultActionService

	// Browse runs the interactive browser. Defaults to the terminal UI.
	Browse func(ctx context.Context, state domain.BrowseState, settings domain.Settings) error

	// IsTerminal reports whether the browser can take the terminal.
	// Defaults to checking stdin and stdout.
	IsTerminal func() bool
}

// cliConfig holds the current configuration.
var cliConfig *Config

// SetConfig sets the configuration for the root command.
func SetConfig(config *Config) {
	cliConfig = config
}

// browse returns the configured browser or the terminal UI.
func (c *Config) browse() func(ctx context.Context, state domain.BrowseState, settings domain.Settings) error {
	if c.Browse != nil {
		return c.Browse
	}
	return c.runTUI
}

// interactive reports whether stdin and stdout are terminals.
func (c *Config) interactive() bool {
	if c.IsTerminal != nil {
		return c.IsTerminal()
	}
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// runTUI shows state in the terminal UI until the user quits.
func (c *Config) runTUI(ctx context.Context, state domain.BrowseState, settings domain.Settings) error {
	app, err := tui.NewApp(tui.NewPorts(c.ResultActionService), state, settings.PollInterval)
	if err != nil {
		return err
	}
	return tui.Run(ctx, app)
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/search-cli/internal/core/domain"
	"github.com/custodia-labs/search-cli/internal/logger"
)

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		printUsage(cmd)
		return &reportedError{err: domain.ErrNoQuery}
	}
	if cliConfig == nil || cliConfig.LoadSettings == nil || cliConfig.NewSearchService == nil {
		return errors.New("search service not configured")
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	logger.Debug("Settings: endpoint=%s timeout=%s proxy=%q", settings.Endpoint, settings.Timeout, settings.Proxy)

	svc, err := cliConfig.NewSearchService(settings)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !flagJSON {
		fmt.Fprintf(out, "Searching anonymously for: %s\n", query)
	}

	ctx := cmd.Context()
	results, err := svc.Search(ctx, query, domain.SearchOptions{Limit: flagLimit})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error searching: %v\n", err)
		return &reportedError{err: err}
	}

	if flagJSON {
		return outputSearchJSON(cmd, results)
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No results found.")
		return nil
	}

	if flagPlain || !cliConfig.interactive() {
		outputSearchPlain(cmd, results)
		return nil
	}

	state := domain.NewBrowseState(query, results)
	return cliConfig.browse()(ctx, state, settings)
}

// resolveSettings overlays explicitly set flags on the configured settings.
func resolveSettings(cmd *cobra.Command) (domain.Settings, error) {
	settings, err := cliConfig.LoadSettings(flagConfig)
	if err != nil {
		return domain.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("timeout") {
		settings.Timeout = flagTimeout
	}
	if flags.Changed("proxy") {
		settings.Proxy = flagProxy
	}

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	if results == nil {
		results = []domain.SearchResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputSearchPlain(cmd *cobra.Command, results []domain.SearchResult) {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, "\nSearch Results:\n\n")
	for i := range results {
		fmt.Fprintf(out, "%d. %s\n", i+1, results[i].Title)
		link := results[i].DisplayURL
		if link == "" {
			link = results[i].URL
		}
		fmt.Fprintf(out, "   %s\n", link)
		fmt.Fprintf(out, "   %s\n\n", results[i].Description)
	}
}

// Command search is an anonymous terminal search client.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/search-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/search-cli/internal/adapters/driven/extractor/ddghtml"
	"github.com/custodia-labs/search-cli/internal/adapters/driven/fetcher/duckduckgo"
	"github.com/custodia-labs/search-cli/internal/adapters/driven/opener/browser"
	"github.com/custodia-labs/search-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/search-cli/internal/core/domain"
	"github.com/custodia-labs/search-cli/internal/core/ports/driving"
	"github.com/custodia-labs/search-cli/internal/core/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Driven adapters without settings
	extractor := ddghtml.New()
	resultActionService := services.NewResultActionService(browser.New())

	cli.SetConfig(&cli.Config{
		LoadSettings: loadSettings,
		NewSearchService: func(settings domain.Settings) (driving.SearchService, error) {
			fetcher, err := duckduckgo.New(settings)
			if err != nil {
				return nil, err
			}
			return services.NewSearchService(fetcher, extractor), nil
		},
		ResultActionService: resultActionService,
	})

	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// loadSettings reads the optional config file at path.
func loadSettings(path string) (domain.Settings, error) {
	configStore, err := file.NewConfigStore(path)
	if err != nil {
		return domain.Settings{}, err
	}
	return services.NewSettingsService(configStore).Get()
}

package driving

import "github.com/custodia-labs/search-cli/internal/core/domain"

// SettingsService resolves the settings the adapters run with.
type SettingsService interface {
	// Get returns defaults overlaid with configured values.
	Get() (domain.Settings, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}

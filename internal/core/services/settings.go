package services

import (
	"fmt"

	"github.com/custodia-labs/search-cli/internal/core/domain"
	"github.com/custodia-labs/search-cli/internal/core/ports/driven"
	"github.com/custodia-labs/search-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyEndpoint     = "search.endpoint"
	keyUserAgent    = "search.user_agent"
	keyTimeout      = "search.timeout"
	keyProxy        = "search.proxy"
	keyMaxBodySize  = "search.max_body_size"
	keyPollInterval = "tui.poll_interval"
)

// SettingsService resolves application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
// configStore may be nil, in which case only defaults are returned.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the defaults overlaid with every configured value.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings, nil
	}

	if v := s.configStore.GetString(keyEndpoint); v != "" {
		settings.Endpoint = v
	}
	if v := s.configStore.GetString(keyUserAgent); v != "" {
		settings.UserAgent = v
	}
	if v := s.configStore.GetDuration(keyTimeout); v > 0 {
		settings.Timeout = v
	}
	if v := s.configStore.GetString(keyProxy); v != "" {
		settings.Proxy = v
	}
	if v := s.configStore.GetInt(keyMaxBodySize); v > 0 {
		settings.MaxBodySize = int64(v)
	}
	if v := s.configStore.GetDuration(keyPollInterval); v > 0 {
		settings.PollInterval = v
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("config %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

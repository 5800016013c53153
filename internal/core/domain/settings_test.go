package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, DefaultEndpoint, s.Endpoint)
	assert.Equal(t, DefaultUserAgent, s.UserAgent)
	assert.Equal(t, DefaultTimeout, s.Timeout)
	assert.Equal(t, int64(DefaultMaxBodySize), s.MaxBodySize)
	assert.Equal(t, DefaultPollInterval, s.PollInterval)
	assert.Empty(t, s.Proxy)
	assert.NoError(t, s.Validate())
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"empty endpoint", func(s *Settings) { s.Endpoint = "" }},
		{"relative endpoint", func(s *Settings) { s.Endpoint = "/html/" }},
		{"zero timeout", func(s *Settings) { s.Timeout = 0 }},
		{"negative poll", func(s *Settings) { s.PollInterval = -time.Second }},
		{"zero body size", func(s *Settings) { s.MaxBodySize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
		})
	}
}

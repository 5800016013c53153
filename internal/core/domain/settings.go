package domain

import "time"

// Default settings values.
const (
	// DefaultEndpoint is the HTML-only results page, which needs no JavaScript.
	DefaultEndpoint = "https://html.duckduckgo.com/html/"

	// DefaultUserAgent makes the request look like a desktop browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultTimeout bounds the single blocking fetch.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBodySize limits how much of the response body is read.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultPollInterval is the longest the browser waits for input
	// before redrawing.
	DefaultPollInterval = 100 * time.Millisecond
)

// Settings holds transport and browser tuning.
type Settings struct {
	// Endpoint is the search page the query is sent to.
	Endpoint string

	// UserAgent is sent with every request.
	UserAgent string

	// Timeout is the overall request timeout.
	Timeout time.Duration

	// Proxy is an optional SOCKS5 proxy in "host:port" form, such as a
	// local Tor daemon. Empty means a direct connection.
	Proxy string

	// MaxBodySize is the maximum number of body bytes read.
	MaxBodySize int64

	// PollInterval is the browser's bounded input wait.
	PollInterval time.Duration
}

// DefaultSettings returns settings with all defaults applied.
func DefaultSettings() Settings {
	return Settings{
		Endpoint:     DefaultEndpoint,
		UserAgent:    DefaultUserAgent,
		Timeout:      DefaultTimeout,
		MaxBodySize:  DefaultMaxBodySize,
		PollInterval: DefaultPollInterval,
	}
}

// Validate checks the settings for values the adapters cannot use.
func (s Settings) Validate() error {
	if s.Endpoint == "" || !IsAbsoluteURL(s.Endpoint) {
		return ErrInvalidInput
	}
	if s.Timeout <= 0 || s.PollInterval <= 0 || s.MaxBodySize <= 0 {
		return ErrInvalidInput
	}
	return nil
}

package duckduckgo

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/net/proxy"

	"github.com/custodia-labs/search-cli/internal/core/domain"
	"github.com/custodia-labs/search-cli/internal/core/ports/driven"
	"github.com/custodia-labs/search-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// queryParam is the parameter the endpoint reads the query from.
const queryParam = "q"

// Fetcher retrieves DuckDuckGo HTML results pages.
type Fetcher struct {
	client      *http.Client
	endpoint    string
	userAgent   string
	maxBodySize int64
}

// New creates a fetcher from settings.
// A non-empty settings.Proxy must be a "host:port" SOCKS5 address.
func New(settings domain.Settings) (*Fetcher, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if settings.Proxy != "" {
		dialer, err := socks5Dialer(settings.Proxy)
		if err != nil {
			return nil, err
		}
		transport.Proxy = nil
		transport.DialContext = dialer.DialContext
	}

	return &Fetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   settings.Timeout,
		},
		endpoint:    settings.Endpoint,
		userAgent:   settings.UserAgent,
		maxBodySize: settings.MaxBodySize,
	}, nil
}

// socks5Dialer validates addr and returns a context-aware SOCKS5 dialer.
// Tor's SOCKS port does not require authentication.
func socks5Dialer(addr string) (proxy.ContextDialer, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host == "" {
		return nil, fmt.Errorf("%w: proxy address %q", domain.ErrInvalidInput, addr)
	}
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("%w: proxy port %q", domain.ErrInvalidInput, port)
	}

	d, err := proxy.SOCKS5("tcp", addr, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
	}
	cd, ok := d.(proxy.ContextDialer)
	if !ok {
		return nil, fmt.Errorf("%w: SOCKS5 dialer does not support contexts", domain.ErrInvalidInput)
	}
	return cd, nil
}

// RequestURL returns the URL fetched for query.
// Spaces are encoded as "+".
func (f *Fetcher) RequestURL(query string) (string, error) {
	u, err := url.Parse(f.endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: endpoint %q", domain.ErrInvalidInput, f.endpoint)
	}
	params := u.Query()
	params.Set(queryParam, query)
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// Fetch sends one GET for query and returns the response body.
func (f *Fetcher) Fetch(ctx context.Context, query string) (string, error) {
	target, err := f.RequestURL(query)
	if err != nil {
		return "", err
	}
	logger.Debug("GET %s", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}
	defer resp.Body.Close()

	logger.Debug("Response status: %s", resp.Status)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %s", domain.ErrFetch, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", domain.ErrFetch, err)
	}
	return string(body), nil
}

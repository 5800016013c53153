// Package duckduckgo implements driven.Fetcher against DuckDuckGo's
// HTML-only results page.
//
// One GET is issued per query with the query in the "q" parameter,
// a browser-like User-Agent and a fixed client timeout. There are no
// retries. The request can optionally be routed through a SOCKS5 proxy,
// typically a local Tor daemon, so that the search engine does not see
// the caller's address.
package duckduckgo

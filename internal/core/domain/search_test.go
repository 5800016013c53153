package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"newline removed not joined", "Foo\nBar  ", "FooBar"},
		{"tab removed", "\tRust\tLang", "RustLang"},
		{"plain spaces kept", "  The Rust Book  ", "The Rust Book"},
		{"carriage return", "Line\r\n", "Line"},
		{"zero width removed", "a\u200bb", "ab"},
		{"unicode letters kept", "Café über", "Café über"},
		{"only control", "\n\t\r", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSearchResult_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		result SearchResult
		want   bool
	}{
		{"complete", SearchResult{Title: "Rust", URL: "https://rust-lang.org"}, true},
		{"plain http", SearchResult{Title: "Rust", URL: "http://rust-lang.org"}, true},
		{"empty title", SearchResult{URL: "https://rust-lang.org"}, false},
		{"empty url", SearchResult{Title: "Rust"}, false},
		{"relative url", SearchResult{Title: "Rust", URL: "/l/?uddg=x"}, false},
		{"protocol relative", SearchResult{Title: "Rust", URL: "//duckduckgo.com/l/"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.IsValid())
		})
	}
}

func TestSearchOptions_EffectiveLimit(t *testing.T) {
	assert.Equal(t, MaxResults, SearchOptions{}.EffectiveLimit())
	assert.Equal(t, MaxResults, SearchOptions{Limit: -3}.EffectiveLimit())
	assert.Equal(t, MaxResults, SearchOptions{Limit: 50}.EffectiveLimit())
	assert.Equal(t, 3, SearchOptions{Limit: 3}.EffectiveLimit())
}

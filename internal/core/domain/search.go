package domain

import (
	"strings"
	"unicode"
)

// MaxResults is the number of result containers considered per page.
const MaxResults = 10

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results.
	// Zero, negative or anything above MaxResults means MaxResults.
	Limit int
}

// EffectiveLimit returns the limit clamped to MaxResults.
func (o SearchOptions) EffectiveLimit() int {
	if o.Limit <= 0 || o.Limit > MaxResults {
		return MaxResults
	}
	return o.Limit
}

// SearchResult represents a single search hit.
type SearchResult struct {
	// Title is the sanitised link text of the hit.
	Title string `json:"title"`

	// URL is the absolute target of the hit.
	URL string `json:"url"`

	// DisplayURL is the shortened URL shown by the engine. May be empty.
	DisplayURL string `json:"display_url"`

	// Description is the sanitised snippet. May be empty.
	Description string `json:"description"`
}

// IsValid reports whether the result carries a title and an absolute URL.
func (r SearchResult) IsValid() bool {
	return r.Title != "" && IsAbsoluteURL(r.URL)
}

// IsAbsoluteURL reports whether u is usable as a result target.
func IsAbsoluteURL(u string) bool {
	return strings.HasPrefix(u, "http")
}

// Sanitize removes control and other non-graphic characters (plain
// spaces are kept) and trims surrounding whitespace.
// Removed characters are not replaced: "Foo\nBar  " becomes "FooBar".
func Sanitize(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' {
			return r
		}
		if unicode.IsControl(r) || !unicode.IsGraphic(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(cleaned)
}

package ddghtml

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/search-cli/internal/core/domain"
)

// Field names used as strategy keys.
const (
	FieldTitle       = "title"
	FieldURL         = "url"
	FieldDisplayURL  = "display_url"
	FieldDescription = "description"
)

// breadcrumbSeparator is how the engine renders path segments in the
// display URL ("example.com › docs").
const breadcrumbSeparator = "›"

// redirectParam carries the real target in the engine's redirect links.
const redirectParam = "uddg"

// Strategy extracts one field value from a result container.
// An empty return means "not found here".
type Strategy func(s *goquery.Selection) string

// DefaultStrategies returns the ordered strategies for every field.
func DefaultStrategies() map[string][]Strategy {
	return map[string][]Strategy{
		FieldTitle: {
			textOf(".result__a"),
			textOf(".result__title"),
		},
		FieldURL: {
			firstAbsoluteHref,
			redirectTarget(".result__a"),
		},
		FieldDisplayURL: {
			displayURL(".result__url"),
		},
		FieldDescription: {
			textOf(".result__snippet"),
			textOf(".result-snippet"),
		},
	}
}

// textOf returns the text of the first element matching selector.
func textOf(selector string) Strategy {
	return func(s *goquery.Selection) string {
		return s.Find(selector).First().Text()
	}
}

// firstAbsoluteHref returns the href of the first link that starts with
// "http". Relative and tracking links placed before the real result link
// are skipped.
func firstAbsoluteHref(s *goquery.Selection) string {
	var href string
	s.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		v, _ := a.Attr("href")
		v = strings.TrimSpace(v)
		if domain.IsAbsoluteURL(v) {
			href = v
			return false
		}
		return true
	})
	return href
}

// redirectTarget unwraps links of the form "//duckduckgo.com/l/?uddg=<url>".
func redirectTarget(selector string) Strategy {
	return func(s *goquery.Selection) string {
		href, ok := s.Find(selector).First().Attr("href")
		if !ok {
			return ""
		}
		u, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return ""
		}
		target := u.Query().Get(redirectParam)
		if !domain.IsAbsoluteURL(target) {
			return ""
		}
		return target
	}
}

// displayURL returns the first whitespace-delimited token of the element
// text after breadcrumb separators are replaced with "/".
func displayURL(selector string) Strategy {
	return func(s *goquery.Selection) string {
		return ShortenDisplayURL(s.Find(selector).First().Text())
	}
}

// ShortenDisplayURL applies the display URL transform to text.
// "example.com › docs › intro" becomes "example.com": the separator
// replacement keeps its surrounding spaces, so only the host survives.
func ShortenDisplayURL(text string) string {
	text = strings.ReplaceAll(text, breadcrumbSeparator, "/")
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

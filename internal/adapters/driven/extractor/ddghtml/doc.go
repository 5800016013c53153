// Package ddghtml implements driven.Extractor for DuckDuckGo HTML results
// pages using CSS selectors.
//
// The markup of the results page is not under our control and changes
// without notice. Each field is therefore read through an ordered list of
// strategies; the first one that yields a non-empty value wins, and a miss
// only costs that field, never the whole page.
package ddghtml

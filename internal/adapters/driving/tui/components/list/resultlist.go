// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/search-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/search-cli/internal/core/domain"
)

// linesPerResult is title, display URL and description.
const linesPerResult = 3

// ResultList renders search results with the cursor row highlighted.
// It holds no navigation logic; the cursor is owned by domain.BrowseState.
type ResultList struct {
	results []domain.SearchResult
	cursor  int
	active  bool
	styles  *styles.Styles
	width   int
	height  int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		cursor: domain.NoCursor,
		styles: s,
		width:  80,
		height: 24,
	}
}

// View renders the visible part of the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	// Each result takes linesPerResult lines plus a blank separator
	visibleCount := r.height / (linesPerResult + 1)
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.cursor >= visibleCount {
		start = r.cursor - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.results) {
		end = len(r.results)
	}

	blocks := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		blocks = append(blocks, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(blocks, "\n\n")
}

// renderResult formats a single search result.
func (r *ResultList) renderResult(index int, result *domain.SearchResult) string {
	selected := index == r.cursor
	indicator := "  "
	if selected {
		indicator = "> "
	}

	number := r.styles.Number.Render(fmt.Sprintf("%d.", index+1))
	title := truncate(result.Title, r.width-8)

	var titleLine string
	if selected && r.active {
		titleLine = indicator + number + " " + r.styles.Selected.Render(title)
	} else {
		titleLine = indicator + number + " " + r.styles.ResultTitle.Render(title)
	}

	link := result.DisplayURL
	if link == "" {
		link = result.URL
	}
	urlLine := "     " + r.styles.URL.Render(truncate(link, r.width-6))
	descLine := "     " + r.styles.Muted.Render(truncate(result.Description, r.width-6))

	return titleLine + "\n" + urlLine + "\n" + descLine
}

// truncate shortens s to at most max terminal cells, marking the cut
// with "...". Wide characters count as two cells.
func truncate(s string, max int) string {
	if max < 10 {
		max = 10
	}
	if ansi.StringWidth(s) <= max {
		return s
	}
	return ansi.Truncate(s, max, "...")
}

// SetResults updates the result list.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results = results
}

// Results returns the current results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// SetCursor sets the highlighted index.
func (r *ResultList) SetCursor(index int) {
	r.cursor = index
}

// Cursor returns the highlighted index.
func (r *ResultList) Cursor() int {
	return r.cursor
}

// SetActive sets whether the cursor row is drawn with the selection style.
func (r *ResultList) SetActive(active bool) {
	r.active = active
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}

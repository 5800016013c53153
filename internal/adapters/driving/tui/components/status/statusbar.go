// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/search-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/search-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/search-cli/internal/core/domain"
)

// Bar displays the mode, result count, a transient message and
// keybinding hints for the current mode.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	mode        domain.Mode
	message     string
	resultCount int
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		mode:   domain.ModeNormal,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	inner := s.width - s.styles.StatusBar.GetHorizontalPadding()
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the mode badge, count and message.
func (s *Bar) renderLeft() string {
	badge := s.styles.NormalBadge.Render(s.mode.String())
	if s.mode == domain.ModeInsert {
		badge = s.styles.InsertBadge.Render(s.mode.String())
	}

	left := badge + " " + fmt.Sprintf("%d results", s.resultCount)
	if s.message != "" {
		left += "  " + s.message
	}
	return left
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.HelpFor(s.mode)

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return strings.Join(hints, " | ")
}

// SetMode sets the mode shown in the badge.
func (s *Bar) SetMode(mode domain.Mode) {
	s.mode = mode
}

// Mode returns the displayed mode.
func (s *Bar) Mode() domain.Mode {
	return s.mode
}

// SetMessage sets a transient message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetResultCount sets the result count.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
}

// ResultCount returns the current result count.
func (s *Bar) ResultCount() int {
	return s.resultCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Package keymap defines keybindings for the TUI and maps them onto the
// terminal-independent keys of the browse state machine.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/search-cli/internal/core/domain"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application (normal mode).
	Quit key.Binding

	// Insert switches to insert mode (normal mode).
	Insert key.Binding

	// Escape returns to normal mode (insert mode).
	Escape key.Binding

	// Up moves the cursor up, wrapping to the last result.
	Up key.Binding

	// Down moves the cursor down, wrapping to the first result.
	Down key.Binding

	// Open opens the selected result in the browser.
	Open key.Binding

	// ForceQuit exits from any mode.
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Insert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "browse"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "normal mode"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// Resolve translates a key press into a state machine key.
// Unbound keys resolve to domain.KeyNone.
func (k *KeyMap) Resolve(msg tea.KeyMsg) domain.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return domain.KeyQuit
	case key.Matches(msg, k.Insert):
		return domain.KeyInsert
	case key.Matches(msg, k.Escape):
		return domain.KeyEscape
	case key.Matches(msg, k.Up):
		return domain.KeyUp
	case key.Matches(msg, k.Down):
		return domain.KeyDown
	case key.Matches(msg, k.Open):
		return domain.KeyActivate
	default:
		return domain.KeyNone
	}
}

// NormalHelp returns keybindings shown in normal mode.
func (k *KeyMap) NormalHelp() []key.Binding {
	return []key.Binding{k.Insert, k.Quit}
}

// InsertHelp returns keybindings shown in insert mode.
func (k *KeyMap) InsertHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Open, k.Escape}
}

// HelpFor returns the keybindings relevant to mode.
func (k *KeyMap) HelpFor(mode domain.Mode) []key.Binding {
	if mode == domain.ModeInsert {
		return k.InsertHelp()
	}
	return k.NormalHelp()
}

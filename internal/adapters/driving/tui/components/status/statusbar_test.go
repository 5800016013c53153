package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/search-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/search-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/search-cli/internal/core/domain"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, domain.ModeNormal, bar.Mode())
	assert.Empty(t, bar.Message())
	assert.Zero(t, bar.ResultCount())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilDependencies(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_View_NormalMode(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetResultCount(3)
	bar.SetWidth(120)

	view := bar.View()

	assert.Contains(t, view, "NORMAL")
	assert.Contains(t, view, "3 results")
	assert.Contains(t, view, "i: browse")
	assert.Contains(t, view, "q: quit")
	assert.NotContains(t, view, "enter: open")
}

func TestBar_View_InsertMode(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetMode(domain.ModeInsert)
	bar.SetWidth(120)

	view := bar.View()

	assert.Contains(t, view, "INSERT")
	assert.Contains(t, view, "enter: open")
	assert.Contains(t, view, "esc: normal mode")
}

func TestBar_View_Message(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(160)
	bar.SetMessage("Opening go.dev")

	assert.Contains(t, bar.View(), "Opening go.dev")
}

package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/search-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/search-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/search-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/search-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/search-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/search-cli/internal/core/domain"
)

// headerLines is the space above the list: title, blank line.
const headerLines = 2

// App is the results browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea. Key presses are
// translated by the keymap and applied to a domain.BrowseState, which is
// the only state that decides what happens.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.ResultList
	statusbar *status.Bar

	// state is the browsing session.
	state domain.BrowseState

	// pollInterval bounds each wait for input.
	pollInterval time.Duration

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a browser for state.
// A non-positive pollInterval falls back to domain.DefaultPollInterval.
func NewApp(ports *Ports, state domain.BrowseState, pollInterval time.Duration) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if pollInterval <= 0 {
		pollInterval = domain.DefaultPollInterval
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		list:         list.NewResultList(s),
		statusbar:    status.NewBar(s, km),
		state:        state,
		pollInterval: pollInterval,
		width:        80,
		height:       24,
	}
	a.list.SetResults(state.Results)
	a.sync()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It sets the window title and starts the poll ticker.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("search - "+a.state.Query),
		a.poll(),
	)
}

// poll schedules the next tick.
func (a *App) poll() tea.Cmd {
	return tea.Tick(a.pollInterval, func(t time.Time) tea.Msg {
		return messages.Tick{Time: t}
	})
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.Tick:
		// Nothing is timer driven yet; the tick only keeps the wait bounded.
		return a, a.poll()

	case messages.ResultOpened:
		a.statusbar.SetMessage("Open requested: " + msg.URL)
		return a, nil
	}

	return a, nil
}

// handleKey applies one key press to the browse state.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit with ctrl+c
	if key.Matches(msg, a.keymap.ForceQuit) {
		a.state.ShouldQuit = true
		return a, tea.Quit
	}

	next, effect := a.state.Apply(a.keymap.Resolve(msg))
	a.state = next
	a.sync()

	if a.state.ShouldQuit {
		return a, tea.Quit
	}
	if !effect.IsNone() {
		a.statusbar.SetMessage("Opening " + effect.OpenURL)
		return a, a.open(a.state.Selected())
	}
	return a, nil
}

// open hands result to the action service without waiting for the browser.
func (a *App) open(result *domain.SearchResult) tea.Cmd {
	if result == nil {
		return nil
	}
	r := *result
	return func() tea.Msg {
		a.ports.ResultAction.OpenResult(a.ctx, &r)
		return messages.ResultOpened{URL: r.URL}
	}
}

// sync pushes the browse state into the view components.
func (a *App) sync() {
	a.list.SetCursor(a.state.Cursor)
	a.list.SetActive(a.state.Mode == domain.ModeInsert)
	a.statusbar.SetMode(a.state.Mode)
	a.statusbar.SetResultCount(len(a.state.Results))
}

// View implements tea.Model.
// It renders the current state as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	header := a.styles.Title.Render("Search results for: ") + a.styles.Query.Render(a.state.Query)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		a.list.View(),
		"",
		a.statusbar.View(),
	)
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// Reserve header and status bar
	a.list.SetDimensions(width, height-headerLines-2)
	a.statusbar.SetWidth(width)
}

// State returns the current browse state.
func (a *App) State() domain.BrowseState {
	return a.state
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// StatusMessage returns the status bar message.
func (a *App) StatusMessage() string {
	return a.statusbar.Message()
}

// Run starts the browser on the process terminal and blocks until the
// user quits. The terminal mode is restored on return.
func Run(ctx context.Context, app *App) error {
	return WithSession(os.Stdin, func() error {
		p := tea.NewProgram(app.WithContext(ctx),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	})
}


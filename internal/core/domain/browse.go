package domain

// NoCursor is the cursor value of a session without results.
const NoCursor = -1

// Mode is the interaction context that decides which keys are active.
type Mode int

const (
	// ModeNormal is command mode: quit or enter insert mode.
	ModeNormal Mode = iota
	// ModeInsert is navigation mode: move, open, or leave to normal mode.
	ModeInsert
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// Key is a terminal-independent input event understood by BrowseState.
type Key int

const (
	// KeyNone is any key without a meaning in the browser.
	KeyNone Key = iota
	KeyQuit
	KeyInsert
	KeyEscape
	KeyDown
	KeyUp
	KeyActivate
)

// Effect is a side effect requested by a transition.
// The zero value requests nothing.
type Effect struct {
	// OpenURL is the target to open in the default handler.
	OpenURL string
}

// IsNone reports whether the effect requests nothing.
func (e Effect) IsNone() bool {
	return e.OpenURL == ""
}

// BrowseState is the interactive session over one set of results.
// Transitions never mutate the receiver; Apply returns the next state.
type BrowseState struct {
	// Results is the ordered result set, owned by the session.
	Results []SearchResult

	// Cursor is the highlighted index, or NoCursor when Results is empty.
	Cursor int

	// Mode is the current interaction mode.
	Mode Mode

	// Query is the original search string, display only.
	Query string

	// ShouldQuit is set once the user asked to leave.
	ShouldQuit bool
}

// NewBrowseState creates a session in normal mode with the cursor on the
// first result, if any.
func NewBrowseState(query string, results []SearchResult) BrowseState {
	cursor := NoCursor
	if len(results) > 0 {
		cursor = 0
	}
	return BrowseState{
		Results: results,
		Cursor:  cursor,
		Mode:    ModeNormal,
		Query:   query,
	}
}

// HasCursor reports whether the cursor points at a result.
func (s BrowseState) HasCursor() bool {
	return s.Cursor >= 0 && s.Cursor < len(s.Results)
}

// Selected returns the result under the cursor, or nil.
func (s BrowseState) Selected() *SearchResult {
	if !s.HasCursor() {
		return nil
	}
	return &s.Results[s.Cursor]
}

// Apply returns the state that follows key and the side effect it requests.
//
//	Normal  q      quit
//	Normal  i      enter insert mode
//	Insert  esc    back to normal mode
//	Insert  j/k    move the cursor, wrapping at both ends
//	Insert  enter  open the selected result
//
// Every other combination returns s unchanged.
func (s BrowseState) Apply(key Key) (BrowseState, Effect) {
	switch s.Mode {
	case ModeNormal:
		switch key {
		case KeyQuit:
			s.ShouldQuit = true
		case KeyInsert:
			s.Mode = ModeInsert
		case KeyNone, KeyEscape, KeyDown, KeyUp, KeyActivate:
		}
	case ModeInsert:
		switch key {
		case KeyEscape:
			s.Mode = ModeNormal
		case KeyDown:
			s = s.moveBy(1)
		case KeyUp:
			s = s.moveBy(-1)
		case KeyActivate:
			if r := s.Selected(); r != nil && r.URL != "" {
				return s, Effect{OpenURL: r.URL}
			}
		case KeyNone, KeyQuit, KeyInsert:
		}
	}
	return s, Effect{}
}

func (s BrowseState) moveBy(delta int) BrowseState {
	n := len(s.Results)
	if n == 0 {
		s.Cursor = NoCursor
		return s
	}
	s.Cursor = ((s.Cursor+delta)%n + n) % n
	return s
}

package tui

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/custodia-labs/search-cli/internal/core/domain"
)

// Session owns the terminal for the lifetime of the browser. It records
// the terminal mode on open and puts it back on Close, whatever the
// program did to it in between.
type Session struct {
	fd      int
	state   *term.State
	restore func(fd int, state *term.State) error
	once    sync.Once
	err     error
}

// OpenSession captures the current mode of f.
// It returns domain.ErrNotTerminal when f is not a terminal.
func OpenSession(f *os.File) (*Session, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, domain.ErrNotTerminal
	}

	state, err := term.GetState(fd)
	if err != nil {
		return nil, fmt.Errorf("reading terminal state: %w", err)
	}

	return &Session{
		fd:      fd,
		state:   state,
		restore: term.Restore,
	}, nil
}

// Close restores the captured terminal mode. It is safe to call more
// than once; only the first call touches the terminal.
func (s *Session) Close() error {
	s.once.Do(func() {
		s.err = s.restore(s.fd, s.state)
	})
	return s.err
}

// WithSession opens a session on f, runs fn and restores the terminal on
// every exit path, including a panic inside fn.
func WithSession(f *os.File, fn func() error) (err error) {
	session, err := OpenSession(f)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("restoring terminal: %w", cerr)
		}
	}()

	return fn()
}

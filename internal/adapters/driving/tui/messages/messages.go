// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import "time"

// Tick is delivered once per poll interval so the loop never waits for
// input indefinitely.
type Tick struct {
	Time time.Time
}

// ResultOpened reports that an open request for a result was dispatched.
// Launch failures are not reported, so it does not mean a browser started.
type ResultOpened struct {
	URL string
}

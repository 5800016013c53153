// Package browser implements driven.URLOpener by handing URLs to the
// platform's default handler in a detached process.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/custodia-labs/search-cli/internal/core/ports/driven"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure Opener implements the interface.
var _ driven.URLOpener = (*Opener)(nil)

// Opener launches the default browser.
type Opener struct {
	goos  string
	start func(name string, args ...string) error
}

// New creates an opener for the running platform.
func New() *Opener {
	return &Opener{
		goos:  runtime.GOOS,
		start: startDetached,
	}
}

// Open starts the platform handler for url and returns without waiting.
func (o *Opener) Open(url string) error {
	name, args, err := Command(o.goos, url)
	if err != nil {
		return err
	}
	return o.start(name, args...)
}

// Command returns the program and arguments that open url on goos.
func Command(goos, url string) (string, []string, error) {
	switch goos {
	case osDarwin:
		return "open", []string{url}, nil
	case osLinux, "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	case osWindows:
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// startDetached starts the process without waiting for it; its exit
// status is never read.
func startDetached(name string, args ...string) error {
	_, err := startReaped(exec.Command(name, args...))
	return err
}

// startReaped starts cmd and waits for it in the background so the
// finished child does not linger as a zombie. The returned channel is
// closed once the child has been reaped.
func startReaped(cmd *exec.Cmd) (<-chan struct{}, error) {
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = cmd.Wait()
	}()
	return done, nil
}

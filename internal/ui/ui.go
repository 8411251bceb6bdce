// Package ui provides terminal display helpers.
package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"gitpr/internal/sys"
)

// Spinner shows a simple progress indicator on stderr.
type Spinner struct {
	label    string
	stop     chan struct{}
	done     chan struct{}
	disabled bool
	started  bool
	stopped  bool
}

// NewSpinner creates a new Spinner instance.
// If verbose is true, or stderr is not a terminal, the spinner is a no-op.
func NewSpinner(label string, verbose bool) *Spinner {
	return &Spinner{
		label:    label,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		disabled: verbose || !stderrIsTerminal(),
	}
}

func stderrIsTerminal() bool {
	f, ok := sys.Stderr.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Start starts the spinner in a separate goroutine.
func (s *Spinner) Start() {
	if s.disabled || s.started || s.stopped {
		return
	}
	s.started = true
	go func() {
		defer close(s.done)
		chars := []string{"/", "-", "\\", "|"}
		i := 0
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				fmt.Fprint(sys.Stderr, "\r\033[K") // Clear line
				return
			case <-ticker.C:
				fmt.Fprintf(sys.Stderr, "\r%s %s", s.label, chars[i])
				i = (i + 1) % len(chars)
			}
		}
	}()
}

// Stop stops the spinner and clears the line.
func (s *Spinner) Stop() {
	if s.disabled || !s.started {
		return
	}
	s.started = false
	s.stopped = true
	close(s.stop)
	<-s.done
}

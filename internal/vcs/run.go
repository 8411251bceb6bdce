// Package vcs wraps the git and gh command line tools used to inspect the
// repository, push the branch and open the pull request.
package vcs

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gitpr/internal/sys"
)

// verboseLogMu keeps the start and end of a traced command on one line.
var verboseLogMu sync.Mutex

// formatDuration formats a duration in milliseconds with comma separators (e.g., "1,234ms").
func formatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	p := message.NewPrinter(language.English)
	return p.Sprintf("%dms", ms)
}

// trace prints "[CMD] <cmd>" and returns a func printing the elapsed time.
// Commands that write to the terminal themselves get the time on a line of
// its own so their output does not land inside the trace line.
func trace(verbose, interactive bool, path string, args []string) func() {
	if !verbose {
		return func() {}
	}
	verboseLogMu.Lock()
	start := time.Now()
	line := strings.TrimSpace(path + " " + strings.Join(args, " "))
	if interactive {
		fmt.Fprintf(sys.Stderr, "[CMD] %s\n", line)
		return func() {
			fmt.Fprintf(sys.Stderr, "[CMD] %s done (%s)\n", line, formatDuration(time.Since(start)))
			verboseLogMu.Unlock()
		}
	}
	fmt.Fprintf(sys.Stderr, "[CMD] %s ", line)
	return func() {
		fmt.Fprintf(sys.Stderr, "(%s)\n", formatDuration(time.Since(start)))
		verboseLogMu.Unlock()
	}
}

// run executes a command and returns its trimmed stdout. On failure the
// command's stderr is attached to the returned *Error.
func run(op, dir, path string, verbose bool, args ...string) (string, error) {
	done := trace(verbose, false, path, args)
	defer done()

	cmd := sys.ExecCommand(path, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", newError(op, stderr.Bytes(), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// runInteractive executes a command connected to the terminal.
func runInteractive(op, dir, path string, verbose bool, args ...string) error {
	done := trace(verbose, true, path, args)
	defer done()

	cmd := sys.ExecCommand(path, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	cmd.Stdin = sys.Stdin
	cmd.Stdout = sys.Stderr
	cmd.Stderr = sys.Stderr
	if err := cmd.Run(); err != nil {
		return &Error{Op: op, Err: err}
	}
	return nil
}

package vcs

import "strings"

// Error wraps a failed git or gh invocation with its error output.
type Error struct {
	Op     string // Operation that failed (e.g., "push", "pr create")
	Output string // Trimmed stderr of the command
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Output != "" {
		return e.Op + ": " + e.Output
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, stderr []byte, err error) *Error {
	return &Error{Op: op, Output: strings.TrimSpace(string(stderr)), Err: err}
}

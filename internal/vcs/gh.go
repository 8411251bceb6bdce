package vcs

import (
	"errors"
	"strings"

	"gitpr/internal/sys"
)

// ErrGhNotFound is returned when the GitHub CLI is not installed.
var ErrGhNotFound = errors.New("'gh' command not found. Please install GitHub CLI")

// Gh runs GitHub CLI commands.
type Gh struct {
	Path    string
	Dir     string
	Verbose bool
}

// NewGh returns a Gh using the binary at path, or "gh" when path is empty.
func NewGh(path, dir string, verbose bool) *Gh {
	if path == "" {
		path = "gh"
	}
	return &Gh{Path: path, Dir: dir, Verbose: verbose}
}

// CheckAvailability verifies the gh binary can be found.
func (g *Gh) CheckAvailability() error {
	if _, err := sys.LookPath(g.Path); err != nil {
		return ErrGhNotFound
	}
	return nil
}

// Version returns the first line of "gh --version".
func (g *Gh) Version() (string, error) {
	out, err := run("gh --version", g.Dir, g.Path, g.Verbose, "--version")
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(out, "\n")
	return line, nil
}

// CreatePR runs "gh pr create" and returns the URL of the new pull request.
// extra is appended verbatim.
func (g *Gh) CreatePR(title, body string, extra []string) (string, error) {
	args := []string{"pr", "create", "--title", title, "--body", body}
	args = append(args, extra...)

	out, err := run("gh pr create", g.Dir, g.Path, g.Verbose, args...)
	if err != nil {
		return "", err
	}
	return ExtractURL(out), nil
}

// ExtractURL returns the last line of out that looks like a URL. gh may print
// warnings before it, so the whole output is returned only as a fallback.
func ExtractURL(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "https://") || strings.HasPrefix(line, "http://") {
			return line
		}
	}
	return strings.TrimSpace(out)
}

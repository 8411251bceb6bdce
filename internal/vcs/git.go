package vcs

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// LogFormat renders each commit as "hash (author, date)" followed by the
// subject and body wrapped at 78 columns with a 3 column indent.
const LogFormat = "%h (%aN, %ar)%n%w(78,3,3)%s%n%+b"

// Git runs git commands in a repository.
type Git struct {
	Path    string
	Dir     string
	Verbose bool
}

// NewGit returns a Git using the binary at path, or "git" when path is empty.
func NewGit(path, dir string, verbose bool) *Git {
	if path == "" {
		path = "git"
	}
	return &Git{Path: path, Dir: dir, Verbose: verbose}
}

// DefaultGitPath honours GIT_EXEC_PATH like git itself does.
func DefaultGitPath() string {
	if envPath := os.Getenv("GIT_EXEC_PATH"); envPath != "" {
		return filepath.Join(envPath, "git")
	}
	return "git"
}

// Run runs an arbitrary git command and returns its trimmed output.
func (g *Git) Run(args ...string) (string, error) {
	op := "git"
	if len(args) > 0 {
		op = "git " + args[0]
	}
	return run(op, g.Dir, g.Path, g.Verbose, args...)
}

// Version returns the first line of "git --version".
func (g *Git) Version() (string, error) {
	out, err := g.Run("--version")
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(out, "\n")
	return line, nil
}

// ConfigGet returns a config value, or "" when the key is not set.
func (g *Git) ConfigGet(key string) (string, error) {
	out, err := g.Run("config", "--get", key)
	if err != nil {
		// Exit status 1 means the key is missing.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return out, nil
}

// RemoteURL returns the URL configured for remote.
func (g *Git) RemoteURL(remote string) (string, error) {
	return g.ConfigGet("remote." + remote + ".url")
}

// CurrentBranch returns the short name of the checked out branch. It also
// works on a branch without commits.
func (g *Git) CurrentBranch() (string, error) {
	return g.Run("symbolic-ref", "--short", "HEAD")
}

// GitDir returns the absolute path of the repository's control directory.
func (g *Git) GitDir() (string, error) {
	return g.Run("rev-parse", "--absolute-git-dir")
}

// TopLevel returns the root of the working tree.
func (g *Git) TopLevel() (string, error) {
	return g.Run("rev-parse", "--show-toplevel")
}

// Editor returns the editor git itself would use for commit messages.
func (g *Git) Editor() (string, error) {
	return g.Run("var", "GIT_EDITOR")
}

// LastCommitMessage returns the full message of HEAD.
func (g *Git) LastCommitMessage() (string, error) {
	return g.Run("log", "-1", "--format=%B")
}

// RefExists reports whether ref resolves to a commit.
func (g *Git) RefExists(ref string) bool {
	_, err := g.Run("rev-parse", "--verify", "--quiet", ref+"^{commit}")
	return err == nil
}

// DefaultBranch returns the branch remote's HEAD points to, or "" if unknown.
func (g *Git) DefaultBranch(remote string) string {
	out, err := g.Run("symbolic-ref", "--short", "refs/remotes/"+remote+"/HEAD")
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(out, remote+"/")
}

// Log returns the commits on head that are not on base, skipping commits
// whose changes already exist on base.
func (g *Git) Log(base, head string) (string, error) {
	return g.Run("log", "--no-color", "--cherry-pick", "--right-only",
		"--format="+LogFormat, base+"..."+head)
}

// Push pushes branch to remote and sets it as upstream.
func (g *Git) Push(remote, branch string) error {
	return runInteractive("git push", g.Dir, g.Path, g.Verbose, "push", "--set-upstream", remote, branch)
}

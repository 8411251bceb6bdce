package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"gitpr/internal/editmsg"
	"gitpr/internal/sys"
	"gitpr/internal/ui"
)

// Repository is the git functionality the submitter relies on.
type Repository interface {
	editorSource
	baseResolver
	RemoteURL(remote string) (string, error)
	CurrentBranch() (string, error)
	GitDir() (string, error)
	TopLevel() (string, error)
	LastCommitMessage() (string, error)
	Log(base, head string) (string, error)
	Push(remote, branch string) error
}

// PullRequestCreator opens pull requests.
type PullRequestCreator interface {
	CheckAvailability() error
	CreatePR(title, body string, extra []string) (string, error)
}

// Options is the configuration of a single run. It is built once from flags,
// environment and config file and not modified afterwards.
type Options struct {
	Push    bool
	Copy    bool
	Open    bool
	Verbose bool

	// Editor overrides the editor resolution when set.
	Editor string
	// Forward is passed to "gh pr create" verbatim.
	Forward []string
}

// Submitter drives one pull request submission.
type Submitter struct {
	Opts Options
	Git  Repository
	Gh   PullRequestCreator

	// Out receives the pull request URL.
	Out io.Writer
	// Log receives progress messages.
	Log io.Writer

	Getenv func(string) string
	Edit   func(editor, path string) error
	Open   func(url string) error
	Copy   func(url string) error
}

// Run checks the branch, optionally pushes it, lets the user edit the
// message and creates the pull request. It returns the pull request URL.
//
// The edit buffer is removed on the way out unless the title was empty or gh
// failed; then it is kept and the next run starts from it.
func (s *Submitter) Run(ctx context.Context) (string, error) {
	branch, err := s.checkBranch()
	if err != nil {
		return "", err
	}

	if err := s.Gh.CheckAvailability(); err != nil {
		return "", err
	}

	if s.Opts.Push {
		if err := s.push(branch); err != nil {
			return "", err
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	buf, comment, err := s.prepareBuffer(branch)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := buf.Cleanup(); err != nil {
			fmt.Fprintf(s.Log, "warning: %v\n", err)
		}
	}()

	editor := ResolveEditor(s.Opts.Editor, s.Git, s.Getenv)
	if err := s.Edit(editor, buf.Path); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := buf.Read()
	if err != nil {
		return "", err
	}
	msg := editmsg.Parse(content, comment)
	if msg.Title == "" {
		buf.MarkRecoverable()
		return "", ErrEmptyTitle
	}

	spinner := ui.NewSpinner("Creating pull request...", s.Opts.Verbose)
	spinner.Start()
	url, err := s.Gh.CreatePR(msg.Title, msg.Body, s.Opts.Forward)
	spinner.Stop()
	if err != nil {
		buf.MarkRecoverable()
		return "", fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	fmt.Fprintln(s.Out, url)

	if s.Opts.Open {
		if err := s.Open(url); err != nil {
			return url, err
		}
	}
	if s.Opts.Copy {
		if err := s.Copy(url); err != nil {
			return url, err
		}
	}
	return url, nil
}

// checkBranch makes sure origin is on GitHub and the current branch is not
// a trunk branch. It returns the current branch.
func (s *Submitter) checkBranch() (string, error) {
	remote, err := s.Git.RemoteURL(DefaultRemote)
	if err != nil {
		return "", fmt.Errorf("failed to read the %s remote: %w", DefaultRemote, err)
	}
	if !strings.Contains(remote, GitHubHost) {
		return "", ErrNotGitHubRepo
	}

	branch, err := s.Git.CurrentBranch()
	if err != nil {
		return "", fmt.Errorf("failed to determine the current branch: %w", err)
	}
	if slices.Contains(protectedBranches, branch) {
		return "", fmt.Errorf("%w (%s)", ErrProtectedBranch, branch)
	}
	return branch, nil
}

func (s *Submitter) push(branch string) error {
	fmt.Fprintf(s.Log, "Pushing %s to %s...\n", branch, DefaultRemote)
	if err := s.Git.Push(DefaultRemote, branch); err != nil {
		return fmt.Errorf("%w: %v", ErrPushFailed, err)
	}
	return nil
}

// prepareBuffer writes the edit buffer, recovering a previous one if present.
func (s *Submitter) prepareBuffer(branch string) (*editmsg.Buffer, string, error) {
	configured, err := s.Git.ConfigGet("core.commentChar")
	if err != nil {
		return nil, "", fmt.Errorf("failed to read core.commentChar: %w", err)
	}
	comment, err := editmsg.ResolveCommentChar(configured, s.Git.LastCommitMessage)
	if err != nil {
		return nil, "", err
	}

	gitDir, err := s.Git.GitDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to locate the git directory: %w", err)
	}
	buf := editmsg.NewBuffer(filepath.Join(gitDir, editmsg.BufferFile))

	baseBranch, baseRef := ResolveBase(s.Git, s.Opts.Forward)
	log, err := s.Git.Log(baseRef, branch)
	if err != nil {
		// The history is informational only.
		fmt.Fprintf(s.Log, "warning: could not list commits for %s...%s: %v\n", baseRef, branch, err)
		log = ""
	}

	tmpl := editmsg.Template{
		CommentChar: comment,
		Base:        baseBranch,
		Head:        branch,
		Log:         log,
	}

	prTemplate := ""
	if !buf.Exists() {
		top, err := s.Git.TopLevel()
		if err != nil {
			return nil, "", fmt.Errorf("failed to locate the repository root: %w", err)
		}
		if prTemplate, err = FindPRTemplate(top); err != nil {
			return nil, "", fmt.Errorf("failed to read pull request template: %w", err)
		}
	}

	recovered, err := buf.Prepare(tmpl, prTemplate)
	if err != nil {
		return nil, "", err
	}
	if recovered {
		fmt.Fprintf(s.Log, "Resuming the message from the previous attempt (%s).\n", buf.Path)
	}
	return buf, comment, nil
}

// newSubmitter wires a Submitter to the real collaborators.
func newSubmitter(opts Options, git Repository, gh PullRequestCreator) *Submitter {
	return &Submitter{
		Opts:   opts,
		Git:    git,
		Gh:     gh,
		Out:    sys.Stdout,
		Log:    sys.Stderr,
		Getenv: getenv,
		Edit:   RunEditor,
		Open:   OpenURL,
		Copy:   CopyToClipboard,
	}
}

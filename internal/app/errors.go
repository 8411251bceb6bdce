package app

import "errors"

var (
	// ErrNotGitHubRepo indicates the origin remote is not hosted on GitHub.
	ErrNotGitHubRepo = errors.New("not a GitHub repository")

	// ErrProtectedBranch indicates an attempt to open a pull request from a trunk branch.
	ErrProtectedBranch = errors.New("cannot open a pull request from a protected branch, create a branch first")

	// ErrPushFailed indicates pushing the branch failed.
	ErrPushFailed = errors.New("push failed")

	// ErrEditorFailed indicates the editor exited with an error.
	ErrEditorFailed = errors.New("editor failed")

	// ErrEmptyTitle indicates the edited message has no title.
	ErrEmptyTitle = errors.New("aborting due to empty pull request title")

	// ErrSubmissionFailed indicates gh could not create the pull request.
	ErrSubmissionFailed = errors.New("failed to create pull request")

	// ErrUnsupportedPlatform indicates open/copy is not available on this OS.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// keepsBuffer reports whether err leaves the edit buffer for the next run.
func keepsBuffer(err error) bool {
	return errors.Is(err, ErrSubmissionFailed) || errors.Is(err, ErrEmptyTitle)
}

package app

// AppName is the display name used in help and version output.
const AppName = "git-pr"

// Flag names
const (
	FlagPush    = "push"
	FlagCopy    = "copy"
	FlagOpen    = "open"
	FlagVersion = "version"
	FlagHelp    = "help"
	FlagVerbose = "verbose"
)

// Environment variables
const (
	// EnvEditor overrides every other editor setting.
	EnvEditor = "GIT_PR_EDITOR"
)

const (
	// DefaultRemote is the remote pushed to and checked for GitHub.
	DefaultRemote = "origin"
	// GitHubHost must appear in the remote URL.
	GitHubHost = "github.com"
	// FallbackEditor is used when nothing else is configured.
	FallbackEditor = "vi"
)

// protectedBranches cannot be used as the head of a pull request.
var protectedBranches = []string{"master", "main"}

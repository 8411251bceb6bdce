package app

import "strings"

// baseResolver is the part of git needed to find the pull request base.
type baseResolver interface {
	DefaultBranch(remote string) string
	RefExists(ref string) bool
}

// BaseFromArgs returns the value of -B/--base in the arguments forwarded to
// gh, or "" if it is not given.
func BaseFromArgs(args []string) string {
	base := ""
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-B" || arg == "--base":
			if i+1 < len(args) {
				base = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "--base="):
			base = strings.TrimPrefix(arg, "--base=")
		case strings.HasPrefix(arg, "-B") && len(arg) > 2:
			base = strings.TrimPrefix(strings.TrimPrefix(arg, "-B"), "=")
		}
	}
	return base
}

// ResolveBase returns the base branch name and the ref the commit range is
// computed against. The remote-tracking branch is preferred so the log is
// not skewed by a stale local branch.
func ResolveBase(git baseResolver, forwarded []string) (branch, ref string) {
	branch = BaseFromArgs(forwarded)
	if branch == "" {
		branch = git.DefaultBranch(DefaultRemote)
	}
	if branch == "" {
		branch = "master"
		for _, candidate := range protectedBranches {
			if git.RefExists(DefaultRemote+"/"+candidate) || git.RefExists(candidate) {
				branch = candidate
			}
		}
	}

	ref = branch
	if remoteRef := DefaultRemote + "/" + branch; git.RefExists(remoteRef) {
		ref = remoteRef
	}
	return branch, ref
}

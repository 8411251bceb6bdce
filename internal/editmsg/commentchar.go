// Package editmsg builds, stores and parses the pull request edit buffer.
//
// The buffer follows the git commit message conventions: everything from the
// scissors line downwards is informational and discarded, the first line of
// what remains is the title and the rest is the body.
package editmsg

import (
	"errors"
	"strings"
)

const (
	// DefaultCommentChar is used when core.commentChar is not configured.
	DefaultCommentChar = "#"
	// AutoCommentChar asks for a character that no line of the last commit starts with.
	AutoCommentChar = "auto"
)

// CommentCandidates is the order in which characters are tried in auto mode.
var CommentCandidates = []string{"#", ";", "@", "!", "$", "%", "^", "&", "|", ":"}

// ErrCommentChar is returned when no comment character could be determined.
var ErrCommentChar = errors.New("unable to determine comment character")

// ResolveCommentChar turns the configured core.commentChar value into the
// character used for marker and commentary lines. lastMessage is only called
// in auto mode and should return the full message of the most recent commit.
func ResolveCommentChar(configured string, lastMessage func() (string, error)) (string, error) {
	configured = strings.TrimSpace(configured)

	var c string
	switch configured {
	case "":
		c = DefaultCommentChar
	case AutoCommentChar:
		msg := ""
		if lastMessage != nil {
			// A repository without commits has nothing to collide with.
			if out, err := lastMessage(); err == nil {
				msg = out
			}
		}
		c = PickCommentChar(msg)
	default:
		// git only honours the first character as well.
		c = string([]rune(configured)[:1])
	}

	if c == "" {
		return "", ErrCommentChar
	}
	return c, nil
}

// PickCommentChar returns the first candidate that no line of message starts
// with. When every candidate is taken the last one tried is returned.
func PickCommentChar(message string) string {
	lines := splitLines(message)

	var c string
	for _, c = range CommentCandidates {
		used := false
		for _, line := range lines {
			if strings.HasPrefix(line, c) {
				used = true
				break
			}
		}
		if !used {
			return c
		}
	}
	return c
}

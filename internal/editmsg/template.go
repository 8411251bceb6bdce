package editmsg

import (
	"fmt"
	"strings"
)

// Template holds everything rendered below the scissors line.
type Template struct {
	CommentChar string
	Base        string
	Head        string
	// Log is the pre-formatted commit history for Base...Head.
	Log string
}

// Render returns prepend followed by the scissors line, the help text and the
// commit history. prepend is kept verbatim apart from its trailing newlines.
func (t Template) Render(prepend string) string {
	c := t.CommentChar
	if c == "" {
		c = DefaultCommentChar
	}

	var sb strings.Builder
	if prepend != "" {
		sb.WriteString(strings.TrimRight(prepend, "\n"))
		sb.WriteString("\n\n")
	}
	sb.WriteString(Scissors(c) + "\n")
	sb.WriteString(c + " Do not modify or remove the line above.\n")
	sb.WriteString(c + " Everything below it will be ignored.\n")
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s Requesting a pull to %s from %s\n", c, t.Base, t.Head))
	sb.WriteString("\n")
	sb.WriteString(c + " Write a message for this pull request. The first block\n")
	sb.WriteString(c + " of text is the title and the rest is the description.\n")
	sb.WriteString("\n")
	sb.WriteString(c + " Changes:\n")
	sb.WriteString("\n")
	if log := strings.TrimRight(t.Log, "\n"); log != "" {
		sb.WriteString(log + "\n")
	}
	return sb.String()
}

// Initial is the content of a fresh buffer: two empty lines for the title and
// body, then the pull request template (if any) and the rendered help.
func (t Template) Initial(prTemplate string) string {
	return "\n\n" + t.Render(prTemplate)
}

// Recover regenerates the help section below the user's previous edits.
func (t Template) Recover(previous string) string {
	return t.Render(Format(previous, t.CommentChar))
}

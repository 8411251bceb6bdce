package editmsg

import (
	"strings"
)

// Message is the pull request content recovered from an edit buffer.
type Message struct {
	Title string
	Body  string
}

// Scissors returns the marker line for the given comment character.
func Scissors(commentChar string) string {
	return commentChar + " ------------------------ >8 ------------------------"
}

// Format drops the scissors line and everything after it, then removes the
// blank lines surrounding what is left. Blank lines in between are kept.
func Format(text, commentChar string) string {
	marker := Scissors(commentChar)

	var kept []string
	for _, line := range splitLines(text) {
		if line == marker {
			break
		}
		kept = append(kept, line)
	}

	return strings.Join(TrimBlankLines(kept), "\n")
}

// TrimBlankLines removes the leading and trailing runs of blank lines.
func TrimBlankLines(lines []string) []string {
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	end := len(lines)
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	return lines[start:end]
}

// Title returns the first line of formatted text.
func Title(formatted string) string {
	if formatted == "" {
		return ""
	}
	title, _, _ := strings.Cut(formatted, "\n")
	return title
}

// Body returns everything after the title with surrounding blank lines removed.
func Body(formatted string) string {
	lines := splitLines(formatted)
	if len(lines) <= 1 {
		return ""
	}
	return strings.Join(TrimBlankLines(lines[1:]), "\n")
}

// Parse formats text and splits it into title and body.
func Parse(text, commentChar string) Message {
	formatted := Format(text, commentChar)
	return Message{
		Title: Title(formatted),
		Body:  Body(formatted),
	}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

package editmsg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestTemplate() Template {
	return Template{
		CommentChar: "#",
		Base:        "main",
		Head:        "feature",
		Log:         "abc1234 (Jane Doe, 2 hours ago)\n   Add feature\n\n",
	}
}

func TestRenderLayout(t *testing.T) {
	got := newTestTemplate().Render("")

	want := strings.Join([]string{
		"# ------------------------ >8 ------------------------",
		"# Do not modify or remove the line above.",
		"# Everything below it will be ignored.",
		"",
		"# Requesting a pull to main from feature",
		"",
		"# Write a message for this pull request. The first block",
		"# of text is the title and the rest is the description.",
		"",
		"# Changes:",
		"",
		"abc1234 (Jane Doe, 2 hours ago)",
		"   Add feature",
		"",
	}, "\n")

	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderUsesCommentChar(t *testing.T) {
	tmpl := newTestTemplate()
	tmpl.CommentChar = ";"

	got := tmpl.Render("")
	if !strings.HasPrefix(got, Scissors(";")+"\n") {
		t.Errorf("Render() does not start with the ';' marker: %q", got)
	}
	if strings.Contains(got, "# ") {
		t.Errorf("Render() still uses '#': %q", got)
	}
}

func TestInitialParsesEmpty(t *testing.T) {
	content := newTestTemplate().Initial("")
	if !strings.HasPrefix(content, "\n\n"+Scissors("#")) {
		t.Errorf("Initial() = %q", content)
	}
	if msg := Parse(content, "#"); msg.Title != "" || msg.Body != "" {
		t.Errorf("untouched initial buffer parsed to %+v", msg)
	}
}

func TestInitialWithPullRequestTemplate(t *testing.T) {
	content := newTestTemplate().Initial("## Summary\n\n## Testing\n")

	msg := Parse(content, "#")
	if msg.Title != "## Summary" {
		t.Errorf("Title = %q", msg.Title)
	}
	if msg.Body != "## Testing" {
		t.Errorf("Body = %q", msg.Body)
	}
}

func TestRecoverKeepsPreviousEdits(t *testing.T) {
	tmpl := newTestTemplate()
	previous := "My PR\n\nDescription\n\n" + tmpl.Render("")

	got := tmpl.Recover(previous)
	if !strings.HasPrefix(got, "My PR\n\nDescription") {
		t.Fatalf("Recover() lost the previous edits: %q", got)
	}
	if strings.Count(got, Scissors("#")) != 1 {
		t.Errorf("Recover() should contain exactly one marker: %q", got)
	}

	msg := Parse(got, "#")
	if msg.Title != "My PR" || msg.Body != "Description" {
		t.Errorf("Parse(Recover()) = %+v", msg)
	}
}

func TestBufferPrepareAndCleanup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, BufferFile)
	tmpl := newTestTemplate()

	buf := NewBuffer(path)
	recovered, err := buf.Prepare(tmpl, "")
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if recovered {
		t.Error("fresh buffer reported as recovered")
	}
	if !buf.Exists() {
		t.Fatal("buffer file was not written")
	}

	if err := buf.Cleanup(); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if buf.Exists() {
		t.Error("buffer should be removed after Cleanup")
	}
	// A second cleanup on a missing file is fine.
	if err := buf.Cleanup(); err != nil {
		t.Errorf("Cleanup() on missing file error = %v", err)
	}
}

func TestBufferRecoveryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, BufferFile)
	tmpl := newTestTemplate()

	if err := os.WriteFile(path, []byte("My PR\n\nDescription"), 0o644); err != nil {
		t.Fatal(err)
	}

	buf := NewBuffer(path)
	recovered, err := buf.Prepare(tmpl, "ignored template")
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !recovered {
		t.Error("existing buffer not reported as recovered")
	}

	content, err := buf.Read()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(content, "My PR\n\nDescription") {
		t.Errorf("recovered buffer = %q", content)
	}
	if strings.Contains(content, "ignored template") {
		t.Error("pull request template must not be used on recovery")
	}

	buf.MarkRecoverable()
	if err := buf.Cleanup(); err != nil {
		t.Fatal(err)
	}
	if !buf.Exists() {
		t.Error("recoverable buffer was removed")
	}
}

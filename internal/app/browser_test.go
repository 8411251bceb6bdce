package app

import (
	"errors"
	"testing"

	"gitpr/internal/sys"
)

const testURL = "https://github.com/octo/repo/pull/9"

func setGOOS(t *testing.T, goos string) {
	t.Helper()
	prev := sys.GOOS
	sys.GOOS = goos
	t.Cleanup(func() { sys.GOOS = prev })
}

func TestOpenURLLinux(t *testing.T) {
	mockExec(t, "MOCK_EXPECT="+testURL)
	setGOOS(t, "linux")

	if err := OpenURL(testURL); err != nil {
		t.Errorf("OpenURL() error = %v", err)
	}
}

func TestCopyToClipboardLinux(t *testing.T) {
	mockExec(t, "MOCK_EXPECT="+testURL)
	setGOOS(t, "linux")

	if err := CopyToClipboard(testURL); err != nil {
		t.Errorf("CopyToClipboard() error = %v", err)
	}
}

func TestUnsupportedPlatform(t *testing.T) {
	mockExec(t)
	setGOOS(t, "plan9")

	if err := OpenURL(testURL); !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("OpenURL() error = %v, want ErrUnsupportedPlatform", err)
	}
	if err := CopyToClipboard(testURL); !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("CopyToClipboard() error = %v, want ErrUnsupportedPlatform", err)
	}
}

func TestRunEditor(t *testing.T) {
	mockExec(t, "MOCK_EXPECT=/tmp/PULLREQ_EDITMSG")

	if err := RunEditor("vim", "/tmp/PULLREQ_EDITMSG"); err != nil {
		t.Errorf("RunEditor() error = %v", err)
	}
	if err := RunEditor("vim", "/tmp/other"); !errors.Is(err, ErrEditorFailed) {
		t.Errorf("RunEditor() error = %v, want ErrEditorFailed", err)
	}
}

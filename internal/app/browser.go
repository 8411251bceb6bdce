package app

import (
	"fmt"
	"strings"

	"gitpr/internal/sys"
)

// OpenURL opens url in the default browser.
func OpenURL(url string) error {
	var name string
	switch sys.GOOS {
	case "darwin":
		name = "open"
	case "linux":
		name = "xdg-open"
	default:
		return fmt.Errorf("%w: cannot open URLs on %s", ErrUnsupportedPlatform, sys.GOOS)
	}

	cmd := sys.ExecCommand(name, url)
	cmd.Stderr = sys.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// CopyToClipboard puts url on the system clipboard.
func CopyToClipboard(url string) error {
	var name string
	var args []string
	switch sys.GOOS {
	case "darwin":
		name = "pbcopy"
	case "linux":
		name = "xclip"
		args = []string{"-selection", "clipboard"}
	default:
		return fmt.Errorf("%w: cannot copy to the clipboard on %s", ErrUnsupportedPlatform, sys.GOOS)
	}

	cmd := sys.ExecCommand(name, args...)
	cmd.Stdin = strings.NewReader(url)
	cmd.Stderr = sys.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

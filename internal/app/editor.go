package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"gitpr/internal/sys"
)

// editorSource is the part of git consulted when picking an editor.
type editorSource interface {
	Editor() (string, error)
	ConfigGet(key string) (string, error)
}

// ResolveEditor picks the editor command. Order: explicit override, the
// editor git reports, core.editor, $VISUAL/$EDITOR, then FallbackEditor.
func ResolveEditor(override string, git editorSource, getenv func(string) string) string {
	if override != "" {
		return override
	}
	if git != nil {
		if e, err := git.Editor(); err == nil && e != "" {
			return e
		}
		if e, err := git.ConfigGet("core.editor"); err == nil && e != "" {
			return e
		}
	}
	if getenv != nil {
		for _, key := range []string{"VISUAL", "EDITOR"} {
			if e := getenv(key); e != "" {
				return e
			}
		}
	}
	return FallbackEditor
}

// vimSettings makes vim treat the buffer like a commit message without
// hard-wrapping the description.
const vimSettings = `-c "set ft=gitcommit tw=0 wrap lbr"`

// EditorArgs returns extra arguments for editors known to benefit from them.
func EditorArgs(editor string) string {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return ""
	}
	switch filepath.Base(fields[0]) {
	case "vi", "vim", "nvim":
		return vimSettings
	case "gvim", "mvim":
		// The GUI variants fork unless told to stay in the foreground.
		return "-f " + vimSettings
	}
	return ""
}

// EditorInvocation is editor followed by its extra arguments.
func EditorInvocation(editor string) string {
	if args := EditorArgs(editor); args != "" {
		return editor + " " + args
	}
	return editor
}

// EditorCommandLine is the shell command line used to launch editor.
// The file name is passed as "$1" so it never needs quoting.
func EditorCommandLine(editor string) string {
	return EditorInvocation(editor) + ` "$@"`
}

// RunEditor opens path in editor and waits for it to exit. Like git, the
// editor value is interpreted by the shell so it may contain arguments.
func RunEditor(editor, path string) error {
	cmd := sys.ExecCommand("sh", "-c", EditorCommandLine(editor), editor, path)
	cmd.Stdin = sys.Stdin
	cmd.Stdout = sys.Stdout
	cmd.Stderr = sys.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: there was a problem with the editor '%s': %v", ErrEditorFailed, editor, err)
	}
	return nil
}

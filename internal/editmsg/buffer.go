package editmsg

import (
	"errors"
	"fmt"
	"os"
)

// BufferFile is the buffer's file name inside the git directory.
const BufferFile = "PULLREQ_EDITMSG"

// Buffer is the on-disk edit buffer. It survives a run only when marked
// recoverable, in which case the next run picks up the user's edits.
type Buffer struct {
	Path        string
	recoverable bool
}

// NewBuffer returns a Buffer stored at path.
func NewBuffer(path string) *Buffer {
	return &Buffer{Path: path}
}

// Exists reports whether a buffer from a previous run is present.
func (b *Buffer) Exists() bool {
	info, err := os.Stat(b.Path)
	return err == nil && !info.IsDir()
}

// Read returns the buffer content.
func (b *Buffer) Read() (string, error) {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", b.Path, err)
	}
	return string(data), nil
}

// Write replaces the buffer content.
func (b *Buffer) Write(content string) error {
	if err := os.WriteFile(b.Path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", b.Path, err)
	}
	return nil
}

// Prepare writes the content the editor is opened with. A leftover buffer is
// recovered: its formatted text is kept above a regenerated help section.
// It reports whether a previous buffer was recovered.
func (b *Buffer) Prepare(t Template, prTemplate string) (bool, error) {
	if !b.Exists() {
		return false, b.Write(t.Initial(prTemplate))
	}

	previous, err := b.Read()
	if err != nil {
		return false, err
	}
	return true, b.Write(t.Recover(previous))
}

// MarkRecoverable keeps the file on disk when Cleanup runs.
func (b *Buffer) MarkRecoverable() {
	b.recoverable = true
}

// Recoverable reports whether MarkRecoverable has been called.
func (b *Buffer) Recoverable() bool {
	return b.recoverable
}

// Cleanup removes the buffer unless it was marked recoverable.
func (b *Buffer) Cleanup() error {
	if b.recoverable {
		return nil
	}
	if err := os.Remove(b.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", b.Path, err)
	}
	return nil
}

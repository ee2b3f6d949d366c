// Package fsutil provides the filesystem primitives behind generation and
// publishing: text file writes with guaranteed trailing newlines, recursive
// directory copies, and directory moves with a cross-filesystem fallback.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile writes text to path, creating parent directories as needed.
// A trailing newline is appended if the content does not already end with
// one. An existing file at path is overwritten. Returns the number of
// bytes written.
func WriteFile(path, text string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("creating directory for %s: %w", path, err)
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return len(text), nil
}

// Move relocates the directory (or file) at src to dst. It tries a rename
// first; when that fails (typically across filesystems) it falls back to a
// recursive copy followed by removal of src.
func Move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	if info.IsDir() {
		if err := CopyDir(src, dst); err != nil {
			return fmt.Errorf("copying %s to %s: %w", src, dst, err)
		}
	} else {
		if err := copyFile(src, dst); err != nil {
			return fmt.Errorf("copying %s to %s: %w", src, dst, err)
		}
	}

	if err := os.RemoveAll(src); err != nil {
		return fmt.Errorf("removing %s after copy: %w", src, err)
	}
	return nil
}

// CopyDir recursively copies src to dst, preserving file modes.
// Symlinks and other special files are skipped.
func CopyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chmod(dst, info.Mode().Perm())
}

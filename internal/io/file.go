package ioutils

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// PadNumber renders a non-negative integer as a decimal string, left-padded
// with pad to at least width characters.
//
// If the natural digit count already meets or exceeds width, the full number
// is returned unpadded; significant digits are never truncated. A width of
// zero therefore always yields the plain decimal rendering.
//
// Example:
//
//	PadNumber(5, '0', 2)   // "05"
//	PadNumber(123, '0', 2) // "123"
func PadNumber(n int, pad rune, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat(string(pad), width-len(s)) + s
}

// SanitizeName makes a rendered filename safe to join onto a directory.
//
// Exactly two transformations are applied, in order:
//
//  1. Leading and trailing whitespace is trimmed.
//  2. Every path separator '/' is replaced with '-'.
//
// The separator substitution guarantees the rendered name cannot introduce
// unintended subdirectories. The sanitizer is intentionally minimal and does
// not strip other OS-reserved characters.
//
// Example:
//
//	SanitizeName("  Foo/Bar  ") // "Foo-Bar"
func SanitizeName(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), "/", "-")
}

// ShortenPath rewrites a path for display: a path under the current working
// directory is shown relative to ".", a path under the home directory is
// shown relative to "~". Paths under neither prefix are returned unchanged.
// The result is for human-readable output only, not for filesystem access.
func ShortenPath(path string) string {
	if wd, err := os.Getwd(); err == nil {
		if rel, ok := cutPathPrefix(path, wd); ok {
			return "." + string(os.PathSeparator) + rel
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		if rel, ok := cutPathPrefix(path, home); ok {
			return "~" + string(os.PathSeparator) + rel
		}
	}
	return path
}

// cutPathPrefix strips prefix from path when path is strictly inside it.
func cutPathPrefix(path, prefix string) (string, bool) {
	sep := string(os.PathSeparator)
	if !strings.HasPrefix(path, prefix+sep) {
		return "", false
	}
	return strings.TrimPrefix(path, prefix+sep), true
}

// EnsureDir creates a directory and all parent directories if they don't
// exist. Directories are created with mode 0755.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteFile writes data to a file with mode 0644, creating parent
// directories as needed.
func WriteFile(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AppendLine appends a single line to the file at path, creating the file
// (and its parent directories) if necessary. Used for the rename change log.
func AppendLine(path, line string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(line + "\n")
	return err
}

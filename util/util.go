// Package util holds small helpers shared by the commands and the download pipeline.
package util

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/laradl/laradl/filesystem"
	"golang.org/x/term"
)

var (
	// illegal covers path separators and the characters reserved by common filesystems.
	illegal    = regexp.MustCompile(`[\\/<>:"|?*\x00-\x1f]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// SanitizeFilename strips characters that cannot appear in a single path segment.
// Spaces and dots are preserved so "5. Introduction" stays readable.
func SanitizeFilename(filename string) string {
	filename = illegal.ReplaceAllString(filename, "")
	filename = whitespace.ReplaceAllString(filename, " ")
	return strings.TrimSpace(filename)
}

// SanitizeSegment sanitizes name for use as one directory level under a root.
// Names that sanitize to nothing or to dots only ("", ".", "..") would collapse or
// escape the level, so the first usable fallback is taken instead, then "_".
func SanitizeSegment(name string, fallbacks ...string) string {
	for _, candidate := range append([]string{name}, fallbacks...) {
		candidate = SanitizeFilename(candidate)
		if strings.Trim(candidate, ". ") != "" {
			return candidate
		}
	}
	return "_"
}

// Quantify formats count with the singular or plural noun.
func Quantify(count int, singular, plural string) string {
	noun := plural
	if count == 1 {
		noun = singular
	}
	return fmt.Sprintf("%d %s", count, noun)
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalSize returns the size of the terminal attached to stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// PrintErasable prints msg without a newline and returns a function blanking it out again.
func PrintErasable(msg string) (erase func()) {
	if !IsTerminal() {
		return func() {}
	}

	fmt.Print("\r" + msg)
	return func() {
		fmt.Print("\r" + strings.Repeat(" ", len(msg)) + "\r")
	}
}

// Ignore calls f and drops its error, for deferred Close calls.
func Ignore(f func() error) {
	_ = f()
}

// Delete removes path, recursively when it is a directory.
func Delete(path string) error {
	fs := filesystem.API()

	info, err := fs.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fs.Remove(path)
	}
	return fs.RemoveAll(path)
}

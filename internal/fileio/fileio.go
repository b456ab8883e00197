// Package fileio is the storage collaborator for the rewriter: read a whole
// file as an ordered line sequence, and overwrite it with a rewritten one.
package fileio

import (
	"fmt"
	"os"
	"strings"
)

// ReadLines reads the entire file into memory and splits it on newlines.
// A trailing newline produces a final empty element, so WriteLines
// round-trips the file byte-exactly.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.Split(string(data), "\n"), nil
}

// WriteLines joins the lines with newlines and overwrites the file in place.
//
// The overwrite is a plain truncate-and-write, not an atomic replace: a
// failure mid-write can leave the file partially written. Callers write only
// after the full pass has succeeded, so a processing failure never touches
// the original.
func WriteLines(path string, lines []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

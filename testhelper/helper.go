// Package testhelper holds helpers shared by package tests.
package testhelper

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var leadingTabs = regexp.MustCompile(`^\t+`)

// TrimIndent strips the indentation of the first non-blank line from src and
// turns the remaining leading tabs into two spaces each. The line holding the
// opening backquote is dropped. This lets YAML be written inline in tab
// indented test code.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) > 1 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	var indent string

	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			indent = line[:len(line)-len(strings.TrimLeft(line, "\t"))]
			break
		}
	}

	for i, line := range lines {
		line = strings.TrimPrefix(line, indent)
		lines[i] = leadingTabs.ReplaceAllStringFunc(line, func(tabs string) string {
			return strings.Repeat("  ", len(tabs))
		})
	}

	return strings.Join(lines, "\n")
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}

	return path
}

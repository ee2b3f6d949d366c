// Package license resolves a license identifier to its body text.
// Bodies are embedded at build time and do not include the copyright
// line; the caller prepends one.
package license

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed texts/*.txt
var textsFS embed.FS

// Resolve returns the body text for the given license identifier.
// It fails if the identifier is unknown.
func Resolve(id string) (string, error) {
	data, err := textsFS.ReadFile("texts/" + id + ".txt")
	if err != nil {
		return "", fmt.Errorf("unknown license %q (available: %s)", id, strings.Join(Available(), ", "))
	}
	return string(data), nil
}

// Available returns the known license identifiers, sorted.
func Available() []string {
	entries, err := textsFS.ReadDir("texts")
	if err != nil {
		return nil
	}

	var ids []string
	for _, entry := range entries {
		ids = append(ids, strings.TrimSuffix(entry.Name(), ".txt"))
	}
	sort.Strings(ids)
	return ids
}

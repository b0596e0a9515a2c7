package config

import (
	"fmt"
	"strings"
)

// OutputFormat specifies how a document is printed.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatJSON     OutputFormat = "json"
	FormatHTML     OutputFormat = "html"
	FormatTree     OutputFormat = "tree"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatJSON, FormatHTML, FormatTree:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a format name, accepting "md" as an alias for
// markdown. Matching is case-insensitive.
func ParseOutputFormat(s string) (OutputFormat, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "md" {
		return FormatMarkdown, nil
	}
	f := OutputFormat(name)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown output format %q; must be one of: markdown, json, html, tree", s)
	}
	return f, nil
}

package pretty

import (
	"strings"

	"github.com/yaklabco/gomdedit/pkg/textdiff"
)

// FormatDiff renders a line diff with colored "+ " and "- " lines.
func (s *Styles) FormatDiff(changes []textdiff.Change) string {
	if !textdiff.Changed(changes) {
		return s.Dim.Render("no changes") + "\n"
	}

	var builder strings.Builder
	for _, line := range strings.SplitAfter(textdiff.Unified(changes), "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(body, "+ "):
			builder.WriteString(s.DiffAdd.Render(body))
		case strings.HasPrefix(body, "- "):
			builder.WriteString(s.DiffRemove.Render(body))
		default:
			builder.WriteString(s.DiffContext.Render(body))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// FormatInlineDiff renders a word diff, coloring insertions and deletions.
func (s *Styles) FormatInlineDiff(changes []textdiff.Change) string {
	var builder strings.Builder
	for _, c := range changes {
		switch c.Op {
		case textdiff.Insert:
			builder.WriteString(s.DiffAdd.Render("{+" + c.Text + "+}"))
		case textdiff.Delete:
			builder.WriteString(s.DiffRemove.Render("[-" + c.Text + "-]"))
		case textdiff.Equal:
			builder.WriteString(c.Text)
		}
	}
	return builder.String()
}

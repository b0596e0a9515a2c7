// Package textdiff compares markdown before and after an edit.
package textdiff

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of a change.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "equal"
	}
}

// Change is one run of equal, inserted or deleted text.
type Change struct {
	Op   Op
	Text string
}

// Diff returns a character diff of before and after, cleaned up so that
// changes align with word boundaries where possible.
func Diff(before, after string) []Change {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return convert(diffs)
}

// Lines returns a line diff of before and after. Each change holds whole
// lines including their trailing newline.
func Lines(before, after string) []Change {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	return convert(dmp.DiffCharsToLines(diffs, lines))
}

func convert(diffs []diffmatchpatch.Diff) []Change {
	out := make([]Change, 0, len(diffs))
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = Insert
		case diffmatchpatch.DiffDelete:
			op = Delete
		case diffmatchpatch.DiffEqual:
			op = Equal
		}
		out = append(out, Change{Op: op, Text: d.Text})
	}
	return out
}

// Changed reports whether any change is an insertion or deletion.
func Changed(changes []Change) bool {
	for _, c := range changes {
		if c.Op != Equal {
			return true
		}
	}
	return false
}

// Stats counts inserted and deleted characters.
func Stats(changes []Change) (int, int) {
	var inserted, deleted int
	for _, c := range changes {
		switch c.Op {
		case Insert:
			inserted += utf8.RuneCountInString(c.Text)
		case Delete:
			deleted += utf8.RuneCountInString(c.Text)
		case Equal:
		}
	}
	return inserted, deleted
}

// Inline renders changes word-diff style: deletions as [-text-] and
// insertions as {+text+}.
func Inline(changes []Change) string {
	var sb strings.Builder
	for _, c := range changes {
		switch c.Op {
		case Insert:
			sb.WriteString("{+" + c.Text + "+}")
		case Delete:
			sb.WriteString("[-" + c.Text + "-]")
		case Equal:
			sb.WriteString(c.Text)
		}
	}
	return sb.String()
}

// Unified renders a line diff with "+ ", "- " and "  " prefixes.
func Unified(changes []Change) string {
	var sb strings.Builder
	for _, c := range changes {
		prefix := "  "
		switch c.Op {
		case Insert:
			prefix = "+ "
		case Delete:
			prefix = "- "
		case Equal:
		}
		for _, line := range strings.SplitAfter(c.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

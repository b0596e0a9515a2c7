package pretty

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/yaklabco/gomdedit/pkg/doctree"
)

// treeIndentWidth approximates the columns taken by one level of enumerator.
const treeIndentWidth = 4

// TreeOptions controls FormatTree output.
type TreeOptions struct {
	// Ranges appends each node's [start, end] position range.
	Ranges bool

	// Cursor highlights the nodes whose closed range contains it.
	Cursor *int

	// Width truncates text previews; 0 disables truncation.
	Width int
}

// FormatTree renders the document as an indented tree, one node per line.
func (s *Styles) FormatTree(doc *doctree.Doc, opts TreeOptions) string {
	if doc == nil {
		doc = doctree.Empty()
	}

	root := tree.Root(s.Kind.Render("doc") + s.Range.Render(fmt.Sprintf(" size=%d", doc.Size()))).
		EnumeratorStyle(s.Enumerator)

	for i, n := range doc.Content() {
		root.Child(s.treeNode(doc, n, doctree.Path{i}, opts))
	}

	return root.String() + "\n"
}

// treeNode returns a leaf label, or a subtree when n has children.
func (s *Styles) treeNode(doc *doctree.Doc, n *doctree.Node, path doctree.Path, opts TreeOptions) any {
	label := s.nodeLabel(doc, n, path, opts)
	if len(n.Children) == 0 {
		return label
	}

	sub := tree.Root(label).EnumeratorStyle(s.Enumerator)
	for i, c := range n.Children {
		sub.Child(s.treeNode(doc, c, path.Child(i), opts))
	}
	return sub
}

func (s *Styles) nodeLabel(doc *doctree.Doc, n *doctree.Node, path doctree.Path, opts TreeOptions) string {
	parts := []string{s.Kind.Render(n.Kind.String())}

	if attrs := formatAttrs(n.Attrs); attrs != "" {
		parts = append(parts, s.Attr.Render(attrs))
	}

	if n.Kind == doctree.KindText {
		width := 0
		if opts.Width > 0 {
			width = max(opts.Width-treeIndentWidth*len(path), minPreviewWidth)
		}
		parts = append(parts, s.Text.Render(truncateString(strconv.Quote(n.Text), width)))
		if len(n.Marks) > 0 {
			parts = append(parts, s.Mark.Render(formatMarks(n.Marks)))
		}
	}

	start, end, _ := doc.Range(path)
	if opts.Ranges {
		parts = append(parts, s.Range.Render(fmt.Sprintf("[%d,%d]", start, end)))
	}

	label := strings.Join(parts, " ")
	if opts.Cursor != nil && *opts.Cursor >= start && *opts.Cursor <= end {
		label = s.Active.Render("* ") + label
	}
	return label
}

// formatAttrs renders attributes as sorted key=value pairs.
func formatAttrs(attrs map[string]any) string {
	if len(attrs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		v := attrs[k]
		if str, ok := v.(string); ok {
			if str == "" {
				continue
			}
			v = strconv.Quote(str)
		}
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(pairs, " ")
}

// formatMarks renders marks in array order, e.g. "(bold, link href=u)".
func formatMarks(marks []doctree.Mark) string {
	names := make([]string, 0, len(marks))
	for _, m := range marks {
		name := string(m.Type)
		if href := m.Attr("href"); href != "" {
			name += " href=" + href
		}
		names = append(names, name)
	}
	return "(" + strings.Join(names, ", ") + ")"
}

package goldmark

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/gomdedit/pkg/doctree"
)

// mapper converts a goldmark AST into doctree nodes.
type mapper struct {
	content []byte
	logger  *log.Logger
	dropped int
}

// newMapper creates a new mapper for the given content.
func newMapper(content []byte, logger *log.Logger) *mapper {
	return &mapper{content: content, logger: logger}
}

// mapDocument converts the top-level goldmark blocks.
func (m *mapper) mapDocument(gmDoc ast.Node) []*doctree.Node {
	return m.mapBlocks(gmDoc)
}

func (m *mapper) mapBlocks(gmParent ast.Node) []*doctree.Node {
	var nodes []*doctree.Node
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		nodes = append(nodes, m.mapBlock(child)...)
	}
	return nodes
}

// mapBlock converts a single goldmark block. Most blocks map to one node;
// tables expand to a paragraph per row and raw HTML is dropped.
func (m *mapper) mapBlock(gmNode ast.Node) []*doctree.Node {
	switch gmn := gmNode.(type) {
	case *ast.Heading:
		return []*doctree.Node{doctree.NewHeading(gmn.Level, m.mapInlines(gmn, nil)...)}

	case *ast.Paragraph, *ast.TextBlock:
		return []*doctree.Node{doctree.NewParagraph(m.mapInlines(gmn, nil)...)}

	case *ast.List:
		return []*doctree.Node{m.mapList(gmn)}

	case *ast.Blockquote:
		return []*doctree.Node{doctree.NewBlockquote(m.quoteLines(gmn)...)}

	case *ast.FencedCodeBlock:
		return []*doctree.Node{doctree.NewCodeBlock(string(gmn.Language(m.content)), m.codeText(gmn))}

	case *ast.CodeBlock:
		return []*doctree.Node{doctree.NewCodeBlock("", m.codeText(gmn))}

	case *ast.ThematicBreak:
		return []*doctree.Node{doctree.NewHorizontalRule()}

	case *east.Table:
		return m.mapTable(gmn)

	default:
		m.dropped++
		m.logger.Debug("dropped block", "kind", gmNode.Kind().String())
		return nil
	}
}

// mapList converts a goldmark List. Each item keeps the inline content of
// its paragraphs; nested lists and code blocks stay as block children.
func (m *mapper) mapList(list *ast.List) *doctree.Node {
	var items []*doctree.Node
	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		if item, ok := child.(*ast.ListItem); ok {
			items = append(items, m.mapListItem(item))
		}
	}
	if list.IsOrdered() {
		return doctree.NewOrderedList(items...)
	}
	return doctree.NewBulletList(items...)
}

func (m *mapper) mapListItem(item *ast.ListItem) *doctree.Node {
	var children []*doctree.Node
	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			if len(children) > 0 && !children[len(children)-1].Kind.IsBlock() {
				children = append(children, doctree.NewText(" "))
			}
			children = append(children, m.mapInlines(child, nil)...)
		default:
			children = append(children, m.mapBlock(child)...)
		}
	}
	return doctree.NewListItem(mergeText(children)...)
}

// quoteLines flattens a blockquote into one paragraph per source line.
// Nested constructs contribute their lines as plain paragraphs.
func (m *mapper) quoteLines(gmParent ast.Node) []*doctree.Node {
	var paras []*doctree.Node
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		switch gmn := child.(type) {
		case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
			for _, line := range splitSoftBreaks(m.mapInlinesKeepBreaks(gmn)) {
				paras = append(paras, doctree.NewParagraph(mergeText(line)...))
			}
		case *ast.Blockquote:
			paras = append(paras, m.quoteLines(gmn)...)
		case *ast.List:
			for item := gmn.FirstChild(); item != nil; item = item.NextSibling() {
				paras = append(paras, m.quoteLines(item)...)
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			for _, line := range strings.Split(m.codeText(gmn), "\n") {
				paras = append(paras, doctree.NewParagraph(textOrNothing(line)...))
			}
		case *ast.ThematicBreak:
			paras = append(paras, doctree.NewParagraph(doctree.NewText("---")))
		default:
			m.dropped++
		}
	}
	return paras
}

func (m *mapper) codeText(gmNode ast.Node) string {
	var buf bytes.Buffer
	lines := gmNode.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		buf.Write(seg.Value(m.content))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// mapTable renders each GFM table row as a paragraph of cells separated by
// " | ".
func (m *mapper) mapTable(table *east.Table) []*doctree.Node {
	var rows []*doctree.Node
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var inlines []*doctree.Node
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if len(inlines) > 0 {
				inlines = append(inlines, doctree.NewText(" | "))
			}
			inlines = append(inlines, m.mapInlines(cell, nil)...)
		}
		rows = append(rows, doctree.NewParagraph(mergeText(inlines)...))
	}
	return rows
}

// lineBreak marks the end of a source line inside inline content.
//
//nolint:gochecknoglobals // Sentinel compared by identity.
var lineBreak = doctree.NewText("\n")

// mapInlines converts the inline children of gmParent. Line breaks become
// spaces and adjacent text with equal marks is merged.
func (m *mapper) mapInlines(gmParent ast.Node, marks []doctree.Mark) []*doctree.Node {
	var out []*doctree.Node
	m.collectInlines(gmParent, marks, &out)
	for i, n := range out {
		if n == lineBreak {
			out[i] = doctree.NewText(" ")
		}
	}
	return mergeText(out)
}

// mapInlinesKeepBreaks is mapInlines without merging, leaving lineBreak
// sentinels in place for splitSoftBreaks.
func (m *mapper) mapInlinesKeepBreaks(gmParent ast.Node) []*doctree.Node {
	var out []*doctree.Node
	m.collectInlines(gmParent, nil, &out)
	return out
}

func (m *mapper) collectInlines(gmParent ast.Node, marks []doctree.Mark, out *[]*doctree.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		m.mapInline(child, marks, out)
	}
}

// mapInline flattens nested inline formatting into mark sets on text nodes.
func (m *mapper) mapInline(gmNode ast.Node, marks []doctree.Mark, out *[]*doctree.Node) {
	switch gmn := gmNode.(type) {
	case *ast.Text:
		*out = append(*out, doctree.NewText(string(gmn.Segment.Value(m.content)), marks...))
		if gmn.SoftLineBreak() || gmn.HardLineBreak() {
			*out = append(*out, lineBreak)
		}

	case *ast.String:
		*out = append(*out, doctree.NewText(string(gmn.Value), marks...))

	case *ast.Emphasis:
		mark := doctree.Italic()
		if gmn.Level >= 2 {
			mark = doctree.Bold()
		}
		m.collectInlines(gmn, withMark(marks, mark), out)

	case *ast.CodeSpan:
		*out = append(*out, doctree.NewText(m.plainText(gmn), withMark(marks, doctree.Code())...))

	case *ast.Link:
		m.collectInlines(gmn, withMark(marks, doctree.Link(string(gmn.Destination), string(gmn.Title))), out)

	case *ast.AutoLink:
		link := doctree.Link(string(gmn.URL(m.content)), "")
		*out = append(*out, doctree.NewText(string(gmn.Label(m.content)), withMark(marks, link)...))

	case *ast.Image:
		*out = append(*out, doctree.NewImage(string(gmn.Destination), m.plainText(gmn), string(gmn.Title)))

	case *ast.RawHTML:
		var buf bytes.Buffer
		for i := range gmn.Segments.Len() {
			seg := gmn.Segments.At(i)
			buf.Write(seg.Value(m.content))
		}
		*out = append(*out, doctree.NewText(buf.String(), marks...))

	case *east.Strikethrough:
		m.collectInlines(gmn, withMark(marks, doctree.Strikethrough()), out)

	case *east.TaskCheckBox:
		box := "[ ] "
		if gmn.IsChecked {
			box = "[x] "
		}
		*out = append(*out, doctree.NewText(box, marks...))

	default:
		m.collectInlines(gmNode, marks, out)
	}
}

// plainText concatenates the text beneath gmNode, ignoring formatting.
func (m *mapper) plainText(gmNode ast.Node) string {
	var sb strings.Builder
	_ = ast.Walk(gmNode, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(m.content))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// withMark returns marks plus mark without aliasing the caller's slice.
func withMark(marks []doctree.Mark, mark doctree.Mark) []doctree.Mark {
	out := make([]doctree.Mark, 0, len(marks)+1)
	out = append(out, marks...)
	return append(out, mark)
}

// splitSoftBreaks cuts inline content at lineBreak sentinels.
func splitSoftBreaks(nodes []*doctree.Node) [][]*doctree.Node {
	var lines [][]*doctree.Node
	var line []*doctree.Node
	for _, n := range nodes {
		if n == lineBreak {
			lines = append(lines, line)
			line = nil
			continue
		}
		line = append(line, n)
	}
	if len(line) == 0 && len(lines) > 0 {
		return lines
	}
	return append(lines, line)
}

// mergeText joins adjacent text nodes carrying equal mark sets and drops
// empty text.
func mergeText(nodes []*doctree.Node) []*doctree.Node {
	out := make([]*doctree.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.IsText() && n.Text == "" {
			continue
		}
		if len(out) > 0 {
			prev := out[len(out)-1]
			if prev.IsText() && n.IsText() && prev.MarkSet().Equal(n.MarkSet()) {
				merged := prev.Clone()
				merged.Text += n.Text
				out[len(out)-1] = merged
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func textOrNothing(s string) []*doctree.Node {
	if s == "" {
		return nil
	}
	return []*doctree.Node{doctree.NewText(s)}
}

package markdown

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/doctree"
)

// Serialize renders a document back into the markdown accepted by Parse.
// Blocks are separated by a blank line.
func Serialize(doc *doctree.Doc) string {
	s := serializer{}
	blocks := make([]string, 0, doc.ChildCount())
	for i, n := range doc.Content() {
		out, err := doctree.Dispatch[string](n, doctree.Path{i}, s)
		if err != nil {
			continue
		}
		blocks = append(blocks, out)
	}
	return strings.Join(blocks, "\n\n")
}

// serializer produces the markdown source of each node kind.
type serializer struct{}

func (s serializer) inline(nodes []*doctree.Node, path doctree.Path) string {
	var sb strings.Builder
	for i, n := range nodes {
		out, err := doctree.Dispatch[string](n, path.Child(i), s)
		if err != nil {
			continue
		}
		if n.Kind.IsBlock() {
			// Nested blocks inside list items come from the goldmark flavor.
			sb.WriteString("\n" + indent(out, "  "))
			continue
		}
		sb.WriteString(out)
	}
	return sb.String()
}

func (serializer) Text(n *doctree.Node, _ doctree.Path) string {
	out := n.Text
	for _, m := range n.Marks {
		out = wrapMark(m, out)
	}
	return out
}

func wrapMark(m doctree.Mark, text string) string {
	switch m.Type {
	case doctree.MarkBold:
		return "**" + text + "**"
	case doctree.MarkItalic:
		return "*" + text + "*"
	case doctree.MarkStrikethrough:
		return "~~" + text + "~~"
	case doctree.MarkCode:
		return "`" + text + "`"
	case doctree.MarkLink:
		return "[" + text + "](" + target(m.Attr("href"), m.Attr("title")) + ")"
	default:
		return text
	}
}

func target(url, title string) string {
	if title == "" {
		return url
	}
	return url + " " + strconv.Quote(title)
}

func (s serializer) Paragraph(n *doctree.Node, path doctree.Path) string {
	return s.inline(n.Children, path)
}

func (s serializer) Heading(n *doctree.Node, path doctree.Path) string {
	return strings.Repeat("#", n.Level()) + " " + s.inline(n.Children, path)
}

func (serializer) CodeBlock(n *doctree.Node, _ doctree.Path) string {
	body := n.TextContent()
	if body != "" {
		body += "\n"
	}
	return codeFencePrefix + n.Language() + "\n" + body + codeFencePrefix
}

func (s serializer) Blockquote(n *doctree.Node, path doctree.Path) string {
	lines := make([]string, len(n.Children))
	for i, p := range n.Children {
		lines[i] = strings.TrimRight("> "+s.inline(p.Children, path.Child(i)), " ")
	}
	return strings.Join(lines, "\n")
}

func (s serializer) ListItem(n *doctree.Node, path doctree.Path) string {
	return s.inline(n.Children, path)
}

func (s serializer) OrderedList(n *doctree.Node, path doctree.Path) string {
	return s.list(n, path, func(i int) string { return strconv.Itoa(i+1) + ". " })
}

func (s serializer) BulletList(n *doctree.Node, path doctree.Path) string {
	return s.list(n, path, func(int) string { return "- " })
}

func (s serializer) list(n *doctree.Node, path doctree.Path, marker func(int) string) string {
	lines := make([]string, len(n.Children))
	for i, item := range n.Children {
		lines[i] = marker(i) + s.ListItem(item, path.Child(i))
	}
	return strings.Join(lines, "\n")
}

func (serializer) Image(n *doctree.Node, _ doctree.Path) string {
	return "![" + n.AttrString(doctree.AttrAlt) + "](" +
		target(n.AttrString(doctree.AttrSrc), n.AttrString(doctree.AttrTitle)) + ")"
}

func (serializer) HorizontalRule(*doctree.Node, doctree.Path) string {
	return "---"
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

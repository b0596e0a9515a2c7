package render

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/doctree"
	"github.com/yaklabco/gomdedit/pkg/langdetect"
)

// pass draws one node into parent. It implements doctree.Visitor so that a
// new node kind fails to compile until it has a renderer.
type pass struct {
	r      *Renderer
	parent Element
}

var _ doctree.Visitor[Element] = (*pass)(nil)

func (p *pass) element(tag string) Element {
	el := p.r.host.CreateElement(tag)
	p.parent.AppendChild(el)
	return el
}

// Text draws a text run wrapped in one element per mark, the first mark
// innermost. Mark delimiters are owned by the text node.
func (p *pass) Text(n *doctree.Node, path doctree.Path) Element {
	el := p.r.host.CreateText(n.Text)
	for _, m := range n.Marks {
		wrapper := p.r.host.CreateElement(markTag(m.Type))
		if m.Type == doctree.MarkLink {
			wrapper.SetAttribute("href", m.Attr("href"))
			if title := m.Attr("title"); title != "" {
				wrapper.SetAttribute("title", title)
			}
		}
		open, closing := markSyntax(m)
		p.r.syntaxSpan(wrapper, open, path)
		wrapper.AppendChild(el)
		p.r.syntaxSpan(wrapper, closing, path)
		el = wrapper
	}
	p.parent.AppendChild(el)
	return el
}

func markTag(t doctree.MarkType) string {
	switch t {
	case doctree.MarkBold:
		return "strong"
	case doctree.MarkItalic:
		return "em"
	case doctree.MarkCode:
		return "code"
	case doctree.MarkStrikethrough:
		return "del"
	case doctree.MarkLink:
		return "a"
	default:
		return "span"
	}
}

func markSyntax(m doctree.Mark) (string, string) {
	switch m.Type {
	case doctree.MarkBold:
		return "**", "**"
	case doctree.MarkItalic:
		return "*", "*"
	case doctree.MarkCode:
		return "`", "`"
	case doctree.MarkStrikethrough:
		return "~~", "~~"
	case doctree.MarkLink:
		return "[", "](" + linkTarget(m.Attr("href"), m.Attr("title")) + ")"
	default:
		return "", ""
	}
}

func linkTarget(href, title string) string {
	if title == "" {
		return href
	}
	return href + " " + strconv.Quote(title)
}

func (p *pass) Paragraph(n *doctree.Node, path doctree.Path) Element {
	el := p.element("p")
	p.r.renderChildren(el, n, path)
	return el
}

func (p *pass) Heading(n *doctree.Node, path doctree.Path) Element {
	level := max(n.Level(), 1)
	el := p.element("h" + strconv.Itoa(level))
	p.r.syntaxSpan(el, strings.Repeat("#", level)+" ", path)
	p.r.renderChildren(el, n, path)
	return el
}

// CodeBlock draws the fences as syntax around a code element.
func (p *pass) CodeBlock(n *doctree.Node, path doctree.Path) Element {
	pre := p.element("pre")
	p.r.syntaxSpan(pre, "```"+n.Language(), path)

	code := p.r.host.CreateElement("code")
	if lang := p.r.codeLanguage(n); lang != "" {
		code.AddClass("language-" + lang)
		code.SetAttribute("data-language", langdetect.Canonical(lang))
	}
	pre.AppendChild(code)
	p.r.renderChildren(code, n, path)

	p.r.syntaxSpan(pre, "```", path)
	return pre
}

// codeLanguage returns the declared language or, when detection is on, a
// guess for unlabeled blocks.
func (r *Renderer) codeLanguage(n *doctree.Node) string {
	if lang := n.Language(); lang != "" {
		return lang
	}
	if !r.detectLanguage {
		return ""
	}
	lang, ok := langdetect.Guess(n.TextContent())
	if !ok {
		return ""
	}
	return lang
}

// Blockquote draws each quoted line as a paragraph with its own "> " prefix.
func (p *pass) Blockquote(n *doctree.Node, path doctree.Path) Element {
	quote := p.element("blockquote")
	for i, child := range n.Children {
		childPath := path.Child(i)
		if child.Kind != doctree.KindParagraph {
			p.r.renderNode(quote, child, childPath)
			continue
		}
		line := p.r.host.CreateElement("p")
		quote.AppendChild(line)
		p.r.syntaxSpan(line, "> ", childPath)
		p.r.renderChildren(line, child, childPath)
		p.r.elements[childPath.String()] = line
	}
	return quote
}

func (p *pass) ListItem(n *doctree.Node, path doctree.Path) Element {
	li := p.element("li")
	p.r.syntaxSpan(li, p.r.listMarker(path), path)
	p.r.renderChildren(li, n, path)
	return li
}

// listMarker returns the source marker for the item at path.
func (r *Renderer) listMarker(path doctree.Path) string {
	parent := r.doc.NodeByPath(path.Parent())
	if parent != nil && parent.Kind == doctree.KindOrderedList {
		return strconv.Itoa(path.Index()+1) + ". "
	}
	return "- "
}

func (p *pass) OrderedList(n *doctree.Node, path doctree.Path) Element {
	el := p.element("ol")
	p.r.renderChildren(el, n, path)
	return el
}

func (p *pass) BulletList(n *doctree.Node, path doctree.Path) Element {
	el := p.element("ul")
	p.r.renderChildren(el, n, path)
	return el
}

// Image draws the raw markdown as syntax followed by the img element.
func (p *pass) Image(n *doctree.Node, path doctree.Path) Element {
	src := n.AttrString(doctree.AttrSrc)
	alt := n.AttrString(doctree.AttrAlt)
	title := n.AttrString(doctree.AttrTitle)

	p.r.syntaxSpan(p.parent, "!["+alt+"]("+linkTarget(src, title)+")", path)

	img := p.element("img")
	img.SetAttribute("src", src)
	img.SetAttribute("alt", alt)
	if title != "" {
		img.SetAttribute("title", title)
	}
	return img
}

func (p *pass) HorizontalRule(_ *doctree.Node, path doctree.Path) Element {
	p.r.syntaxSpan(p.parent, "---", path)
	return p.element("hr")
}

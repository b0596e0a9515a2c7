package doctree

import (
	"maps"
	"reflect"
	"strings"
	"unicode/utf8"
)

// Attribute keys used by the built-in kinds.
const (
	AttrLevel    = "level"
	AttrLanguage = "language"
	AttrSrc      = "src"
	AttrAlt      = "alt"
	AttrTitle    = "title"
)

// Node is a single node in the document tree.
//
// Text nodes carry Text and optionally Marks. Image and horizontal rule nodes
// carry neither text nor children. All other kinds carry Children.
// Nodes reachable from a Doc must be treated as read-only; use the Doc
// mutation methods, which return a new Doc.
type Node struct {
	Kind     Kind
	Text     string
	Children []*Node
	Attrs    map[string]any
	Marks    []Mark
}

// NewText creates a text node. Duplicate marks are dropped.
func NewText(text string, marks ...Mark) *Node {
	n := &Node{Kind: KindText, Text: text}
	if len(marks) > 0 {
		n.Marks = NewMarkSet(marks...).Marks()
	}
	return n
}

// NewParagraph creates a paragraph holding inline children.
func NewParagraph(children ...*Node) *Node {
	return newContainer(KindParagraph, children)
}

// NewHeading creates a heading. The level is clamped to [1,6].
func NewHeading(level int, children ...*Node) *Node {
	n := newContainer(KindHeading, children)
	n.Attrs = map[string]any{AttrLevel: clampLevel(level)}
	return n
}

// NewCodeBlock creates a code block holding code verbatim in a single text child.
func NewCodeBlock(language, code string) *Node {
	n := newContainer(KindCodeBlock, nil)
	if language != "" {
		n.Attrs = map[string]any{AttrLanguage: language}
	}
	if code != "" {
		n.Children = []*Node{NewText(code)}
	}
	return n
}

// NewBlockquote creates a blockquote, one paragraph per quoted line.
func NewBlockquote(paragraphs ...*Node) *Node {
	return newContainer(KindBlockquote, paragraphs)
}

// NewListItem creates a list item.
func NewListItem(children ...*Node) *Node {
	return newContainer(KindListItem, children)
}

// NewOrderedList creates an ordered list of items.
func NewOrderedList(items ...*Node) *Node {
	return newContainer(KindOrderedList, items)
}

// NewBulletList creates a bullet list of items.
func NewBulletList(items ...*Node) *Node {
	return newContainer(KindBulletList, items)
}

// NewImage creates an image node.
func NewImage(src, alt, title string) *Node {
	return &Node{
		Kind:  KindImage,
		Attrs: map[string]any{AttrSrc: src, AttrAlt: alt, AttrTitle: title},
	}
}

// NewHorizontalRule creates a thematic break.
func NewHorizontalRule() *Node {
	return &Node{Kind: KindHorizontalRule}
}

func newContainer(kind Kind, children []*Node) *Node {
	n := &Node{Kind: kind}
	if len(children) > 0 {
		n.Children = make([]*Node, 0, len(children))
		for _, c := range children {
			if c != nil {
				n.Children = append(n.Children, c)
			}
		}
	}
	return n
}

func clampLevel(level int) int {
	return min(max(level, 1), 6)
}

// IsText returns true for text nodes.
func (n *Node) IsText() bool {
	return n != nil && n.Kind == KindText
}

// Size returns the width of the node in the position scheme:
// rune count for text, sum of children for containers, 0 for leaves.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	if n.Kind == KindText {
		return utf8.RuneCountInString(n.Text)
	}
	size := 0
	for _, c := range n.Children {
		size += c.Size()
	}
	return size
}

// TextContent concatenates the text of all descendants.
// Adjacent block children are separated by a newline.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Kind == KindText {
		return n.Text
	}
	var sb strings.Builder
	writeTextContent(&sb, n.Children)
	return sb.String()
}

func writeTextContent(sb *strings.Builder, nodes []*Node) {
	for i, c := range nodes {
		if i > 0 && (c.Kind.IsBlock() || nodes[i-1].Kind.IsBlock()) {
			sb.WriteByte('\n')
		}
		if c.Kind == KindText {
			sb.WriteString(c.Text)
			continue
		}
		writeTextContent(sb, c.Children)
	}
}

// Level returns the heading level, or 0 for other kinds.
func (n *Node) Level() int {
	if n == nil || n.Kind != KindHeading {
		return 0
	}
	switch v := n.Attrs[AttrLevel].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// AttrString returns a string attribute, or "" when absent or not a string.
func (n *Node) AttrString(key string) string {
	if n == nil {
		return ""
	}
	s, _ := n.Attrs[key].(string)
	return s
}

// Language returns the code block language, possibly empty.
func (n *Node) Language() string {
	return n.AttrString(AttrLanguage)
}

// MarkSet returns the node's marks as a set.
func (n *Node) MarkSet() MarkSet {
	if n == nil {
		return MarkSet{}
	}
	return NewMarkSet(n.Marks...)
}

// HasMark reports whether the node carries a mark of the given type.
func (n *Node) HasMark(typ MarkType) bool {
	return n.MarkSet().HasType(typ)
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Kind: n.Kind, Text: n.Text}
	if len(n.Attrs) > 0 {
		c.Attrs = maps.Clone(n.Attrs)
	}
	if len(n.Marks) > 0 {
		c.Marks = make([]Mark, len(n.Marks))
		for i, m := range n.Marks {
			c.Marks[i] = m.clone()
		}
	}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Equal reports structural equality. Marks compare as sets; empty and nil
// attribute maps and child slices are equivalent.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Text != other.Text {
		return false
	}
	if !attrsEqual(n.Attrs, other.Attrs) {
		return false
	}
	if !n.MarkSet().Equal(other.MarkSet()) {
		return false
	}
	return nodesEqual(n.Children, other.Children)
}

func nodesEqual(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func attrsEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		ov, ok := b[k]
		if !ok {
			return false
		}
		if !reflect.DeepEqual(normalizeAttr(v), normalizeAttr(ov)) {
			return false
		}
	}
	return true
}

// normalizeAttr folds JSON numbers onto int so decoded and built trees compare equal.
func normalizeAttr(v any) any {
	if f, ok := v.(float64); ok && f == float64(int(f)) {
		return int(f)
	}
	return v
}

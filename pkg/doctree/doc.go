// Package doctree provides the structured document model of the editor:
// an immutable-per-edit tree of typed nodes addressed by paths and by
// text positions.
//
// Every mutating method returns a new Doc and leaves the receiver unchanged,
// so a Doc can be shared freely between the editor, the renderer and callers.
package doctree

import "strings"

// Doc is the root container: an ordered sequence of top-level block nodes.
type Doc struct {
	content []*Node
}

// New creates a document from top-level blocks. The nodes are deep-copied,
// so the caller keeps ownership of its arguments.
func New(blocks ...*Node) *Doc {
	d := &Doc{content: make([]*Node, 0, len(blocks))}
	for _, b := range blocks {
		if b != nil {
			d.content = append(d.content, b.Clone())
		}
	}
	return d
}

// adopt wraps blocks without copying; callers must not retain them.
func adopt(blocks []*Node) *Doc {
	return &Doc{content: blocks}
}

// Empty returns a document holding a single empty paragraph.
func Empty() *Doc {
	return adopt([]*Node{NewParagraph()})
}

// ChildCount returns the number of top-level blocks.
func (d *Doc) ChildCount() int {
	return len(d.content)
}

// Child returns the top-level block at idx, or nil when out of range.
// The returned node must not be modified.
func (d *Doc) Child(idx int) *Node {
	if idx < 0 || idx >= len(d.content) {
		return nil
	}
	return d.content[idx]
}

// Content returns the top-level blocks. The slice is a copy; the nodes are
// shared and must not be modified.
func (d *Doc) Content() []*Node {
	out := make([]*Node, len(d.content))
	copy(out, d.content)
	return out
}

// Size returns the total text width of the document.
func (d *Doc) Size() int {
	size := 0
	for _, n := range d.content {
		size += n.Size()
	}
	return size
}

// IsEmpty reports whether the document has no content, or only a single
// paragraph that is empty or holds a single empty text node.
func (d *Doc) IsEmpty() bool {
	switch len(d.content) {
	case 0:
		return true
	case 1:
		p := d.content[0]
		if p.Kind != KindParagraph {
			return false
		}
		switch len(p.Children) {
		case 0:
			return true
		case 1:
			return p.Children[0].IsText() && p.Children[0].Text == ""
		}
	}
	return false
}

// TextContent returns the text of the document with blocks joined by newlines.
func (d *Doc) TextContent() string {
	var sb strings.Builder
	writeTextContent(&sb, d.content)
	return sb.String()
}

// Clone returns a deep copy of the document.
func (d *Doc) Clone() *Doc {
	c := &Doc{content: make([]*Node, len(d.content))}
	for i, n := range d.content {
		c.content[i] = n.Clone()
	}
	return c
}

// Equal reports structural equality of two documents.
func (d *Doc) Equal(other *Doc) bool {
	if d == nil || other == nil {
		return d == other
	}
	return nodesEqual(d.content, other.content)
}

// NodeByPath returns the node addressed by path, or nil if the path is invalid
// or empty.
func (d *Doc) NodeByPath(path Path) *Node {
	children := d.content
	var node *Node
	for _, idx := range path {
		if idx < 0 || idx >= len(children) {
			return nil
		}
		node = children[idx]
		children = node.Children
	}
	return node
}

// childrenAt returns a pointer to the child slice of the node at path
// (the document content for the root path).
func (d *Doc) childrenAt(path Path) *[]*Node {
	if len(path) == 0 {
		return &d.content
	}
	node := d.NodeByPath(path)
	if node == nil || !node.Kind.IsContainer() {
		return nil
	}
	return &node.Children
}

package doctree

import "slices"

// Insert inserts text at pos and returns the new document.
//
// A position past the end appends a new paragraph. Inside a text node the
// string is spliced at the resolved offset. An empty container holding
// inline content receives the text as its first child. Any other node gets
// the text as a new sibling placed before it, wrapped as its parent requires.
func (d *Doc) Insert(pos int, text string) *Doc {
	next := d.Clone()
	r := next.NodeAt(pos)
	if r == nil {
		next.content = append(next.content, NewParagraph(NewText(text)))
		return next
	}

	switch {
	case r.Node.Kind == KindText:
		r.Node.Text = spliceRunes(r.Node.Text, r.Offset, r.Offset, text)
	case r.Node.Kind.holdsInline() && len(r.Node.Children) == 0:
		r.Node.Children = []*Node{NewText(text)}
	default:
		next.insertAt(r.Path, wrapFor(r.Parent, NewText(text)))
	}
	return next
}

// InsertNode inserts a copy of node at pos and returns the new document.
//
// Inline nodes (text, image) are placed inside the resolved textblock,
// splitting a text node when pos is interior to it. Block nodes are placed
// next to the enclosing top-level block: before it when pos is its start,
// after it otherwise.
func (d *Doc) InsertNode(pos int, node *Node) *Doc {
	next := d.Clone()
	if node == nil {
		return next
	}
	node = node.Clone()

	r := next.NodeAt(pos)
	if r == nil {
		next.content = append(next.content, wrapFor(nil, node))
		return next
	}

	if !node.Kind.IsInline() {
		top := r.Path[:1]
		start, _ := next.PositionByPath(top)
		idx := top[0]
		if pos > start {
			idx++
		}
		next.content = slices.Insert(next.content, idx, node)
		return next
	}

	switch {
	case r.Node.Kind == KindText:
		next.insertInline(r, node)
	case r.Node.Kind.holdsInline() && len(r.Node.Children) == 0:
		r.Node.Children = []*Node{node}
	default:
		next.insertAt(r.Path, wrapFor(r.Parent, node))
	}
	return next
}

// insertInline places an inline node around or inside the text node at r.
func (d *Doc) insertInline(r *ResolvedPos, node *Node) {
	size := r.Node.Size()
	switch r.Offset {
	case 0:
		d.insertAt(r.Path, node)
	case size:
		d.insertAt(r.Path.Parent().Child(r.Index()+1), node)
	default:
		right := splitText(r.Node, r.Offset)
		siblings := d.childrenAt(r.Path.Parent())
		*siblings = slices.Insert(*siblings, r.Index()+1, node, right)
	}
}

// insertAt splices node into the parent of path at path's index.
func (d *Doc) insertAt(path Path, node *Node) {
	siblings := d.childrenAt(path.Parent())
	if siblings == nil {
		return
	}
	idx := min(path.Index(), len(*siblings))
	*siblings = slices.Insert(*siblings, idx, node)
}

// wrapFor wraps an inline node so it is valid as a child of parent
// (nil meaning the document root).
func wrapFor(parent *Node, node *Node) *Node {
	if !node.Kind.IsInline() {
		return node
	}
	if parent == nil {
		return NewParagraph(node)
	}
	switch parent.Kind {
	case KindOrderedList, KindBulletList:
		return NewListItem(node)
	case KindBlockquote:
		return NewParagraph(node)
	default:
		return node
	}
}

// Delete removes the text between from and to and returns the new document.
//
// Both ends resolve through NodeAt, and only ranges whose ends land in the
// same text node are removed. Since NodeAt is left-biased, a range starting
// exactly at a node boundary belongs to the earlier node and is a cross-node
// range. Cross-node ranges, empty ranges and unresolvable positions yield
// an unchanged copy; see DeleteRange for cross-node removal.
func (d *Doc) Delete(from, to int) *Doc {
	next := d.Clone()
	if from >= to {
		return next
	}

	start := next.NodeAt(from)
	end := next.NodeAt(to)
	if start == nil || end == nil || !start.Path.Equal(end.Path) || start.Node.Kind != KindText {
		return next
	}

	start.Node.Text = spliceRunes(start.Node.Text, start.Offset, end.Offset, "")
	return next
}

// DeleteRange removes all text between from and to, across node boundaries.
//
// Text nodes intersecting the range are trimmed to the parts outside it.
// Nodes lying entirely inside the range are removed, including zero-width
// images and rules strictly inside it. Partially covered blocks are kept
// and never merged. A document left without blocks becomes Empty().
func (d *Doc) DeleteRange(from, to int) *Doc {
	from = max(from, 0)
	to = min(to, d.Size())
	if from >= to {
		return d.Clone()
	}

	next := d.Clone()
	next.content = deleteSpan(next.content, 0, from, to)
	if len(next.content) == 0 {
		return Empty()
	}
	return next
}

func deleteSpan(nodes []*Node, start, from, to int) []*Node {
	out := make([]*Node, 0, len(nodes))
	pos := start
	for _, n := range nodes {
		size := n.Size()
		s, e := pos, pos+size
		pos = e

		if size == 0 {
			if s > from && s < to {
				continue
			}
			out = append(out, n)
			continue
		}
		if e <= from || s >= to {
			out = append(out, n)
			continue
		}

		covered := s >= from && e <= to
		if n.Kind == KindText {
			if covered {
				continue
			}
			n.Text = spliceRunes(n.Text, max(from-s, 0), min(to-s, size), "")
			out = append(out, n)
			continue
		}

		n.Children = deleteSpan(n.Children, s, from, to)
		if covered && len(n.Children) == 0 {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Replace deletes the range [from, to) and inserts text at from.
func (d *Doc) Replace(from, to int, text string) *Doc {
	return d.Delete(from, to).Insert(from, text)
}

// Split splits the text node at pos into two siblings. It is a no-op unless
// pos falls strictly inside a text node.
func (d *Doc) Split(pos int) *Doc {
	next := d.Clone()
	r := next.NodeAt(pos)
	if r == nil || r.Node.Kind != KindText || r.Offset <= 0 || r.Offset >= r.Node.Size() {
		return next
	}

	right := splitText(r.Node, r.Offset)
	siblings := next.childrenAt(r.Path.Parent())
	*siblings = slices.Insert(*siblings, r.Index()+1, right)
	return next
}

// Join merges the text node at pos into its left sibling. It is a no-op
// unless the node is neither the first nor the last child of its parent and
// both it and its left sibling are text nodes. The left sibling's marks win.
func (d *Doc) Join(pos int) *Doc {
	next := d.Clone()
	r := next.NodeAt(pos)
	if r == nil {
		return next
	}

	siblings := next.childrenAt(r.Path.Parent())
	idx := r.Index()
	if siblings == nil || idx <= 0 || idx >= len(*siblings)-1 {
		return next
	}

	left, current := (*siblings)[idx-1], (*siblings)[idx]
	if left.Kind != KindText || current.Kind != KindText {
		return next
	}

	left.Text += current.Text
	*siblings = slices.Delete(*siblings, idx, idx+1)
	return next
}

// splitText truncates n at offset and returns the remainder as a new text
// node carrying the same marks.
func splitText(n *Node, offset int) *Node {
	runes := []rune(n.Text)
	right := NewText(string(runes[offset:]), n.Marks...)
	n.Text = string(runes[:offset])
	return right
}

// spliceRunes replaces runes [from, to) of s with insert.
func spliceRunes(s string, from, to int, insert string) string {
	runes := []rune(s)
	from = min(max(from, 0), len(runes))
	to = min(max(to, from), len(runes))
	return string(runes[:from]) + insert + string(runes[to:])
}

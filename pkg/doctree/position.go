package doctree

// ResolvedPos is the result of resolving a position to a node.
type ResolvedPos struct {
	// Node is the deepest node covering the position: a text node, a leaf,
	// or a container without children.
	Node *Node

	// Offset is the position relative to the start of Node.
	Offset int

	// Path addresses Node from the root.
	Path Path

	// Parent is the container holding Node; nil for top-level blocks.
	Parent *Node
}

// Index returns the index of Node among its siblings.
func (r *ResolvedPos) Index() int {
	return r.Path.Index()
}

type bias int

const (
	// biasLeft picks the first node whose closed range [start, end] covers
	// the position, so a boundary resolves to the end of the earlier node.
	biasLeft bias = iota

	// biasRight picks the first node whose half-open range [start, end)
	// covers the position, so a boundary resolves to the start of the later
	// node. The document end falls back to left bias.
	biasRight
)

// NodeAt resolves pos to the node covering it. It returns nil when pos lies
// outside [0, Size()] or the document has no content; callers treat that as
// "append at end".
//
// Only text contributes width. A boundary between two nodes resolves to the
// end of the earlier one. Zero-width images and rules are chosen only when no
// other sibling covers the position.
func (d *Doc) NodeAt(pos int) *ResolvedPos {
	return d.resolve(pos, biasLeft)
}

// PathByPosition returns the path of the node starting at or covering pos,
// preferring the later node at boundaries. For every non-empty text node,
// PathByPosition(PositionByPath(p)) == p.
func (d *Doc) PathByPosition(pos int) (Path, bool) {
	r := d.resolve(pos, biasRight)
	if r == nil {
		return nil, false
	}
	return r.Path, true
}

// PositionByPath returns the start position of the node addressed by path.
func (d *Doc) PositionByPath(path Path) (int, bool) {
	if len(path) == 0 {
		return 0, true
	}
	pos := 0
	children := d.content
	for _, idx := range path {
		if idx < 0 || idx >= len(children) {
			return 0, false
		}
		for _, sibling := range children[:idx] {
			pos += sibling.Size()
		}
		children = children[idx].Children
	}
	return pos, true
}

// Range returns the [start, end] position range of the node at path.
func (d *Doc) Range(path Path) (int, int, bool) {
	start, ok := d.PositionByPath(path)
	if !ok {
		return 0, 0, false
	}
	node := d.NodeByPath(path)
	if node == nil {
		return 0, 0, false
	}
	return start, start + node.Size(), true
}

func (d *Doc) resolve(pos int, b bias) *ResolvedPos {
	if pos < 0 || pos > d.Size() || len(d.content) == 0 {
		return nil
	}

	var parent *Node
	children := d.content
	path := Path{}
	start := 0

	for {
		idx, childStart := pickChild(children, pos-start, b)
		if idx < 0 {
			return nil
		}

		child := children[idx]
		path = path.Child(idx)
		start += childStart

		if child.Kind == KindText || child.Kind.IsLeaf() || len(child.Children) == 0 {
			return &ResolvedPos{Node: child, Offset: pos - start, Path: path, Parent: parent}
		}

		parent = child
		children = child.Children
	}
}

// pickChild selects the child covering rel (relative to the first child's
// start) and returns its index and relative start, or -1 for no children.
func pickChild(children []*Node, rel int, b bias) (int, int) {
	if len(children) == 0 {
		return -1, 0
	}

	if b == biasRight {
		acc := 0
		for i, c := range children {
			size := c.Size()
			if rel >= acc && rel < acc+size {
				return i, acc
			}
			acc += size
		}
	}

	fallback, fallbackStart := -1, 0
	acc := 0
	for i, c := range children {
		size := c.Size()
		if rel >= acc && rel <= acc+size {
			if !c.Kind.IsLeaf() {
				return i, acc
			}
			if fallback < 0 {
				fallback, fallbackStart = i, acc
			}
		}
		acc += size
	}
	if fallback >= 0 {
		return fallback, fallbackStart
	}

	// rel is past every child; stick to the end of the last one.
	last := len(children) - 1
	return last, acc - children[last].Size()
}

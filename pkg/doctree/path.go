package doctree

import (
	"slices"
	"strconv"
	"strings"
)

// Path locates a node by child indices from the root. The root is the empty path.
type Path []int

// String renders the path as dot-separated indices, e.g. "0.2.1".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// ParsePath parses the String form of a path.
func ParsePath(s string) (Path, bool) {
	if s == "" {
		return Path{}, true
	}
	parts := strings.Split(s, ".")
	p := make(Path, len(parts))
	for i, part := range parts {
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 {
			return nil, false
		}
		p[i] = idx
	}
	return p, true
}

// Equal reports whether both paths address the same node.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// Clone returns an independent copy.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Child returns the path extended by idx.
func (p Path) Child(idx int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, idx)
}

// Parent returns the path of the parent node. The root's parent is the root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return p[:len(p)-1].Clone()
}

// Index returns the last index, or -1 for the root.
func (p Path) Index() int {
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1]
}

// HasPrefix reports whether prefix addresses p or one of its ancestors.
func (p Path) HasPrefix(prefix Path) bool {
	return len(prefix) <= len(p) && slices.Equal(p[:len(prefix)], prefix)
}

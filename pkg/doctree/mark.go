package doctree

import "maps"

// MarkType identifies an inline formatting annotation.
type MarkType string

// Mark types recognized by the parser and renderer.
const (
	MarkBold          MarkType = "bold"
	MarkItalic        MarkType = "italic"
	MarkCode          MarkType = "code"
	MarkLink          MarkType = "link"
	MarkStrikethrough MarkType = "strikethrough"
)

// IsValid returns true if t is one of the known mark types.
func (t MarkType) IsValid() bool {
	switch t {
	case MarkBold, MarkItalic, MarkCode, MarkLink, MarkStrikethrough:
		return true
	default:
		return false
	}
}

// Mark is an immutable inline formatting descriptor attached to a text node.
type Mark struct {
	Type  MarkType
	Attrs map[string]string
}

// NewMark creates a mark. The attribute map is copied; empty maps are dropped.
func NewMark(typ MarkType, attrs map[string]string) Mark {
	m := Mark{Type: typ}
	if len(attrs) > 0 {
		m.Attrs = maps.Clone(attrs)
	}
	return m
}

// Bold returns a bold mark.
func Bold() Mark { return Mark{Type: MarkBold} }

// Italic returns an italic mark.
func Italic() Mark { return Mark{Type: MarkItalic} }

// Code returns an inline code mark.
func Code() Mark { return Mark{Type: MarkCode} }

// Strikethrough returns a strikethrough mark.
func Strikethrough() Mark { return Mark{Type: MarkStrikethrough} }

// Link returns a link mark. An empty title is omitted from the attributes.
func Link(href, title string) Mark {
	attrs := map[string]string{"href": href}
	if title != "" {
		attrs["title"] = title
	}
	return Mark{Type: MarkLink, Attrs: attrs}
}

// Attr returns the named attribute, or "" when absent.
func (m Mark) Attr(key string) string {
	return m.Attrs[key]
}

// Equal reports whether both marks have the same type and attribute map.
func (m Mark) Equal(other Mark) bool {
	if m.Type != other.Type || len(m.Attrs) != len(other.Attrs) {
		return false
	}
	for k, v := range m.Attrs {
		ov, ok := other.Attrs[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

func (m Mark) clone() Mark {
	return NewMark(m.Type, m.Attrs)
}

// MarkSet is an unordered collection of unique marks.
// The zero value is an empty set. Add and Remove return new sets.
type MarkSet struct {
	marks []Mark
}

// NewMarkSet builds a set from marks, dropping duplicates.
func NewMarkSet(marks ...Mark) MarkSet {
	var s MarkSet
	for _, m := range marks {
		s = s.Add(m)
	}
	return s
}

// Len returns the number of marks in the set.
func (s MarkSet) Len() int {
	return len(s.marks)
}

// Contains reports whether an equal mark is in the set.
func (s MarkSet) Contains(m Mark) bool {
	for _, existing := range s.marks {
		if existing.Equal(m) {
			return true
		}
	}
	return false
}

// HasType reports whether any mark of the given type is in the set.
func (s MarkSet) HasType(typ MarkType) bool {
	for _, existing := range s.marks {
		if existing.Type == typ {
			return true
		}
	}
	return false
}

// Add returns a set containing m. It is a no-op if an equal mark exists.
func (s MarkSet) Add(m Mark) MarkSet {
	if s.Contains(m) {
		return s
	}
	next := make([]Mark, len(s.marks), len(s.marks)+1)
	copy(next, s.marks)
	return MarkSet{marks: append(next, m.clone())}
}

// Remove returns a set without any mark equal to m.
func (s MarkSet) Remove(m Mark) MarkSet {
	next := make([]Mark, 0, len(s.marks))
	for _, existing := range s.marks {
		if !existing.Equal(m) {
			next = append(next, existing)
		}
	}
	return MarkSet{marks: next}
}

// Equal reports set equality: same cardinality and every member of s is in other.
func (s MarkSet) Equal(other MarkSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, m := range s.marks {
		if !other.Contains(m) {
			return false
		}
	}
	return true
}

// Marks returns the members in insertion order.
func (s MarkSet) Marks() []Mark {
	out := make([]Mark, len(s.marks))
	for i, m := range s.marks {
		out[i] = m.clone()
	}
	return out
}

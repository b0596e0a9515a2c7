package doctree

// Kind classifies a document node.
type Kind uint8

// Node kinds. The set is closed; see Visitor for exhaustive dispatch.
const (
	KindText Kind = iota
	KindParagraph
	KindHeading
	KindCodeBlock
	KindBlockquote
	KindListItem
	KindOrderedList
	KindBulletList
	KindImage
	KindHorizontalRule

	kindCount
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [kindCount]string{
	KindText:           "text",
	KindParagraph:      "paragraph",
	KindHeading:        "heading",
	KindCodeBlock:      "code_block",
	KindBlockquote:     "blockquote",
	KindListItem:       "list_item",
	KindOrderedList:    "ordered_list",
	KindBulletList:     "bullet_list",
	KindImage:          "image",
	KindHorizontalRule: "horizontal_rule",
}

// String returns the serialized type tag of the kind.
func (k Kind) String() string {
	if k.IsValid() {
		return kindNames[k]
	}
	return "unknown"
}

// IsValid returns true if k is one of the ten defined kinds.
func (k Kind) IsValid() bool {
	return k < kindCount
}

// ParseKind maps a serialized type tag to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsLeaf returns true for kinds whose content is always null.
func (k Kind) IsLeaf() bool {
	return k == KindImage || k == KindHorizontalRule
}

// IsContainer returns true for kinds whose content is an ordered child sequence.
func (k Kind) IsContainer() bool {
	return k.IsValid() && k != KindText && !k.IsLeaf()
}

// IsInline returns true for kinds that live inside textblocks.
func (k Kind) IsInline() bool {
	return k == KindText || k == KindImage
}

// IsBlock returns true for block-level kinds.
func (k Kind) IsBlock() bool {
	return k.IsValid() && !k.IsInline()
}

// holdsInline returns true for containers whose children are inline nodes.
func (k Kind) holdsInline() bool {
	switch k {
	case KindParagraph, KindHeading, KindCodeBlock, KindListItem:
		return true
	default:
		return false
	}
}

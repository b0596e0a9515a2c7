package doctree

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned by Dispatch for a node whose Kind is out of range.
var ErrUnknownKind = errors.New("unknown node kind")

// Visitor handles every node kind. Implementations must provide a method per
// kind, so adding a kind is a compile error for every visitor until handled.
type Visitor[T any] interface {
	Text(n *Node, path Path) T
	Paragraph(n *Node, path Path) T
	Heading(n *Node, path Path) T
	CodeBlock(n *Node, path Path) T
	Blockquote(n *Node, path Path) T
	ListItem(n *Node, path Path) T
	OrderedList(n *Node, path Path) T
	BulletList(n *Node, path Path) T
	Image(n *Node, path Path) T
	HorizontalRule(n *Node, path Path) T
}

// Dispatch calls the visitor method matching n.Kind.
func Dispatch[T any](n *Node, path Path, v Visitor[T]) (T, error) {
	switch n.Kind {
	case KindText:
		return v.Text(n, path), nil
	case KindParagraph:
		return v.Paragraph(n, path), nil
	case KindHeading:
		return v.Heading(n, path), nil
	case KindCodeBlock:
		return v.CodeBlock(n, path), nil
	case KindBlockquote:
		return v.Blockquote(n, path), nil
	case KindListItem:
		return v.ListItem(n, path), nil
	case KindOrderedList:
		return v.OrderedList(n, path), nil
	case KindBulletList:
		return v.BulletList(n, path), nil
	case KindImage:
		return v.Image(n, path), nil
	case KindHorizontalRule:
		return v.HorizontalRule(n, path), nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %d at %s", ErrUnknownKind, n.Kind, path)
}

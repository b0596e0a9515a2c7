package doctree

import "errors"

// WalkFunc is called for each node visited by Walk.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node, path Path) error

// ErrSkipChildren may be returned by a WalkFunc to skip the node's children.
var ErrSkipChildren = errors.New("skip children")

// Walk performs a pre-order traversal of all nodes of the document.
// If fn returns an error other than ErrSkipChildren, the walk stops
// immediately and returns that error.
func (d *Doc) Walk(fn WalkFunc) error {
	return walkNodes(d.content, Path{}, fn)
}

func walkNodes(nodes []*Node, parent Path, fn WalkFunc) error {
	for i, n := range nodes {
		path := parent.Child(i)
		err := fn(n, path)
		if errors.Is(err, ErrSkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if err := walkNodes(n.Children, path, fn); err != nil {
			return err
		}
	}
	return nil
}

// FindAll returns the paths of all nodes matching the predicate, in document order.
func (d *Doc) FindAll(predicate func(n *Node) bool) []Path {
	var result []Path

	//nolint:errcheck,revive // the callback never fails
	d.Walk(func(n *Node, path Path) error {
		if predicate(n) {
			result = append(result, path)
		}
		return nil
	})

	return result
}

// FindByKind returns the paths of all nodes of the given kind.
func (d *Doc) FindByKind(kind Kind) []Path {
	return d.FindAll(func(n *Node) bool {
		return n.Kind == kind
	})
}

// Package htmlhost is a render.Host backed by golang.org/x/net/html nodes.
// Rendered trees can be serialized to markup and inspected with CSS
// selectors.
package htmlhost

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yaklabco/gomdedit/pkg/render"
)

const classAttr = "class"

// Host creates x/net/html elements.
type Host struct{}

var _ render.Host = Host{}

// New returns a Host.
func New() Host {
	return Host{}
}

// CreateElement creates an element node with the given tag.
//
//nolint:ireturn // Satisfies render.Host.
func (Host) CreateElement(tag string) render.Element {
	return newElement(tag)
}

// CreateText creates a text node.
//
//nolint:ireturn // Satisfies render.Host.
func (Host) CreateText(text string) render.Element {
	return &Element{node: &html.Node{Type: html.TextNode, Data: text}}
}

// NewContainer creates a div to render documents into.
func NewContainer() *Element {
	return newElement("div")
}

func newElement(tag string) *Element {
	return &Element{node: &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

// Element wraps an html.Node. It satisfies render.Container.
type Element struct {
	node *html.Node
}

var _ render.Container = (*Element)(nil)

// Wrap exposes an existing node as an Element.
func Wrap(n *html.Node) *Element {
	return &Element{node: n}
}

// Node returns the underlying html node.
func (e *Element) Node() *html.Node {
	return e.node
}

// Tag returns the element name, or "" for text nodes.
func (e *Element) Tag() string {
	if e.node.Type != html.ElementNode {
		return ""
	}
	return e.node.Data
}

// AppendChild moves child under e. Elements from other hosts are ignored.
func (e *Element) AppendChild(child render.Element) {
	c, ok := child.(*Element)
	if !ok || c == nil {
		return
	}
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	e.node.AppendChild(c.node)
}

// Clear removes all children. It is a no-op on a nil element.
func (e *Element) Clear() {
	if e == nil {
		return
	}
	for c := e.node.FirstChild; c != nil; c = e.node.FirstChild {
		e.node.RemoveChild(c)
	}
}

// SetAttribute sets or replaces an attribute. It has no effect on text nodes.
func (e *Element) SetAttribute(name, value string) {
	if e.node.Type != html.ElementNode {
		return
	}
	for i, a := range e.node.Attr {
		if a.Key == name && a.Namespace == "" {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// Attribute returns the value of an attribute.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name && a.Namespace == "" {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Element) classes() []string {
	v, _ := e.Attribute(classAttr)
	return strings.Fields(v)
}

// AddClass adds class unless present.
func (e *Element) AddClass(class string) {
	classes := e.classes()
	if class == "" || slices.Contains(classes, class) {
		return
	}
	e.SetAttribute(classAttr, strings.Join(append(classes, class), " "))
}

// RemoveClass removes class if present.
func (e *Element) RemoveClass(class string) {
	classes := e.classes()
	idx := slices.Index(classes, class)
	if idx < 0 {
		return
	}
	e.SetAttribute(classAttr, strings.Join(slices.Delete(classes, idx, idx+1), " "))
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.classes(), class)
}

// SetText replaces the content of an element with a single text node, or
// the data of a text node.
func (e *Element) SetText(text string) {
	if e.node.Type == html.TextNode {
		e.node.Data = text
		return
	}
	e.Clear()
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Text returns the concatenated text beneath e.
func (e *Element) Text() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return sb.String()
}

// Markup serializes e and its descendants.
func (e *Element) Markup() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return "", fmt.Errorf("render markup: %w", err)
	}
	return buf.String(), nil
}

// InnerMarkup serializes the children of e.
func (e *Element) InnerMarkup() (string, error) {
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("render markup: %w", err)
		}
	}
	return buf.String(), nil
}

// Query returns the first descendant matching a CSS selector, or nil.
func (e *Element) Query(selector string) (*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("compile selector %q: %w", selector, err)
	}
	n := sel.MatchFirst(e.node)
	if n == nil {
		return nil, nil
	}
	return Wrap(n), nil
}

// QueryAll returns every descendant matching a CSS selector in document
// order.
func (e *Element) QueryAll(selector string) ([]*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("compile selector %q: %w", selector, err)
	}
	nodes := sel.MatchAll(e.node)
	out := make([]*Element, len(nodes))
	for i, n := range nodes {
		out[i] = Wrap(n)
	}
	return out, nil
}

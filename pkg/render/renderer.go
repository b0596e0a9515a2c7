// Package render projects documents onto a host element tree. Literal
// markdown syntax is drawn alongside the styled content and shown only
// while the cursor is inside the node that owns it.
package render

import (
	"errors"
	"io"
	"reflect"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdedit/pkg/doctree"
)

// ErrNoContainer is returned by Render when no container is supplied.
var ErrNoContainer = errors.New("render: container is nil")

// Selection is a [From, To) position range.
type Selection struct {
	From int
	To   int
}

// State carries the cursor and selection used for a render. A nil Cursor
// hides every syntax element.
type State struct {
	Cursor    *int
	Selection *Selection
}

// At returns a State with the cursor at pos.
func At(pos int) State {
	return State{Cursor: &pos}
}

// Renderer draws documents into a container and keeps the side tables
// needed to update syntax visibility without a full re-render.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	host           Host
	logger         *log.Logger
	classes        Classes
	detectLanguage bool

	doc       *doctree.Doc
	container Container
	state     State

	elements map[string]Element
	syntax   []*syntaxEntry
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger routes render warnings to logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClasses overrides the syntax classes. Empty fields keep their defaults.
func WithClasses(c Classes) Option {
	return func(r *Renderer) {
		if c.Syntax != "" {
			r.classes.Syntax = c.Syntax
		}
		if c.Visible != "" {
			r.classes.Visible = c.Visible
		}
		if c.Hidden != "" {
			r.classes.Hidden = c.Hidden
		}
	}
}

// WithLanguageDetection enables a language-<guess> class on code blocks
// that carry no language. The document is not modified.
func WithLanguageDetection(enabled bool) Option {
	return func(r *Renderer) {
		r.detectLanguage = enabled
	}
}

// New creates a renderer drawing elements through host.
func New(host Host, opts ...Option) *Renderer {
	r := &Renderer{
		host:     host,
		logger:   log.New(io.Discard),
		classes:  DefaultClasses(),
		elements: make(map[string]Element),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render clears container and draws doc into it. It returns ErrNoContainer
// if container is nil, including a nil pointer held in the interface. A nil
// doc renders as doctree.Empty().
func (r *Renderer) Render(doc *doctree.Doc, container Container, state State) (Container, error) {
	if isNil(container) {
		return nil, ErrNoContainer
	}
	if doc == nil {
		doc = doctree.Empty()
	}

	r.doc = doc
	r.container = container
	r.state = copyState(state)
	r.elements = make(map[string]Element)
	r.syntax = nil

	container.Clear()
	for i, n := range doc.Content() {
		r.renderNode(container, n, doctree.Path{i})
	}

	r.updateSyntaxVisibility()
	r.logger.Debug("rendered document", "elements", len(r.elements), "syntax", len(r.syntax))
	return container, nil
}

func isNil(c Container) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// renderNode draws n into parent. Unknown kinds are skipped with a warning.
func (r *Renderer) renderNode(parent Element, n *doctree.Node, path doctree.Path) {
	el, err := doctree.Dispatch[Element](n, path, &pass{r: r, parent: parent})
	if err != nil {
		r.logger.Warn("skipping node", "kind", n.Kind.String(), "path", path.String(), "error", err)
		return
	}
	r.elements[path.String()] = el
}

func (r *Renderer) renderChildren(parent Element, n *doctree.Node, path doctree.Path) {
	for i, child := range n.Children {
		r.renderNode(parent, child, path.Child(i))
	}
}

// SetCursorPosition moves the cursor and recomputes syntax visibility.
// A nil pos clears the cursor.
func (r *Renderer) SetCursorPosition(pos *int) {
	r.state.Cursor = copyInt(pos)
	r.updateSyntaxVisibility()
}

// SetSelection records the selection and recomputes syntax visibility.
// A nil selection clears it.
func (r *Renderer) SetSelection(sel *Selection) {
	if sel == nil {
		r.state.Selection = nil
	} else {
		s := *sel
		r.state.Selection = &s
	}
	r.updateSyntaxVisibility()
}

// State returns the current cursor and selection.
func (r *Renderer) State() State {
	return copyState(r.state)
}

// Element returns the element rendered for the node at path.
func (r *Renderer) Element(path doctree.Path) (Element, bool) {
	el, ok := r.elements[path.String()]
	return el, ok
}

// Doc returns the last rendered document.
func (r *Renderer) Doc() *doctree.Doc {
	return r.doc
}

func copyState(s State) State {
	out := State{Cursor: copyInt(s.Cursor)}
	if s.Selection != nil {
		sel := *s.Selection
		out.Selection = &sel
	}
	return out
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Package editor ties the parser, the document tree and the renderer
// together. An Editor owns the current document and the cursor; every edit
// produces a new document which is swapped in and re-rendered.
package editor

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/yaklabco/gomdedit/pkg/doctree"
	"github.com/yaklabco/gomdedit/pkg/parser/markdown"
	"github.com/yaklabco/gomdedit/pkg/render"
	"github.com/yaklabco/gomdedit/pkg/render/htmlhost"
)

// AttrEditorID is set on the container to the editor's session id.
const AttrEditorID = "data-editor-id"

// ErrNoMarkup is returned by Markup when the container cannot serialize
// itself.
var ErrNoMarkup = errors.New("editor: container does not produce markup")

// Parser turns markdown text into a document. Both the native parser and
// the goldmark flavors satisfy it.
type Parser interface {
	Parse(text string) *doctree.Doc
	Flavor() string
}

// Markuper is implemented by containers that serialize to HTML.
type Markuper interface {
	InnerMarkup() (string, error)
}

// Editor is the facade over parse, edit and render. It is not safe for
// concurrent use.
type Editor struct {
	id        string
	parser    Parser
	host      render.Host
	container render.Container
	renderer  *render.Renderer
	logger    *log.Logger

	renderOpts []render.Option

	doc       *doctree.Doc
	cursor    *int
	selection *render.Selection
}

// Option configures an Editor.
type Option func(*Editor)

// WithParser selects the parser used by Load.
func WithParser(p Parser) Option {
	return func(e *Editor) {
		if p != nil {
			e.parser = p
		}
	}
}

// WithContainer renders into container using host instead of a fresh
// htmlhost div.
func WithContainer(host render.Host, container render.Container) Option {
	return func(e *Editor) {
		e.host = host
		e.container = container
	}
}

// WithRenderOptions passes options through to the renderer.
func WithRenderOptions(opts ...render.Option) Option {
	return func(e *Editor) {
		e.renderOpts = append(e.renderOpts, opts...)
	}
}

// WithLogger sets the logger for the editor and, unless overridden, the
// renderer.
func WithLogger(logger *log.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an editor holding an empty document.
func New(opts ...Option) *Editor {
	host := htmlhost.New()
	e := &Editor{
		id:        uuid.NewString(),
		parser:    markdown.New(),
		host:      host,
		container: htmlhost.NewContainer(),
		logger:    log.New(io.Discard),
		doc:       doctree.Empty(),
	}
	for _, opt := range opts {
		opt(e)
	}

	renderOpts := append([]render.Option{render.WithLogger(e.logger)}, e.renderOpts...)
	e.renderer = render.New(e.host, renderOpts...)
	return e
}

// ID returns the editor session id.
func (e *Editor) ID() string {
	return e.id
}

// Flavor returns the flavor of the configured parser.
func (e *Editor) Flavor() string {
	return e.parser.Flavor()
}

// Doc returns the current document.
func (e *Editor) Doc() *doctree.Doc {
	return e.doc
}

// Container returns the element the editor renders into.
//
//nolint:ireturn // The container type is chosen by the caller.
func (e *Editor) Container() render.Container {
	return e.container
}

// Renderer exposes the renderer for syntax and element inspection.
func (e *Editor) Renderer() *render.Renderer {
	return e.renderer
}

// Load parses text and renders the result.
func (e *Editor) Load(text string) error {
	doc := e.parser.Parse(text)
	e.logger.Debug("loaded markdown", "flavor", e.parser.Flavor(), "blocks", doc.ChildCount(), "size", doc.Size())
	return e.SetDoc(doc)
}

// LoadJSON decodes a JSON document and renders it.
func (e *Editor) LoadJSON(data []byte) error {
	doc, err := doctree.FromJSON(data)
	if err != nil {
		return fmt.Errorf("load json: %w", err)
	}
	return e.SetDoc(doc)
}

// SetDoc replaces the document and re-renders. The cursor is clamped to
// the new document.
func (e *Editor) SetDoc(doc *doctree.Doc) error {
	if doc == nil {
		doc = doctree.Empty()
	}
	e.doc = doc
	e.clampCursor()
	return e.Render()
}

// Render redraws the current document into the container.
func (e *Editor) Render() error {
	state := render.State{Cursor: e.cursor, Selection: e.selection}
	container, err := e.renderer.Render(e.doc, e.container, state)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	container.SetAttribute(AttrEditorID, e.id)
	return nil
}

// Example loads text and returns the rendered markup.
func (e *Editor) Example(text string) (string, error) {
	if err := e.Load(text); err != nil {
		return "", err
	}
	return e.Markup()
}

// Markup returns the container's rendered children as HTML.
func (e *Editor) Markup() (string, error) {
	m, ok := e.container.(Markuper)
	if !ok {
		return "", ErrNoMarkup
	}
	out, err := m.InnerMarkup()
	if err != nil {
		return "", fmt.Errorf("markup: %w", err)
	}
	return out, nil
}

// Markdown serializes the current document.
func (e *Editor) Markdown() string {
	return markdown.Serialize(e.doc)
}

// JSON encodes the current document.
func (e *Editor) JSON() ([]byte, error) {
	data, err := e.doc.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return data, nil
}

// Cursor returns the cursor position and whether one is set.
func (e *Editor) Cursor() (int, bool) {
	if e.cursor == nil {
		return 0, false
	}
	return *e.cursor, true
}

// SetCursor moves the cursor, clamped to [0, Size()], and updates syntax
// visibility without re-rendering.
func (e *Editor) SetCursor(pos int) {
	pos = min(max(pos, 0), e.doc.Size())
	e.cursor = &pos
	e.renderer.SetCursorPosition(e.cursor)
}

// ClearCursor removes the cursor, hiding all syntax.
func (e *Editor) ClearCursor() {
	e.cursor = nil
	e.renderer.SetCursorPosition(nil)
}

// Selection returns the current selection.
func (e *Editor) Selection() (render.Selection, bool) {
	if e.selection == nil {
		return render.Selection{}, false
	}
	return *e.selection, true
}

// SetSelection selects [from, to). The bounds are ordered and clamped and
// the cursor moves to the end of the selection.
func (e *Editor) SetSelection(from, to int) {
	if from > to {
		from, to = to, from
	}
	size := e.doc.Size()
	sel := render.Selection{From: min(max(from, 0), size), To: min(max(to, 0), size)}
	e.selection = &sel
	e.renderer.SetSelection(e.selection)
	e.SetCursor(sel.To)
}

// ClearSelection removes the selection.
func (e *Editor) ClearSelection() {
	e.selection = nil
	e.renderer.SetSelection(nil)
}

func (e *Editor) clampCursor() {
	if e.cursor != nil {
		pos := min(max(*e.cursor, 0), e.doc.Size())
		e.cursor = &pos
	}
	if e.selection != nil {
		size := e.doc.Size()
		e.selection.From = min(e.selection.From, size)
		e.selection.To = min(e.selection.To, size)
	}
}

// runeLen is the position width of text.
func runeLen(text string) int {
	return utf8.RuneCountInString(text)
}

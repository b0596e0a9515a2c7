package editor

import (
	"github.com/yaklabco/gomdedit/pkg/doctree"
)

// Apply replaces the document with edit(doc) and re-renders.
func (e *Editor) Apply(edit func(*doctree.Doc) *doctree.Doc) error {
	return e.SetDoc(edit(e.doc))
}

// Insert inserts text at pos.
func (e *Editor) Insert(pos int, text string) error {
	return e.Apply(func(d *doctree.Doc) *doctree.Doc { return d.Insert(pos, text) })
}

// Delete removes [from, to) inside a single text node.
func (e *Editor) Delete(from, to int) error {
	return e.Apply(func(d *doctree.Doc) *doctree.Doc { return d.Delete(from, to) })
}

// DeleteRange removes [from, to) across node boundaries.
func (e *Editor) DeleteRange(from, to int) error {
	return e.Apply(func(d *doctree.Doc) *doctree.Doc { return d.DeleteRange(from, to) })
}

// Replace replaces [from, to) with text.
func (e *Editor) Replace(from, to int, text string) error {
	return e.Apply(func(d *doctree.Doc) *doctree.Doc { return d.Replace(from, to, text) })
}

// Split splits the text node at pos.
func (e *Editor) Split(pos int) error {
	return e.Apply(func(d *doctree.Doc) *doctree.Doc { return d.Split(pos) })
}

// Join merges the text node at pos into its left sibling.
func (e *Editor) Join(pos int) error {
	return e.Apply(func(d *doctree.Doc) *doctree.Doc { return d.Join(pos) })
}

// Type inserts text at the cursor, replacing the selection if there is one,
// and advances the cursor past it. Without a cursor, text is appended.
func (e *Editor) Type(text string) error {
	pos, ok := e.Cursor()
	if !ok {
		pos = e.doc.Size()
	}

	doc := e.doc
	if sel, ok := e.Selection(); ok && sel.From < sel.To {
		doc = doc.DeleteRange(sel.From, sel.To)
		pos = sel.From
	}
	doc = doc.Insert(pos, text)

	e.selection = nil
	e.renderer.SetSelection(nil)
	next := pos + runeLen(text)
	e.cursor = &next
	return e.SetDoc(doc)
}

// Backspace deletes the selection, or the character before the cursor.
func (e *Editor) Backspace() error {
	if sel, ok := e.Selection(); ok && sel.From < sel.To {
		e.selection = nil
		e.renderer.SetSelection(nil)
		from := sel.From
		e.cursor = &from
		return e.DeleteRange(sel.From, sel.To)
	}

	pos, ok := e.Cursor()
	if !ok || pos == 0 {
		return nil
	}
	prev := pos - 1
	e.cursor = &prev
	return e.DeleteRange(prev, pos)
}

package render

import (
	"github.com/yaklabco/gomdedit/pkg/doctree"
)

// attrOwner records the owning node path on each syntax element.
const attrOwner = "data-owner"

// syntaxEntry is one literal markdown fragment and the node that owns it.
type syntaxEntry struct {
	el      Element
	text    string
	owner   doctree.Path
	start   int
	end     int
	visible bool
}

// SyntaxElement describes a registered syntax fragment.
type SyntaxElement struct {
	Element Element
	Text    string
	Owner   doctree.Path
	Visible bool
}

// syntaxSpan creates a syntax fragment owned by the node at owner, appends
// it to parent and registers it.
func (r *Renderer) syntaxSpan(parent Element, text string, owner doctree.Path) {
	el := r.host.CreateElement("span")
	el.AddClass(r.classes.Syntax)
	el.SetAttribute(attrOwner, owner.String())
	el.SetText(text)
	parent.AppendChild(el)

	start, end, ok := r.doc.Range(owner)
	if !ok {
		// Owner outside the document; the fragment stays hidden.
		start, end = -1, -2
	}
	r.syntax = append(r.syntax, &syntaxEntry{
		el:    el,
		text:  text,
		owner: owner.Clone(),
		start: start,
		end:   end,
	})
}

// updateSyntaxVisibility shows a fragment iff the cursor is set and lies in
// the closed range [start, start+size] of the owning node.
func (r *Renderer) updateSyntaxVisibility() {
	cursor := r.state.Cursor
	for _, e := range r.syntax {
		e.visible = cursor != nil && *cursor >= e.start && *cursor <= e.end
		if e.visible {
			e.el.RemoveClass(r.classes.Hidden)
			e.el.AddClass(r.classes.Visible)
		} else {
			e.el.RemoveClass(r.classes.Visible)
			e.el.AddClass(r.classes.Hidden)
		}
	}
}

// Syntax returns the registered syntax fragments in render order.
func (r *Renderer) Syntax() []SyntaxElement {
	out := make([]SyntaxElement, len(r.syntax))
	for i, e := range r.syntax {
		out[i] = SyntaxElement{Element: e.el, Text: e.text, Owner: e.owner.Clone(), Visible: e.visible}
	}
	return out
}

// VisibleSyntax returns the fragments currently shown.
func (r *Renderer) VisibleSyntax() []SyntaxElement {
	var out []SyntaxElement
	for _, s := range r.Syntax() {
		if s.Visible {
			out = append(out, s)
		}
	}
	return out
}

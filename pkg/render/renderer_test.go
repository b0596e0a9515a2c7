package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/doctree"
	"github.com/yaklabco/gomdedit/pkg/parser/markdown"
	"github.com/yaklabco/gomdedit/pkg/render"
	"github.com/yaklabco/gomdedit/pkg/render/htmlhost"
)

func renderDoc(t *testing.T, doc *doctree.Doc, state render.State, opts ...render.Option) (*render.Renderer, *htmlhost.Element) {
	t.Helper()
	r := render.New(htmlhost.New(), opts...)
	container := htmlhost.NewContainer()
	got, err := r.Render(doc, container, state)
	require.NoError(t, err)
	require.Same(t, container, got)
	return r, container
}

func query(t *testing.T, root *htmlhost.Element, selector string) *htmlhost.Element {
	t.Helper()
	el, err := root.Query(selector)
	require.NoError(t, err)
	require.NotNil(t, el, "no match for %q", selector)
	return el
}

func syntaxTexts(items []render.SyntaxElement) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = s.Text
	}
	return out
}

func TestRenderHeadingMarkup(t *testing.T) {
	t.Parallel()

	_, container := renderDoc(t, markdown.Parse("# Hello"), render.State{})

	markup, err := container.InnerMarkup()
	require.NoError(t, err)
	assert.Equal(t,
		`<h1><span class="md-syntax md-syntax-hidden" data-owner="0"># </span>Hello</h1>`,
		markup)
}

func TestRenderCursorInsideHeadingShowsSyntax(t *testing.T) {
	t.Parallel()

	r, container := renderDoc(t, markdown.Parse("# Hello\n\nworld"), render.At(3))

	assert.Equal(t, []string{"# "}, syntaxTexts(r.VisibleSyntax()))
	span := query(t, container, "h1 > span")
	assert.True(t, span.HasClass("md-syntax-visible"))
	assert.False(t, span.HasClass("md-syntax-hidden"))
}

func TestRenderVisibilityClosedInterval(t *testing.T) {
	t.Parallel()

	// Heading covers [0, 2]; the paragraph covers [2, 7].
	doc := markdown.Parse("# Hi\n\nthere")

	tests := []struct {
		name    string
		cursor  int
		visible bool
	}{
		{"start", 0, true},
		{"end", 2, true},
		{"past end", 3, false},
		{"negative", -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, _ := renderDoc(t, doc, render.At(tc.cursor))
			syntax := r.Syntax()
			require.Len(t, syntax, 1)
			assert.Equal(t, tc.visible, syntax[0].Visible)
		})
	}
}

func TestRenderWithoutCursorHidesAllSyntax(t *testing.T) {
	t.Parallel()

	doc := markdown.Parse("# T\n\n**bold** and *it*\n\n```\nx\n```\n\n> q\n\n- a\n\n---")
	r, container := renderDoc(t, doc, render.State{})

	assert.NotEmpty(t, r.Syntax())
	assert.Empty(t, r.VisibleSyntax())

	strong := query(t, container, "p > strong")
	assert.Equal(t, "**bold**", strong.Text())
	em := query(t, container, "p > em")
	assert.Equal(t, "*it*", em.Text())

	hidden, err := container.QueryAll(".md-syntax.md-syntax-hidden")
	require.NoError(t, err)
	assert.Len(t, hidden, len(r.Syntax()))
}

func TestSetCursorPositionUpdatesVisibilityOnly(t *testing.T) {
	t.Parallel()

	doc := markdown.Parse("# A\n\n**b**")
	r, container := renderDoc(t, doc, render.State{})
	heading := query(t, container, "h1")
	assert.Empty(t, r.VisibleSyntax())

	pos := 2
	r.SetCursorPosition(&pos)
	assert.Equal(t, []string{"**", "**"}, syntaxTexts(r.VisibleSyntax()))
	assert.Same(t, heading.Node(), query(t, container, "h1").Node(), "elements are reused")

	pos = 0
	r.SetCursorPosition(&pos)
	assert.Equal(t, []string{"# "}, syntaxTexts(r.VisibleSyntax()))

	r.SetCursorPosition(nil)
	assert.Empty(t, r.VisibleSyntax())
	assert.Nil(t, r.State().Cursor)
}

func TestSetSelection(t *testing.T) {
	t.Parallel()

	r, _ := renderDoc(t, markdown.Parse("# A"), render.At(0))
	r.SetSelection(&render.Selection{From: 0, To: 1})

	state := r.State()
	require.NotNil(t, state.Selection)
	assert.Equal(t, render.Selection{From: 0, To: 1}, *state.Selection)
	assert.Len(t, r.VisibleSyntax(), 1)

	r.SetSelection(nil)
	assert.Nil(t, r.State().Selection)
}

func TestRenderNoContainer(t *testing.T) {
	t.Parallel()

	r := render.New(htmlhost.New())
	_, err := r.Render(markdown.Parse("x"), nil, render.State{})
	require.ErrorIs(t, err, render.ErrNoContainer)

	var typed *htmlhost.Element
	got, err := r.Render(doctree.Empty(), typed, render.State{})
	require.ErrorIs(t, err, render.ErrNoContainer)
	assert.Nil(t, got)
}

func TestRenderNilDocRendersEmpty(t *testing.T) {
	t.Parallel()

	_, container := renderDoc(t, nil, render.State{})
	markup, err := container.InnerMarkup()
	require.NoError(t, err)
	assert.Equal(t, "<p></p>", markup)
}

func TestRenderClearsContainer(t *testing.T) {
	t.Parallel()

	r := render.New(htmlhost.New())
	container := htmlhost.NewContainer()

	_, err := r.Render(markdown.Parse("a\n\nb"), container, render.State{})
	require.NoError(t, err)
	_, err = r.Render(markdown.Parse("c"), container, render.State{})
	require.NoError(t, err)

	paras, err := container.QueryAll("p")
	require.NoError(t, err)
	require.Len(t, paras, 1)
	assert.Equal(t, "c", paras[0].Text())
	assert.Len(t, r.Syntax(), 0)
}

func TestRenderCodeBlock(t *testing.T) {
	t.Parallel()

	r, container := renderDoc(t, markdown.Parse("```js\ncode()\n```"), render.State{})

	code := query(t, container, "pre > code")
	assert.True(t, code.HasClass("language-js"))
	lang, ok := code.Attribute("data-language")
	assert.True(t, ok)
	assert.Equal(t, "javascript", lang)
	assert.Equal(t, "code()", code.Text())

	assert.Equal(t, []string{"```js", "```"}, syntaxTexts(r.Syntax()))
}

func TestRenderCodeBlockLanguageDetection(t *testing.T) {
	t.Parallel()

	doc := markdown.Parse("```\npackage main\n```")

	_, plain := renderDoc(t, doc, render.State{})
	assert.Empty(t, query(t, plain, "code").Node().Attr)

	_, detected := renderDoc(t, doc, render.State{}, render.WithLanguageDetection(true))
	assert.True(t, query(t, detected, "code").HasClass("language-go"))
	assert.Empty(t, doc.Child(0).Language(), "document is unchanged")
}

func TestRenderBlockquoteLines(t *testing.T) {
	t.Parallel()

	doc := markdown.Parse("> one\n> two")
	r, container := renderDoc(t, doc, render.At(4))

	lines, err := container.QueryAll("blockquote > p")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "> one", lines[0].Text())

	syntax := r.Syntax()
	require.Len(t, syntax, 2)
	assert.Equal(t, "0.0", syntax[0].Owner.String())
	assert.Equal(t, "0.1", syntax[1].Owner.String())
	// Position 4 lies inside "two" only.
	assert.False(t, syntax[0].Visible)
	assert.True(t, syntax[1].Visible)

	el, ok := r.Element(doctree.Path{0, 1})
	require.True(t, ok)
	assert.Same(t, lines[1].Node(), el.(*htmlhost.Element).Node())
}

func TestRenderLists(t *testing.T) {
	t.Parallel()

	r, container := renderDoc(t, markdown.Parse("1. a\n2. b\n\n- c"), render.State{})

	items, err := container.QueryAll("ol > li")
	require.NoError(t, err)
	assert.Len(t, items, 2)
	query(t, container, "ul > li")

	assert.Equal(t, []string{"1. ", "2. ", "- "}, syntaxTexts(r.Syntax()))
}

func TestRenderImage(t *testing.T) {
	t.Parallel()

	doc := doctree.New(doctree.NewParagraph(
		doctree.NewText("ab"),
		doctree.NewImage("s.png", "pic", "T"),
	))
	r, container := renderDoc(t, doc, render.At(2))

	img := query(t, container, "p > img")
	src, _ := img.Attribute("src")
	alt, _ := img.Attribute("alt")
	title, _ := img.Attribute("title")
	assert.Equal(t, "s.png", src)
	assert.Equal(t, "pic", alt)
	assert.Equal(t, "T", title)

	assert.Equal(t, []string{`![pic](s.png "T")`}, syntaxTexts(r.VisibleSyntax()))
}

func TestRenderHorizontalRule(t *testing.T) {
	t.Parallel()

	r, container := renderDoc(t, markdown.Parse("---"), render.At(0))

	query(t, container, "hr")
	assert.Equal(t, []string{"---"}, syntaxTexts(r.VisibleSyntax()))
}

func TestRenderMarksNestFirstInnermost(t *testing.T) {
	t.Parallel()

	doc := doctree.New(doctree.NewParagraph(
		doctree.NewText("x", doctree.Bold(), doctree.Link("u", "")),
	))
	r, container := renderDoc(t, doc, render.State{})

	link := query(t, container, "p > a")
	href, _ := link.Attribute("href")
	assert.Equal(t, "u", href)
	query(t, container, "a > strong")
	assert.Equal(t, "[**x**](u)", link.Text())

	for _, s := range r.Syntax() {
		assert.Equal(t, "0.0", s.Owner.String())
	}

	el, ok := r.Element(doctree.Path{0, 0})
	require.True(t, ok)
	assert.Same(t, link.Node(), el.(*htmlhost.Element).Node())
}

func TestRenderSkipsUnknownKinds(t *testing.T) {
	t.Parallel()

	doc := doctree.New(
		&doctree.Node{Kind: doctree.Kind(200)},
		doctree.NewParagraph(doctree.NewText("kept")),
	)
	r, container := renderDoc(t, doc, render.State{})

	paras, err := container.QueryAll("p")
	require.NoError(t, err)
	require.Len(t, paras, 1)
	assert.Equal(t, "kept", paras[0].Text())

	_, ok := r.Element(doctree.Path{0})
	assert.False(t, ok)
	_, ok = r.Element(doctree.Path{1})
	assert.True(t, ok)
}

func TestRenderCustomClasses(t *testing.T) {
	t.Parallel()

	classes := render.Classes{Syntax: "syn", Visible: "on"}
	_, container := renderDoc(t, markdown.Parse("# A"), render.At(0), render.WithClasses(classes))

	span := query(t, container, "span.syn")
	assert.True(t, span.HasClass("on"))

	_, container = renderDoc(t, markdown.Parse("# A"), render.State{}, render.WithClasses(classes))
	assert.True(t, query(t, container, "span.syn").HasClass(render.DefaultClasses().Hidden))
}

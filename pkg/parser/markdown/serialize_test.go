package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdedit/pkg/doctree"
	"github.com/yaklabco/gomdedit/pkg/parser/markdown"
)

func TestSerialize(t *testing.T) {
	t.Parallel()

	doc := doctree.New(
		doctree.NewHeading(2, doctree.NewText("Title")),
		doctree.NewParagraph(
			doctree.NewText("a "),
			doctree.NewText("b", doctree.Bold()),
			doctree.NewText(" "),
			doctree.NewText("c", doctree.Link("u", "T")),
		),
		doctree.NewCodeBlock("go", "x := 1"),
		doctree.NewBlockquote(doctree.NewParagraph(doctree.NewText("q"))),
		doctree.NewOrderedList(
			doctree.NewListItem(doctree.NewText("one")),
			doctree.NewListItem(doctree.NewText("two")),
		),
		doctree.NewBulletList(doctree.NewListItem(doctree.NewImage("p.png", "alt", ""))),
		doctree.NewHorizontalRule(),
	)

	want := "## Title\n\n" +
		"a **b** [c](u \"T\")\n\n" +
		"```go\nx := 1\n```\n\n" +
		"> q\n\n" +
		"1. one\n2. two\n\n" +
		"- ![alt](p.png)\n\n" +
		"---"
	assert.Equal(t, want, markdown.Serialize(doc))
}

func TestSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"# Hello",
		"**bold** and *italic*",
		"```js\ncode()\n```",
		"> one\n> two",
		"1. a\n2. b",
		"- x\n- ~~y~~",
		"---",
		"see [docs](https://example.com \"Docs\") and `code`",
		"![logo](logo.png)",
		"```\n```",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			doc := markdown.Parse(input)
			assert.Equal(t, input, markdown.Serialize(doc))
			assert.True(t, doc.Equal(markdown.Parse(markdown.Serialize(doc))))
		})
	}
}

func TestSerializeEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, markdown.Serialize(doctree.Empty()))
}

package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/doctree"
	"github.com/yaklabco/gomdedit/pkg/parser/markdown"
)

func inlineOf(t *testing.T, input string) []*doctree.Node {
	t.Helper()
	doc := markdown.Parse(input)
	require.Equal(t, 1, doc.ChildCount())
	return doc.Child(0).Children
}

func TestInlineTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []*doctree.Node
	}{
		{
			name:  "plain",
			input: "just text",
			want:  []*doctree.Node{doctree.NewText("just text")},
		},
		{
			name:  "strikethrough",
			input: "a ~~gone~~ b",
			want: []*doctree.Node{
				doctree.NewText("a "),
				doctree.NewText("gone", doctree.Strikethrough()),
				doctree.NewText(" b"),
			},
		},
		{
			name:  "inline code",
			input: "run `go test` now",
			want: []*doctree.Node{
				doctree.NewText("run "),
				doctree.NewText("go test", doctree.Code()),
				doctree.NewText(" now"),
			},
		},
		{
			name:  "link",
			input: "[site](https://example.com)",
			want:  []*doctree.Node{doctree.NewText("site", doctree.Link("https://example.com", ""))},
		},
		{
			name:  "link with quoted title",
			input: `[site](https://example.com "The Title")`,
			want:  []*doctree.Node{doctree.NewText("site", doctree.Link("https://example.com", "The Title"))},
		},
		{
			name:  "link with single quoted title",
			input: `[a](u 't')`,
			want:  []*doctree.Node{doctree.NewText("a", doctree.Link("u", "t"))},
		},
		{
			name:  "image",
			input: `x ![alt text](pic.png "Pic")`,
			want: []*doctree.Node{
				doctree.NewText("x "),
				doctree.NewImage("pic.png", "alt text", "Pic"),
			},
		},
		{
			name:  "image with empty alt",
			input: "![](pic.png)",
			want:  []*doctree.Node{doctree.NewImage("pic.png", "", "")},
		},
		{
			name:  "bold wins over italic at the same offset",
			input: "**b**",
			want:  []*doctree.Node{doctree.NewText("b", doctree.Bold())},
		},
		{
			name:  "marks are not nested",
			input: "**a *b* c**",
			want:  []*doctree.Node{doctree.NewText("a *b* c", doctree.Bold())},
		},
		{
			name:  "unmatched markers stay text",
			input: "a * b ~ c",
			want:  []*doctree.Node{doctree.NewText("a * b ~ c")},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := inlineOf(t, tc.input)
			require.Len(t, got, len(tc.want))
			for i := range tc.want {
				assert.True(t, tc.want[i].Equal(got[i]), "token %d: want %+v got %+v", i, tc.want[i], got[i])
			}
		})
	}
}

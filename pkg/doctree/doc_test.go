package doctree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/doctree"
)

// sampleDoc builds:
//
//	heading(1)   "Title"              positions 0..5
//	paragraph    "ab" **"cd"** "ef"   positions 5..11
//	bullet_list  "x" / "yz"           positions 11..14
func sampleDoc() *doctree.Doc {
	return doctree.New(
		doctree.NewHeading(1, doctree.NewText("Title")),
		doctree.NewParagraph(
			doctree.NewText("ab"),
			doctree.NewText("cd", doctree.Bold()),
			doctree.NewText("ef"),
		),
		doctree.NewBulletList(
			doctree.NewListItem(doctree.NewText("x")),
			doctree.NewListItem(doctree.NewText("yz")),
		),
	)
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, doctree.Empty().IsEmpty())
	assert.True(t, doctree.New().IsEmpty())
	assert.True(t, doctree.New(doctree.NewParagraph(doctree.NewText(""))).IsEmpty())
	assert.False(t, doctree.New(doctree.NewParagraph(doctree.NewText("a"))).IsEmpty())
	assert.False(t, doctree.New(doctree.NewHorizontalRule()).IsEmpty())
	assert.False(t, doctree.New(doctree.NewParagraph(), doctree.NewParagraph()).IsEmpty())
}

func TestNewCopiesInput(t *testing.T) {
	t.Parallel()

	text := doctree.NewText("a")
	doc := doctree.New(doctree.NewParagraph(text))
	text.Text = "changed"

	assert.Equal(t, "a", doc.TextContent())
}

func TestDocSizeAndText(t *testing.T) {
	t.Parallel()

	doc := sampleDoc()
	assert.Equal(t, 14, doc.Size())
	assert.Equal(t, "Title\nabcdef\nx\nyz", doc.TextContent())
	assert.Equal(t, 3, doc.ChildCount())
	assert.Nil(t, doc.Child(3))
}

func TestNodeAt(t *testing.T) {
	t.Parallel()

	doc := sampleDoc()

	tests := []struct {
		name   string
		pos    int
		text   string
		offset int
		path   doctree.Path
	}{
		{"start", 0, "Title", 0, doctree.Path{0, 0}},
		{"inside heading", 3, "Title", 3, doctree.Path{0, 0}},
		{"block boundary resolves left", 5, "Title", 5, doctree.Path{0, 0}},
		{"inside paragraph", 6, "ab", 1, doctree.Path{1, 0}},
		{"inline boundary resolves left", 7, "ab", 2, doctree.Path{1, 0}},
		{"bold text", 8, "cd", 1, doctree.Path{1, 1}},
		{"list item", 12, "x", 1, doctree.Path{2, 0, 0}},
		{"end", 14, "yz", 2, doctree.Path{2, 1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := doc.NodeAt(tc.pos)
			require.NotNil(t, r)
			assert.Equal(t, tc.text, r.Node.Text)
			assert.Equal(t, tc.offset, r.Offset)
			assert.Equal(t, tc.path, r.Path)
		})
	}

	assert.Nil(t, doc.NodeAt(15), "beyond end")
	assert.Nil(t, doc.NodeAt(-1))
}

func TestNodeAtParent(t *testing.T) {
	t.Parallel()

	doc := sampleDoc()

	top := doc.NodeAt(1)
	require.NotNil(t, top)
	assert.Equal(t, doctree.KindHeading, top.Parent.Kind)

	item := doc.NodeAt(13)
	require.NotNil(t, item)
	assert.Equal(t, doctree.KindListItem, item.Parent.Kind)
	assert.Equal(t, 0, item.Index())
}

func TestNodeAtZeroWidth(t *testing.T) {
	t.Parallel()

	t.Run("rule before paragraph", func(t *testing.T) {
		t.Parallel()
		doc := doctree.New(doctree.NewHorizontalRule(), doctree.NewParagraph(doctree.NewText("ab")))
		r := doc.NodeAt(0)
		require.NotNil(t, r)
		assert.Equal(t, doctree.KindText, r.Node.Kind)
	})

	t.Run("only a rule", func(t *testing.T) {
		t.Parallel()
		doc := doctree.New(doctree.NewHorizontalRule())
		r := doc.NodeAt(0)
		require.NotNil(t, r)
		assert.Equal(t, doctree.KindHorizontalRule, r.Node.Kind)
	})

	t.Run("empty paragraph", func(t *testing.T) {
		t.Parallel()
		r := doctree.Empty().NodeAt(0)
		require.NotNil(t, r)
		assert.Equal(t, doctree.KindParagraph, r.Node.Kind)
		assert.Nil(t, r.Parent)
	})

	t.Run("no content", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, doctree.New().NodeAt(0))
	})
}

func TestPositionPathInverse(t *testing.T) {
	t.Parallel()

	doc := sampleDoc()
	for _, path := range doc.FindByKind(doctree.KindText) {
		pos, ok := doc.PositionByPath(path)
		require.True(t, ok)

		back, ok := doc.PathByPosition(pos)
		require.True(t, ok)
		assert.Equal(t, path, back, "path %s at position %d", path, pos)
	}
}

func TestPositionByPath(t *testing.T) {
	t.Parallel()

	doc := sampleDoc()

	pos, ok := doc.PositionByPath(doctree.Path{1, 2})
	require.True(t, ok)
	assert.Equal(t, 9, pos)

	pos, ok = doc.PositionByPath(doctree.Path{2})
	require.True(t, ok)
	assert.Equal(t, 11, pos)

	_, ok = doc.PositionByPath(doctree.Path{5})
	assert.False(t, ok)

	start, end, ok := doc.Range(doctree.Path{1})
	require.True(t, ok)
	assert.Equal(t, 5, start)
	assert.Equal(t, 11, end)
}

func TestWalk(t *testing.T) {
	t.Parallel()

	doc := sampleDoc()

	var kinds []doctree.Kind
	err := doc.Walk(func(n *doctree.Node, _ doctree.Path) error {
		kinds = append(kinds, n.Kind)
		if n.Kind == doctree.KindBulletList {
			return doctree.ErrSkipChildren
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []doctree.Kind{
		doctree.KindHeading, doctree.KindText,
		doctree.KindParagraph, doctree.KindText, doctree.KindText, doctree.KindText,
		doctree.KindBulletList,
	}, kinds)
}

func TestLineColumn(t *testing.T) {
	t.Parallel()

	doc := sampleDoc()

	tests := []struct {
		pos, line, col int
	}{
		{0, 1, 1},
		{5, 1, 6},
		{6, 2, 2},
		{11, 2, 7},
		{12, 3, 2},
		{14, 4, 3},
	}

	for _, tc := range tests {
		line, col := doc.LineColumn(tc.pos)
		assert.Equal(t, tc.line, line, "line of %d", tc.pos)
		assert.Equal(t, tc.col, col, "column of %d", tc.pos)

		back, ok := doc.PositionFromLineColumn(line, col)
		require.True(t, ok)
		assert.Equal(t, tc.pos, back)
	}

	line, col := doc.LineColumn(99)
	assert.Zero(t, line)
	assert.Zero(t, col)

	pos, ok := doc.PositionFromLineColumn(2, 1)
	require.True(t, ok)
	assert.Equal(t, 5, pos, "start of a line maps to the end of the previous block")

	_, ok = doc.PositionFromLineColumn(9, 1)
	assert.False(t, ok)
	_, ok = doc.PositionFromLineColumn(1, 20)
	assert.False(t, ok)
}

package doctree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdedit/pkg/doctree"
)

func TestMarkEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		a, b  doctree.Mark
		equal bool
	}{
		{"same type no attrs", doctree.Bold(), doctree.Bold(), true},
		{"different type", doctree.Bold(), doctree.Italic(), false},
		{"same link", doctree.Link("a", "t"), doctree.Link("a", "t"), true},
		{"different href", doctree.Link("a", ""), doctree.Link("b", ""), false},
		{"extra attr", doctree.Link("a", "t"), doctree.Link("a", ""), false},
		{"nil vs empty attrs", doctree.NewMark(doctree.MarkCode, nil), doctree.NewMark(doctree.MarkCode, map[string]string{}), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.equal, tc.a.Equal(tc.b))
			assert.Equal(t, tc.equal, tc.b.Equal(tc.a))
		})
	}
}

func TestNewMarkCopiesAttrs(t *testing.T) {
	t.Parallel()

	attrs := map[string]string{"href": "x"}
	m := doctree.NewMark(doctree.MarkLink, attrs)
	attrs["href"] = "changed"

	assert.Equal(t, "x", m.Attr("href"))
}

func TestMarkSet(t *testing.T) {
	t.Parallel()

	t.Run("add deduplicates", func(t *testing.T) {
		t.Parallel()
		s := doctree.NewMarkSet(doctree.Bold(), doctree.Bold(), doctree.Link("a", ""))
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, 2, s.Add(doctree.Link("a", "")).Len())
	})

	t.Run("add does not modify receiver", func(t *testing.T) {
		t.Parallel()
		s := doctree.NewMarkSet(doctree.Bold())
		_ = s.Add(doctree.Italic())
		assert.Equal(t, 1, s.Len())
	})

	t.Run("remove filters by equality", func(t *testing.T) {
		t.Parallel()
		s := doctree.NewMarkSet(doctree.Link("a", ""), doctree.Link("b", ""))
		s = s.Remove(doctree.Link("a", ""))
		assert.Equal(t, 1, s.Len())
		assert.True(t, s.Contains(doctree.Link("b", "")))
		assert.False(t, s.Contains(doctree.Link("a", "")))
	})

	t.Run("equality ignores order", func(t *testing.T) {
		t.Parallel()
		a := doctree.NewMarkSet(doctree.Bold(), doctree.Italic())
		b := doctree.NewMarkSet(doctree.Italic(), doctree.Bold())
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(doctree.NewMarkSet(doctree.Bold())))
	})

	t.Run("has type", func(t *testing.T) {
		t.Parallel()
		s := doctree.NewMarkSet(doctree.Link("a", ""))
		assert.True(t, s.HasType(doctree.MarkLink))
		assert.False(t, s.HasType(doctree.MarkBold))
	})
}

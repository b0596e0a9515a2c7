package doctree

import (
	"sort"
	"strings"
)

// flatText is the document text with block separators, plus the mapping
// from positions to rune offsets in that text.
type flatText struct {
	runes      []rune
	offsets    []int // offsets[pos] for pos in [0, Size()]
	lineStarts []int
}

func (d *Doc) flatten() *flatText {
	var sb strings.Builder
	writeTextContent(&sb, d.content)
	f := &flatText{runes: []rune(sb.String())}

	// Re-walk to record where each position lands in the flattened text.
	// Position 0 maps to the first text rune; every later position maps to
	// the offset just after the preceding text rune.
	off := 0
	first := -1
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for i, c := range nodes {
			if i > 0 && (c.Kind.IsBlock() || nodes[i-1].Kind.IsBlock()) {
				off++
			}
			if c.Kind != KindText {
				walk(c.Children)
				continue
			}
			for range c.Text {
				if first < 0 {
					first = off
				}
				off++
				f.offsets = append(f.offsets, off)
			}
		}
	}
	walk(d.content)

	if first < 0 {
		first = len(f.runes)
	}
	f.offsets = append([]int{first}, f.offsets...)

	f.lineStarts = []int{0}
	for i, r := range f.runes {
		if r == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
	return f
}

// lineEnd returns the offset just before the newline terminating line idx (0-based).
func (f *flatText) lineEnd(idx int) int {
	if idx+1 < len(f.lineStarts) {
		return f.lineStarts[idx+1] - 1
	}
	return len(f.runes)
}

// LineColumn converts a position into a 1-based line and column of
// TextContent(). Columns count runes. Returns (0, 0) when pos is out of range.
func (d *Doc) LineColumn(pos int) (int, int) {
	if pos < 0 || pos > d.Size() {
		return 0, 0
	}
	f := d.flatten()
	off := f.offsets[pos]

	lineIdx := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > off
	}) - 1

	return lineIdx + 1, off - f.lineStarts[lineIdx] + 1
}

// PositionFromLineColumn converts a 1-based line and column of TextContent()
// into a position. The column may point just past the end of the line.
func (d *Doc) PositionFromLineColumn(line, col int) (int, bool) {
	f := d.flatten()
	if line < 1 || line > len(f.lineStarts) || col < 1 {
		return 0, false
	}

	off := f.lineStarts[line-1] + col - 1
	if off > f.lineEnd(line-1) {
		return 0, false
	}

	// Largest position whose offset does not exceed off.
	pos := sort.Search(len(f.offsets), func(i int) bool {
		return f.offsets[i] > off
	}) - 1
	return max(pos, 0), true
}

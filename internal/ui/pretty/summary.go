package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/doctree"
)

const (
	summaryDividerWidth = 40
	minPreviewWidth     = 12
)

// DocStats aggregates node counts of a document.
type DocStats struct {
	Empty  bool
	Blocks int
	Size   int
	ByKind map[doctree.Kind]KindStats
}

// KindStats holds the count and total width of one node kind.
type KindStats struct {
	Count int
	Size  int
}

// CollectStats walks doc and counts nodes per kind.
func CollectStats(doc *doctree.Doc) DocStats {
	stats := DocStats{
		Empty:  doc.IsEmpty(),
		Blocks: doc.ChildCount(),
		Size:   doc.Size(),
		ByKind: make(map[doctree.Kind]KindStats),
	}

	//nolint:errcheck // the callback never fails
	doc.Walk(func(n *doctree.Node, _ doctree.Path) error {
		ks := stats.ByKind[n.Kind]
		ks.Count++
		ks.Size += n.Size()
		stats.ByKind[n.Kind] = ks
		return nil
	})
	return stats
}

// FormatSummaryOneLine formats document statistics as a single line.
// Example: "3 blocks, 42 positions (1 heading, 2 paragraphs)".
func (s *Styles) FormatSummaryOneLine(stats DocStats) string {
	if stats.Empty {
		return s.Dim.Render("Empty document") + "\n"
	}

	var kinds []string
	for _, kind := range []doctree.Kind{
		doctree.KindHeading, doctree.KindParagraph, doctree.KindCodeBlock,
		doctree.KindBlockquote, doctree.KindOrderedList, doctree.KindBulletList,
		doctree.KindImage, doctree.KindHorizontalRule,
	} {
		if n := stats.ByKind[kind].Count; n > 0 {
			kinds = append(kinds, pluralize(n, kind.String()))
		}
	}

	line := fmt.Sprintf("%s, %s",
		s.SummaryValue.Render(pluralize(stats.Blocks, "block")),
		s.SummaryValue.Render(pluralize(stats.Size, "position")),
	)
	if len(kinds) > 0 {
		line += s.Dim.Render(" (" + strings.Join(kinds, ", ") + ")")
	}
	return line + "\n"
}

// FormatEditSummary formats the outcome of an edit as a summary block.
func (s *Styles) FormatEditSummary(before, after DocStats, inserted, deleted int) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Blocks:            " +
		s.SummaryValue.Render(strconv.Itoa(before.Blocks)+" -> "+strconv.Itoa(after.Blocks)) + "\n")
	builder.WriteString("  Size:              " +
		s.SummaryValue.Render(strconv.Itoa(before.Size)+" -> "+strconv.Itoa(after.Size)) + "\n")
	builder.WriteString("  Inserted:          " +
		s.DiffAdd.Render(strconv.Itoa(inserted)) + "\n")
	builder.WriteString("  Deleted:           " +
		s.DiffRemove.Render(strconv.Itoa(deleted)) + "\n")

	builder.WriteString("\n")
	if inserted == 0 && deleted == 0 {
		builder.WriteString(s.Dim.Render("No changes"))
	} else {
		builder.WriteString(s.Success.Render("Document updated"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// pluralize naively appends "s" when n != 1.
func pluralize(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}

package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/doctree"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 3 // KIND, COUNT, SIZE
	minKindWidth     = 16
	numberWidth      = 8
	heavySeparator   = "="
	lightSeparator   = "-"
)

// FormatKindTable formats per-kind statistics as a table, in kind order.
// Kinds that do not occur are omitted.
func (s *Styles) FormatKindTable(stats DocStats) string {
	var builder strings.Builder

	builder.WriteString(s.TableHeader.Render(fmt.Sprintf(" %-*s  %*s  %*s ",
		minKindWidth, "KIND", numberWidth, "COUNT", numberWidth, "SIZE")))
	builder.WriteString("\n")
	builder.WriteString(s.formatSeparator(heavySeparator))
	builder.WriteString("\n")

	total := KindStats{}
	for kind := doctree.KindText; kind.IsValid(); kind++ {
		ks, ok := stats.ByKind[kind]
		if !ok {
			continue
		}
		total.Count += ks.Count
		builder.WriteString(fmt.Sprintf(" %-*s  %*d  %*d \n",
			minKindWidth, truncateString(kind.String(), minKindWidth),
			numberWidth, ks.Count, numberWidth, ks.Size))
	}

	builder.WriteString(s.formatSeparator(lightSeparator))
	builder.WriteString("\n")
	builder.WriteString(s.Bold.Render(fmt.Sprintf(" %-*s  %*d  %*d ",
		minKindWidth, "total", numberWidth, total.Count, numberWidth, stats.Size)))
	builder.WriteString("\n")

	return builder.String()
}

func (s *Styles) formatSeparator(char string) string {
	width := minKindWidth + 2*numberWidth + tablePadding*tableColumnCount
	return s.TableSeparator.Render(strings.Repeat(char, width))
}

// truncateString truncates a string to maxLen runes, adding "..." if
// truncated. A maxLen of 0 disables truncation.
func truncateString(str string, maxLen int) string {
	runes := []rune(str)
	if maxLen <= 0 || len(runes) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

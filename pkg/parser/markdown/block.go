package markdown

import (
	"regexp"
	"strings"
)

type blockKind uint8

const (
	blockHeading blockKind = iota
	blockCode
	blockQuote
	blockOrderedList
	blockBulletList
	blockRule
	blockParagraph
)

// block is the intermediate result of the block pass.
type block struct {
	kind     blockKind
	level    int
	language string
	text     string   // heading and paragraph text
	lines    []string // code body, quote lines, or list items
}

// blockMatcher recognizes one block construct starting at lines[idx].
// Match reports the block and the number of lines it consumes.
type blockMatcher struct {
	Name  string
	Match func(lines []string, idx int) (block, int, bool)
}

//nolint:gochecknoglobals // Compiled patterns are read-only.
var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	quotePattern   = regexp.MustCompile(`^>\s*`)
	orderedPattern = regexp.MustCompile(`^\d+\.\s+(.+)$`)
	bulletPattern  = regexp.MustCompile(`^[-*+]\s+(.+)$`)
	rulePattern    = regexp.MustCompile(`^(?:-{3,}|\*{3,}|_{3,})$`)
)

const codeFencePrefix = "```"

// blockRules lists the block constructs in priority order; the first match wins.
//
//nolint:gochecknoglobals // Read-only rule table.
var blockRules = []blockMatcher{
	{Name: "heading", Match: matchHeading},
	{Name: "code_block", Match: matchCodeBlock},
	{Name: "blockquote", Match: matchBlockquote},
	{Name: "ordered_list", Match: matchOrderedList},
	{Name: "bullet_list", Match: matchBulletList},
	{Name: "horizontal_rule", Match: matchRule},
}

// BlockRules returns the names of the block rules in evaluation order.
func BlockRules() []string {
	names := make([]string, len(blockRules))
	for i, r := range blockRules {
		names[i] = r.Name
	}
	return names
}

func matchHeading(lines []string, idx int) (block, int, bool) {
	m := headingPattern.FindStringSubmatch(lines[idx])
	if m == nil {
		return block{}, 0, false
	}
	return block{kind: blockHeading, level: len(m[1]), text: m[2]}, 1, true
}

// matchCodeBlock captures raw lines up to a closing fence. An unterminated
// fence runs to the end of input.
func matchCodeBlock(lines []string, idx int) (block, int, bool) {
	line := lines[idx]
	if !strings.HasPrefix(line, codeFencePrefix) {
		return block{}, 0, false
	}

	b := block{kind: blockCode, language: strings.TrimSpace(line[len(codeFencePrefix):])}
	consumed := 1
	for i := idx + 1; i < len(lines); i++ {
		consumed++
		if strings.TrimSpace(lines[i]) == codeFencePrefix {
			return b, consumed, true
		}
		b.lines = append(b.lines, lines[i])
	}
	return b, consumed, true
}

func matchBlockquote(lines []string, idx int) (block, int, bool) {
	if !quotePattern.MatchString(lines[idx]) {
		return block{}, 0, false
	}

	b := block{kind: blockQuote}
	i := idx
	for ; i < len(lines); i++ {
		loc := quotePattern.FindStringIndex(lines[i])
		if loc == nil {
			break
		}
		b.lines = append(b.lines, lines[i][loc[1]:])
	}
	return b, i - idx, true
}

func matchOrderedList(lines []string, idx int) (block, int, bool) {
	return matchList(lines, idx, orderedPattern, blockOrderedList)
}

func matchBulletList(lines []string, idx int) (block, int, bool) {
	return matchList(lines, idx, bulletPattern, blockBulletList)
}

// matchList collects consecutive items. A blank line ends the run and is
// consumed with it; any other non-item line ends the run unconsumed.
func matchList(lines []string, idx int, pattern *regexp.Regexp, kind blockKind) (block, int, bool) {
	if !pattern.MatchString(lines[idx]) {
		return block{}, 0, false
	}

	b := block{kind: kind}
	i := idx
	for ; i < len(lines); i++ {
		if isBlank(lines[i]) {
			i++
			break
		}
		m := pattern.FindStringSubmatch(lines[i])
		if m == nil {
			break
		}
		b.lines = append(b.lines, m[1])
	}
	return b, i - idx, true
}

func matchRule(lines []string, idx int) (block, int, bool) {
	if !rulePattern.MatchString(strings.TrimSpace(lines[idx])) {
		return block{}, 0, false
	}
	return block{kind: blockRule}, 1, true
}

// matchAny evaluates the rule table at idx.
func matchAny(lines []string, idx int) (block, int, bool) {
	for _, rule := range blockRules {
		if b, consumed, ok := rule.Match(lines, idx); ok {
			return b, consumed, true
		}
	}
	return block{}, 0, false
}

// splitBlocks runs the block pass over normalized lines.
func splitBlocks(lines []string) []block {
	var blocks []block
	for idx := 0; idx < len(lines); {
		if isBlank(lines[idx]) {
			idx++
			continue
		}

		if b, consumed, ok := matchAny(lines, idx); ok {
			blocks = append(blocks, b)
			idx += consumed
			continue
		}

		// Paragraph: accumulate until a blank line or a line starting another block.
		var para []string
		for idx < len(lines) && !isBlank(lines[idx]) {
			if len(para) > 0 {
				if _, _, ok := matchAny(lines, idx); ok {
					break
				}
			}
			para = append(para, strings.TrimSpace(lines[idx]))
			idx++
		}
		blocks = append(blocks, block{kind: blockParagraph, text: strings.Join(para, " ")})
	}
	return blocks
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// splitLines normalizes CRLF and CR line endings and splits on newlines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

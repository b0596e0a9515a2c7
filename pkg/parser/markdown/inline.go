package markdown

import (
	"regexp"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/doctree"
)

type tokenKind uint8

const (
	tokenText tokenKind = iota
	tokenBold
	tokenItalic
	tokenStrikethrough
	tokenLink
	tokenImage
	tokenCode
)

// token is a span produced by the inline pass.
type token struct {
	kind   tokenKind
	text   string // content, link text, or image alt
	target string
	title  string
}

// inlineRule is one alternative of the inline pattern. Groups is the number
// of capture groups the pattern declares.
type inlineRule struct {
	Name    string
	Pattern string
	Kind    tokenKind
	Groups  int
}

// inlineRules lists the inline constructs in priority order. They are
// compiled into a single alternation so that, at the same offset, an
// earlier rule wins.
//
//nolint:gochecknoglobals // Read-only rule table.
var inlineRules = []inlineRule{
	{Name: "bold", Pattern: `\*\*(.+?)\*\*`, Kind: tokenBold, Groups: 1},
	{Name: "italic", Pattern: `\*(.+?)\*`, Kind: tokenItalic, Groups: 1},
	{Name: "strikethrough", Pattern: `~~(.+?)~~`, Kind: tokenStrikethrough, Groups: 1},
	{Name: "link", Pattern: `\[([^\]]+)\]\(([^)]+)\)`, Kind: tokenLink, Groups: 2},
	{Name: "image", Pattern: `!\[([^\]]*)\]\(([^)]+)\)`, Kind: tokenImage, Groups: 2},
	{Name: "code", Pattern: "`([^`]+)`", Kind: tokenCode, Groups: 1},
}

//nolint:gochecknoglobals // Compiled once from inlineRules.
var inlinePattern = compileInline(inlineRules)

func compileInline(rules []inlineRule) *regexp.Regexp {
	alts := make([]string, len(rules))
	for i, r := range rules {
		alts[i] = r.Pattern
	}
	return regexp.MustCompile(strings.Join(alts, "|"))
}

// InlineRules returns the names of the inline rules in priority order.
func InlineRules() []string {
	names := make([]string, len(inlineRules))
	for i, r := range inlineRules {
		names[i] = r.Name
	}
	return names
}

// tokenize splits text into inline tokens. Unmatched spans become text tokens.
func tokenize(text string) []token {
	var tokens []token
	last := 0
	for _, m := range inlinePattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			tokens = append(tokens, token{kind: tokenText, text: text[last:m[0]]})
		}
		tokens = append(tokens, matchToken(text, m))
		last = m[1]
	}
	if last < len(text) {
		tokens = append(tokens, token{kind: tokenText, text: text[last:]})
	}
	return tokens
}

// matchToken identifies which alternative produced the submatch m.
func matchToken(text string, m []int) token {
	group := 1
	for _, rule := range inlineRules {
		start := m[2*group]
		if start < 0 {
			group += rule.Groups
			continue
		}

		tok := token{kind: rule.Kind, text: text[start:m[2*group+1]]}
		if rule.Groups == 2 {
			tok.target, tok.title = splitTarget(text[m[2*group+2]:m[2*group+3]])
		}
		return tok
	}
	return token{kind: tokenText, text: text[m[0]:m[1]]}
}

// splitTarget splits a link destination into URL and optional title.
// The title loses one layer of surrounding quotes.
func splitTarget(target string) (string, string) {
	fields := strings.Fields(target)
	if len(fields) == 0 {
		return "", ""
	}
	url := fields[0]
	title := strings.Join(fields[1:], " ")
	if len(title) >= 2 {
		first, last := title[0], title[len(title)-1]
		if first == last && (first == '"' || first == '\'') {
			title = title[1 : len(title)-1]
		}
	}
	return url, title
}

// parseInline converts text into inline nodes.
func parseInline(text string) []*doctree.Node {
	tokens := tokenize(text)
	nodes := make([]*doctree.Node, 0, len(tokens))
	for _, tok := range tokens {
		nodes = append(nodes, tokenNode(tok))
	}
	return nodes
}

func tokenNode(tok token) *doctree.Node {
	switch tok.kind {
	case tokenBold:
		return doctree.NewText(tok.text, doctree.Bold())
	case tokenItalic:
		return doctree.NewText(tok.text, doctree.Italic())
	case tokenStrikethrough:
		return doctree.NewText(tok.text, doctree.Strikethrough())
	case tokenCode:
		return doctree.NewText(tok.text, doctree.Code())
	case tokenLink:
		return doctree.NewText(tok.text, doctree.Link(tok.target, tok.title))
	case tokenImage:
		return doctree.NewImage(tok.target, tok.text, tok.title)
	default:
		return doctree.NewText(tok.text)
	}
}

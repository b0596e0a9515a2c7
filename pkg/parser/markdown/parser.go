// Package markdown implements the editor's reduced markdown grammar: a
// line-oriented block pass followed by a character-oriented inline pass,
// producing a doctree.Doc. It also serializes documents back to markdown.
package markdown

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdedit/pkg/doctree"
)

// Flavor is the name this parser registers under in configuration.
const Flavor = "native"

// Parser converts markdown text into documents. It is stateless and safe
// for concurrent use.
type Parser struct {
	logger *log.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger routes parser diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a parser.
func New(opts ...Option) *Parser {
	p := &Parser{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Flavor returns the parser flavor name.
func (p *Parser) Flavor() string {
	return Flavor
}

// Parse converts text into a document. It never fails: text without any
// block yields doctree.Empty().
func (p *Parser) Parse(text string) *doctree.Doc {
	blocks := splitBlocks(splitLines(text))

	nodes := make([]*doctree.Node, 0, len(blocks))
	for _, b := range blocks {
		node, ok := convertBlock(b)
		if !ok {
			p.logger.Debug("dropped block", "kind", b.kind)
			continue
		}
		nodes = append(nodes, node)
	}

	p.logger.Debug("parsed document", "blocks", len(blocks), "nodes", len(nodes))
	if len(nodes) == 0 {
		return doctree.Empty()
	}
	return doctree.New(nodes...)
}

// ParseInput parses a dynamically typed input. Anything other than a string
// or byte slice holding valid UTF-8 yields doctree.Empty().
func (p *Parser) ParseInput(input any) *doctree.Doc {
	switch v := input.(type) {
	case string:
		if utf8.ValidString(v) {
			return p.Parse(v)
		}
	case []byte:
		if utf8.Valid(v) {
			return p.Parse(string(v))
		}
	}
	p.logger.Debug("input is not text", "type", typeName(input))
	return doctree.Empty()
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

//nolint:gochecknoglobals // Stateless default instance.
var defaultParser = New()

// Parse converts text into a document using a default parser.
func Parse(text string) *doctree.Doc {
	return defaultParser.Parse(text)
}

// convertBlock maps a block onto exactly one node.
func convertBlock(b block) (*doctree.Node, bool) {
	switch b.kind {
	case blockHeading:
		return doctree.NewHeading(b.level, parseInline(b.text)...), true
	case blockCode:
		return doctree.NewCodeBlock(b.language, strings.Join(b.lines, "\n")), true
	case blockQuote:
		paras := make([]*doctree.Node, len(b.lines))
		for i, line := range b.lines {
			paras[i] = doctree.NewParagraph(parseInline(line)...)
		}
		return doctree.NewBlockquote(paras...), true
	case blockOrderedList:
		return doctree.NewOrderedList(listItems(b.lines)...), true
	case blockBulletList:
		return doctree.NewBulletList(listItems(b.lines)...), true
	case blockRule:
		return doctree.NewHorizontalRule(), true
	case blockParagraph:
		if b.text == "" {
			return nil, false
		}
		return doctree.NewParagraph(parseInline(b.text)...), true
	default:
		return nil, false
	}
}

func listItems(lines []string) []*doctree.Node {
	items := make([]*doctree.Node, len(lines))
	for i, line := range lines {
		items[i] = doctree.NewListItem(parseInline(line)...)
	}
	return items
}

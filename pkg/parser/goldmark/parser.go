// Package goldmark provides an alternative document parser built on the
// goldmark CommonMark implementation. The goldmark AST is mapped onto the
// ten doctree node kinds; constructs without a counterpart are flattened
// or dropped.
package goldmark

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gomdedit/pkg/doctree"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "goldmark"
	FlavorGFM        = "gfm"
)

// Parser converts markdown into documents using goldmark.
type Parser struct {
	flavor string
	md     goldmark.Markdown
	logger *log.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger routes mapping diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a new goldmark-based parser for the given flavor.
// Supported flavors are "goldmark" (plain CommonMark) and "gfm".
// Invalid flavors default to "goldmark".
func New(flavor string, opts ...Option) *Parser {
	f := flavorOrDefault(flavor)
	p := &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Parse converts text into a document. Like the native parser it never
// fails; input without blocks yields doctree.Empty().
func (p *Parser) Parse(text string) *doctree.Doc {
	doc, err := p.ParseContext(context.Background(), []byte(text))
	if err != nil {
		p.logger.Debug("parse failed", "error", err)
		return doctree.Empty()
	}
	return doc
}

// ParseContext converts raw Markdown bytes into a document.
//
// Returns an error only if the context is cancelled before or during
// parsing.
func (p *Parser) ParseContext(ctx context.Context, content []byte) (*doctree.Doc, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	source := copyContent(content)
	reader := text.NewReader(source)
	gmDoc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	m := newMapper(source, p.logger)
	blocks := m.mapDocument(gmDoc)

	p.logger.Debug("parsed document", "flavor", p.flavor, "nodes", len(blocks), "dropped", m.dropped)
	if len(blocks) == 0 {
		return doctree.Empty(), nil
	}
	return doctree.New(blocks...), nil
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts,
			goldmark.WithExtensions(
				extension.GFM,
			),
		)
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}

func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}

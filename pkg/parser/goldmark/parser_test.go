package goldmark

import (
	"context"
	"testing"
	"time"

	"github.com/yaklabco/gomdedit/pkg/doctree"
)

func TestParser_New(t *testing.T) {
	tests := []struct {
		name       string
		flavor     string
		wantFlavor string
	}{
		{"commonmark", FlavorCommonMark, FlavorCommonMark},
		{"gfm", FlavorGFM, FlavorGFM},
		{"invalid defaults to goldmark", "invalid", FlavorCommonMark},
		{"empty defaults to goldmark", "", FlavorCommonMark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.flavor)

			if p.Flavor() != tt.wantFlavor {
				t.Errorf("Flavor() = %q, want %q", p.Flavor(), tt.wantFlavor)
			}
		})
	}
}

func TestParser_Parse_Basic(t *testing.T) {
	doc := New(FlavorCommonMark).Parse("# Hello\n\nWorld")

	if doc.ChildCount() != 2 {
		t.Fatalf("ChildCount() = %d, want 2", doc.ChildCount())
	}

	heading := doc.Child(0)
	if heading.Kind != doctree.KindHeading || heading.Level() != 1 {
		t.Errorf("first block = %v level %d, want heading level 1", heading.Kind, heading.Level())
	}
	if got := heading.TextContent(); got != "Hello" {
		t.Errorf("heading text = %q, want %q", got, "Hello")
	}

	if got := doc.Child(1).TextContent(); got != "World" {
		t.Errorf("paragraph text = %q, want %q", got, "World")
	}
}

func TestParser_Parse_Empty(t *testing.T) {
	doc := New(FlavorCommonMark).Parse("")

	if !doc.IsEmpty() {
		t.Errorf("expected empty document, got %d blocks", doc.ChildCount())
	}
}

func TestParser_ParseContext_Cancelled(t *testing.T) {
	parser := New(FlavorCommonMark)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := parser.ParseContext(ctx, []byte("# Hello")); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestParser_ParseContext_Timeout(t *testing.T) {
	parser := New(FlavorCommonMark)

	ctx, cancel := context.WithTimeout(context.Background(), -1*time.Second)
	defer cancel()

	if _, err := parser.ParseContext(ctx, []byte("# Hello")); err == nil {
		t.Error("expected error for timed out context")
	}
}

func TestParser_ParseContext_DoesNotRetainInput(t *testing.T) {
	content := []byte("hello")
	doc, err := New(FlavorCommonMark).ParseContext(context.Background(), content)
	if err != nil {
		t.Fatalf("ParseContext() error = %v", err)
	}

	content[0] = 'j'
	if got := doc.TextContent(); got != "hello" {
		t.Errorf("TextContent() = %q after mutating input, want %q", got, "hello")
	}
}

func TestParser_Parse_CommonMark(t *testing.T) {
	content := "# Heading\n\n" +
		"Paragraph with *emphasis* and **strong**.\n\n" +
		"- Item 1\n- Item 2\n\n" +
		"> Blockquote\n\n" +
		"```go\nfunc main() {}\n```\n\n" +
		"---\n\n" +
		"1. one\n2. two\n"

	doc := New(FlavorCommonMark).Parse(content)

	want := []doctree.Kind{
		doctree.KindHeading,
		doctree.KindParagraph,
		doctree.KindBulletList,
		doctree.KindBlockquote,
		doctree.KindCodeBlock,
		doctree.KindHorizontalRule,
		doctree.KindOrderedList,
	}
	if doc.ChildCount() != len(want) {
		t.Fatalf("ChildCount() = %d, want %d", doc.ChildCount(), len(want))
	}
	for i, kind := range want {
		if got := doc.Child(i).Kind; got != kind {
			t.Errorf("block %d kind = %v, want %v", i, got, kind)
		}
	}

	code := doc.Child(4)
	if code.Language() != "go" || code.TextContent() != "func main() {}" {
		t.Errorf("code block = %q/%q", code.Language(), code.TextContent())
	}

	list := doc.Child(2)
	if len(list.Children) != 2 || list.Children[1].TextContent() != "Item 2" {
		t.Errorf("bullet list items = %d", len(list.Children))
	}
}

func TestParser_Parse_GFM(t *testing.T) {
	content := "~~gone~~\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n- [x] done\n"

	gfm := New(FlavorGFM).Parse(content)

	strike := gfm.Child(0).Children[0]
	if !strike.HasMark(doctree.MarkStrikethrough) || strike.Text != "gone" {
		t.Errorf("expected strikethrough text, got %+v", strike)
	}

	if got := gfm.Child(1).TextContent(); got != "a | b" {
		t.Errorf("table header row = %q, want %q", got, "a | b")
	}
	if got := gfm.Child(2).TextContent(); got != "1 | 2" {
		t.Errorf("table body row = %q, want %q", got, "1 | 2")
	}

	task := gfm.Child(3)
	if task.Kind != doctree.KindBulletList || task.Children[0].TextContent() != "[x] done" {
		t.Errorf("task list = %v %q", task.Kind, task.TextContent())
	}

	plain := New(FlavorCommonMark).Parse("~~gone~~")
	if plain.Child(0).Children[0].HasMark(doctree.MarkStrikethrough) {
		t.Error("commonmark flavor should not recognize strikethrough")
	}
}

package jira

import (
	"testing"

	"github.com/mdtree/mdtree"
)

func render(src string) string {
	doc := mdtree.NewDocumentFromString(src)
	r := New()
	defer r.Enter(doc)()
	return r.RenderInner(doc)
}

// A single unindented line like "**bold**\n" tokenizes into a span that
// consumes everything but the trailing "\n", which survives as its own
// RawText sibling; a top-level Paragraph (unlike a ListItem's) keeps that
// newline rather than collapsing it, so it shows up before the blank line
// the Paragraph handler itself appends.
func TestRenderSpanMappings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strong", "**bold**\n", "*bold*\n\n\n"},
		{"emphasis", "_em_\n", "_em_\n\n\n"},
		{"inline code", "`code`\n", "{{code}}\n\n\n"},
		// JIRA's native strikethrough form (mistletoe's
		// test_render_strikethrough: '-{}-' -> '-{}-'), not CommonMark's
		// "~~text~~" — matchListMarker rejects "-gone-" as a list marker
		// (no space after the dash), so it reaches Paragraph and then
		// DashStrikethroughPattern.
		{"strikethrough", "-gone-\n", "-gone-\n\n\n"},
		{"autolink", "<https://example.com>\n", "[https://example.com]\n\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(tt.in); got != tt.want {
				t.Errorf("render(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderDirectLink(t *testing.T) {
	got := render(`[text](http://example.com)` + "\n")
	want := "[text|http://example.com]\n\n\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderImage(t *testing.T) {
	got := render("![alt](src.png)\n")
	want := "!src.png!\n\n\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderHeading(t *testing.T) {
	got := render("## two\n")
	want := "h2. two\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderQuote(t *testing.T) {
	got := render("> quoted\n")
	want := "{quote}\nquoted\n\n\n{quote}\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderCodeFence(t *testing.T) {
	got := render("```go\ncode\n```\n")
	want := "{code:go}\ncode\n{code}\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderSeparator(t *testing.T) {
	got := render("---\n")
	want := "----\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderList(t *testing.T) {
	got := render("- a\n- b\n")
	want := "* a\n* b\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderTableHeaderDelimiter(t *testing.T) {
	got := render("| a | b |\n|---|---|\n| 1 | 2 |\n")
	want := "||a||b||\n|1|2|\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

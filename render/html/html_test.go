package html

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mdtree/mdtree"
)

func render(src string) string {
	doc := mdtree.NewDocumentFromString(src)
	r := New()
	return r.RenderInner(doc)
}

func TestRenderHeading(t *testing.T) {
	got := render("# hello\n")
	want := "<h1>hello</h1>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("render() mismatch (-want +got):\n%s", diff)
	}
}

// The source's own trailing "\n" is never matched by any span pattern, so
// it survives as a final RawText sibling and lands just before the
// closing tag the Paragraph handler appends.
func TestRenderParagraphAndEmphasis(t *testing.T) {
	got := render("a **bold** word\n")
	want := "<p>a <strong>bold</strong> word\n</p>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("render() mismatch (-want +got):\n%s", diff)
	}
}

// A triple-delimiter run nests one level of Emphasis inside Strong
// (matchStrong re-wraps its core text in a single delimiter so the
// Strong's own Children() call produces it); this is a supplemental
// correctness check, not a fixture carried from mistletoe's own suite
// (SPEC_FULL.md Section C).
func TestRenderNestedEmphasisStrong(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"***x***\n", "<p><strong><em>x</em></strong>\n</p>\n"},
		{"**_x_**\n", "<p><strong><em>x</em></strong>\n</p>\n"},
	}
	for _, tt := range tests {
		if got := render(tt.in); got != tt.want {
			t.Errorf("render(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderImage(t *testing.T) {
	got := render(`![alt] [foo]` + "\n\n" + `[foo]: bar "title"` + "\n")
	want := "<p><img src=\"bar\" title=\"title\" alt=\"alt\">\n</p>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFootnoteLink(t *testing.T) {
	got := render("[name] [foo]\n\n[foo]: target\n")
	want := "<p><a href=\"target\">name</a>\n</p>\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderEscapesRawText(t *testing.T) {
	got := render("a < b & c\n")
	want := "<p>a &lt; b &amp; c\n</p>\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderEscapesAttributeValues(t *testing.T) {
	got := render(`[x](target"with"quotes)` + "\n")
	if want := `&quot;`; !contains(got, want) {
		t.Errorf("render() = %q, want it to contain escaped quotes", got)
	}
}

func TestRenderList(t *testing.T) {
	got := render("- a\n- b\n")
	want := "<ul>\n<li><p>a</p>\n</li>\n<li><p>b</p>\n</li>\n</ul>\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderOrderedListWithStart(t *testing.T) {
	got := render("3. a\n4. b\n")
	want := "<ol start=\"3\">\n<li><p>a</p>\n</li>\n<li><p>b</p>\n</li>\n</ol>\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderUnresolvedFootnoteFallsBackToRawText(t *testing.T) {
	got := render("[missing]\n")
	want := "<p>[missing]\n</p>\n"
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

package mdtree

import "testing"

func TestTokenizeInnerStrongEmphasis(t *testing.T) {
	toks := TokenizeInner("**bold** and _em_")
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(toks), toks)
	}
	if toks[0].Kind() != StrongKind {
		t.Fatalf("toks[0] = %v, want StrongKind", toks[0].Kind())
	}
	if toks[2].Kind() != EmphasisKind {
		t.Fatalf("toks[2] = %v, want EmphasisKind", toks[2].Kind())
	}
}

func TestTokenizeInnerEscapeSequence(t *testing.T) {
	toks := TokenizeInner(`\*not strong\*`)
	if len(toks) < 2 {
		t.Fatalf("got %d tokens, want at least 2: %v", len(toks), toks)
	}
	if toks[0].Kind() != EscapeSequenceKind {
		t.Fatalf("toks[0] = %v, want EscapeSequenceKind", toks[0].Kind())
	}
}

func TestTokenizeInnerInlineCode(t *testing.T) {
	toks := TokenizeInner("`` a ` b ``")
	if len(toks) != 1 || toks[0].Kind() != InlineCodeKind {
		t.Fatalf("got %v, want one InlineCodeKind", toks)
	}
	s := toks[0].(*Span)
	if s.Content() != "a ` b" {
		t.Fatalf("Content() = %q, want %q", s.Content(), "a ` b")
	}
}

func TestTokenizeInnerAutoLink(t *testing.T) {
	toks := TokenizeInner("<https://example.com>")
	if len(toks) != 1 || toks[0].Kind() != AutoLinkKind {
		t.Fatalf("got %v, want one AutoLinkKind", toks)
	}
	if toks[0].(*Span).Target() != "https://example.com" {
		t.Fatalf("Target() = %q", toks[0].(*Span).Target())
	}
}

func TestTokenizeInnerDirectLinkAndImage(t *testing.T) {
	toks := TokenizeInner(`[name](target "title")`)
	if len(toks) != 1 || toks[0].Kind() != LinkKind {
		t.Fatalf("got %v, want one LinkKind", toks)
	}
	s := toks[0].(*Span)
	if s.Target() != "target" || s.Title() != "title" {
		t.Fatalf("Target/Title = %q/%q", s.Target(), s.Title())
	}

	toks = TokenizeInner(`![alt](bar "title")`)
	if len(toks) != 1 || toks[0].Kind() != ImageKind {
		t.Fatalf("got %v, want one ImageKind", toks)
	}
	img := toks[0].(*Span)
	if img.Src() != "bar" || img.Title() != "title" {
		t.Fatalf("Src/Title = %q/%q", img.Src(), img.Title())
	}
}

func TestFootnoteReferenceResolution(t *testing.T) {
	doc := NewDocumentFromString("[name] [foo]\n\n[foo]: target\n")
	children := doc.Children()
	var para *Block
	for _, c := range children {
		if b, ok := c.(*Block); ok && b.Kind() == ParagraphKind {
			para = b
		}
	}
	if para == nil {
		t.Fatal("no paragraph found")
	}
	spans := para.Children()
	if len(spans) == 0 || spans[0].Kind() != FootnoteLinkKind {
		t.Fatalf("got %v, want a leading FootnoteLinkKind", spans)
	}
	s := spans[0].(*Span)
	if !s.Resolved() {
		t.Fatal("Resolved() = false, want true")
	}
	if s.Target() != "target" {
		t.Fatalf("Target() = %q, want target", s.Target())
	}
}

func TestFootnoteReferenceUnresolved(t *testing.T) {
	doc := NewDocumentFromString("[missing ref]\n")
	children := doc.Children()
	para := children[0].(*Block)
	spans := para.Children()
	if len(spans) == 0 || spans[0].Kind() != FootnoteLinkKind {
		t.Fatalf("got %v, want a leading FootnoteLinkKind", spans)
	}
	s := spans[0].(*Span)
	if s.Resolved() {
		t.Fatal("Resolved() = true, want false")
	}
	fallback := s.Children()
	if len(fallback) != 1 || fallback[0].Kind() != RawTextKind {
		t.Fatalf("unresolved fallback = %v, want one RawTextKind", fallback)
	}
	if fallback[0].(*Span).Content() != "[missing ref]" {
		t.Fatalf("fallback content = %q", fallback[0].(*Span).Content())
	}
}

func TestTokenizeInnerLineBreak(t *testing.T) {
	toks := TokenizeInner("a  \nb")
	var found bool
	for _, tok := range toks {
		if tok.Kind() == LineBreakKind {
			found = true
		}
	}
	if !found {
		t.Fatalf("no LineBreakKind found in %v", toks)
	}
}

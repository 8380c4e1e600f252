package mdtree

import "strings"

// FootnoteTarget is the value side of Document.footnotes: a reference
// target URL and an optional title (spec.md §3).
type FootnoteTarget struct {
	Target string
	Title  string
}

// Document is the root block token. It owns the sole footnote table for
// its subtree (spec.md §3 invariant 1) and is the only constructor that
// runs the full block tokenizer eagerly: footnote definitions must be
// harvested from the entire block-level tree before any span token
// resolves a reference (invariant 5), so Document forces block-level
// materialization (never span-level) of its whole subtree at construction
// time.
type Document struct {
	Block
	footnotes    map[string]FootnoteTarget
	spanPatterns []SpanPattern
}

// NewDocument builds a document tree from an ordered sequence of lines.
func NewDocument(lines []string) *Document {
	doc := &Document{footnotes: make(map[string]FootnoteTarget)}
	doc.kind = DocumentKind
	doc.doc = doc
	doc.lines = lines
	doc.built = true
	doc.blockChildren = tokenize(doc, lines)
	doc.harvestFootnotes(doc.blockChildren)
	return doc
}

// NewDocumentFromString splits s on "\n" (preserving trailing newlines,
// agnostic to CRLF vs LF) and builds a document tree from the result.
func NewDocumentFromString(s string) *Document {
	return NewDocument(splitLines(s))
}

// harvestFootnotes walks block children only (never touching span
// children, which would require footnotes to already be populated) and
// registers every FootnoteEntry, last-write-wins (spec.md §9).
func (doc *Document) harvestFootnotes(children []Token) {
	for _, child := range children {
		b, ok := child.(*Block)
		if !ok {
			continue
		}
		switch b.kind {
		case FootnoteEntryKind:
			doc.footnotes[normalizeKey(b.key)] = FootnoteTarget{Target: b.value, Title: b.fnTitle}
		case FootnoteBlockKind, QuoteKind, ListKind, ListItemKind, DocumentKind:
			doc.harvestFootnotes(b.Children())
		case TableKind, TableRowKind:
			// Tables never contain footnote definitions; skip descending
			// to avoid forcing TableCell span materialization early.
		}
	}
}

// Footnotes returns the document-scoped link-reference table.
func (doc *Document) Footnotes() map[string]FootnoteTarget {
	return doc.footnotes
}

// resolve looks up a reference key, returning the target and whether it
// was found.
func (doc *Document) resolve(key string) (FootnoteTarget, bool) {
	t, ok := doc.footnotes[normalizeKey(key)]
	return t, ok
}

// Contains reports whether any RawText leaf in the tree contains query as
// a substring (spec.md §3 "Containment query").
func (doc *Document) Contains(query string) bool {
	return containsIn(doc, query)
}

func containsIn(tok Token, query string) bool {
	if s, ok := tok.(*Span); ok && s.kind == RawTextKind {
		if strings.Contains(s.content, query) {
			return true
		}
	}
	for _, child := range tok.Children() {
		if containsIn(child, query) {
			return true
		}
	}
	return false
}

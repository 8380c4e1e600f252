package mdtree

// Tokenize yields block tokens from an ordered line sequence (spec.md §6
// library surface). It runs independent of any Document, so reference-
// style Link/Image forms in its output resolve against an empty footnote
// table (they degrade to raw text, per spec.md §7) — use [NewDocument] to
// parse with footnote resolution.
func Tokenize(lines []string) []Token {
	return tokenize(standaloneDoc(), lines)
}

// TokenizeInner yields span tokens from a string (spec.md §6 library
// surface), under the same no-footnote-resolution caveat as [Tokenize].
func TokenizeInner(text string) []Token {
	return tokenizeInner(standaloneDoc(), text)
}

// standaloneDoc gives Tokenize/TokenizeInner a Document handle to thread
// through without requiring a caller to build one; its footnote table is
// always empty.
func standaloneDoc() *Document {
	doc := &Document{footnotes: make(map[string]FootnoteTarget)}
	doc.kind = DocumentKind
	doc.doc = doc
	return doc
}

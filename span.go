package mdtree

import "strings"

// tokenizeInner runs the span matcher chain over a block's raw inline
// text, per spec.md §4.3's earliest-starting-wins scan: at each
// unconsumed position every pattern is tried in precedence order; the
// first to match claims the position, and the scan resumes after it. A
// position where nothing matches joins a run of plain RawText.
func tokenizeInner(doc *Document, text string) []Token {
	var toks []Token
	var raw []byte
	flush := func() {
		if len(raw) > 0 {
			toks = append(toks, &Span{kind: RawTextKind, doc: doc, content: string(raw), built: true})
			raw = raw[:0]
		}
	}
	i := 0
	for i < len(text) {
		if tok, n, ok := trySpanPatterns(doc, text, i); ok {
			flush()
			toks = append(toks, tok)
			i += n
			continue
		}
		raw = append(raw, text[i])
		i++
	}
	flush()
	return toks
}

// trySpanPatterns tries every span pattern at pos in spec.md §4.3's
// declared precedence: EscapeSequence, InlineCode, HTMLSpan, AutoLink,
// Image, Link, Strong, Emphasis, Strikethrough, LineBreak.
func trySpanPatterns(doc *Document, text string, pos int) (Token, int, bool) {
	c := text[pos]

	if c == '\\' && pos+1 < len(text) && isASCIIPunct(text[pos+1]) {
		return &Span{kind: EscapeSequenceKind, doc: doc, text: text[pos+1 : pos+2], content: text[pos+1 : pos+2]}, 2, true
	}
	if c == '`' {
		if content, total, ok := matchInlineCode(text, pos); ok {
			return &Span{kind: InlineCodeKind, doc: doc, content: content, built: true}, total, true
		}
	}
	if c == '<' {
		if total, ok := matchHTMLSpan(text, pos); ok {
			return &Span{kind: HTMLSpanKind, doc: doc, content: text[pos : pos+total], built: true}, total, true
		}
		if target, total, ok := matchAutoLinkText(text, pos); ok {
			return &Span{kind: AutoLinkKind, doc: doc, target: target, text: target}, total, true
		}
	}
	if c == '!' && pos+1 < len(text) && text[pos+1] == '[' {
		if sp, total, ok := matchImage(doc, text, pos); ok {
			return sp, total, true
		}
	}
	if c == '[' {
		if sp, total, ok := matchLink(doc, text, pos); ok {
			return sp, total, true
		}
	}
	if c == '*' || c == '_' {
		if inner, total, ok := matchStrong(text, pos); ok {
			return &Span{kind: StrongKind, doc: doc, text: inner}, total, true
		}
		if inner, total, ok := matchEmphasis(text, pos); ok {
			return &Span{kind: EmphasisKind, doc: doc, text: inner}, total, true
		}
	}
	if c == '~' {
		if inner, total, ok := matchStrikethrough(text, pos); ok {
			return &Span{kind: StrikethroughKind, doc: doc, text: inner}, total, true
		}
	}
	if c == ' ' {
		if total, ok := matchLineBreak(text, pos); ok {
			return &Span{kind: LineBreakKind, doc: doc, built: true}, total, true
		}
	}
	for _, p := range doc.spanPatterns {
		if tok, n, ok := p.Match(text, pos); ok {
			if sp, ok := tok.(*Span); ok && sp.doc == nil {
				sp.doc = doc
			}
			return tok, n, true
		}
	}
	return nil, 0, false
}

// matchInlineCode matches a backtick run and the next run of exactly the
// same length, per spec.md's "close requires same run length". When the
// content both begins and ends with a space and is not all spaces, one
// space is stripped from each end.
func matchInlineCode(text string, pos int) (content string, total int, ok bool) {
	if text[pos] != '`' {
		return "", 0, false
	}
	n := 0
	for pos+n < len(text) && text[pos+n] == '`' {
		n++
	}
	i := pos + n
	for i < len(text) {
		if text[i] == '`' {
			j := i
			for j < len(text) && text[j] == '`' {
				j++
			}
			if j-i == n {
				content = text[pos+n : i]
				if len(content) >= 2 && content[0] == ' ' && content[len(content)-1] == ' ' && strings.Trim(content, " ") != "" {
					content = content[1 : len(content)-1]
				}
				return content, j - pos, true
			}
			i = j
			continue
		}
		i++
	}
	return "", 0, false
}

// matchHTMLSpan matches a single inline HTML tag, comment, or processing
// instruction: '<' ... '>' with no nested '<', the tag name (if any)
// validated against scanTagName and required to end at whitespace or the
// tag's end, so "<scheme:...>" is left for matchAutoLinkText.
func matchHTMLSpan(text string, pos int) (int, bool) {
	if text[pos] != '<' {
		return 0, false
	}
	rel := strings.IndexByte(text[pos:], '>')
	if rel < 0 {
		return 0, false
	}
	end := pos + rel
	inner := text[pos+1 : end]
	if inner == "" {
		return 0, false
	}
	if strings.HasPrefix(inner, "!--") || strings.HasPrefix(inner, "?") || strings.HasPrefix(inner, "!") {
		return end + 1 - pos, true
	}
	name := strings.TrimSuffix(strings.TrimPrefix(inner, "/"), "/")
	tag := scanTagName(name)
	if tag == "" {
		return 0, false
	}
	if after := name[len(tag):]; after != "" && after[0] != ' ' && after[0] != '\t' && after[0] != '\n' {
		return 0, false
	}
	return end + 1 - pos, true
}

func scanTagName(s string) string {
	if s == "" || !isASCIILetter(s[0]) {
		return ""
	}
	i := 1
	for i < len(s) && (isASCIILetter(s[i]) || isASCIIDigit(s[i]) || s[i] == '-') {
		i++
	}
	return s[:i]
}

// matchAutoLinkText matches "<scheme:rest>" where scheme is a
// letter followed by letters, digits, '+', '-', or '.'.
func matchAutoLinkText(text string, pos int) (target string, total int, ok bool) {
	if text[pos] != '<' {
		return "", 0, false
	}
	rel := strings.IndexByte(text[pos:], '>')
	if rel < 0 {
		return "", 0, false
	}
	end := pos + rel
	inner := text[pos+1 : end]
	if !looksLikeAutoLink(inner) {
		return "", 0, false
	}
	return inner, end + 1 - pos, true
}

func looksLikeAutoLink(inner string) bool {
	c := strings.IndexByte(inner, ':')
	if c < 2 {
		return false
	}
	scheme := inner[:c]
	if !isASCIILetter(scheme[0]) {
		return false
	}
	for i := 1; i < len(scheme); i++ {
		ch := scheme[i]
		if !isASCIILetter(ch) && !isASCIIDigit(ch) && ch != '+' && ch != '-' && ch != '.' {
			return false
		}
	}
	for i := c + 1; i < len(inner); i++ {
		if inner[i] == ' ' || inner[i] == '<' || inner[i] == '>' {
			return false
		}
	}
	return true
}

// findMatchingBracket finds the ']' matching the '[' at openPos,
// tolerating nested brackets and backslash escapes.
func findMatchingBracket(text string, openPos int) (int, bool) {
	depth := 0
	i := openPos
	for i < len(text) {
		switch text[i] {
		case '\\':
			i += 2
			continue
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
		i++
	}
	return 0, false
}

// parseInlineTarget parses a "(target [title])" group starting at rest[0]
// == '(', returning the consumed length including both parentheses.
func parseInlineTarget(rest string) (target, title string, length int, ok bool) {
	if rest == "" || rest[0] != '(' {
		return "", "", 0, false
	}
	i := 1
	for i < len(rest) && rest[i] == ' ' {
		i++
	}
	var b strings.Builder
	if i < len(rest) && rest[i] == '<' {
		i++
		for i < len(rest) && rest[i] != '>' {
			b.WriteByte(rest[i])
			i++
		}
		if i >= len(rest) {
			return "", "", 0, false
		}
		i++
	} else {
		depth := 0
		for i < len(rest) {
			ch := rest[i]
			if ch == ' ' && depth == 0 {
				break
			}
			if ch == ')' && depth == 0 {
				break
			}
			if ch == '(' {
				depth++
			}
			if ch == ')' {
				depth--
			}
			b.WriteByte(ch)
			i++
		}
	}
	target = b.String()
	for i < len(rest) && rest[i] == ' ' {
		i++
	}
	if i < len(rest) && (rest[i] == '"' || rest[i] == '\'') {
		q := rest[i]
		i++
		start := i
		for i < len(rest) && rest[i] != q {
			i++
		}
		if i >= len(rest) {
			return "", "", 0, false
		}
		title = rest[start:i]
		i++
		for i < len(rest) && rest[i] == ' ' {
			i++
		}
	}
	if i >= len(rest) || rest[i] != ')' {
		return "", "", 0, false
	}
	i++
	return target, title, i, true
}

// matchLink matches "[text](target [title])", "[text][ref]", or the
// shortcut "[ref]" (a single space is permitted between the label and a
// reference form, per SPEC_FULL.md Section C). The direct form yields
// LinkKind outright; the reference forms yield FootnoteLinkKind, resolved
// against Document.footnotes on first Children() access.
func matchLink(doc *Document, text string, pos int) (*Span, int, bool) {
	if text[pos] != '[' {
		return nil, 0, false
	}
	labelEnd, ok := findMatchingBracket(text, pos)
	if !ok {
		return nil, 0, false
	}
	label := text[pos+1 : labelEnd]
	rest := text[labelEnd+1:]
	if strings.HasPrefix(rest, "(") {
		target, title, n, ok := parseInlineTarget(rest)
		if !ok {
			return nil, 0, false
		}
		total := (labelEnd + 1 - pos) + n
		return &Span{kind: LinkKind, doc: doc, text: label, target: target, title: title}, total, true
	}
	skip := 0
	r2 := rest
	if strings.HasPrefix(r2, " ") {
		r2 = r2[1:]
		skip = 1
	}
	if strings.HasPrefix(r2, "[") {
		refEnd := strings.IndexByte(r2, ']')
		if refEnd >= 0 {
			ref := r2[1:refEnd]
			if ref == "" {
				ref = label
			}
			total := (labelEnd + 1 - pos) + skip + refEnd + 1
			return &Span{kind: FootnoteLinkKind, doc: doc, text: label, refKey: ref, content: text[pos : pos+total]}, total, true
		}
	}
	total := labelEnd + 1 - pos
	return &Span{kind: FootnoteLinkKind, doc: doc, text: label, refKey: label, content: text[pos : pos+total]}, total, true
}

// matchImage mirrors matchLink for "![alt](src [title])" or
// "![alt][ref]"/"![ref]", producing ImageKind (direct) or
// FootnoteAnchorKind (reference).
func matchImage(doc *Document, text string, pos int) (*Span, int, bool) {
	if pos+1 >= len(text) || text[pos] != '!' || text[pos+1] != '[' {
		return nil, 0, false
	}
	labelEnd, ok := findMatchingBracket(text, pos+1)
	if !ok {
		return nil, 0, false
	}
	alt := text[pos+2 : labelEnd]
	rest := text[labelEnd+1:]
	if strings.HasPrefix(rest, "(") {
		target, title, n, ok := parseInlineTarget(rest)
		if !ok {
			return nil, 0, false
		}
		total := (labelEnd + 1 - pos) + n
		return &Span{kind: ImageKind, doc: doc, text: alt, src: target, title: title}, total, true
	}
	skip := 0
	r2 := rest
	if strings.HasPrefix(r2, " ") {
		r2 = r2[1:]
		skip = 1
	}
	if strings.HasPrefix(r2, "[") {
		refEnd := strings.IndexByte(r2, ']')
		if refEnd >= 0 {
			ref := r2[1:refEnd]
			if ref == "" {
				ref = alt
			}
			total := (labelEnd + 1 - pos) + skip + refEnd + 1
			return &Span{kind: FootnoteAnchorKind, doc: doc, text: alt, refKey: ref, content: text[pos : pos+total]}, total, true
		}
	}
	total := labelEnd + 1 - pos
	return &Span{kind: FootnoteAnchorKind, doc: doc, text: alt, refKey: alt, content: text[pos : pos+total]}, total, true
}

// matchStrong matches "**inner**" (or "__inner__"). A run of three or
// more delimiters ("***inner***") is treated as Strong nesting one level
// of Emphasis: the inner payload is re-wrapped in a single delimiter
// before being stored, so Strong's own lazy Children() call re-tokenizes
// it and produces the Emphasis the ordinary way (SPEC_FULL.md Section C).
func matchStrong(text string, pos int) (inner string, total int, ok bool) {
	c := text[pos]
	if c != '*' && c != '_' {
		return "", 0, false
	}
	n := 0
	for pos+n < len(text) && text[pos+n] == c {
		n++
	}
	if n < 2 {
		return "", 0, false
	}
	if n >= 3 {
		marker := string(c) + string(c) + string(c)
		rel := strings.Index(text[pos+3:], marker)
		if rel >= 0 {
			closeIdx := pos + 3 + rel
			core := text[pos+3 : closeIdx]
			if core != "" {
				return string(c) + core + string(c), closeIdx + 3 - pos, true
			}
		}
	}
	rel := strings.Index(text[pos+2:], string(c)+string(c))
	if rel < 0 {
		return "", 0, false
	}
	closeIdx := pos + 2 + rel
	inner = text[pos+2 : closeIdx]
	if inner == "" {
		return "", 0, false
	}
	return inner, closeIdx + 2 - pos, true
}

func matchEmphasis(text string, pos int) (inner string, total int, ok bool) {
	c := text[pos]
	if c != '*' && c != '_' {
		return "", 0, false
	}
	rel := strings.IndexByte(text[pos+1:], c)
	if rel < 0 {
		return "", 0, false
	}
	closeIdx := pos + 1 + rel
	inner = text[pos+1 : closeIdx]
	if inner == "" {
		return "", 0, false
	}
	return inner, closeIdx + 1 - pos, true
}

func matchStrikethrough(text string, pos int) (inner string, total int, ok bool) {
	if text[pos] != '~' {
		return "", 0, false
	}
	if pos+1 >= len(text) || text[pos+1] != '~' {
		return "", 0, false
	}
	rel := strings.Index(text[pos+2:], "~~")
	if rel < 0 {
		return "", 0, false
	}
	closeIdx := pos + 2 + rel
	inner = text[pos+2 : closeIdx]
	if inner == "" {
		return "", 0, false
	}
	return inner, closeIdx + 2 - pos, true
}

// matchDashStrikethrough matches JIRA wiki markup's native single-dash
// "-text-" strikethrough form. Block-level matchers (Separator, List) see
// the line before any span pattern runs, so a line-initial '-' is always
// read as a marker first; this only fires on a '-' that survived into a
// block's inline text (SPEC_FULL.md Section D.2, mistletoe's
// test_render_strikethrough).
func matchDashStrikethrough(text string, pos int) (inner string, total int, ok bool) {
	if text[pos] != '-' {
		return "", 0, false
	}
	rel := strings.IndexByte(text[pos+1:], '-')
	if rel < 0 {
		return "", 0, false
	}
	closeIdx := pos + 1 + rel
	inner = text[pos+1 : closeIdx]
	if inner == "" {
		return "", 0, false
	}
	return inner, closeIdx + 1 - pos, true
}

// DashStrikethroughPattern is the SpanPattern a renderer registers to
// recognize matchDashStrikethrough; render/jira registers it in New so
// JIRA's own "-text-" convention round-trips instead of requiring the
// CommonMark "~~text~~" spelling.
var DashStrikethroughPattern = SpanPattern{
	Name: "jira-dash-strikethrough",
	Match: func(text string, pos int) (Token, int, bool) {
		inner, total, ok := matchDashStrikethrough(text, pos)
		if !ok {
			return nil, 0, false
		}
		return &Span{kind: StrikethroughKind, text: inner}, total, true
	},
}

// matchLineBreak matches a hard line break: two or more trailing spaces
// followed by a newline.
func matchLineBreak(text string, pos int) (int, bool) {
	if text[pos] != ' ' {
		return 0, false
	}
	i := pos
	for i < len(text) && text[i] == ' ' {
		i++
	}
	if i-pos < 2 {
		return 0, false
	}
	if i >= len(text) || text[i] != '\n' {
		return 0, false
	}
	return i + 1 - pos, true
}

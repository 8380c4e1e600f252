package mdtree

import (
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"
)

// tokenize runs the block matcher chain over lines in precedence order,
// per spec.md §4.2: Heading, SetextHeading, CodeFence, BlockCode,
// Separator, Quote, List, Table, FootnoteBlock, HTMLBlock, then Paragraph
// as the unconditional fallback.
func tokenize(doc *Document, lines []string) []Token {
	r := &lineReader{lines: lines}
	var toks []Token
	for {
		line, ok := r.peek()
		if !ok {
			break
		}
		if isBlank(line) {
			r.next()
			continue
		}
		if tok := matchOne(doc, r); tok != nil {
			toks = append(toks, tok)
			continue
		}
		// Unreachable in practice: Paragraph always matches non-blank
		// content. Guards against an infinite loop if that invariant is
		// ever violated.
		r.next()
	}
	return toks
}

// tokenizeListItem runs the same matcher chain as tokenize, except that a
// Paragraph immediately produced joins its continuation lines with a
// single space rather than keeping their raw newlines (SPEC_FULL.md
// Section C: mistletoe's observed list-item whitespace behavior).
func tokenizeListItem(doc *Document, lines []string) []Token {
	toks := tokenize(doc, lines)
	for _, t := range toks {
		if b, ok := t.(*Block); ok && b.kind == ParagraphKind {
			b.text = joinLinesWithSpace(splitLines(b.text))
		}
	}
	return toks
}

func matchOne(doc *Document, r *lineReader) Token {
	if tok, ok := matchHeading(doc, r); ok {
		return tok
	}
	if tok, ok := matchSetextHeading(doc, r); ok {
		return tok
	}
	if tok, ok := matchCodeFence(doc, r); ok {
		return tok
	}
	if tok, ok := matchBlockCode(doc, r); ok {
		return tok
	}
	if tok, ok := matchSeparator(doc, r); ok {
		return tok
	}
	if tok, ok := matchQuote(doc, r); ok {
		return tok
	}
	if tok, ok := matchList(doc, r); ok {
		return tok
	}
	if tok, ok := matchTable(doc, r); ok {
		return tok
	}
	if tok, ok := matchFootnoteBlock(doc, r); ok {
		return tok
	}
	if tok, ok := matchHTMLBlock(doc, r); ok {
		return tok
	}
	if tok, ok := matchParagraph(doc, r); ok {
		return tok
	}
	return nil
}

// startsNewBlock reports whether an already-EOL-trimmed line would start a
// new block other than a Paragraph continuation, used by matchParagraph
// and matchList to decide where a run of continuation lines ends.
func startsNewBlock(trimmed string) bool {
	if isBlank(trimmed) {
		return true
	}
	stripped := trimmed
	for i := 0; i < 3 && strings.HasPrefix(stripped, " "); i++ {
		stripped = stripped[1:]
	}
	if isATXStart(stripped) {
		return true
	}
	if isFenceOpen(stripped) {
		return true
	}
	if isSeparatorLine(stripped) {
		return true
	}
	if isQuoteStart(stripped) {
		return true
	}
	if _, ok := matchListMarker(stripped); ok {
		return true
	}
	return false
}

func isATXStart(line string) bool {
	i := 0
	for i < len(line) && line[i] == '#' {
		i++
	}
	if i == 0 || i > 6 {
		return false
	}
	return i == len(line) || line[i] == ' ' || line[i] == '\t'
}

func isFenceOpen(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return false
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return false
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == c {
		n++
	}
	return n >= 3
}

func isSeparatorLine(line string) bool {
	_, ok := matchSeparatorText(line)
	return ok
}

func isQuoteStart(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	return strings.HasPrefix(trimmed, ">")
}

// matchHeading recognizes an ATX heading: 1-6 '#' characters, a space or
// end of line, then the heading text with any trailing run of '#'
// stripped.
func matchHeading(doc *Document, r *lineReader) (*Block, bool) {
	a := r.anchorHere()
	line, ok := r.peek()
	if !ok {
		r.reset(a)
		return nil, false
	}
	trimmed := trimEOL(line)
	stripped := trimmed
	indent := 0
	for indent < 3 && strings.HasPrefix(stripped, " ") {
		stripped = stripped[1:]
		indent++
	}
	if !isATXStart(stripped) {
		r.reset(a)
		return nil, false
	}
	level := 0
	for level < len(stripped) && stripped[level] == '#' {
		level++
	}
	text := strings.TrimSpace(stripped[level:])
	text = stripTrailingHashes(text)
	r.next()
	return &Block{kind: HeadingKind, doc: doc, level: level, text: text}, true
}

func stripTrailingHashes(text string) string {
	trimmed := strings.TrimRight(text, " ")
	i := len(trimmed)
	for i > 0 && trimmed[i-1] == '#' {
		i--
	}
	if i < len(trimmed) && (i == 0 || trimmed[i-1] == ' ') {
		return strings.TrimRight(trimmed[:i], " ")
	}
	return trimmed
}

// matchSetextHeading recognizes a paragraph-shaped run of text lines
// followed by an underline of '=' (level 1) or '-' (level 2). Tried before
// Separator so that a lone "---" after collected text is read as an
// underline rather than a thematic break; a bare "---" with nothing above
// it falls through (no collected lines) to Separator instead.
func matchSetextHeading(doc *Document, r *lineReader) (*Block, bool) {
	a := r.anchorHere()
	var collected []string
	for {
		line, ok := r.peek()
		if !ok {
			break
		}
		trimmed := trimEOL(line)
		if isBlank(trimmed) {
			break
		}
		if level, isUnderline := setextUnderlineLevel(trimmed); isUnderline {
			if len(collected) == 0 {
				break
			}
			r.next()
			text := strings.Join(collected, "")
			return &Block{kind: SetextHeadingKind, doc: doc, level: level, text: strings.TrimRight(text, "\n")}, true
		}
		if len(collected) > 0 && startsNewBlock(trimmed) {
			break
		}
		if isATXStart(trimmed) || isFenceOpen(trimmed) || isQuoteStart(trimmed) {
			break
		}
		if _, ok := matchListMarker(trimmed); ok {
			break
		}
		collected = append(collected, line)
		r.next()
	}
	r.reset(a)
	return nil, false
}

func setextUnderlineLevel(line string) (int, bool) {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return 0, false
	}
	if allChar(trimmed, '=') {
		return 1, true
	}
	if allChar(trimmed, '-') {
		return 2, true
	}
	return 0, false
}

func allChar(s string, c byte) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			return false
		}
	}
	return true
}

// matchCodeFence recognizes a fenced code block: an opening run of 3+
// backticks or tildes, an optional info string, verbatim content lines up
// to a closing run of the same character at least as long, or to end of
// input (an unclosed fence still yields its collected content, per
// SPEC_FULL.md Section C).
func matchCodeFence(doc *Document, r *lineReader) (*Block, bool) {
	a := r.anchorHere()
	line, ok := r.peek()
	if !ok {
		r.reset(a)
		return nil, false
	}
	trimmed := trimEOL(line)
	stripped := strings.TrimLeft(trimmed, " ")
	leadSpaces := len(trimmed) - len(stripped)
	if leadSpaces > 3 {
		r.reset(a)
		return nil, false
	}
	if stripped == "" || (stripped[0] != '`' && stripped[0] != '~') {
		r.reset(a)
		return nil, false
	}
	fenceChar := stripped[0]
	n := 0
	for n < len(stripped) && stripped[n] == fenceChar {
		n++
	}
	if n < 3 {
		r.reset(a)
		return nil, false
	}
	info := strings.TrimSpace(stripped[n:])
	if fenceChar == '`' && strings.ContainsRune(info, '`') {
		r.reset(a)
		return nil, false
	}
	r.next()
	var content []string
	for {
		l, ok := r.peek()
		if !ok {
			break
		}
		lt := trimEOL(l)
		if isClosingFence(lt, fenceChar, n) {
			r.next()
			break
		}
		content = append(content, l)
		r.next()
	}
	return &Block{kind: CodeFenceKind, doc: doc, language: info, content: strings.Join(content, ""), fenceLen: n, fenceChar: fenceChar}, true
}

func isClosingFence(line string, fenceChar byte, minLen int) bool {
	stripped := strings.TrimLeft(line, " ")
	if len(line)-len(stripped) > 3 {
		return false
	}
	n := 0
	for n < len(stripped) && stripped[n] == fenceChar {
		n++
	}
	return n >= minLen && n == len(stripped)
}

// matchBlockCode recognizes an indented code block: a maximal run of
// lines each indented at least 4 columns (after any enclosing indent has
// already been stripped by the caller), blank lines inside the run kept
// verbatim.
func matchBlockCode(doc *Document, r *lineReader) (*Block, bool) {
	a := r.anchorHere()
	line, ok := r.peek()
	if !ok || isBlank(line) || indentWidth(trimEOL(line)) < 4 {
		r.reset(a)
		return nil, false
	}
	var content []string
	for {
		l, ok := r.peek()
		if !ok {
			break
		}
		if isBlank(l) {
			// A blank line only continues the block if a further indented
			// line follows; otherwise it ends the run.
			save := r.anchorHere()
			r.next()
			next, ok := r.peek()
			if ok && !isBlank(next) && indentWidth(trimEOL(next)) >= 4 {
				content = append(content, "\n")
				continue
			}
			r.reset(save)
			break
		}
		if indentWidth(trimEOL(l)) < 4 {
			break
		}
		content = append(content, stripIndent(l, 4))
		r.next()
	}
	return &Block{kind: BlockCodeKind, doc: doc, content: strings.Join(content, "")}, true
}

// matchSeparator recognizes a thematic break: a line (after up to 3
// leading spaces) of 3+ of the same character among '*', '-', '_',
// optionally space-separated.
func matchSeparator(doc *Document, r *lineReader) (*Block, bool) {
	a := r.anchorHere()
	line, ok := r.peek()
	if !ok {
		r.reset(a)
		return nil, false
	}
	trimmed := trimEOL(line)
	if _, ok := matchSeparatorText(trimmed); !ok {
		r.reset(a)
		return nil, false
	}
	r.next()
	return &Block{kind: SeparatorKind, doc: doc}, true
}

func matchSeparatorText(line string) (byte, bool) {
	stripped := line
	for i := 0; i < 3 && strings.HasPrefix(stripped, " "); i++ {
		stripped = stripped[1:]
	}
	stripped = strings.TrimRight(stripped, " ")
	if stripped == "" {
		return 0, false
	}
	marker := stripped[0]
	if marker != '*' && marker != '-' && marker != '_' {
		return 0, false
	}
	count := 0
	for _, c := range stripped {
		switch {
		case byte(c) == marker:
			count++
		case c == ' ':
		default:
			return 0, false
		}
	}
	if count < 3 {
		return 0, false
	}
	return marker, true
}

// matchQuote recognizes a blockquote: a maximal run of lines starting
// with (up to 3 leading spaces then) '>', the marker and one following
// space stripped from each, with lazy continuation — a line lacking the
// marker still joins the quote when at least one quoted line precedes it
// and the line itself would not start a new block (startsNewBlock). The
// kind of the quote's last child is not checked: a lazy line also joins
// after a quoted heading or fence line.
func matchQuote(doc *Document, r *lineReader) (*Block, bool) {
	a := r.anchorHere()
	line, ok := r.peek()
	if !ok || !isQuoteStart(trimEOL(line)) {
		r.reset(a)
		return nil, false
	}
	var content []string
	lastWasQuoted := false
	for {
		l, ok := r.peek()
		if !ok {
			break
		}
		lt := trimEOL(l)
		if isQuoteStart(lt) {
			content = append(content, stripQuoteMarker(l))
			lastWasQuoted = true
			r.next()
			continue
		}
		if isBlank(lt) {
			break
		}
		if lastWasQuoted && !startsNewBlock(lt) {
			content = append(content, l)
			r.next()
			continue
		}
		break
	}
	return &Block{kind: QuoteKind, doc: doc, lines: content}, true
}

func stripQuoteMarker(line string) string {
	stripped := line
	for i := 0; i < 3 && strings.HasPrefix(stripped, " "); i++ {
		stripped = stripped[1:]
	}
	stripped = stripped[1:] // the '>'
	if strings.HasPrefix(stripped, " ") {
		stripped = stripped[1:]
	} else if strings.HasPrefix(stripped, "\t") {
		stripped = stripped[1:]
	}
	return stripped
}

// listMarkerInfo describes a recognized list item marker: bulleted or
// ordered, its start ordinal when ordered, and the column width consumed
// by the marker and its trailing whitespace (used to compute how much of
// each continuation line's indentation belongs to the item).
type listMarkerInfo struct {
	ordered bool
	start   int
	width   int
}

func matchListMarker(trimmed string) (listMarkerInfo, bool) {
	stripped := trimmed
	indent := 0
	for indent < 3 && strings.HasPrefix(stripped, " ") {
		stripped = stripped[1:]
		indent++
	}
	if stripped == "" {
		return listMarkerInfo{}, false
	}
	if c := stripped[0]; c == '-' || c == '*' || c == '+' {
		if len(stripped) > 1 && stripped[1] != ' ' && stripped[1] != '\t' {
			return listMarkerInfo{}, false
		}
		width := indent + 1
		rest := stripped[1:]
		ws := 0
		for ws < len(rest) && (rest[ws] == ' ' || rest[ws] == '\t') {
			ws++
		}
		if ws == 0 && rest != "" {
			return listMarkerInfo{}, false
		}
		if ws > 4 {
			ws = 1
		}
		if rest == "" {
			ws = 1
		}
		return listMarkerInfo{ordered: false, width: width + ws}, true
	}
	i := 0
	for i < len(stripped) && isASCIIDigit(stripped[i]) {
		i++
	}
	if i == 0 || i > 9 {
		return listMarkerInfo{}, false
	}
	if i >= len(stripped) || (stripped[i] != '.' && stripped[i] != ')') {
		return listMarkerInfo{}, false
	}
	if i+1 < len(stripped) && stripped[i+1] != ' ' && stripped[i+1] != '\t' {
		return listMarkerInfo{}, false
	}
	n, _ := strconv.Atoi(stripped[:i])
	width := indent + i + 1
	rest := stripped[i+1:]
	ws := 0
	for ws < len(rest) && (rest[ws] == ' ' || rest[ws] == '\t') {
		ws++
	}
	if ws == 0 && rest != "" {
		return listMarkerInfo{}, false
	}
	if ws > 4 {
		ws = 1
	}
	if rest == "" {
		ws = 1
	}
	return listMarkerInfo{ordered: true, start: n, width: width + ws}, true
}

// matchList recognizes a maximal run of same-type list items. Each item's
// own lines are re-indented (the marker and its trailing whitespace
// stripped) and handed to ListItem, whose own Children() call re-invokes
// tokenize on them — nested lists, quotes, and code blocks fall out of
// that recursive call with no extra bookkeeping here. An under-indented
// line still attaches to the current item when the item's last line was
// non-blank and the line itself would not start a new block; whether that
// last line belongs to a paragraph (rather than, say, a heading) is not
// checked, the same approximation matchQuote uses for blockquote lines.
func matchList(doc *Document, r *lineReader) (*Block, bool) {
	a := r.anchorHere()
	line, ok := r.peek()
	if !ok {
		r.reset(a)
		return nil, false
	}
	first, ok := matchListMarker(trimEOL(line))
	if !ok {
		r.reset(a)
		return nil, false
	}
	var groups [][]string
	var cur []string
	width := first.width
	openParagraph := false
	for {
		l, ok := r.peek()
		if !ok {
			break
		}
		lt := trimEOL(l)
		if m, ok := matchListMarker(lt); ok && sameListType(first, m) {
			if cur != nil {
				groups = append(groups, trimLeadingBlank(cur))
			}
			content := stripBytes(l, m.width)
			cur = []string{content}
			width = m.width
			openParagraph = !isBlank(content)
			r.next()
			continue
		}
		if isBlank(lt) {
			cur = append(cur, l)
			openParagraph = false
			r.next()
			continue
		}
		if indentWidth(lt) >= width {
			content := stripBytes(l, width)
			cur = append(cur, content)
			openParagraph = !isBlank(content)
			r.next()
			continue
		}
		if openParagraph && !startsNewBlock(lt) {
			cur = append(cur, l)
			r.next()
			continue
		}
		break
	}
	if cur != nil {
		groups = append(groups, trimLeadingBlank(cur))
	}
	start := first.start
	var startPtr *int
	if first.ordered {
		startPtr = &start
	}
	return &Block{kind: ListKind, doc: doc, start: startPtr, itemGroups: groups}, true
}

func sameListType(a, b listMarkerInfo) bool {
	return a.ordered == b.ordered
}

func trimLeadingBlank(lines []string) []string {
	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	return lines
}

// parseFootnoteDefLine recognizes a single "[<key>]: <value>" line, with
// an optional double- or single-quoted title following the value.
func parseFootnoteDefLine(line string) (key, value, title string, ok bool) {
	trimmed := strings.TrimSpace(trimEOL(line))
	if !strings.HasPrefix(trimmed, "[") {
		return "", "", "", false
	}
	end := strings.IndexByte(trimmed, ']')
	if end < 0 {
		return "", "", "", false
	}
	key = trimmed[1:end]
	rest := trimmed[end+1:]
	if !strings.HasPrefix(rest, ":") {
		return "", "", "", false
	}
	rest = strings.TrimSpace(rest[1:])
	if rest == "" {
		return "", "", "", false
	}
	if titleStart := findTitleStart(rest); titleStart >= 0 {
		value = strings.TrimSpace(rest[:titleStart])
		q := rest[titleStart]
		inner := rest[titleStart+1:]
		closeIdx := strings.IndexByte(inner, q)
		if closeIdx >= 0 {
			title = inner[:closeIdx]
		}
	} else {
		value = rest
	}
	if value == "" {
		return "", "", "", false
	}
	return key, value, title, true
}

func findTitleStart(rest string) int {
	t := strings.TrimRight(rest, " ")
	if len(t) < 2 {
		return -1
	}
	q := t[len(t)-1]
	if q != '"' && q != '\'' {
		return -1
	}
	// The opening quote is the previous occurrence of the closing quote's
	// character, and only counts if whitespace separates it from value.
	idx := strings.LastIndexByte(t[:len(t)-1], q)
	if idx <= 0 || t[idx-1] != ' ' {
		return -1
	}
	return idx
}

// matchFootnoteBlock recognizes a maximal run of footnote-definition
// lines and defers per-line parsing to FootnoteBlock.Children(), so a
// FootnoteBlock's stored lines are the raw source lines.
func matchFootnoteBlock(doc *Document, r *lineReader) (*Block, bool) {
	a := r.anchorHere()
	line, ok := r.peek()
	if !ok {
		r.reset(a)
		return nil, false
	}
	if _, _, _, ok := parseFootnoteDefLine(line); !ok {
		r.reset(a)
		return nil, false
	}
	var lines []string
	for {
		l, ok := r.peek()
		if !ok {
			break
		}
		if _, _, _, ok := parseFootnoteDefLine(l); !ok {
			break
		}
		lines = append(lines, l)
		r.next()
	}
	return &Block{kind: FootnoteBlockKind, doc: doc, lines: lines}, true
}

// htmlBlockStarters is the set of tag names that open an HTML block,
// built from golang.org/x/net/html/atom the same way the teacher's own
// parse_html.go builds its block-starter tables.
var htmlBlockStarters = []string{
	atom.Address.String(), atom.Article.String(), atom.Aside.String(),
	atom.Base.String(), atom.Basefont.String(), atom.Blockquote.String(),
	atom.Body.String(), atom.Caption.String(), atom.Center.String(),
	atom.Col.String(), atom.Colgroup.String(), atom.Dd.String(),
	atom.Details.String(), atom.Dialog.String(), atom.Dir.String(),
	atom.Div.String(), atom.Dl.String(), atom.Dt.String(),
	atom.Fieldset.String(), atom.Figcaption.String(), atom.Figure.String(),
	atom.Footer.String(), atom.Form.String(), atom.Frame.String(),
	atom.Frameset.String(), atom.H1.String(), atom.H2.String(),
	atom.H3.String(), atom.H4.String(), atom.H5.String(), atom.H6.String(),
	atom.Head.String(), atom.Header.String(), atom.Hr.String(),
	atom.Html.String(), atom.Iframe.String(), atom.Legend.String(),
	atom.Li.String(), atom.Link.String(), atom.Main.String(),
	atom.Menu.String(), atom.Menuitem.String(), atom.Nav.String(),
	atom.Noframes.String(), atom.Ol.String(), atom.Optgroup.String(),
	atom.Option.String(), atom.P.String(), atom.Param.String(),
	atom.Section.String(), atom.Summary.String(), atom.Table.String(),
	atom.Tbody.String(), atom.Td.String(), atom.Tfoot.String(),
	atom.Th.String(), atom.Thead.String(), atom.Title.String(),
	atom.Tr.String(), atom.Ul.String(),
}

var htmlBlockStartersPreformatted = []string{"pre", "script", "style", "textarea"}

// matchHTMLBlock recognizes a maximal run of lines starting with an
// opening or closing tag whose name is a known block-level element, a
// comment, or a processing instruction; the raw lines are kept verbatim
// as HTMLBlock's content (no HTML parsing beyond tag-name sniffing).
func matchHTMLBlock(doc *Document, r *lineReader) (*Block, bool) {
	a := r.anchorHere()
	line, ok := r.peek()
	if !ok || !isHTMLBlockOpen(trimEOL(line)) {
		r.reset(a)
		return nil, false
	}
	var lines []string
	for {
		l, ok := r.peek()
		if !ok {
			break
		}
		if isBlank(l) {
			break
		}
		lines = append(lines, l)
		r.next()
	}
	return &Block{kind: HTMLBlockKind, doc: doc, content: strings.Join(lines, "")}, true
}

func isHTMLBlockOpen(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if !strings.HasPrefix(trimmed, "<") {
		return false
	}
	if strings.HasPrefix(trimmed, "<!--") || strings.HasPrefix(trimmed, "<?") || strings.HasPrefix(trimmed, "<!") {
		return true
	}
	rest := trimmed[1:]
	rest = strings.TrimPrefix(rest, "/")
	name := scanTagName(rest)
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, starter := range htmlBlockStartersPreformatted {
		if lower == starter {
			return true
		}
	}
	for _, starter := range htmlBlockStarters {
		if lower == starter {
			return true
		}
	}
	return false
}

// matchParagraph is the unconditional fallback: a maximal run of
// non-blank lines, the first always consumed (every higher-precedence
// matcher has already failed on it), later lines stopping at anything
// that would start a new block.
func matchParagraph(doc *Document, r *lineReader) (*Block, bool) {
	var lines []string
	for {
		line, ok := r.peek()
		if !ok {
			break
		}
		if isBlank(line) {
			break
		}
		if len(lines) > 0 && startsNewBlock(trimEOL(line)) {
			break
		}
		lines = append(lines, line)
		r.next()
	}
	if len(lines) == 0 {
		return nil, false
	}
	return &Block{kind: ParagraphKind, doc: doc, text: strings.Join(lines, "")}, true
}

// ParseAlign reports a table delimiter cell's declared alignment, per
// spec.md §8's testable property: a leading and trailing ':' is center, a
// trailing-only ':' is right, anything else (including leading-only) is
// AlignNone.
func ParseAlign(cell string) Align {
	c := strings.TrimSpace(cell)
	left := strings.HasPrefix(c, ":")
	right := strings.HasSuffix(c, ":")
	switch {
	case left && right:
		return AlignCenter
	case right:
		return AlignRight
	default:
		return AlignNone
	}
}

// SplitDelimiterRow splits a table delimiter row into its per-column
// cells, stripping the row's own leading/trailing '|' and surrounding
// whitespace from each cell.
func SplitDelimiterRow(line string) []string {
	t := strings.TrimSpace(trimEOL(line))
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")
	parts := strings.Split(t, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func isValidDelimCell(cell string) bool {
	c := strings.TrimSpace(cell)
	if c == "" {
		return false
	}
	i := 0
	if c[i] == ':' {
		i++
	}
	j := len(c)
	if j > i && c[j-1] == ':' {
		j--
	}
	if j <= i {
		return false
	}
	for k := i; k < j; k++ {
		if c[k] != '-' {
			return false
		}
	}
	return true
}

func looksLikeTableRow(line string) bool {
	return !isBlank(line) && strings.Contains(line, "|")
}

func splitRowCells(line string, want int) []string {
	t := strings.TrimSpace(line)
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")
	parts := strings.Split(t, "|")
	cells := make([]string, want)
	for i := 0; i < want; i++ {
		if i < len(parts) {
			cells[i] = strings.TrimSpace(parts[i])
		}
	}
	return cells
}

// matchTable recognizes a GFM-style pipe table: a header row, a
// delimiter row whose cells are each a run of '-' optionally bracketed by
// ':', then a maximal run of body rows. Rows with too few cells are
// padded empty; rows with too many have the extras dropped.
func matchTable(doc *Document, r *lineReader) (*Block, bool) {
	a := r.anchorHere()
	headerLine, ok := r.peek()
	if !ok {
		r.reset(a)
		return nil, false
	}
	headerTrim := trimEOL(headerLine)
	if !looksLikeTableRow(headerTrim) {
		r.reset(a)
		return nil, false
	}
	r.next()
	delimLine, ok := r.peek()
	if !ok {
		r.reset(a)
		return nil, false
	}
	delimTrim := trimEOL(delimLine)
	delimCells := SplitDelimiterRow(delimTrim)
	if len(delimCells) == 0 {
		r.reset(a)
		return nil, false
	}
	for _, c := range delimCells {
		if !isValidDelimCell(c) {
			r.reset(a)
			return nil, false
		}
	}
	align := make([]Align, len(delimCells))
	for i, c := range delimCells {
		align[i] = ParseAlign(c)
	}
	r.next()
	rows := [][]string{splitRowCells(headerTrim, len(align))}
	for {
		l, ok := r.peek()
		if !ok {
			break
		}
		lt := trimEOL(l)
		if !looksLikeTableRow(lt) {
			break
		}
		rows = append(rows, splitRowCells(lt, len(align)))
		r.next()
	}
	return &Block{kind: TableKind, doc: doc, hasHeader: true, align: align, rowCells: rows}, true
}

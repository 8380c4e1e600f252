package mdtree

import "testing"

func TestTokenizeHeading(t *testing.T) {
	toks := Tokenize([]string{"# heading 3 #####  \n"})
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1", len(toks))
	}
	b, ok := toks[0].(*Block)
	if !ok || b.Kind() != HeadingKind {
		t.Fatalf("got %v, want HeadingKind", toks[0].Kind())
	}
	if b.Level() != 1 {
		t.Fatalf("Level() = %d, want 1", b.Level())
	}
	span := b.Children()
	if len(span) != 1 {
		t.Fatalf("got %d span children, want 1", len(span))
	}
	raw, ok := span[0].(*Span)
	if !ok || raw.Kind() != RawTextKind || raw.Content() != "heading 3" {
		t.Fatalf("heading text = %+v, want %q", span[0], "heading 3")
	}
}

func TestTokenizeSetextHeading(t *testing.T) {
	toks := Tokenize([]string{"Title\n", "=====\n"})
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1", len(toks))
	}
	b := toks[0].(*Block)
	if b.Kind() != SetextHeadingKind || b.Level() != 1 {
		t.Fatalf("got kind=%v level=%d, want SetextHeadingKind level 1", b.Kind(), b.Level())
	}
}

func TestTokenizeCodeFenceUnclosed(t *testing.T) {
	toks := Tokenize([]string{"```go\n", "x := 1\n"})
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1", len(toks))
	}
	b := toks[0].(*Block)
	if b.Kind() != CodeFenceKind {
		t.Fatalf("got %v, want CodeFenceKind", b.Kind())
	}
	if b.Language() != "go" {
		t.Fatalf("Language() = %q, want go", b.Language())
	}
	if b.Content() != "x := 1\n" {
		t.Fatalf("Content() = %q, want %q", b.Content(), "x := 1\n")
	}
}

func TestTokenizeCodeFenceClosed(t *testing.T) {
	toks := Tokenize([]string{"```\n", "line\n", "```\n", "para\n"})
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	if toks[0].Kind() != CodeFenceKind {
		t.Fatalf("toks[0] = %v, want CodeFenceKind", toks[0].Kind())
	}
	if toks[1].Kind() != ParagraphKind {
		t.Fatalf("toks[1] = %v, want ParagraphKind", toks[1].Kind())
	}
}

func TestTokenizeBlockCode(t *testing.T) {
	toks := Tokenize([]string{"    code line\n"})
	if len(toks) != 1 || toks[0].Kind() != BlockCodeKind {
		t.Fatalf("got %v", toks)
	}
	b := toks[0].(*Block)
	if b.Content() != "code line\n" {
		t.Fatalf("Content() = %q", b.Content())
	}
}

func TestTokenizeSeparator(t *testing.T) {
	for _, line := range []string{"---\n", "***\n", "___\n", "- - -\n"} {
		toks := Tokenize([]string{line})
		if len(toks) != 1 || toks[0].Kind() != SeparatorKind {
			t.Fatalf("Tokenize(%q) = %v, want SeparatorKind", line, toks)
		}
	}
}

func TestTokenizeNestedList(t *testing.T) {
	lines := []string{
		"- item 1\n",
		"- item 2\n",
		"    * nested item 1\n",
		"    * nested item 2\n",
		"- item 3\n",
	}
	toks := Tokenize(lines)
	if len(toks) != 1 || toks[0].Kind() != ListKind {
		t.Fatalf("got %v, want one ListKind", toks)
	}
	items := toks[0].Children()
	if len(items) != 3 {
		t.Fatalf("got %d top-level items, want 3", len(items))
	}
	second := items[1].Children()
	var nestedList Token
	for _, c := range second {
		if c.Kind() == ListKind {
			nestedList = c
		}
	}
	if nestedList == nil {
		t.Fatalf("item 2 children = %v, want a nested ListKind", second)
	}
	nestedItems := nestedList.Children()
	if len(nestedItems) != 2 {
		t.Fatalf("got %d nested items, want 2", len(nestedItems))
	}
}

func TestTokenizeQuoteLazyContinuation(t *testing.T) {
	lines := []string{"> quoted line\n", "still quoted\n", "\n", "not quoted\n"}
	toks := Tokenize(lines)
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2 (quote, paragraph)", len(toks))
	}
	if toks[0].Kind() != QuoteKind {
		t.Fatalf("toks[0] = %v, want QuoteKind", toks[0].Kind())
	}
	if toks[1].Kind() != ParagraphKind {
		t.Fatalf("toks[1] = %v, want ParagraphKind", toks[1].Kind())
	}
}

// Mirrors mistletoe's test_lazy_continuation: an under-indented line
// still attaches to the last item as long as that item's last line left
// an open paragraph.
func TestTokenizeListLazyContinuation(t *testing.T) {
	lines := []string{"- list\n", "content\n"}
	toks := Tokenize(lines)
	if len(toks) != 1 || toks[0].Kind() != ListKind {
		t.Fatalf("got %v, want one ListKind", toks)
	}
	items := toks[0].Children()
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	children := items[0].Children()
	var para *Block
	for _, c := range children {
		if b, ok := c.(*Block); ok && b.Kind() == ParagraphKind {
			para = b
		}
	}
	if para == nil {
		t.Fatalf("item children = %v, want a ParagraphKind", children)
	}
	spans := para.Children()
	var text string
	for _, s := range spans {
		text += s.(*Span).Content()
	}
	if text != "list content" {
		t.Fatalf("paragraph text = %q, want %q", text, "list content")
	}
}

func TestParseAlign(t *testing.T) {
	tests := []struct {
		in   string
		want Align
	}{
		{":---:", AlignCenter},
		{"---:", AlignRight},
		{"---", AlignNone},
		{":---", AlignNone},
	}
	for _, tt := range tests {
		if got := ParseAlign(tt.in); got != tt.want {
			t.Errorf("ParseAlign(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSplitDelimiterRow(t *testing.T) {
	got := SplitDelimiterRow("| :--- | :---: | ---: |\n")
	want := []string{":---", ":---:", "---:"}
	if len(got) != len(want) {
		t.Fatalf("SplitDelimiterRow = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenizeTable(t *testing.T) {
	lines := []string{
		"| a | b |\n",
		"|:--:|--:|\n",
		"| 1 | 2 |\n",
	}
	toks := Tokenize(lines)
	if len(toks) != 1 || toks[0].Kind() != TableKind {
		t.Fatalf("got %v, want one TableKind", toks)
	}
	b := toks[0].(*Block)
	if !b.HasHeader() {
		t.Fatal("HasHeader() = false, want true")
	}
	rows := toks[0].Children()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	cells := rows[0].Children()
	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(cells))
	}
	if cells[0].(*Block).CellAlign() != AlignCenter {
		t.Errorf("cell 0 align = %v, want AlignCenter", cells[0].(*Block).CellAlign())
	}
	if cells[1].(*Block).CellAlign() != AlignRight {
		t.Errorf("cell 1 align = %v, want AlignRight", cells[1].(*Block).CellAlign())
	}
}

func TestFootnoteHarvest(t *testing.T) {
	doc := NewDocument([]string{"[key 1]: value 1\n", "[key 2]: value 2\n"})
	fs := doc.Footnotes()
	if fs["key 1"].Target != "value 1" || fs["key 2"].Target != "value 2" {
		t.Fatalf("Footnotes() = %+v, want key 1/key 2 -> value 1/value 2", fs)
	}
}

func TestFootnoteHarvestWithTitle(t *testing.T) {
	doc := NewDocument([]string{`[foo]: bar "a title"` + "\n"})
	fs := doc.Footnotes()
	target := fs["foo"]
	if target.Target != "bar" || target.Title != "a title" {
		t.Fatalf("Footnotes()[foo] = %+v, want Target=bar Title=\"a title\"", target)
	}
}

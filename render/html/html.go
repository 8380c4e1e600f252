// Package html renders an mdtree token tree to HTML, matching the exact
// output strings spec.md §6 calls out (RawText's escaping uses only the
// four entities spec.md lists — no &apos; — unlike the broader
// comparison-oriented escaping in internal/htmlnorm, which exists only to
// make *tests* insensitive to insignificant differences).
package html

import (
	"strconv"
	"strings"

	"go4.org/bytereplacer"

	"github.com/mdtree/mdtree"
)

var escaper = bytereplacer.New(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}

// New builds the HTML render_map (spec.md §6).
func New() *mdtree.Renderer {
	return mdtree.NewRenderer(map[mdtree.Kind]mdtree.HandlerFunc{
		mdtree.DocumentKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return r.RenderInner(tok)
		},
		mdtree.HeadingKind:       renderHeading,
		mdtree.SetextHeadingKind: renderHeading,
		mdtree.ParagraphKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "<p>" + r.RenderInner(tok) + "</p>\n"
		},
		mdtree.QuoteKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "<blockquote>\n" + r.RenderInner(tok) + "</blockquote>\n"
		},
		mdtree.ListKind:     renderList,
		mdtree.ListItemKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "<li>" + r.RenderInner(tok) + "</li>\n"
		},
		mdtree.CodeFenceKind: renderCode,
		mdtree.BlockCodeKind: renderCode,
		mdtree.TableKind:     renderTable,
		mdtree.TableRowKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "<tr>\n" + r.RenderInner(tok) + "</tr>\n"
		},
		mdtree.TableCellKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			b := tok.(*mdtree.Block)
			return `<td align="` + b.CellAlign().String() + `">` + r.RenderInner(tok) + "</td>\n"
		},
		mdtree.SeparatorKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "<hr>\n"
		},
		mdtree.FootnoteBlockKind: suppress,
		mdtree.FootnoteEntryKind: suppress,
		mdtree.HTMLBlockKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return tok.(*mdtree.Block).Content()
		},

		mdtree.StrongKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "<strong>" + r.RenderInner(tok) + "</strong>"
		},
		mdtree.EmphasisKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "<em>" + r.RenderInner(tok) + "</em>"
		},
		mdtree.InlineCodeKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "<code>" + escape(tok.(*mdtree.Span).Content()) + "</code>"
		},
		mdtree.StrikethroughKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "<del>" + r.RenderInner(tok) + "</del>"
		},
		mdtree.LinkKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			s := tok.(*mdtree.Span)
			return `<a href="` + escape(s.Target()) + `">` + r.RenderInner(tok) + "</a>"
		},
		mdtree.AutoLinkKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			s := tok.(*mdtree.Span)
			return `<a href="` + escape(s.Target()) + `">` + r.RenderInner(tok) + "</a>"
		},
		mdtree.ImageKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			s := tok.(*mdtree.Span)
			return `<img src="` + escape(s.Src()) + `" title="` + escape(s.Title()) + `" alt="` + escape(plainText(tok)) + `">`
		},
		mdtree.EscapeSequenceKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return r.RenderInner(tok)
		},
		mdtree.RawTextKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return escape(tok.(*mdtree.Span).Content())
		},
		mdtree.HTMLSpanKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return tok.(*mdtree.Span).Content()
		},
		mdtree.LineBreakKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "<br>\n"
		},
		mdtree.FootnoteAnchorKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			s := tok.(*mdtree.Span)
			if !s.Resolved() {
				return r.RenderInner(tok)
			}
			return `<img src="` + escape(s.Src()) + `" title="` + escape(s.Title()) + `" alt="` + escape(plainText(tok)) + `">`
		},
		mdtree.FootnoteLinkKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			s := tok.(*mdtree.Span)
			if !s.Resolved() {
				return r.RenderInner(tok)
			}
			return `<a href="` + escape(s.Target()) + `">` + r.RenderInner(tok) + "</a>"
		},
	})
}

func suppress(r *mdtree.Renderer, tok mdtree.Token) string { return "" }

func renderHeading(r *mdtree.Renderer, tok mdtree.Token) string {
	b := tok.(*mdtree.Block)
	n := strconv.Itoa(b.Level())
	return "<h" + n + ">" + r.RenderInner(tok) + "</h" + n + ">\n"
}

func renderCode(r *mdtree.Renderer, tok mdtree.Token) string {
	b := tok.(*mdtree.Block)
	inner := escape(b.Content())
	if b.Language() == "" {
		return "<pre>\n<code>\n" + inner + "</code>\n</pre>\n"
	}
	return "<pre>\n<code class=\"lang-" + b.Language() + "\">\n" + inner + "</code>\n</pre>\n"
}

func renderList(r *mdtree.Renderer, tok mdtree.Token) string {
	b := tok.(*mdtree.Block)
	if b.Start() == nil {
		return "<ul>\n" + r.RenderInner(tok) + "</ul>\n"
	}
	n := *b.Start()
	if n != 1 {
		return `<ol start="` + strconv.Itoa(n) + `">` + "\n" + r.RenderInner(tok) + "</ol>\n"
	}
	return "<ol>\n" + r.RenderInner(tok) + "</ol>\n"
}

func renderTable(r *mdtree.Renderer, tok mdtree.Token) string {
	b := tok.(*mdtree.Block)
	rows := tok.Children()
	if !b.HasHeader() || len(rows) == 0 {
		return "<table>\n<tbody>\n" + r.RenderInner(tok) + "</tbody>\n</table>\n"
	}
	head := r.Render(rows[0])
	var body strings.Builder
	for _, row := range rows[1:] {
		body.WriteString(r.Render(row))
	}
	return "<table>\n<thead>\n" + head + "</thead>\n<tbody>\n" + body.String() + "</tbody>\n</table>\n"
}

// plainText concatenates the RawText leaves of tok's span subtree,
// discarding structural markup — used for attribute values (Image/
// FootnoteAnchor alt) that can't themselves hold HTML tags.
func plainText(tok mdtree.Token) string {
	if s, ok := tok.(*mdtree.Span); ok && s.Kind() == mdtree.RawTextKind {
		return s.Content()
	}
	var b strings.Builder
	for _, c := range tok.Children() {
		b.WriteString(plainText(c))
	}
	return b.String()
}

// Package jira renders an mdtree token tree to JIRA wiki markup. The
// span-level mappings (Strong, Emphasis, InlineCode, Strikethrough,
// Image, Link, AutoLink) are bit-exact per spec.md §6, grounded on
// mistletoe's own JIRARenderer tests (original_source's
// test_jira_renderer.py); the block-level mappings, which that suite
// leaves as unimplemented stubs, follow standard JIRA wiki-markup
// conventions instead.
package jira

import (
	"strconv"
	"strings"

	"github.com/mdtree/mdtree"
)

// New builds the JIRA render_map (spec.md §6) and registers JIRA's native
// "-text-" strikethrough span pattern; callers must pair every render
// with Enter(doc)/exit for that pattern to take effect (see Renderer.Enter).
func New() *mdtree.Renderer {
	r := mdtree.NewRenderer(map[mdtree.Kind]mdtree.HandlerFunc{
		mdtree.DocumentKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return r.RenderInner(tok)
		},
		mdtree.HeadingKind:       renderHeading,
		mdtree.SetextHeadingKind: renderHeading,
		mdtree.ParagraphKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return r.RenderInner(tok) + "\n\n"
		},
		mdtree.QuoteKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "{quote}\n" + r.RenderInner(tok) + "{quote}\n"
		},
		mdtree.ListKind:     renderList,
		mdtree.ListItemKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return r.RenderInner(tok) + "\n"
		},
		mdtree.CodeFenceKind: renderCode,
		mdtree.BlockCodeKind: renderCode,
		mdtree.TableKind:    renderTable,
		mdtree.TableRowKind: renderTableRow,
		mdtree.TableCellKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return r.RenderInner(tok)
		},
		mdtree.SeparatorKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "----\n"
		},
		mdtree.FootnoteBlockKind: suppress,
		mdtree.FootnoteEntryKind: suppress,
		mdtree.HTMLBlockKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return tok.(*mdtree.Block).Content()
		},

		mdtree.StrongKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "*" + r.RenderInner(tok) + "*"
		},
		mdtree.EmphasisKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "_" + r.RenderInner(tok) + "_"
		},
		mdtree.InlineCodeKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "{{" + tok.(*mdtree.Span).Content() + "}}"
		},
		mdtree.StrikethroughKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "-" + r.RenderInner(tok) + "-"
		},
		mdtree.LinkKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			s := tok.(*mdtree.Span)
			return "[" + r.RenderInner(tok) + "|" + s.Target() + "]"
		},
		mdtree.AutoLinkKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "[" + tok.(*mdtree.Span).Target() + "]"
		},
		mdtree.ImageKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "!" + tok.(*mdtree.Span).Src() + "!"
		},
		mdtree.EscapeSequenceKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return r.RenderInner(tok)
		},
		mdtree.RawTextKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return tok.(*mdtree.Span).Content()
		},
		mdtree.HTMLSpanKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return tok.(*mdtree.Span).Content()
		},
		mdtree.LineBreakKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			return "\n"
		},
		mdtree.FootnoteAnchorKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			s := tok.(*mdtree.Span)
			if !s.Resolved() {
				return r.RenderInner(tok)
			}
			return "!" + s.Src() + "!"
		},
		mdtree.FootnoteLinkKind: func(r *mdtree.Renderer, tok mdtree.Token) string {
			s := tok.(*mdtree.Span)
			if !s.Resolved() {
				return r.RenderInner(tok)
			}
			return "[" + r.RenderInner(tok) + "|" + s.Target() + "]"
		},
	})
	r.RegisterSpanPattern(mdtree.DashStrikethroughPattern)
	return r
}

func suppress(r *mdtree.Renderer, tok mdtree.Token) string { return "" }

func renderHeading(r *mdtree.Renderer, tok mdtree.Token) string {
	b := tok.(*mdtree.Block)
	return "h" + strconv.Itoa(b.Level()) + ". " + r.RenderInner(tok) + "\n"
}

func renderCode(r *mdtree.Renderer, tok mdtree.Token) string {
	b := tok.(*mdtree.Block)
	if b.Language() == "" {
		return "{code}\n" + b.Content() + "{code}\n"
	}
	return "{code:" + b.Language() + "}\n" + b.Content() + "{code}\n"
}

func renderList(r *mdtree.Renderer, tok mdtree.Token) string {
	b := tok.(*mdtree.Block)
	marker := "*"
	if b.Start() != nil {
		marker = "#"
	}
	var out strings.Builder
	for _, item := range tok.Children() {
		for _, line := range strings.Split(strings.TrimRight(r.Render(item), "\n"), "\n") {
			out.WriteString(marker + " " + line + "\n")
		}
	}
	return out.String()
}

func renderTable(r *mdtree.Renderer, tok mdtree.Token) string {
	b := tok.(*mdtree.Block)
	rows := tok.Children()
	if b.HasHeader() && len(rows) > 0 {
		var out strings.Builder
		out.WriteString(formatRow(r, rows[0], "||"))
		for _, row := range rows[1:] {
			out.WriteString(formatRow(r, row, "|"))
		}
		return out.String()
	}
	var out strings.Builder
	for _, row := range rows {
		out.WriteString(formatRow(r, row, "|"))
	}
	return out.String()
}

func renderTableRow(r *mdtree.Renderer, tok mdtree.Token) string {
	return formatRow(r, tok, "|")
}

func formatRow(r *mdtree.Renderer, row mdtree.Token, sep string) string {
	var cells []string
	for _, c := range row.Children() {
		cells = append(cells, r.Render(c))
	}
	return sep + strings.Join(cells, sep) + sep + "\n"
}

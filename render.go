package mdtree

import (
	"fmt"
	"strings"
)

// HandlerFunc renders a single token. A handler calls r.RenderInner(tok)
// to concatenate the rendering of tok's children.
type HandlerFunc func(r *Renderer, tok Token) string

// SpanPattern is an extra inline-span recognizer a renderer may register
// for its own scope (spec.md §4.5: "Renderers may register extra
// span-token patterns upon entry"). Span tokenization is lazy — a Span's
// or Block's Children() only run tokenizeInner on first access, which
// normally happens during rendering — so a pattern registered before
// Enter(doc) is called genuinely participates in tokenizeInner's
// precedence chain (lowest precedence, tried only after every built-in
// pattern fails) for any text not yet materialized. The JIRA renderer
// registers one, for its native "-text-" strikethrough form; HTML
// registers none.
type SpanPattern struct {
	Name  string
	Match func(text string, pos int) (tok Token, length int, ok bool)
}

// Renderer dispatches tokens to kind-specific handlers (spec.md §4.5). A
// Renderer is ordinary instance state passed explicitly by callers — not
// a process-wide registry (SPEC_FULL.md Section D's chosen redesign).
type Renderer struct {
	handlers map[Kind]HandlerFunc
	extra    []SpanPattern
}

// NewRenderer builds a Renderer from a complete render_map. It panics if
// any token variant lacks a handler: spec.md §4.5 requires "every variant
// listed in §3" to have an entry, and a missing handler is a programming
// error, not a runtime condition to recover from (spec.md §7).
func NewRenderer(handlers map[Kind]HandlerFunc) *Renderer {
	for k := DocumentKind; k <= FootnoteLinkKind; k++ {
		if _, ok := handlers[k]; !ok {
			panic(fmt.Sprintf("mdtree: render_map missing handler for %s", k))
		}
	}
	return &Renderer{handlers: handlers}
}

// Enter begins a render scope against doc and returns the function that
// ends it, meant to be deferred. Pairs with spec.md §4.5's "enter/exit
// lifecycle": the span patterns registered via RegisterSpanPattern before
// Enter (as the JIRA renderer does once in New) are copied onto doc for
// tokenizeInner to consult; a pattern registered after Enter reaches doc
// only at the next Enter. The returned closure restores doc's previous
// patterns, regardless of how the scope ends.
func (r *Renderer) Enter(doc *Document) (exit func()) {
	prev := doc.spanPatterns
	if len(r.extra) > 0 {
		merged := make([]SpanPattern, 0, len(prev)+len(r.extra))
		merged = append(merged, prev...)
		merged = append(merged, r.extra...)
		doc.spanPatterns = merged
	}
	return func() { doc.spanPatterns = prev }
}

// RegisterSpanPattern adds an extra span pattern to the renderer; it takes
// effect for the scopes begun by later calls to Enter.
func (r *Renderer) RegisterSpanPattern(p SpanPattern) {
	r.extra = append(r.extra, p)
}

// Render dispatches tok to its handler. Panics if tok's Kind has no
// registered handler — unreachable for any Renderer built via
// NewRenderer, since construction already validated full coverage.
func (r *Renderer) Render(tok Token) string {
	h, ok := r.handlers[tok.Kind()]
	if !ok {
		panic(fmt.Sprintf("mdtree: no render handler for %s", tok.Kind()))
	}
	return h(r, tok)
}

// RenderInner concatenates the rendering of tok's children, in order.
func (r *Renderer) RenderInner(tok Token) string {
	var b strings.Builder
	for _, c := range tok.Children() {
		b.WriteString(r.Render(c))
	}
	return b.String()
}

// Package mdtree tokenizes Markdown text into a tree of block and span
// tokens and dispatches that tree to a pluggable [Renderer].
//
// Parsing happens in two layers: a line-oriented block tokenizer
// ([Tokenize]) recognizes headings, lists, quotes, tables, code blocks and
// the like, and a pattern-driven span tokenizer ([TokenizeInner])
// recognizes emphasis, links, code spans and the rest of a block's inline
// content. Span tokenization of a block's content happens lazily, on first
// access to that block's [Token.Children].
//
// Concrete output formats (HTML, JIRA wiki markup) live in the
// github.com/mdtree/mdtree/render/html and github.com/mdtree/mdtree/render/jira
// packages, built on the dispatch contract defined here.
package mdtree

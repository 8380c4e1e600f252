package mdtree

import "strings"

// isBlank reports whether a line (terminator included or not) holds only
// whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// trimEOL strips a trailing "\r\n" or "\n" from a stored line, leaving its
// content for matchers that don't care about line endings.
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line
}

// indentWidth returns the count of leading spaces, expanding tabs to the
// next multiple of 4 the way the teacher's own tab handling does for
// indented constructs.
func indentWidth(line string) int {
	w := 0
	for _, r := range line {
		switch r {
		case ' ':
			w++
		case '\t':
			w += 4 - (w % 4)
		default:
			return w
		}
	}
	return w
}

// stripIndent removes up to n columns of leading indentation (spaces or
// tabs, tabs expanded to the next multiple of 4), returning the remainder
// untouched past that point.
func stripIndent(line string, n int) string {
	w := 0
	i := 0
	for i < len(line) && w < n {
		switch line[i] {
		case ' ':
			w++
			i++
		case '\t':
			w += 4 - (w % 4)
			i++
		default:
			return line[i:]
		}
	}
	return line[i:]
}

// stripBytes removes up to n leading bytes from line, used where the
// count to strip is a literal character count (a list marker's width)
// rather than a tab-expanded column width.
func stripBytes(line string, n int) string {
	if n > len(line) {
		n = len(line)
	}
	return line[n:]
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIIPunct(c byte) bool {
	switch {
	case c >= '!' && c <= '/':
		return true
	case c >= ':' && c <= '@':
		return true
	case c >= '[' && c <= '`':
		return true
	case c >= '{' && c <= '~':
		return true
	}
	return false
}

// joinLinesWithSpace joins a run of source lines with a single space each,
// after trimming each line's terminator and trailing spaces and tabs,
// collapsing the embedded "\n" a raw Paragraph would
// otherwise keep. Used only for a Paragraph that is the direct child of a
// ListItem (spec.md's supplemented list-item whitespace behavior; see
// SPEC_FULL.md Section C).
func joinLinesWithSpace(lines []string) string {
	trimmed := make([]string, len(lines))
	for i, l := range lines {
		trimmed[i] = strings.TrimRight(trimEOL(l), " \t")
	}
	return strings.Join(trimmed, " ")
}

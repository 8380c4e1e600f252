package mdtree

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// normalizeKey folds and NFC-normalizes a reference-style link/image key so
// that "[Foo]" and "[foo]" (and differently-composed Unicode in the key)
// resolve to the same Document.footnotes entry. The teacher's own
// references.go documents this exact normalization ("normalized labels")
// for the CommonMark reference-matching algorithm but never wires up
// golang.org/x/text to perform it; this is where it's put to use.
var foldCaser = cases.Fold()

func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	key = norm.NFC.String(key)
	key = foldCaser.String(key)
	return strings.Join(strings.Fields(key), " ")
}

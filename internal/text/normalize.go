// internal/text/normalize.go
//
// Text normalization for clue and answer strings from the question bank.
//
// Bank entries are HTML-entity encoded and answers may carry diacritics
// ("Z&uuml;rich"). Two normalizations are exposed:
//   - Display: entity decoding only, case preserved (clue text).
//   - Answer:  entity decoding, canonical decomposition, removal of the
//              combining diacritical marks block (U+0300–U+036F), upper case.
//
// Answer is deterministic: clues that should share letters positionally must
// normalize to equal runes, so nothing here depends on locale or state.

package text

import (
	"html"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks is the Combining Diacritical Marks block.
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Display decodes HTML entities in clue text. Case is left alone.
func Display(raw string) string {
	return html.UnescapeString(raw)
}

// Answer normalizes a raw answer for comparison: decode, strip diacritics, upper-case.
func Answer(raw string) string {
	return strings.ToUpper(StripDiacritics(html.UnescapeString(raw)))
}

// StripDiacritics decomposes s (NFD) and drops combining diacritical marks.
// A fresh transformer is built per call; transformers are stateful.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningMarks)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Letter normalizes a single key press into an answer letter.
// ok is false when the key does not normalize to exactly one letter.
func Letter(key string) (rune, bool) {
	rs := []rune(Answer(key))
	if len(rs) != 1 || !unicode.IsLetter(rs[0]) {
		return 0, false
	}
	return rs[0], true
}

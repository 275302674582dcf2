package pagesearch

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// foldedText is a lowercased view of a string together with a byte-offset
// map back to the original. Lowering maps runes one-to-one but can change
// their encoded width (Kelvin sign and dotted capital I shrink, some
// Latin Extended-B letters grow), so folded offsets cannot index the
// original string directly.
type foldedText struct {
	text string

	// back[i] holds the original byte offset of the rune that produced
	// folded byte i; a final entry maps len(text) to len(original).
	back []int
}

// foldText lowercases s rune by rune, recording origin offsets.
// Invalid UTF-8 bytes fold to the replacement character and keep a
// consistent mapping, so arbitrary input is safe.
func foldText(s string) *foldedText {
	var b strings.Builder
	b.Grow(len(s))
	back := make([]int, 0, len(s)+1)

	for i, r := range s {
		lr := unicode.ToLower(r)
		b.WriteRune(lr)
		for j := 0; j < utf8.RuneLen(lr); j++ {
			back = append(back, i)
		}
	}

	back = append(back, len(s))
	return &foldedText{text: b.String(), back: back}
}

// nextSpaceEnd returns the byte offset just past the first whitespace rune
// in text[from:to), or -1 if the range contains no whitespace.
func nextSpaceEnd(text string, from, to int) int {
	for i := from; i < to; {
		r, n := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			return i + n
		}
		i += n
	}
	return -1
}

// lastSpaceStart returns the byte offset of the last whitespace rune in
// text[from:to), or -1 if the range contains no whitespace.
func lastSpaceStart(text string, from, to int) int {
	for i := to; i > from; {
		r, n := utf8.DecodeLastRuneInString(text[:i])
		i -= n
		if i < from {
			break
		}
		if unicode.IsSpace(r) {
			return i
		}
	}
	return -1
}

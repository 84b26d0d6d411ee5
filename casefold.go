package klhyph

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Shift records one length change introduced by case folding: every
// position at or beyond At in the folded string lies Delta bytes away from
// its place in the original.
type Shift struct {
	At    int
	Delta int
}

// refold case-folds word rune by rune, recording a shift wherever folding
// changes the byte length (ﬆ to "st", İ to "i"+U+0307, ẞ to "ss"). Folding
// never reorders characters, so the shift list is ascending in At; two
// shifts can share an At only through adjacent folds, and apply in
// insertion order.
//
// For the common case of an already-folded word, refold returns the input
// string itself and a nil shift list.
func refold(word string) (string, []Shift) {
	if foldedAlready(word) {
		return word, nil
	}
	caser := cases.Fold()
	var b strings.Builder
	b.Grow(len(word))
	var shifts []Shift
	changed := false
	for _, r := range word {
		folded := caser.String(string(r))
		b.WriteString(folded)
		width := utf8.RuneLen(r)
		if folded != string(r) {
			changed = true
		}
		if len(folded) != width {
			shifts = append(shifts, Shift{At: b.Len(), Delta: width - len(folded)})
		}
	}
	if !changed {
		return word, nil
	}
	return b.String(), shifts
}

// foldedAlready reports whether folding is a no-op without allocating;
// lowercase ASCII words are the overwhelmingly common input.
func foldedAlready(word string) bool {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= utf8.RuneSelf || (c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

// realign maps a position computed on the folded string back to a byte
// offset in the original text. Shifts apply in order; the mapping is
// monotonic. With no shifts realign is the identity and callers skip it.
func realign(pos int, shifts []Shift) int {
	out := pos
	for _, s := range shifts {
		if s.At <= pos {
			out += s.Delta
		}
	}
	return out
}

// Normalizer is a pure string transform applied to pattern sources and
// exception words before compilation. The strategy is chosen once, by
// build configuration, never per call.
type Normalizer func(string) string

// NormalizerFor maps a configuration name to a normalization strategy.
// The empty name (and "none") is the identity; unknown names fall back to
// the identity as well.
func NormalizerFor(form string) Normalizer {
	switch form {
	case "nfc":
		return norm.NFC.String
	case "nfd":
		return norm.NFD.String
	case "nfkc":
		return norm.NFKC.String
	case "nfkd":
		return norm.NFKD.String
	default:
		return func(s string) string { return s }
	}
}

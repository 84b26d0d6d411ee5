package klhyph

import "unicode/utf8"

// ExtBreak is one break opportunity of an extended dictionary: a byte
// position plus, where the language demands it, the spelling change the
// break inflicts. Sub is nil for ordinary breaks.
type ExtBreak struct {
	Index int
	Sub   *Subregion
}

// Extended is a dictionary for languages whose hyphenation may alter
// spelling (Catalan, Hungarian). It shares the scoring machinery with
// Standard; only the opportunity payload differs.
type Extended struct {
	language   Language
	patterns   *compiled[ExtTally]
	exceptions exceptions[ExtBreak]
	minima     Minima
}

var _ Hyphenator[ExtBreak] = (*Extended)(nil)

// Language identifies the dictionary.
func (d *Extended) Language() Language { return d.language }

// UnbreakableChars returns the dictionary's left and right margins, counted
// in characters.
func (d *Extended) UnbreakableChars() (left, right int) {
	return d.minima.Left, d.minima.Right
}

// PatternIndexStats reports density metrics of the underlying index.
func (d *Extended) PatternIndexStats() (backend string, usedSlots, totalSlots, maxStateID int, fillRatio float64) {
	if d == nil || d.patterns == nil {
		return "", 0, 0, 0, 0
	}
	stats := d.patterns.index.Stats()
	return stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.MaxStateID, stats.FillRatio()
}

// Hyphenate computes word breaks and pairs them with the original text.
// Soft hyphens, when present, are returned without subregions.
func (d *Extended) Hyphenate(word string) Word[ExtBreak] {
	if shys := SoftHyphenIndices(word); len(shys) > 0 {
		breaks := make([]ExtBreak, len(shys))
		for i, at := range shys {
			breaks[i] = ExtBreak{Index: at}
		}
		return Word[ExtBreak]{Text: word, Breaks: breaks}
	}
	folded, shifts := refold(word)
	breaks := d.Opportunities(folded)
	if len(shifts) > 0 {
		realigned := breaks[:0]
		for _, b := range breaks {
			b.Index = realign(b.Index, shifts)
			// a break inside a folded expansion (ẞ => "ss") has no
			// boundary in the original text
			if utf8.RuneStart(word[b.Index]) {
				realigned = append(realigned, b)
			}
		}
		breaks = realigned
	}
	return Word[ExtBreak]{Text: word, Breaks: breaks}
}

// Opportunities returns the break opportunities of an already-lowercase
// word, exact entries taking precedence over pattern scoring.
func (d *Extended) Opportunities(lowercaseWord string) []ExtBreak {
	l, r, ok := boundaries(lowercaseWord, d.minima)
	if !ok {
		return nil
	}
	if known, found := d.exceptions.within(lowercaseWord, l, r, func(b ExtBreak) int { return b.Index }); found {
		return known
	}
	return d.opportunitiesWithin(lowercaseWord, l, r)
}

func (d *Extended) opportunitiesWithin(word string, l, r int) []ExtBreak {
	points := scoreExtended(d.patterns, word)
	var ops []ExtBreak
	for i := 1; i < len(word); i++ {
		p := points[i+1]
		if p.value%2 == 1 && i >= l && i <= r && utf8.RuneStart(word[i]) {
			ops = append(ops, ExtBreak{Index: i, Sub: p.sub})
		}
	}
	return ops
}

// AddExact registers an explicit hyphenation, overwriting and returning any
// previous entry. The word should be lowercase. Callers must hold
// exclusive access to the dictionary; see Guarded.
func (d *Extended) AddExact(word string, breaks []ExtBreak) ([]ExtBreak, bool) {
	return d.exceptions.insert(word, breaks)
}

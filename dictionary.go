package klhyph

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// softHyphen is U+00AD, encoded as two bytes in UTF-8.
const softHyphen = "­"

// SoftHyphenIndices returns the byte indices of soft hyphens within the
// word, if any. Existing soft hyphens indicate a preferred hyphenation,
// which is used without resorting to best-effort hyphenation.
func SoftHyphenIndices(word string) []int {
	var indices []int
	for i := 0; ; {
		j := strings.Index(word[i:], softHyphen)
		if j < 0 {
			break
		}
		indices = append(indices, i+j)
		i += j + len(softHyphen)
	}
	return indices
}

// Word is a hyphenated word carrying valid breaks. Text is the original
// input, never a folded copy; breaks are strictly increasing byte offsets
// into Text (plain int for standard dictionaries, ExtBreak for extended
// ones).
type Word[B any] struct {
	Text   string
	Breaks []B
}

// Hyphenator is a dictionary capable of hyphenating individual words.
//
// For the purpose of hyphenation, a "word" should not be a compound in
// hyphenated form (such as "hard-nosed"), but a single run of letters
// without intervening punctuation or spaces.
type Hyphenator[B any] interface {
	// Hyphenate computes the word's break opportunities. Soft hyphens take
	// priority; if the word contains any, they are returned as the only
	// breaks available. The method is case-insensitive.
	Hyphenate(word string) Word[B]

	// Opportunities returns the breaks the dictionary finds in the given
	// word, which should already be lowercase.
	Opportunities(lowercaseWord string) []B

	// AddExact specifies the hyphenation of a word with an exact sequence
	// of breaks. Subsequent calls to Hyphenate or Opportunities yield this
	// hyphenation instead of generating one from patterns. A previous
	// entry is returned, with existed reporting whether there was one.
	AddExact(word string, breaks []B) (previous []B, existed bool)

	// UnbreakableChars returns the number of characters from the start and
	// end of a word where breaks may not occur.
	UnbreakableChars() (left, right int)
}

// Standard is a dictionary whose break opportunities are plain byte
// positions. It is immutable after compilation except for AddExact.
type Standard struct {
	language   Language
	patterns   *compiled[Tally]
	exceptions exceptions[int]
	minima     Minima
}

var _ Hyphenator[int] = (*Standard)(nil)

// Language identifies the dictionary.
func (d *Standard) Language() Language { return d.language }

// UnbreakableChars returns the dictionary's left and right margins, counted
// in characters.
func (d *Standard) UnbreakableChars() (left, right int) {
	return d.minima.Left, d.minima.Right
}

// PatternIndexStats reports density metrics of the underlying index.
func (d *Standard) PatternIndexStats() (backend string, usedSlots, totalSlots, maxStateID int, fillRatio float64) {
	if d == nil || d.patterns == nil {
		return "", 0, 0, 0, 0
	}
	stats := d.patterns.index.Stats()
	return stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.MaxStateID, stats.FillRatio()
}

// Hyphenate computes word breaks and pairs them with the original text.
func (d *Standard) Hyphenate(word string) Word[int] {
	if shys := SoftHyphenIndices(word); len(shys) > 0 {
		return Word[int]{Text: word, Breaks: shys}
	}
	folded, shifts := refold(word)
	breaks := d.Opportunities(folded)
	if len(shifts) > 0 {
		realigned := breaks[:0]
		for _, b := range breaks {
			b = realign(b, shifts)
			// a break inside a folded expansion (ẞ => "ss") has no
			// boundary in the original text
			if utf8.RuneStart(word[b]) {
				realigned = append(realigned, b)
			}
		}
		breaks = realigned
	}
	return Word[int]{Text: word, Breaks: breaks}
}

// Opportunities returns the break opportunities of an already-lowercase
// word: a known exact hyphenation if there is one, pattern-derived breaks
// otherwise, nil if the word is too short to be hyphenated at all.
func (d *Standard) Opportunities(lowercaseWord string) []int {
	l, r, ok := boundaries(lowercaseWord, d.minima)
	if !ok {
		return nil
	}
	if known, found := d.exceptions.within(lowercaseWord, l, r, func(i int) int { return i }); found {
		return known
	}
	return d.opportunitiesWithin(lowercaseWord, l, r)
}

func (d *Standard) opportunitiesWithin(word string, l, r int) []int {
	points := d.patterns.score(word, mergeStandard)
	var ops []int
	for i := 1; i < len(word); i++ {
		// word byte gap i sits at gap i+1 of the '.'-padded word
		if points[i+1]%2 == 1 && i >= l && i <= r && utf8.RuneStart(word[i]) {
			ops = append(ops, i)
		}
	}
	return ops
}

// AddExact registers an explicit hyphenation, overwriting and returning any
// previous entry. The word should be lowercase. Callers must hold
// exclusive access to the dictionary; see Guarded.
func (d *Standard) AddExact(word string, breaks []int) ([]int, bool) {
	return d.exceptions.insert(word, breaks)
}

// HyphenationString returns word with hyphens inserted at every break.
// Example:
//
//	"table" => "ta-ble".
func (d *Standard) HyphenationString(word string) string {
	w := d.Hyphenate(word)
	return strings.Join(SplitAt(w.Text, w.Breaks), "-")
}

// SplitAt splits text at the given byte positions.
//
// Example:
//
//	SplitAt("table", []int{2}) => [ "ta", "ble" ].
func SplitAt(text string, positions []int) []string {
	parts := make([]string, 0, len(positions)+1)
	prev := 0
	for _, pos := range positions {
		if pos <= prev || pos >= len(text) {
			continue
		}
		parts = append(parts, text[prev:pos])
		prev = pos
	}
	return append(parts, text[prev:])
}

// boundaries returns the byte window [l, r] of word inside which breaks may
// occur, or ok=false if the word is too short for its margins.
func boundaries(word string, minima Minima) (l, r int, ok bool) {
	offsets := runeByteOffsets(word)
	n := len(offsets) - 1
	if n == 0 || n < minima.Left+minima.Right {
		return 0, 0, false
	}
	right := minima.Right
	if right < 1 {
		right = 1
	}
	return offsets[minima.Left], offsets[n-right], true
}

func runeByteOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

// Guarded wraps a hyphenator in a reader/writer lock. Dictionary reads are
// pure and safe to run concurrently; AddExact mutates the exception table
// and requires exclusive access. Embedders that finish all AddExact calls
// before going concurrent can use the dictionary bare instead.
type Guarded[B any] struct {
	mu sync.RWMutex
	h  Hyphenator[B]
}

// NewGuarded wraps h. The wrapped hyphenator must not be used directly
// while the guard is in service.
func NewGuarded[B any](h Hyphenator[B]) *Guarded[B] {
	return &Guarded[B]{h: h}
}

func (g *Guarded[B]) Hyphenate(word string) Word[B] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.h.Hyphenate(word)
}

func (g *Guarded[B]) Opportunities(lowercaseWord string) []B {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.h.Opportunities(lowercaseWord)
}

func (g *Guarded[B]) AddExact(word string, breaks []B) ([]B, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.h.AddExact(word, breaks)
}

func (g *Guarded[B]) UnbreakableChars() (left, right int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.h.UnbreakableChars()
}

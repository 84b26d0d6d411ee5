package klhyph

// Locus records one weight of a pattern: Value applies to the gap at byte
// offset Index of the pattern's letters-only key. Gaps without a locus
// default to weight 0, so a tally only stores the non-zero entries.
type Locus struct {
	Index uint8
	Value uint8
}

// Tally is the ordered weight set of one pattern. Natural-language pattern
// sets repeat tallies heavily; identical tallies are stored once per
// dictionary and shared by id.
type Tally []Locus

func (t Tally) tallyKey() string {
	buf := make([]byte, 0, len(t)*2)
	for _, l := range t {
		buf = append(buf, l.Index, l.Value)
	}
	return string(buf)
}

// BreakIndex returns the key offset of the first odd-weighted locus, i.e.
// the opportunity this pattern argues for.
func (t Tally) BreakIndex() (uint8, bool) {
	for _, l := range t {
		if l.Value%2 == 1 {
			return l.Index, true
		}
	}
	return 0, false
}

// Subregion describes the spelling change a break inflicts on its
// neighborhood: the bytes from Left before the break to Right after it are
// replaced by Substitution, which breaks at its own byte offset Breakpoint.
type Subregion struct {
	Left         int
	Right        int
	Substitution string
	Breakpoint   int
}

// PatternSubregion binds a Subregion to the pattern locus it belongs to.
type PatternSubregion struct {
	AtIndex uint8
	Sub     Subregion
}

// ExtTally is the tally of an extended pattern: plain weights plus an
// optional spelling substitution at one locus.
type ExtTally struct {
	Standard  Tally
	Subregion *PatternSubregion
}

func (t ExtTally) tallyKey() string {
	key := t.Standard.tallyKey()
	if t.Subregion == nil {
		return key
	}
	s := t.Subregion
	return key + "\x00" + string([]byte{s.AtIndex, byte(s.Sub.Left), byte(s.Sub.Right), byte(s.Sub.Breakpoint)}) + s.Sub.Substitution
}

// tallied is the constraint shared by standard and extended tallies; the
// key is used for value-equality deduplication during compilation.
type tallied interface {
	tallyKey() string
}

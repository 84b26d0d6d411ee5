package klhyph

// exceptions maps lowercase words to an explicit break sequence, bypassing
// pattern scoring. The table is the only runtime-mutable part of a
// dictionary; see the access discipline notes on Guarded.
type exceptions[B any] struct {
	table map[string][]B
}

func newExceptions[B any]() exceptions[B] {
	return exceptions[B]{table: make(map[string][]B)}
}

// within returns the entry for word filtered to the byte window [l, r], so
// exception results honor the same margins as pattern-derived ones. The
// returned slice is a copy; callers may realign it in place.
func (x exceptions[B]) within(word string, l, r int, pos func(B) int) ([]B, bool) {
	entry, ok := x.table[word]
	if !ok {
		return nil, false
	}
	breaks := make([]B, 0, len(entry))
	for _, b := range entry {
		if p := pos(b); p >= l && p <= r {
			breaks = append(breaks, b)
		}
	}
	return breaks, true
}

// insert stores an exact hyphenation for word, overwriting any previous
// entry, which is returned for caller auditing.
func (x exceptions[B]) insert(word string, breaks []B) ([]B, bool) {
	previous, existed := x.table[word]
	entry := make([]B, len(breaks))
	copy(entry, breaks)
	x.table[word] = entry
	return previous, existed
}

func (x exceptions[B]) len() int { return len(x.table) }

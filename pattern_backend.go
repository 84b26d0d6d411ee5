package klhyph

// patternPair maps a pattern key to the id of its (deduplicated) tally.
type patternPair struct {
	Key string
	ID  uint16
}

// patternWalker advances through one key, rune by rune, from a fixed start
// state. Step reports whether any pattern continues with r; once it returns
// false the walker is dead. TallyID reports the tally at the current state,
// if the walked prefix is itself a pattern key.
type patternWalker interface {
	Step(r rune) bool
	TallyID() (uint16, bool)
}

// patternIndex is the compiled substring index of a dictionary. It is built
// once, from lexicographically sorted, duplicate-free pairs, and read-only
// afterwards.
type patternIndex interface {
	Walker() patternWalker
	Stats() patternIndexStats
}

type patternIndexStats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

func (s patternIndexStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// IndexBackend selects the pattern index implementation of a dictionary.
type IndexBackend int

const (
	// IndexDoubleArray is the default backend: a frozen double-array trie
	// with O(1) transitions, at the cost of a dense state table.
	IndexDoubleArray IndexBackend = iota
	// IndexSparseTrie stores patterns in a general-purpose prefix trie.
	// Slower lookups, but no freeze step and a much smaller footprint for
	// tiny pattern sets.
	IndexSparseTrie
)

// newPatternIndex bulk-constructs a backend from sorted, deduplicated pairs.
func newPatternIndex(backend IndexBackend, pairs []patternPair) (patternIndex, error) {
	switch backend {
	case IndexSparseTrie:
		return newSparseBackend(pairs), nil
	default:
		return newDATBackend(pairs)
	}
}

// Package dat holds a frozen double-array trie mapping hyphenation pattern
// keys to tally ids. The structure is fully exported and free of pointers,
// so compiled dictionaries serialize without ceremony.
package dat

// DAT is a frozen double-array trie.
//   - States are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Terminal states reference the tally of their key through TallyRef, which
// stores id+1 so that 0 can mean "no tally here".
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// TallyRef holds tally id + 1 per state; 0 means "not a pattern key".
	TallyRef []uint16 // len == N

	// Alphabet maps BMP code units to dense IDs [0..Sigma].
	Alphabet AlphabetMap
}

// NStates returns the number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := int32(d.Base[state]) + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Tally returns the tally id attached to a state, if any.
func (d *DAT) Tally(state uint32) (uint16, bool) {
	if int(state) >= len(d.TallyRef) {
		return 0, false
	}
	ref := d.TallyRef[state]
	if ref == 0 {
		return 0, false
	}
	return ref - 1, true
}

// Dense maps a BMP code unit to a dense alphabet ID.
// Returns 0 if the code unit is not in the alphabet.
func (d *DAT) Dense(bmp uint16) uint16 { return d.Alphabet.Dense(bmp) }

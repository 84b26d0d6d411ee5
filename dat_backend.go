package klhyph

import (
	"fmt"
	"sort"

	"github.com/npillmayer/klhyph/dat"
)

// datBackend is the default pattern index: a double-array trie frozen at
// construction time. The build-side node tree exists only inside
// newDATBackend; queries run against the compact dat.DAT alone.
type datBackend struct {
	compiled *dat.DAT
	skipped  int // patterns outside the BMP, not indexed
}

type datBuildNode struct {
	state    uint32
	tallyRef uint16 // id+1; 0 = none
	children map[uint16]*datBuildNode
}

// newDATBackend bulk-constructs the trie from sorted, deduplicated pairs.
func newDATBackend(pairs []patternPair) (*datBackend, error) {
	backend := &datBackend{
		compiled: &dat.DAT{Root: 1},
	}
	runeToDense := map[rune]uint16{'.': 1}
	backend.compiled.Alphabet.Set(uint16('.'), 1)
	nextDense := uint16(1)

	root := &datBuildNode{children: make(map[uint16]*datBuildNode)}
	for _, pair := range pairs {
		key, ok := encodeBuildKey(pair.Key, runeToDense, &nextDense, &backend.compiled.Alphabet)
		if !ok {
			backend.skipped++
			tracer().Infof("pattern %q outside the BMP, not indexed", pair.Key)
			continue
		}
		if len(key) == 0 {
			return nil, fmt.Errorf("empty pattern key")
		}
		n := root
		for _, c := range key {
			child := n.children[c]
			if child == nil {
				child = &datBuildNode{children: make(map[uint16]*datBuildNode)}
				n.children[c] = child
			}
			n = child
		}
		if n.tallyRef != 0 {
			return nil, fmt.Errorf("duplicate pattern key %q", pair.Key)
		}
		n.tallyRef = pair.ID + 1
	}
	backend.compiled.Sigma = nextDense
	backend.freeze(root)
	return backend, nil
}

func encodeBuildKey(s string, runeToDense map[rune]uint16, nextDense *uint16, alphabet *dat.AlphabetMap) ([]uint16, bool) {
	key := make([]uint16, 0, len(s))
	for _, r := range s {
		if r > 0xFFFF {
			return nil, false
		}
		dense, ok := runeToDense[r]
		if !ok {
			if *nextDense == ^uint16(0) {
				return nil, false
			}
			*nextDense++
			dense = *nextDense
			runeToDense[r] = dense
			alphabet.Set(uint16(r), dense)
		}
		key = append(key, dense)
	}
	return key, true
}

// freeze lays the node tree out into the double array, breadth first.
func (db *datBackend) freeze(root *datBuildNode) {
	d := db.compiled
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	d.TallyRef = make([]uint16, int(d.Root)+1)
	root.state = d.Root
	queue := []*datBuildNode{root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		d.TallyRef[n.state] = n.tallyRef
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findDATBase(d.Check, labels)
		ensureDATIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			ensureDATIndex(d, t)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

func findDATBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureDATIndex(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
	d.TallyRef = append(d.TallyRef, make([]uint16, grow)...)
}

func (db *datBackend) Walker() patternWalker {
	return &datWalker{d: db.compiled, state: db.compiled.Root}
}

type datWalker struct {
	d     *dat.DAT
	state uint32
	dead  bool
}

func (w *datWalker) Step(r rune) bool {
	if w.dead {
		return false
	}
	if r > 0xFFFF {
		w.dead = true
		return false
	}
	dense := w.d.Dense(uint16(r))
	if dense == 0 {
		w.dead = true
		return false
	}
	next, ok := w.d.Transition(w.state, dense)
	if !ok {
		w.dead = true
		return false
	}
	w.state = next
	return true
}

func (w *datWalker) TallyID() (uint16, bool) {
	if w.dead {
		return 0, false
	}
	return w.d.Tally(w.state)
}

func (db *datBackend) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d)", db.compiled.NStates(), db.compiled.Sigma)
}

func (db *datBackend) Stats() patternIndexStats {
	stats := patternIndexStats{
		Backend:    "dat",
		TotalSlots: db.compiled.NStates(),
		MaxStateID: int(db.compiled.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	maxID := int(db.compiled.Root)
	for i := range db.compiled.Check {
		if i == int(db.compiled.Root) || db.compiled.Check[i] != 0 {
			used++
			if i > maxID {
				maxID = i
			}
		}
	}
	stats.UsedSlots = used
	stats.MaxStateID = maxID
	return stats
}

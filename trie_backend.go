package klhyph

import (
	"github.com/derekparker/trie"
)

// sparseBackend keeps pattern keys in a general-purpose prefix trie. The
// walker re-resolves the grown prefix on every step, so lookups cost more
// than a double-array transition; in exchange there is no freeze step and
// small pattern sets stay small. Keys outside the BMP are skipped, the same
// as in the double-array backend, so the backends index identical key sets.
type sparseBackend struct {
	t       *trie.Trie
	keys    int
	skipped int
}

func newSparseBackend(pairs []patternPair) *sparseBackend {
	sb := &sparseBackend{t: trie.New()}
	for _, pair := range pairs {
		if !bmpOnly(pair.Key) {
			sb.skipped++
			tracer().Infof("pattern %q outside the BMP, not indexed", pair.Key)
			continue
		}
		sb.t.Add(pair.Key, pair.ID)
		sb.keys++
	}
	return sb
}

func bmpOnly(s string) bool {
	for _, r := range s {
		if r > 0xFFFF {
			return false
		}
	}
	return true
}

func (sb *sparseBackend) Walker() patternWalker {
	return &sparseWalker{t: sb.t, prefix: make([]byte, 0, 24)}
}

type sparseWalker struct {
	t      *trie.Trie
	prefix []byte
	dead   bool
}

func (w *sparseWalker) Step(r rune) bool {
	if w.dead {
		return false
	}
	w.prefix = append(w.prefix, string(r)...)
	if !w.t.HasKeysWithPrefix(string(w.prefix)) {
		w.dead = true
		return false
	}
	return true
}

func (w *sparseWalker) TallyID() (uint16, bool) {
	if w.dead {
		return 0, false
	}
	node, ok := w.t.Find(string(w.prefix))
	if !ok {
		return 0, false
	}
	id, ok := node.Meta().(uint16)
	return id, ok
}

func (sb *sparseBackend) Stats() patternIndexStats {
	return patternIndexStats{
		Backend:    "trie",
		UsedSlots:  sb.keys,
		TotalSlots: sb.keys,
		MaxStateID: sb.keys,
	}
}

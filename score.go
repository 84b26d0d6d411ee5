package klhyph

// Liang scoring. The word is padded with '.' boundary anchors; every
// substring of the padded word is run through the pattern index, and each
// matched tally overlays its weights onto a single per-gap buffer. A larger
// weight always wins over a smaller one, regardless of match order.

// forEachMatch invokes fn for every pattern key occurring in padded, with
// the match's start byte offset. Walks are cut short as soon as no pattern
// continues with the next rune.
func forEachMatch(index patternIndex, padded string, fn func(at int, id uint16)) {
	for i := range padded {
		w := index.Walker()
		for _, r := range padded[i:] {
			if !w.Step(r) {
				break
			}
			if id, ok := w.TallyID(); ok {
				fn(i, id)
			}
		}
	}
}

// score computes one weight per byte gap of the padded word ".word.".
// Gap g of the returned buffer corresponds to byte gap g-1 of the word.
func (c *compiled[T]) score(word string, merge func(points []uint8, at int, t T) []uint8) []uint8 {
	padded := "." + word + "."
	points := make([]uint8, len(padded)+1)
	forEachMatch(c.index, padded, func(at int, id uint16) {
		points = merge(points, at, c.tallies[id])
	})
	return points
}

func mergeStandard(points []uint8, at int, t Tally) []uint8 {
	for _, l := range t {
		g := at + int(l.Index)
		if g < len(points) && l.Value > points[g] {
			points[g] = l.Value
		}
	}
	return points
}

// extPoint is one scored gap of an extended word: the winning weight and,
// if the winning pattern carried one, its spelling substitution.
type extPoint struct {
	value uint8
	sub   *Subregion
}

// scoreExtended is the extended twin of score: per gap it keeps the maximum
// weight and the subregion of whichever pattern set it. Equal weights do
// not displace an earlier winner.
func scoreExtended(c *compiled[ExtTally], word string) []extPoint {
	padded := "." + word + "."
	points := make([]extPoint, len(padded)+1)
	forEachMatch(c.index, padded, func(at int, id uint16) {
		t := &c.tallies[id]
		for _, l := range t.Standard {
			g := at + int(l.Index)
			if g >= len(points) || l.Value <= points[g].value {
				continue
			}
			points[g].value = l.Value
			if t.Subregion != nil && t.Subregion.AtIndex == l.Index {
				points[g].sub = &t.Subregion.Sub
			} else {
				points[g].sub = nil
			}
		}
	})
	return points
}

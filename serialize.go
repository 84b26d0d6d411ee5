package klhyph

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Compiled dictionaries persist as gob artifacts, one per language per
// kind: "<code>.standard.dict" and "<code>.extended.dict". Only sorted
// slices are encoded, never maps, so rebuilding from identical sources
// yields byte-identical artifacts.

const (
	standardSuffix = "standard"
	extendedSuffix = "extended"
)

// ArtifactName returns the file name of a compiled dictionary.
func ArtifactName(lang Language, extended bool) string {
	suffix := standardSuffix
	if extended {
		suffix = extendedSuffix
	}
	return fmt.Sprintf("%s.%s.dict", lang.Code(), suffix)
}

type standardArtifact struct {
	Language  Language
	MinLeft   int
	MinRight  int
	Pairs     []patternPair
	Tallies   []Tally
	ExcWords  []string
	ExcBreaks [][]int
}

// Extended tallies and breaks carry optional subregions as pointers; the
// artifact flattens them to value fields plus a presence flag, keeping gob
// away from nil pointers and the encoding fully value-determined.
type extTallyRecord struct {
	Standard Tally
	HasSub   bool
	At       uint8
	Sub      Subregion
}

type extBreakRecord struct {
	Index  int
	HasSub bool
	Sub    Subregion
}

type extendedArtifact struct {
	Language  Language
	MinLeft   int
	MinRight  int
	Pairs     []patternPair
	Tallies   []extTallyRecord
	ExcWords  []string
	ExcBreaks [][]extBreakRecord
}

func recordExtTally(t ExtTally) extTallyRecord {
	rec := extTallyRecord{Standard: t.Standard}
	if t.Subregion != nil {
		rec.HasSub = true
		rec.At = t.Subregion.AtIndex
		rec.Sub = t.Subregion.Sub
	}
	return rec
}

func (rec extTallyRecord) tally() ExtTally {
	t := ExtTally{Standard: rec.Standard}
	if rec.HasSub {
		t.Subregion = &PatternSubregion{AtIndex: rec.At, Sub: rec.Sub}
	}
	return t
}

func recordExtBreak(b ExtBreak) extBreakRecord {
	rec := extBreakRecord{Index: b.Index}
	if b.Sub != nil {
		rec.HasSub = true
		rec.Sub = *b.Sub
	}
	return rec
}

func (rec extBreakRecord) extBreak() ExtBreak {
	b := ExtBreak{Index: rec.Index}
	if rec.HasSub {
		sub := rec.Sub
		b.Sub = &sub
	}
	return b
}

func sortedExceptionWords[B any](x exceptions[B]) []string {
	words := make([]string, 0, x.len())
	for word := range x.table {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// WriteStandard serializes a compiled standard dictionary.
func WriteStandard(w io.Writer, d *Standard) error {
	art := standardArtifact{
		Language: d.language,
		MinLeft:  d.minima.Left,
		MinRight: d.minima.Right,
		Pairs:    d.patterns.pairs,
		Tallies:  d.patterns.tallies,
	}
	art.ExcWords = sortedExceptionWords(d.exceptions)
	art.ExcBreaks = make([][]int, len(art.ExcWords))
	for i, word := range art.ExcWords {
		art.ExcBreaks[i] = d.exceptions.table[word]
	}
	if err := gob.NewEncoder(w).Encode(&art); err != nil {
		return buildError(KindSerialization, err)
	}
	return nil
}

// ReadStandard deserializes a standard dictionary and rebuilds its pattern
// index. Margins come from the artifact, not the language registry, so a
// dictionary round-trips unchanged.
func ReadStandard(r io.Reader, opts ...Option) (*Standard, error) {
	var art standardArtifact
	if err := gob.NewDecoder(r).Decode(&art); err != nil {
		return nil, buildError(KindSerialization, err)
	}
	cfg := configure(art.Language, opts)
	index, err := newPatternIndex(cfg.backend, art.Pairs)
	if err != nil {
		return nil, buildError(KindIndex, err)
	}
	d := &Standard{
		language:   art.Language,
		patterns:   &compiled[Tally]{pairs: art.Pairs, tallies: art.Tallies, index: index},
		exceptions: newExceptions[int](),
		minima:     Minima{Left: art.MinLeft, Right: art.MinRight},
	}
	if cfg.hasMinima {
		d.minima = cfg.minima
	}
	for i, word := range art.ExcWords {
		d.exceptions.table[word] = art.ExcBreaks[i]
	}
	return d, nil
}

// WriteExtended serializes a compiled extended dictionary.
func WriteExtended(w io.Writer, d *Extended) error {
	art := extendedArtifact{
		Language: d.language,
		MinLeft:  d.minima.Left,
		MinRight: d.minima.Right,
		Pairs:    d.patterns.pairs,
	}
	art.Tallies = make([]extTallyRecord, len(d.patterns.tallies))
	for i, t := range d.patterns.tallies {
		art.Tallies[i] = recordExtTally(t)
	}
	art.ExcWords = sortedExceptionWords(d.exceptions)
	art.ExcBreaks = make([][]extBreakRecord, len(art.ExcWords))
	for i, word := range art.ExcWords {
		breaks := d.exceptions.table[word]
		recs := make([]extBreakRecord, len(breaks))
		for j, b := range breaks {
			recs[j] = recordExtBreak(b)
		}
		art.ExcBreaks[i] = recs
	}
	if err := gob.NewEncoder(w).Encode(&art); err != nil {
		return buildError(KindSerialization, err)
	}
	return nil
}

// ReadExtended deserializes an extended dictionary and rebuilds its pattern
// index.
func ReadExtended(r io.Reader, opts ...Option) (*Extended, error) {
	var art extendedArtifact
	if err := gob.NewDecoder(r).Decode(&art); err != nil {
		return nil, buildError(KindSerialization, err)
	}
	cfg := configure(art.Language, opts)
	index, err := newPatternIndex(cfg.backend, art.Pairs)
	if err != nil {
		return nil, buildError(KindIndex, err)
	}
	tallies := make([]ExtTally, len(art.Tallies))
	for i, rec := range art.Tallies {
		tallies[i] = rec.tally()
	}
	d := &Extended{
		language:   art.Language,
		patterns:   &compiled[ExtTally]{pairs: art.Pairs, tallies: tallies, index: index},
		exceptions: newExceptions[ExtBreak](),
		minima:     Minima{Left: art.MinLeft, Right: art.MinRight},
	}
	if cfg.hasMinima {
		d.minima = cfg.minima
	}
	for i, word := range art.ExcWords {
		breaks := make([]ExtBreak, len(art.ExcBreaks[i]))
		for j, rec := range art.ExcBreaks[i] {
			breaks[j] = rec.extBreak()
		}
		d.exceptions.table[word] = breaks
	}
	return d, nil
}

// OpenStandard loads the standard dictionary for lang from a directory of
// compiled artifacts. A missing artifact is a KindResource failure.
func OpenStandard(dir string, lang Language, opts ...Option) (*Standard, error) {
	f, err := os.Open(filepath.Join(dir, ArtifactName(lang, false)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, buildError(KindResource, err)
		}
		return nil, buildError(KindIO, err)
	}
	defer f.Close()
	return ReadStandard(f, opts...)
}

// OpenExtended loads the extended dictionary for lang from a directory of
// compiled artifacts. A missing artifact is a KindResource failure.
func OpenExtended(dir string, lang Language, opts ...Option) (*Extended, error) {
	f, err := os.Open(filepath.Join(dir, ArtifactName(lang, true)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, buildError(KindResource, err)
		}
		return nil, buildError(KindIO, err)
	}
	defer f.Close()
	return ReadExtended(f, opts...)
}

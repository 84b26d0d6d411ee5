package klhyph

import (
	"io"
	"math"
	"sort"
)

// KLPair couples a pattern's letters-only key with its weight tally, as
// produced by the source parsers.
type KLPair struct {
	Key   string
	Tally Tally
}

// ExtKLPair is the extended-dictionary counterpart of KLPair.
type ExtKLPair struct {
	Key   string
	Tally ExtTally
}

// PatternReader yields compiled pattern entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type PatternReader interface {
	Next() (key string, tally Tally, err error)
}

// ExtPatternReader yields extended pattern entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type ExtPatternReader interface {
	Next() (key string, tally ExtTally, err error)
}

// ExceptionReader yields hyphenation exceptions one-by-one.
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (word string, positions []int, err error)
}

// Option configures dictionary compilation.
type Option func(*compileConfig)

type compileConfig struct {
	backend   IndexBackend
	minima    Minima
	hasMinima bool
}

// WithBackend selects the pattern index backend.
func WithBackend(b IndexBackend) Option {
	return func(c *compileConfig) { c.backend = b }
}

// WithMinima overrides the language's registered unbreakable margins.
func WithMinima(left, right int) Option {
	return func(c *compileConfig) {
		c.minima = Minima{Left: left, Right: right}
		c.hasMinima = true
	}
}

func configure(lang Language, opts []Option) compileConfig {
	cfg := compileConfig{backend: IndexDoubleArray}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasMinima {
		cfg.minima = MinimaFor(lang)
	}
	return cfg
}

// compiled holds a dictionary's pattern index together with its shared
// tally store. pairs are kept sorted for re-serialization.
type compiled[T tallied] struct {
	pairs   []patternPair
	tallies []T
	index   patternIndex
}

// compilePairs deduplicates tallies into a dense-id store, sorts the keys,
// drops exact-key duplicates (keeping the earliest occurrence) and
// bulk-constructs the backend index.
func compilePairs[T tallied](keys []string, tallies []T, backend IndexBackend) (*compiled[T], error) {
	if len(keys) != len(tallies) {
		return nil, buildErrorf(KindIndex, "key/tally count mismatch: %d vs %d", len(keys), len(tallies))
	}
	ids := make(map[string]uint16, len(keys))
	store := make([]T, 0, 256)
	pairs := make([]patternPair, 0, len(keys))
	for i, key := range keys {
		tkey := tallies[i].tallyKey()
		id, seen := ids[tkey]
		if !seen {
			// ids must leave room for the backend's id+1 terminal encoding
			if len(store) >= math.MaxUint16 {
				return nil, buildErrorf(KindIndex, "more than %d distinct tallies", math.MaxUint16)
			}
			id = uint16(len(store))
			store = append(store, tallies[i])
			ids[tkey] = id
		}
		pairs = append(pairs, patternPair{Key: key, ID: id})
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	deduped := pairs[:0]
	for _, pair := range pairs {
		if len(deduped) > 0 && deduped[len(deduped)-1].Key == pair.Key {
			continue
		}
		deduped = append(deduped, pair)
	}
	index, err := newPatternIndex(backend, deduped)
	if err != nil {
		return nil, buildError(KindIndex, err)
	}
	stats := index.Stats()
	tracer().Infof("pattern index backend=%s keys=%d tallies=%d used=%d total=%d fill=%.2f",
		stats.Backend, len(deduped), len(store), stats.UsedSlots, stats.TotalSlots, stats.FillRatio())
	return &compiled[T]{pairs: deduped, tallies: store, index: index}, nil
}

// CompileStandard builds a standard dictionary from parsed pattern pairs.
func CompileStandard(lang Language, pairs []KLPair, opts ...Option) (*Standard, error) {
	cfg := configure(lang, opts)
	keys := make([]string, len(pairs))
	tallies := make([]Tally, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
		tallies[i] = p.Tally
	}
	c, err := compilePairs(keys, tallies, cfg.backend)
	if err != nil {
		return nil, err
	}
	return &Standard{
		language:   lang,
		patterns:   c,
		exceptions: newExceptions[int](),
		minima:     cfg.minima,
	}, nil
}

// CompileExtended builds an extended dictionary from parsed pattern pairs.
func CompileExtended(lang Language, pairs []ExtKLPair, opts ...Option) (*Extended, error) {
	cfg := configure(lang, opts)
	keys := make([]string, len(pairs))
	tallies := make([]ExtTally, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
		tallies[i] = p.Tally
	}
	c, err := compilePairs(keys, tallies, cfg.backend)
	if err != nil {
		return nil, err
	}
	return &Extended{
		language:   lang,
		patterns:   c,
		exceptions: newExceptions[ExtBreak](),
		minima:     cfg.minima,
	}, nil
}

// LoadStandard compiles a standard dictionary from a streaming,
// format-agnostic source. File format parsing lives outside this package;
// use package patfile to parse concrete formats and feed this API.
func LoadStandard(lang Language, reader PatternReader, opts ...Option) (*Standard, error) {
	pairs := make([]KLPair, 0, 1024)
	for {
		key, tally, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, buildError(KindIO, err)
		}
		pairs = append(pairs, KLPair{Key: key, Tally: tally})
	}
	return CompileStandard(lang, pairs, opts...)
}

// LoadExtended compiles an extended dictionary from a streaming source.
func LoadExtended(lang Language, reader ExtPatternReader, opts ...Option) (*Extended, error) {
	pairs := make([]ExtKLPair, 0, 1024)
	for {
		key, tally, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, buildError(KindIO, err)
		}
		pairs = append(pairs, ExtKLPair{Key: key, Tally: tally})
	}
	return CompileExtended(lang, pairs, opts...)
}

// LoadExceptions adds exception entries from a streaming source.
func (d *Standard) LoadExceptions(reader ExceptionReader) error {
	for {
		word, positions, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return buildError(KindIO, err)
		}
		d.AddExact(word, positions)
	}
}

// LoadExceptions adds exception entries from a streaming source. The breaks
// carry no subregions; spelling-changing exceptions can be added through
// AddExact.
func (d *Extended) LoadExceptions(reader ExceptionReader) error {
	for {
		word, positions, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return buildError(KindIO, err)
		}
		breaks := make([]ExtBreak, len(positions))
		for i, p := range positions {
			breaks[i] = ExtBreak{Index: p}
		}
		d.AddExact(word, breaks)
	}
}

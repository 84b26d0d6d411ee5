// Package patfile parses the line-oriented pattern sources of the
// hyph-utf8 collection. Three files feed one language:
//
//	hyph-<code>.pat.txt   patterns, one per line:   a5ban  .ach4  4ab.
//	hyph-<code>.hyp.txt   exceptions, one per line: ta-ble
//	hyph-<code>.ext.txt   extended patterns with spelling substitutions
//
// Digits inside a pattern weigh the gap they precede; odd weights invite a
// break, even weights forbid one. A '.' anchors the pattern at a word
// boundary. Blank lines and lines starting with '%' are skipped.
//
// The readers stream entries one-by-one and plug directly into the loader
// API of package klhyph.
package patfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/klhyph"
)

// PatternReader streams standard patterns from a .pat.txt source.
type PatternReader struct {
	scanner   *bufio.Scanner
	normalize klhyph.Normalizer
	line      int
}

// NewPatternReader wraps a .pat.txt source. normalize is applied to every
// line before parsing and may be nil.
func NewPatternReader(r io.Reader, normalize klhyph.Normalizer) *PatternReader {
	return &PatternReader{scanner: bufio.NewScanner(r), normalize: normalize}
}

// Next returns the next pattern as (key, tally).
// It returns io.EOF when exhausted.
func (r *PatternReader) Next() (string, klhyph.Tally, error) {
	for r.scanner.Scan() {
		r.line++
		line := cleanLine(r.scanner.Text(), r.normalize)
		if line == "" {
			continue
		}
		key, tally, err := SplitPattern(line)
		if err != nil {
			return "", nil, fmt.Errorf("line %d: %w", r.line, err)
		}
		return key, tally, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, err
	}
	return "", nil, io.EOF
}

// ExceptionReader streams hyphenation exceptions from a .hyp.txt source.
type ExceptionReader struct {
	scanner   *bufio.Scanner
	normalize klhyph.Normalizer
}

// NewExceptionReader wraps a .hyp.txt source. normalize is applied to every
// line before parsing and may be nil.
func NewExceptionReader(r io.Reader, normalize klhyph.Normalizer) *ExceptionReader {
	return &ExceptionReader{scanner: bufio.NewScanner(r), normalize: normalize}
}

// Next returns the next exception as (word, positions), with positions
// holding the byte offsets of the hyphens within the unhyphenated word.
// It returns io.EOF when exhausted.
func (r *ExceptionReader) Next() (string, []int, error) {
	for r.scanner.Scan() {
		line := cleanLine(r.scanner.Text(), r.normalize)
		if line == "" {
			continue
		}
		word, positions := SplitException(line)
		if word == "" {
			continue
		}
		return word, positions, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, err
	}
	return "", nil, io.EOF
}

func cleanLine(line string, normalize klhyph.Normalizer) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "%") {
		return ""
	}
	if normalize != nil {
		line = normalize(line)
	}
	return line
}

// SplitPattern separates a raw pattern into its letters-only key and the
// tally of weights. Weights attach to the byte offset of the key position
// they precede, i.e.
//
//	"a5ban" => key "aban", weight 5 at byte offset 1.
func SplitPattern(pattern string) (string, klhyph.Tally, error) {
	var key []byte
	var tally klhyph.Tally
	for _, r := range pattern {
		if r >= '0' && r <= '9' {
			if len(key) > 255 {
				return "", nil, fmt.Errorf("pattern %q too long for weight indexing", pattern)
			}
			tally = append(tally, klhyph.Locus{Index: uint8(len(key)), Value: uint8(r - '0')})
			continue
		}
		key = utf8.AppendRune(key, r)
	}
	if len(key) == 0 {
		return "", nil, fmt.Errorf("pattern %q has no letters", pattern)
	}
	return string(key), tally, nil
}

// SplitException separates a hyphen-marked word into the bare word and the
// byte offsets of its breaks:
//
//	"ta-ble" => ("table", [2]).
func SplitException(line string) (string, []int) {
	var word []byte
	var positions []int
	for _, r := range line {
		if r == '-' {
			if len(word) > 0 {
				positions = append(positions, len(word))
			}
			continue
		}
		word = utf8.AppendRune(word, r)
	}
	return string(word), positions
}

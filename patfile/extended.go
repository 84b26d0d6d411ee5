package patfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/klhyph"
)

// ExtReader streams extended patterns from a .ext.txt source. Lines are
// either plain patterns, or patterns with a substitution suffix:
//
//	body/replacement[,start[,span]]
//
// The replacement spells out how the word changes when the break is taken,
// with '=' marking the hyphen inside it; start (1-based character position
// into the pattern, default 1) and span (character count, default to the
// end of the pattern) delimit the region the replacement stands in for.
// The Hungarian double-consonant rule, for example:
//
//	ssz1sz/sz=sz,2,4
type ExtReader struct {
	scanner   *bufio.Scanner
	normalize klhyph.Normalizer
	line      int
}

// NewExtReader wraps a .ext.txt source. normalize is applied to every line
// before parsing and may be nil.
func NewExtReader(r io.Reader, normalize klhyph.Normalizer) *ExtReader {
	return &ExtReader{scanner: bufio.NewScanner(r), normalize: normalize}
}

// Next returns the next extended pattern as (key, tally).
// It returns io.EOF when exhausted.
func (r *ExtReader) Next() (string, klhyph.ExtTally, error) {
	for r.scanner.Scan() {
		r.line++
		line := cleanLine(r.scanner.Text(), r.normalize)
		if line == "" {
			continue
		}
		key, tally, err := SplitExtPattern(line)
		if err != nil {
			return "", klhyph.ExtTally{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return key, tally, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", klhyph.ExtTally{}, err
	}
	return "", klhyph.ExtTally{}, io.EOF
}

// SplitExtPattern separates an extended pattern line into its key and
// tally, attaching the substitution, if any, to the pattern's break locus.
func SplitExtPattern(line string) (string, klhyph.ExtTally, error) {
	body, suffix, hasSub := strings.Cut(line, "/")
	key, tally, err := SplitPattern(body)
	if err != nil {
		return "", klhyph.ExtTally{}, err
	}
	ext := klhyph.ExtTally{Standard: tally}
	if !hasSub {
		return key, ext, nil
	}
	at, ok := tally.BreakIndex()
	if !ok {
		return "", klhyph.ExtTally{}, fmt.Errorf("pattern %q has a substitution but no odd weight", line)
	}
	sub, err := parseSubregion(key, suffix, int(at))
	if err != nil {
		return "", klhyph.ExtTally{}, fmt.Errorf("pattern %q: %w", line, err)
	}
	ext.Subregion = &klhyph.PatternSubregion{AtIndex: at, Sub: *sub}
	return key, ext, nil
}

func parseSubregion(key, suffix string, breakAt int) (*klhyph.Subregion, error) {
	fields := strings.Split(suffix, ",")
	replacement := fields[0]
	left, right, found := strings.Cut(replacement, "=")
	if !found {
		return nil, fmt.Errorf("substitution %q lacks a '=' breakpoint", replacement)
	}
	offsets := charByteOffsets(key)
	chars := len(offsets) - 1
	start, span := 1, chars
	var err error
	if len(fields) > 1 {
		if start, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
			return nil, fmt.Errorf("bad substitution start: %w", err)
		}
	}
	if len(fields) > 2 {
		if span, err = strconv.Atoi(strings.TrimSpace(fields[2])); err != nil {
			return nil, fmt.Errorf("bad substitution span: %w", err)
		}
	}
	if start < 1 || span < 1 || start-1+span > chars {
		return nil, fmt.Errorf("substitution region %d+%d outside pattern of %d chars", start, span, chars)
	}
	startByte := offsets[start-1]
	endByte := offsets[start-1+span]
	if breakAt < startByte || breakAt > endByte {
		return nil, fmt.Errorf("break offset %d outside substitution region [%d,%d]", breakAt, startByte, endByte)
	}
	return &klhyph.Subregion{
		Left:         breakAt - startByte,
		Right:        endByte - breakAt,
		Substitution: left + right,
		Breakpoint:   len(left),
	}, nil
}

func charByteOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

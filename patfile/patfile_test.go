package patfile

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/klhyph"
)

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		pattern string
		key     string
		tally   klhyph.Tally
	}{
		{"a5ban", "aban", klhyph.Tally{{Index: 1, Value: 5}}},
		{".ach4", ".ach", klhyph.Tally{{Index: 4, Value: 4}}},
		{"4ab.", "ab.", klhyph.Tally{{Index: 0, Value: 4}}},
		{"hyph", "hyph", nil},
		{"1mä2chen3", "mächen", klhyph.Tally{
			{Index: 0, Value: 1}, {Index: 3, Value: 2}, {Index: 7, Value: 3},
		}},
	}
	for _, tt := range tests {
		key, tally, err := SplitPattern(tt.pattern)
		if err != nil {
			t.Fatalf("SplitPattern(%q) failed: %v", tt.pattern, err)
		}
		if key != tt.key || !reflect.DeepEqual(tally, tt.tally) {
			t.Fatalf("SplitPattern(%q) = (%q, %v), want (%q, %v)",
				tt.pattern, key, tally, tt.key, tt.tally)
		}
	}
}

func TestSplitPatternRejectsDigitsOnly(t *testing.T) {
	if _, _, err := SplitPattern("123"); err == nil {
		t.Fatal("a pattern without letters must be rejected")
	}
}

func TestSplitException(t *testing.T) {
	tests := []struct {
		line      string
		word      string
		positions []int
	}{
		{"ta-ble", "table", []int{2}},
		{"com-put-er", "computer", []int{3, 6}},
		{"word", "word", nil},
		{"-word", "word", nil},
		{"lä-cheln", "lächeln", []int{3}},
	}
	for _, tt := range tests {
		word, positions := SplitException(tt.line)
		if word != tt.word || !reflect.DeepEqual(positions, tt.positions) {
			t.Fatalf("SplitException(%q) = (%q, %v), want (%q, %v)",
				tt.line, word, positions, tt.word, tt.positions)
		}
	}
}

func TestPatternReaderSkipsNoise(t *testing.T) {
	src := strings.NewReader("% hyph-xx.pat.txt\n\n  a5ban  \n% trailing comment\n.ach4\n")
	r := NewPatternReader(src, nil)
	var keys []string
	for {
		key, _, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		keys = append(keys, key)
	}
	if !reflect.DeepEqual(keys, []string{"aban", ".ach"}) {
		t.Fatalf("expected [aban .ach], got %v", keys)
	}
}

func TestPatternReaderReportsLine(t *testing.T) {
	src := strings.NewReader("a5ban\n111\n")
	r := NewPatternReader(src, nil)
	if _, _, err := r.Next(); err != nil {
		t.Fatal(err)
	}
	_, _, err := r.Next()
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected an error naming line 2, got %v", err)
	}
}

func TestPatternReaderNormalizes(t *testing.T) {
	src := strings.NewReader("ﬁ1\n")
	r := NewPatternReader(src, klhyph.NormalizerFor("nfkd"))
	key, tally, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if key != "fi" || !reflect.DeepEqual(tally, klhyph.Tally{{Index: 2, Value: 1}}) {
		t.Fatalf("NFKD should decompose the ligature before parsing, got (%q, %v)", key, tally)
	}
}

func TestExceptionReader(t *testing.T) {
	src := strings.NewReader("% exceptions\nta-ble\n\ncom-put-er\n")
	r := NewExceptionReader(src, nil)
	word, positions, err := r.Next()
	if err != nil || word != "table" || !reflect.DeepEqual(positions, []int{2}) {
		t.Fatalf("unexpected first entry (%q, %v, %v)", word, positions, err)
	}
	word, positions, err = r.Next()
	if err != nil || word != "computer" || !reflect.DeepEqual(positions, []int{3, 6}) {
		t.Fatalf("unexpected second entry (%q, %v, %v)", word, positions, err)
	}
	if _, _, err = r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestSplitExtPattern(t *testing.T) {
	key, tally, err := SplitExtPattern("s1sz/sz=sz,1,3")
	if err != nil {
		t.Fatal(err)
	}
	if key != "ssz" {
		t.Fatalf("expected key ssz, got %q", key)
	}
	if !reflect.DeepEqual(tally.Standard, klhyph.Tally{{Index: 1, Value: 1}}) {
		t.Fatalf("unexpected tally %v", tally.Standard)
	}
	if tally.Subregion == nil {
		t.Fatal("expected a subregion")
	}
	want := klhyph.PatternSubregion{
		AtIndex: 1,
		Sub: klhyph.Subregion{
			Left:         1,
			Right:        2,
			Substitution: "szsz",
			Breakpoint:   2,
		},
	}
	if *tally.Subregion != want {
		t.Fatalf("expected subregion %+v, got %+v", want, *tally.Subregion)
	}
}

func TestSplitExtPatternDefaultsToWholeKey(t *testing.T) {
	key, tally, err := SplitExtPattern("s1sz/sz=sz")
	if err != nil {
		t.Fatal(err)
	}
	if key != "ssz" {
		t.Fatalf("expected key ssz, got %q", key)
	}
	sub := tally.Subregion.Sub
	if sub.Left != 1 || sub.Right != 2 {
		t.Fatalf("default region must span the whole key, got %+v", sub)
	}
}

func TestSplitExtPatternPlain(t *testing.T) {
	key, tally, err := SplitExtPattern("n1ny")
	if err != nil {
		t.Fatal(err)
	}
	if key != "nny" || tally.Subregion != nil {
		t.Fatalf("plain lines must parse without a subregion, got (%q, %+v)", key, tally.Subregion)
	}
}

func TestSplitExtPatternErrors(t *testing.T) {
	bad := []string{
		"ab/x=y",       // no odd weight to attach to
		"a2b/x=y",      // even weight forbids the break
		"a1b/xy",       // missing '=' breakpoint
		"a1b/x=y,5",    // region start beyond the key
		"a1b/x=y,1,9",  // region span beyond the key
		"a1b/x=y,zero", // non-numeric start
	}
	for _, line := range bad {
		if _, _, err := SplitExtPattern(line); err == nil {
			t.Fatalf("expected %q to be rejected", line)
		}
	}
}

func TestExtReaderStream(t *testing.T) {
	src := strings.NewReader("% extended\ns1sz/sz=sz,1,3\nn1ny\n")
	r := NewExtReader(src, nil)
	var keys []string
	for {
		key, _, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		keys = append(keys, key)
	}
	if !reflect.DeepEqual(keys, []string{"ssz", "nny"}) {
		t.Fatalf("expected [ssz nny], got %v", keys)
	}
}

package klhyph

import (
	"reflect"
	"sync"
	"testing"
	"unicode/utf8"
)

func TestHyphenateSimpleWord(t *testing.T) {
	dict := mustCompile(t, "test", []KLPair{
		{Key: "ll", Tally: Tally{{Index: 1, Value: 1}}},
	}, WithMinima(1, 1))
	word := dict.Hyphenate("hello")
	if word.Text != "hello" {
		t.Fatalf("result must carry the original text, got %q", word.Text)
	}
	if !reflect.DeepEqual(word.Breaks, []int{3}) {
		t.Fatalf("hello should break as hel-lo, got %v", word.Breaks)
	}
	if h := dict.HyphenationString("hello"); h != "hel-lo" {
		t.Fatalf("hello should be hel-lo, is %s", h)
	}
}

func TestHyphenateIsCaseInsensitive(t *testing.T) {
	dict := mustCompile(t, "test", []KLPair{
		{Key: "nk", Tally: Tally{{Index: 1, Value: 1}}},
	}, WithMinima(1, 1))
	word := dict.Hyphenate("DANKE")
	if word.Text != "DANKE" {
		t.Fatalf("result must carry the original spelling, got %q", word.Text)
	}
	if !reflect.DeepEqual(word.Breaks, []int{3}) {
		t.Fatalf("DANKE should break as DAN-KE, got %v", word.Breaks)
	}
}

func TestHyphenateRealignsFoldedPositions(t *testing.T) {
	// folding ẞ to "ss" shortens the word by one byte; breaks found after
	// the fold must shift back onto original byte offsets
	dict := mustCompile(t, "test", []KLPair{
		{Key: "se", Tally: Tally{{Index: 1, Value: 1}}},
	}, WithMinima(1, 1))
	word := dict.Hyphenate("STRAẞE")
	if !reflect.DeepEqual(word.Breaks, []int{7}) {
		t.Fatalf("break should land on the original E at byte 7, got %v", word.Breaks)
	}
	for _, b := range word.Breaks {
		if !utf8.RuneStart(word.Text[b]) {
			t.Fatalf("break %d is not a rune boundary of %q", b, word.Text)
		}
	}
}

func TestHyphenateDropsBreaksInsideFoldedRunes(t *testing.T) {
	// ẞ folds to "ss"; a pattern breaking between the two folded s's maps to
	// the middle byte of ẞ and must be dropped, while the break on a real
	// boundary survives realignment
	dict := mustCompile(t, "test", []KLPair{
		{Key: "ss", Tally: Tally{{Index: 1, Value: 1}}},
		{Key: "se", Tally: Tally{{Index: 1, Value: 1}}},
	}, WithMinima(1, 1))
	word := dict.Hyphenate("AẞE")
	if !reflect.DeepEqual(word.Breaks, []int{4}) {
		t.Fatalf("expected only the break after ẞ, got %v", word.Breaks)
	}
	for _, b := range word.Breaks {
		if !utf8.RuneStart(word.Text[b]) {
			t.Fatalf("break %d is not a rune boundary of %q", b, word.Text)
		}
	}
}

func TestSoftHyphensAreAuthoritative(t *testing.T) {
	dict := mustCompile(t, "test", []KLPair{
		{Key: "ab", Tally: Tally{{Index: 1, Value: 1}}},
	}, WithMinima(1, 1))
	dict.AddExact("tab­le", []int{1})
	word := dict.Hyphenate("tab­le")
	if !reflect.DeepEqual(word.Breaks, []int{3}) {
		t.Fatalf("soft hyphen must be the only break, got %v", word.Breaks)
	}
}

func TestExceptionOverridesPatterns(t *testing.T) {
	dict := mustCompile(t, "test", []KLPair{
		{Key: "ca", Tally: Tally{{Index: 1, Value: 1}}},
	}, WithMinima(1, 1))
	if ops := dict.Opportunities("café"); !reflect.DeepEqual(ops, []int{1}) {
		t.Fatalf("patterns alone should break after c, got %v", ops)
	}
	previous, existed := dict.AddExact("café", []int{3})
	if existed {
		t.Fatalf("unexpected previous entry %v", previous)
	}
	if ops := dict.Opportunities("café"); !reflect.DeepEqual(ops, []int{3}) {
		t.Fatalf("exception must win over patterns, got %v", ops)
	}
	word := dict.Hyphenate("café")
	if !reflect.DeepEqual(word.Breaks, []int{3}) {
		t.Fatalf("hyphenate must reproduce the exception, got %v", word.Breaks)
	}
}

func TestAddExactReturnsPrevious(t *testing.T) {
	dict := mustCompile(t, "test", nil, WithMinima(1, 1))
	if _, existed := dict.AddExact("project", []int{4}); existed {
		t.Fatal("fresh word should have no previous entry")
	}
	previous, existed := dict.AddExact("project", []int{3})
	if !existed || !reflect.DeepEqual(previous, []int{4}) {
		t.Fatalf("expected previous [4], got %v (existed=%v)", previous, existed)
	}
	if ops := dict.Opportunities("project"); !reflect.DeepEqual(ops, []int{3}) {
		t.Fatalf("last write must win, got %v", ops)
	}
}

func TestExceptionsFilteredToMargins(t *testing.T) {
	dict := mustCompile(t, "test", nil, WithMinima(2, 2))
	dict.AddExact("anana", []int{1, 3})
	// margin (2,2) on a 5-char word leaves the window [2,3]
	if ops := dict.Opportunities("anana"); !reflect.DeepEqual(ops, []int{3}) {
		t.Fatalf("exception breaks outside the margins must be dropped, got %v", ops)
	}
}

func TestMarginsRespected(t *testing.T) {
	dict := mustCompile(t, "test", []KLPair{
		{Key: "he", Tally: Tally{{Index: 1, Value: 1}}},
		{Key: "ll", Tally: Tally{{Index: 1, Value: 1}}},
	}, WithMinima(2, 2))
	// "he" proposes byte 1, inside the left margin; only "ll" survives
	if ops := dict.Opportunities("hello"); !reflect.DeepEqual(ops, []int{3}) {
		t.Fatalf("expected only the in-window break, got %v", ops)
	}
	left, right := dict.UnbreakableChars()
	if left != 2 || right != 2 {
		t.Fatalf("unexpected margins (%d,%d)", left, right)
	}
}

func TestShortWordsNeverBreak(t *testing.T) {
	dict := mustCompile(t, "test", []KLPair{
		{Key: "ab", Tally: Tally{{Index: 1, Value: 1}}},
	}, WithMinima(2, 2))
	for _, word := range []string{"", "a", "ab", "aba"} {
		if ops := dict.Opportunities(word); len(ops) != 0 {
			t.Fatalf("%q is shorter than the margins and must not break, got %v", word, ops)
		}
	}
}

func TestBreaksAreMonotonicRuneBoundaries(t *testing.T) {
	dict := mustCompile(t, "test", []KLPair{
		{Key: "ää", Tally: Tally{{Index: 2, Value: 1}}},
		{Key: "bb", Tally: Tally{{Index: 1, Value: 1}}},
	}, WithMinima(1, 1))
	word := dict.Hyphenate("ääbbää")
	prev := -1
	for _, b := range word.Breaks {
		if b <= prev {
			t.Fatalf("breaks not strictly increasing: %v", word.Breaks)
		}
		if !utf8.RuneStart(word.Text[b]) {
			t.Fatalf("break %d is not a rune boundary of %q", b, word.Text)
		}
		prev = b
	}
	if len(word.Breaks) == 0 {
		t.Fatal("expected at least one break")
	}
}

func TestSoftHyphenIndices(t *testing.T) {
	if got := SoftHyphenIndices("table"); got != nil {
		t.Fatalf("no soft hyphens expected, got %v", got)
	}
	got := SoftHyphenIndices("ta­b­le")
	if !reflect.DeepEqual(got, []int{2, 5}) {
		t.Fatalf("expected [2 5], got %v", got)
	}
}

func TestSplitAt(t *testing.T) {
	tests := []struct {
		text      string
		positions []int
		want      []string
	}{
		{"table", []int{2}, []string{"ta", "ble"}},
		{"computer", []int{3, 6}, []string{"com", "put", "er"}},
		{"word", nil, []string{"word"}},
		{"word", []int{0, 4}, []string{"word"}},
	}
	for _, tt := range tests {
		if got := SplitAt(tt.text, tt.positions); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("SplitAt(%q, %v) = %v, want %v", tt.text, tt.positions, got, tt.want)
		}
	}
}

func TestGuardedConcurrentReads(t *testing.T) {
	dict := mustCompile(t, "test", []KLPair{
		{Key: "ll", Tally: Tally{{Index: 1, Value: 1}}},
	}, WithMinima(1, 1))
	guarded := NewGuarded[int](dict)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				word := guarded.Hyphenate("hello")
				if !reflect.DeepEqual(word.Breaks, []int{3}) {
					t.Errorf("unexpected breaks %v", word.Breaks)
					return
				}
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			guarded.AddExact("unrelated", []int{2})
		}
	}()
	wg.Wait()
}

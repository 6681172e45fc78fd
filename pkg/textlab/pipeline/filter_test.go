package pipeline

import "testing"

func toks(texts ...string) []Token {
	out := make([]Token, len(texts))
	for i, s := range texts {
		out[i] = Token{Text: s, Offset: i}
	}
	return out
}

func textsOnly(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func TestFilterApply(t *testing.T) {
	stops := NewStopSet([]string{"the", "i", "this"})
	f := NewFilter(stops, 2)

	kept, counts := f.Apply(toks("the", "i", "love", "this", "123", "x", "cats"))

	want := []string{"love", "cats"}
	got := textsOnly(kept)
	if len(got) != len(want) {
		t.Fatalf("kept %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kept %v, want %v", got, want)
		}
	}

	if counts.Stopword != 3 {
		t.Errorf("Stopword = %d, want 3", counts.Stopword)
	}
	if counts.NonAlpha != 1 {
		t.Errorf("NonAlpha = %d, want 1", counts.NonAlpha)
	}
	if counts.TooShort != 1 {
		t.Errorf("TooShort = %d, want 1", counts.TooShort)
	}
}

// A token matching several removal reasons counts under exactly one,
// the first in priority order.
func TestFilterRemovalPriority(t *testing.T) {
	// "i" is both a stopword and too short; stopword wins.
	stops := NewStopSet([]string{"i"})
	f := NewFilter(stops, 2)

	_, counts := f.Apply(toks("i"))
	if counts.Stopword != 1 || counts.NonAlpha != 0 || counts.TooShort != 0 {
		t.Fatalf("counts = %+v, want stopword only", counts)
	}

	// "7" is non-alphabetic and too short; non-alphabetic wins.
	_, counts = f.Apply(toks("7"))
	if counts.NonAlpha != 1 || counts.TooShort != 0 {
		t.Fatalf("counts = %+v, want non-alpha only", counts)
	}
}

func TestFilterCountInvariant(t *testing.T) {
	stops := NewStopSet([]string{"the", "and", "of"})
	f := NewFilter(stops, 2)

	input := toks("the", "rise", "and", "fall", "of", "42", "a", "empires")
	kept, counts := f.Apply(input)

	if len(input) != len(kept)+counts.Total() {
		t.Fatalf("invariant broken: %d input != %d kept + %d removed",
			len(input), len(kept), counts.Total())
	}
}

func TestFilterWordInternalMarks(t *testing.T) {
	f := NewFilter(NewStopSet(nil), 2)

	kept, counts := f.Apply(toks("o'clock", "well-known", "-edge", "trail-"))
	got := textsOnly(kept)
	if len(got) != 2 || got[0] != "o'clock" || got[1] != "well-known" {
		t.Fatalf("kept %v, want [o'clock well-known]", got)
	}
	if counts.NonAlpha != 2 {
		t.Errorf("NonAlpha = %d, want 2", counts.NonAlpha)
	}
}

func TestStopSetCaseAndFallback(t *testing.T) {
	stops := NewStopSet([]string{"The", "WITH"})
	if !stops.Contains("the") || !stops.Contains("with") {
		t.Fatal("terms should be stored lowercased")
	}
	if stops.Contains("whereupon") {
		t.Fatal("unexpected membership without fallback")
	}

	stops.EnableSnowballFallback()
	if !stops.Contains("the") {
		t.Fatal("explicit terms must survive enabling the fallback")
	}
}

func TestFilterDeterminism(t *testing.T) {
	stops := NewStopSet([]string{"a", "an"})
	f := NewFilter(stops, 2)
	input := toks("a", "quick", "an", "idea", "x9", "ok")

	kept1, counts1 := f.Apply(input)
	kept2, counts2 := f.Apply(input)

	if counts1 != counts2 || len(kept1) != len(kept2) {
		t.Fatalf("repeated Apply diverged: %v/%v vs %v/%v", kept1, counts1, kept2, counts2)
	}
}

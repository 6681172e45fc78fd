package pipeline

import (
	"reflect"
	"testing"
)

func TestProseTokenizerWords(t *testing.T) {
	tok := NewProseTokenizer(false)
	text := "Cats chase mice. Dogs bark loudly."

	words, err := tok.Words(text)
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	if len(words) == 0 {
		t.Fatal("no tokens produced")
	}

	// Offsets must point at the token text in the input.
	for _, w := range words {
		end := w.Offset + len(w.Text)
		if w.Offset < 0 || end > len(text) || text[w.Offset:end] != w.Text {
			t.Errorf("offset %d does not locate token %q", w.Offset, w.Text)
		}
	}

	if words[0].Text != "Cats" || words[0].Offset != 0 || words[0].Sentence != 0 {
		t.Errorf("first token = %+v, want Cats at offset 0, sentence 0", words[0])
	}

	// Tokens from the second sentence carry sentence index 1.
	foundSecond := false
	for _, w := range words {
		if w.Text == "Dogs" {
			foundSecond = true
			if w.Sentence != 1 {
				t.Errorf("token Dogs in sentence %d, want 1", w.Sentence)
			}
		}
	}
	if !foundSecond {
		t.Error("token Dogs not found")
	}
}

func TestProseTokenizerSentences(t *testing.T) {
	tok := NewProseTokenizer(false)

	sents, err := tok.Sentences("Cats chase mice. Dogs bark loudly.")
	if err != nil {
		t.Fatalf("Sentences: %v", err)
	}
	if len(sents) != 2 {
		t.Fatalf("got %d sentences %v, want 2", len(sents), sents)
	}
}

func TestProseTokenizerEmpty(t *testing.T) {
	tok := NewProseTokenizer(false)

	words, err := tok.Words("   \n\t ")
	if err != nil || words != nil {
		t.Fatalf("Words on blank input = %v, %v, want nil, nil", words, err)
	}
	sents, err := tok.Sentences("")
	if err != nil || sents != nil {
		t.Fatalf("Sentences on empty input = %v, %v, want nil, nil", sents, err)
	}
}

func TestProseTokenizerDeterminism(t *testing.T) {
	tok := NewProseTokenizer(true)
	text := "The quick brown fox jumps over the lazy dog. It never stops."

	first, err := tok.Words(text)
	if err != nil {
		t.Fatal(err)
	}
	second, err := tok.Words(text)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated tokenization of identical input diverged")
	}
}

func TestProseTokenizerTagging(t *testing.T) {
	tagged := NewProseTokenizer(true)
	words, err := tagged.Words("cats sleep")
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range words {
		if w.Tag == "" {
			t.Errorf("token %q has no tag with tagging enabled", w.Text)
		}
	}

	plain := NewProseTokenizer(false)
	words, err = plain.Words("cats sleep")
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range words {
		if w.Tag != "" {
			t.Errorf("token %q has tag %q with tagging disabled", w.Text, w.Tag)
		}
	}
}

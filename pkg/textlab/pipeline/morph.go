package pipeline

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/kljensen/snowball"

	"github.com/cognitext/textlab/pkg/textlab/internalerr"
)

// Mode selects the morphological normalization strategy.
type Mode string

const (
	ModeLemma Mode = "lemma"
	ModeStem  Mode = "stem"
)

// POS is a coarse part-of-speech class.
type POS string

const (
	Noun      POS = "n"
	Verb      POS = "v"
	Adjective POS = "a"
	Adverb    POS = "r"
)

// POSFromTag maps a Penn Treebank tag to a coarse POS. Unknown or empty
// tags map to Noun, the accepted degraded mode when tagging is
// unavailable, not a failure.
func POSFromTag(tag string) POS {
	switch {
	case strings.HasPrefix(tag, "VB") || tag == "MD":
		return Verb
	case strings.HasPrefix(tag, "JJ"):
		return Adjective
	case strings.HasPrefix(tag, "RB"):
		return Adverb
	default:
		return Noun
	}
}

// Lemmatizer reduces a word to its dictionary base form. The part of
// speech is advisory: dictionary-driven implementations may ignore it,
// but it lets a POS-aware backend be swapped in behind the same
// interface.
type Lemmatizer interface {
	Lemma(word string, pos POS) string
}

// Stemmer reduces a word to a morphological root, which need not be a
// real word.
type Stemmer interface {
	Stem(word string) string
}

// GolemLemmatizer adapts the golem English dictionary lemmatizer.
type GolemLemmatizer struct {
	lem *golem.Lemmatizer
}

// NewGolemLemmatizer loads the English lemma dictionary. A load failure
// is fatal for lemma mode and wraps internalerr.ErrResourceLoad.
func NewGolemLemmatizer() (*GolemLemmatizer, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("%w: english lemma dictionary: %v", internalerr.ErrResourceLoad, err)
	}
	return &GolemLemmatizer{lem: lem}, nil
}

// Lemma returns the dictionary base form, or the word itself when it is
// not in the dictionary.
func (g *GolemLemmatizer) Lemma(word string, pos POS) string {
	if !g.lem.InDict(word) {
		return word
	}
	return g.lem.Lemma(word)
}

// SnowballStemmer adapts the snowball English stemmer. Words the stemmer
// rejects pass through unchanged.
type SnowballStemmer struct{}

// Stem implements Stemmer.
func (SnowballStemmer) Stem(word string) string {
	stem, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return stem
}

// Morph applies lemma or stem normalization to a filtered token
// sequence. It is a pure mapping: one output form per input token,
// order preserved, same token and mode always yielding the same form.
type Morph struct {
	mode Mode
	lem  Lemmatizer
	stem Stemmer
}

// NewMorph creates a morphological normalizer for the given mode.
// Unknown modes and missing delegates are configuration errors,
// rejected before any stage runs.
func NewMorph(mode Mode, lem Lemmatizer, stem Stemmer) (*Morph, error) {
	switch mode {
	case ModeLemma:
		if lem == nil {
			return nil, fmt.Errorf("%w: lemma mode requires a lemmatizer", internalerr.ErrInvalidConfig)
		}
	case ModeStem:
		if stem == nil {
			return nil, fmt.Errorf("%w: stem mode requires a stemmer", internalerr.ErrInvalidConfig)
		}
	default:
		return nil, fmt.Errorf("%w: unknown morphological mode %q", internalerr.ErrInvalidConfig, mode)
	}
	return &Morph{mode: mode, lem: lem, stem: stem}, nil
}

// Mode returns the configured mode.
func (m *Morph) Mode() Mode { return m.mode }

// Normalize maps each token to its lemma or stem.
func (m *Morph) Normalize(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if m.mode == ModeLemma {
			out[i] = m.lem.Lemma(tok.Text, POSFromTag(tok.Tag))
		} else {
			out[i] = m.stem.Stem(tok.Text)
		}
	}
	return out
}

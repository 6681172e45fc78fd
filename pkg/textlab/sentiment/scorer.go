// Package sentiment scores documents two ways: a lexical bag-of-words
// polarity summed from a sentiment lexicon, and a contextual compound
// score from a rule-based sentence scorer (VADER) that accounts for
// negation, intensifiers, and punctuation emphasis.
//
// The two methods intentionally see different inputs: the lexical
// method consumes the cleaned token sequence, while the contextual
// method consumes the raw sentence-segmented text, where stopwords and
// negation words still carry signal.
package sentiment

import (
	"fmt"

	"github.com/jonreiter/govader"

	"github.com/cognitext/textlab/pkg/textlab/internalerr"
)

// Segmenter splits raw text into sentences.
type Segmenter interface {
	Sentences(text string) ([]string, error)
}

// Score is the sentiment of one document. Lexical is unbounded; sign
// indicates polarity. Compound is always within [-1, 1].
type Score struct {
	Lexical   float64 `json:"lexical"`
	Compound  float64 `json:"compound"`
	Matched   int     `json:"matched"`   // tokens found in the lexicon
	Sentences int     `json:"sentences"` // sentences scored contextually
}

// Scorer computes lexical and contextual sentiment. Safe for concurrent
// use once constructed.
type Scorer struct {
	lexicon *Lexicon
	seg     Segmenter
	vader   *govader.SentimentIntensityAnalyzer
}

// NewScorer creates a scorer. The lexicon must already be loaded:
// constructing a scorer without one is a resource failure, distinct
// from individual tokens merely being absent from a loaded lexicon.
func NewScorer(lexicon *Lexicon, seg Segmenter) (*Scorer, error) {
	if lexicon == nil {
		return nil, fmt.Errorf("%w: sentiment lexicon not loaded", internalerr.ErrResourceLoad)
	}
	if seg == nil {
		return nil, fmt.Errorf("%w: sentence segmenter required", internalerr.ErrInvalidConfig)
	}
	return &Scorer{
		lexicon: lexicon,
		seg:     seg,
		vader:   govader.NewSentimentIntensityAnalyzer(),
	}, nil
}

// Lexical sums lexicon values over the cleaned token sequence and
// reports how many tokens matched. Tokens absent from the lexicon
// contribute zero; an empty sequence scores exactly zero.
func (s *Scorer) Lexical(tokens []string) (float64, int) {
	var sum float64
	matched := 0
	for _, tok := range tokens {
		if v, ok := s.lexicon.Value(tok); ok {
			sum += v
			matched++
		}
	}
	return sum, matched
}

// Compound segments raw text into sentences, scores each with the
// rule-based scorer, and returns the arithmetic mean of the per-sentence
// compound scores, clipped to [-1, 1]. Empty input scores zero.
func (s *Scorer) Compound(text string) (float64, int, error) {
	sentences, err := s.seg.Sentences(text)
	if err != nil {
		return 0, 0, err
	}
	if len(sentences) == 0 {
		return 0, 0, nil
	}

	var sum float64
	for _, sent := range sentences {
		sum += s.vader.PolarityScores(sent).Compound
	}
	mean := sum / float64(len(sentences))
	return clip(mean, -1, 1), len(sentences), nil
}

// ScoreDocument computes both methods for one document: tokens is the
// cleaned token sequence, raw the original pre-filter text.
func (s *Scorer) ScoreDocument(tokens []string, raw string) (Score, error) {
	lexical, matched := s.Lexical(tokens)
	compound, sentences, err := s.Compound(raw)
	if err != nil {
		return Score{}, err
	}
	return Score{
		Lexical:   lexical,
		Compound:  compound,
		Matched:   matched,
		Sentences: sentences,
	}, nil
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

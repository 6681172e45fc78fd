package pipeline

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/cognitext/textlab/pkg/textlab/internalerr"
)

// Token is a word token with its originating position.
type Token struct {
	Text     string `json:"text"`
	Sentence int    `json:"sentence"` // index of the sentence the token came from
	Offset   int    `json:"offset"`   // byte offset of the token in the input text
	Tag      string `json:"tag,omitempty"` // Penn Treebank tag; empty when tagging is off
}

// Tokenizer segments text into word tokens and sentences. Implementations
// must be deterministic: identical input yields identical output.
type Tokenizer interface {
	Words(text string) ([]Token, error)
	Sentences(text string) ([]string, error)
}

// ProseTokenizer adapts the prose toolkit to the Tokenizer interface.
// Construction of the underlying document model can fail when the
// toolkit's language resources are unavailable; that failure surfaces
// as internalerr.ErrTokenization and is not retried.
type ProseTokenizer struct {
	tagging bool
}

// NewProseTokenizer creates the adapter. Tagging is only needed for
// lemma-mode morphological normalization and costs extra per document,
// so it is opt-in.
func NewProseTokenizer(tagging bool) *ProseTokenizer {
	return &ProseTokenizer{tagging: tagging}
}

// Words splits text into word tokens with sentence indexes and byte
// offsets. Offsets are assigned by a forward scan, so repeated token
// texts resolve to successive occurrences.
func (t *ProseTokenizer) Words(text string) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithTagging(t.tagging),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrTokenization, err)
	}

	// Sentence end offsets, for assigning each token a sentence index.
	var ends []int
	pos := 0
	for _, s := range doc.Sentences() {
		if idx := strings.Index(text[pos:], s.Text); idx >= 0 {
			pos += idx + len(s.Text)
		}
		ends = append(ends, pos)
	}

	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	search, sent := 0, 0
	for _, tok := range toks {
		off := search
		if idx := strings.Index(text[search:], tok.Text); idx >= 0 {
			off = search + idx
			search = off + len(tok.Text)
		}
		for sent < len(ends)-1 && off >= ends[sent] {
			sent++
		}
		out = append(out, Token{Text: tok.Text, Sentence: sent, Offset: off, Tag: tok.Tag})
	}
	return out, nil
}

// Sentences splits raw text into sentence strings following standard
// orthographic rules (terminal punctuation, abbreviation exceptions).
func (t *ProseTokenizer) Sentences(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithTagging(false),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrTokenization, err)
	}

	sents := doc.Sentences()
	out := make([]string, len(sents))
	for i, s := range sents {
		out[i] = s.Text
	}
	return out, nil
}

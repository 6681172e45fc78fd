// Package pipeline implements the staged text-cleaning pipeline:
// normalization, tokenization, stopword filtering, and morphological
// normalization (lemma or stem).
//
// Stages are pure functions from input sequence to output sequence: no
// stage mutates what it received from upstream, and running the
// pipeline twice on identical input yields identical results. All
// components are safe for concurrent use once constructed.
package pipeline

import "strings"

// StageStats records the size of the working data after one stage.
type StageStats struct {
	Stage  string `json:"stage"`
	Chars  int    `json:"chars,omitempty"`
	Words  int    `json:"words,omitempty"`
	Tokens int    `json:"tokens,omitempty"`
	Unique int    `json:"unique,omitempty"`
}

// CleaningResult is the output of the full pipeline for one document.
//
// Invariant: TokenCount == Removed.Total() + len(Tokens).
type CleaningResult struct {
	Normalized string        `json:"normalized"`
	Tokens     []string      `json:"tokens"` // final normalized forms, in order
	TokenCount int           `json:"token_count"` // tokens before filtering
	Removed    RemovalCounts `json:"removed"`
	Mode       Mode          `json:"mode"`
	Stages     []StageStats  `json:"stages"`

	// Kept holds the surviving tokens with their positions and tags,
	// parallel to Tokens. Not serialized; consumers that need POS
	// information (e.g. sense lookup) read it directly.
	Kept []Token `json:"-"`
}

// Pipeline runs a document through normalize → tokenize → filter → morph.
type Pipeline struct {
	tokenizer Tokenizer
	filter    *Filter
	morph     *Morph
}

// New creates a pipeline from its stage components.
func New(tokenizer Tokenizer, filter *Filter, morph *Morph) *Pipeline {
	return &Pipeline{tokenizer: tokenizer, filter: filter, morph: morph}
}

// Run executes the full cleaning pipeline on one document.
// An empty document produces a result with zero tokens at every stage.
func (p *Pipeline) Run(text string) (CleaningResult, error) {
	normalized := Normalize(text)

	words, err := p.tokenizer.Words(normalized)
	if err != nil {
		return CleaningResult{}, err
	}

	kept, removed := p.filter.Apply(words)
	forms := p.morph.Normalize(kept)

	return CleaningResult{
		Normalized: normalized,
		Tokens:     forms,
		TokenCount: len(words),
		Removed:    removed,
		Mode:       p.morph.Mode(),
		Kept:       kept,
		Stages: []StageStats{
			{Stage: "original", Chars: len(text), Words: len(strings.Fields(text))},
			{Stage: "normalized", Chars: len(normalized), Words: len(strings.Fields(normalized))},
			{Stage: "filtered", Tokens: len(kept), Unique: uniqueCount(textsOf(kept))},
			{Stage: string(p.morph.Mode()), Tokens: len(forms), Unique: uniqueCount(forms)},
		},
	}, nil
}

func textsOf(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func uniqueCount(forms []string) int {
	seen := make(map[string]struct{}, len(forms))
	for _, f := range forms {
		seen[f] = struct{}{}
	}
	return len(seen)
}

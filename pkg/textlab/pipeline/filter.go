package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"
)

// DefaultMinTokenLength is the default minimum token length in runes.
const DefaultMinTokenLength = 2

// StopSet is a stopword set. With the snowball fallback enabled, words
// missing from the explicit set are additionally checked against the
// snowball English stopword predicate.
type StopSet struct {
	terms    map[string]struct{}
	snowball bool
}

// NewStopSet builds a stop set from explicit terms. Terms are stored
// lowercased.
func NewStopSet(terms []string) *StopSet {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[strings.ToLower(t)] = struct{}{}
	}
	return &StopSet{terms: set}
}

// EnableSnowballFallback extends the set with the snowball English
// stopword predicate. Call before first use; the set is read-only after.
func (s *StopSet) EnableSnowballFallback() {
	s.snowball = true
}

// Contains reports whether word is a stopword.
func (s *StopSet) Contains(word string) bool {
	if _, ok := s.terms[word]; ok {
		return true
	}
	return s.snowball && english.IsStopWord(word)
}

// Len returns the number of explicit terms.
func (s *StopSet) Len() int { return len(s.terms) }

// RemovalCounts records how many tokens each filter reason removed.
// A token counts under the first reason that applies, evaluated in the
// order stopword, non-alphabetic, too short; never under more than one.
type RemovalCounts struct {
	Stopword int `json:"stopword"`
	NonAlpha int `json:"non_alpha"`
	TooShort int `json:"too_short"`
}

// Total returns the number of removed tokens across all reasons.
func (c RemovalCounts) Total() int {
	return c.Stopword + c.NonAlpha + c.TooShort
}

// Filter removes stopwords, non-alphabetic tokens, and tokens shorter
// than the minimum length, preserving relative order.
type Filter struct {
	stops  *StopSet
	minLen int
}

// NewFilter creates a filter. Non-positive minLen falls back to
// DefaultMinTokenLength.
func NewFilter(stops *StopSet, minLen int) *Filter {
	if minLen <= 0 {
		minLen = DefaultMinTokenLength
	}
	if stops == nil {
		stops = NewStopSet(nil)
	}
	return &Filter{stops: stops, minLen: minLen}
}

// Apply filters the token sequence and reports removals per reason.
// Same input and configuration always yield the same output and counts.
func (f *Filter) Apply(tokens []Token) ([]Token, RemovalCounts) {
	kept := make([]Token, 0, len(tokens))
	var counts RemovalCounts
	for _, tok := range tokens {
		switch {
		case f.stops.Contains(tok.Text):
			counts.Stopword++
		case !isAlphabetic(tok.Text):
			counts.NonAlpha++
		case utf8.RuneCountInString(tok.Text) < f.minLen:
			counts.TooShort++
		default:
			kept = append(kept, tok)
		}
	}
	return kept, counts
}

// isAlphabetic reports whether the token consists of letters, allowing
// word-internal apostrophes and hyphens ("o'clock", "well-known").
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsLetter(r) {
			continue
		}
		if (r == '\'' || r == '-') && i > 0 && i < len(runes)-1 {
			continue
		}
		return false
	}
	return true
}

// Package freq builds frequency distributions and rank-frequency
// (Zipfian) statistics over normalized token sequences.
package freq

import (
	"sort"
	"unicode/utf8"
)

// Entry is one ranked token in a frequency profile.
type Entry struct {
	Token     string `json:"token"`
	Count     int    `json:"count"`
	Rank      int    `json:"rank"`       // 1-indexed
	RankCount int    `json:"rank_count"` // rank × count, for Zipf inspection
}

// Profile is a frequency distribution with a deterministic rank order.
//
// Invariant: the sum of Counts equals Total, the length of the token
// sequence the profile was built from.
type Profile struct {
	Counts map[string]int `json:"counts"`
	Ranked []Entry        `json:"ranked"`
	Total  int            `json:"total"`
}

// Build counts tokens in a single pass and ranks them by descending
// count. Ties break by the order tokens first appeared in the input, so
// identical inputs always produce identical rankings (and identical
// rank-frequency plots).
func Build(tokens []string) Profile {
	counts := make(map[string]int, len(tokens))
	first := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))

	for i, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			first[tok] = i
			order = append(order, tok)
		}
		counts[tok]++
	}

	ranked := make([]Entry, len(order))
	for i, tok := range order {
		ranked[i] = Entry{Token: tok, Count: counts[tok]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return first[ranked[i].Token] < first[ranked[j].Token]
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].RankCount = ranked[i].Rank * ranked[i].Count
	}

	return Profile{Counts: counts, Ranked: ranked, Total: len(tokens)}
}

// TopCount returns the count of the highest-ranked token, or 0 for an
// empty profile.
func (p Profile) TopCount() int {
	if len(p.Ranked) == 0 {
		return 0
	}
	return p.Ranked[0].Count
}

// Metrics summarizes a token sequence.
type Metrics struct {
	Tokens       int     `json:"tokens"`
	Unique       int     `json:"unique"`
	Diversity    float64 `json:"diversity"`      // unique / total
	MeanTokenLen float64 `json:"mean_token_len"` // in runes
}

// ComputeMetrics returns basic lexical metrics for a token sequence.
// An empty sequence yields all-zero metrics.
func ComputeMetrics(tokens []string) Metrics {
	if len(tokens) == 0 {
		return Metrics{}
	}

	seen := make(map[string]struct{}, len(tokens))
	runeTotal := 0
	for _, tok := range tokens {
		seen[tok] = struct{}{}
		runeTotal += utf8.RuneCountInString(tok)
	}

	total := len(tokens)
	return Metrics{
		Tokens:       total,
		Unique:       len(seen),
		Diversity:    float64(len(seen)) / float64(total),
		MeanTokenLen: float64(runeTotal) / float64(total),
	}
}

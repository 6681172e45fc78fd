// Package senses looks up a word's sense inventory (synonym sets) in a
// lexical database, grouped by part of speech. The database is loaded
// once and read-only afterwards; lookups for unknown words yield an
// empty annotation, which is a normal outcome, not an error.
package senses

import (
	"fmt"
	"os"
	"strings"

	"github.com/cognitext/textlab/pkg/textlab/data"
	"github.com/cognitext/textlab/pkg/textlab/internalerr"
	"github.com/cognitext/textlab/pkg/textlab/pipeline"
)

// Sense is one synonym set with a human-readable gloss.
type Sense struct {
	ID      string   `json:"id"`
	Members []string `json:"members"`
	Gloss   string   `json:"gloss"`
}

// Group collects the senses of a word for one part of speech.
type Group struct {
	POS    pipeline.POS `json:"pos"`
	Senses []Sense      `json:"senses"`
}

// Annotation holds all sense groups found for a word. No groups means
// the word is not in the database.
type Annotation struct {
	Word   string  `json:"word"`
	Groups []Group `json:"groups,omitempty"`
}

// posOrder fixes the order sense groups are reported in.
var posOrder = []pipeline.POS{pipeline.Noun, pipeline.Verb, pipeline.Adjective, pipeline.Adverb}

// DB is an in-memory lexical database keyed by lowercase lemma.
type DB struct {
	entries map[string]map[pipeline.POS][]Sense
}

// Parse reads pipe-separated records of the form
//
//	lemma|pos|sense id|members (comma separated)|gloss
//
// Blank lines and lines starting with # are skipped. Structural
// problems are load errors wrapping internalerr.ErrResourceLoad.
func Parse(raw string) (*DB, error) {
	entries := make(map[string]map[pipeline.POS][]Sense)

	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) != 5 {
			return nil, fmt.Errorf("%w: senses database line %d: want 5 fields, got %d",
				internalerr.ErrResourceLoad, i+1, len(parts))
		}

		lemma := strings.ToLower(strings.TrimSpace(parts[0]))
		pos := pipeline.POS(strings.TrimSpace(parts[1]))
		switch pos {
		case pipeline.Noun, pipeline.Verb, pipeline.Adjective, pipeline.Adverb:
		default:
			return nil, fmt.Errorf("%w: senses database line %d: unknown pos %q",
				internalerr.ErrResourceLoad, i+1, parts[1])
		}

		members := strings.Split(parts[3], ",")
		for j := range members {
			members[j] = strings.TrimSpace(members[j])
		}

		sense := Sense{
			ID:      strings.TrimSpace(parts[2]),
			Members: members,
			Gloss:   strings.TrimSpace(parts[4]),
		}

		if entries[lemma] == nil {
			entries[lemma] = make(map[pipeline.POS][]Sense)
		}
		entries[lemma][pos] = append(entries[lemma][pos], sense)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: senses database is empty", internalerr.ErrResourceLoad)
	}
	return &DB{entries: entries}, nil
}

// Default parses the embedded database.
func Default() (*DB, error) {
	return Parse(data.Senses)
}

// Load reads a database from a file.
func Load(path string) (*DB, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: senses database %q: %v", internalerr.ErrResourceLoad, path, err)
	}
	return Parse(string(raw))
}

// Annotate returns the sense groups for a word, optionally restricted
// to one part of speech (empty POS means all). Groups appear in fixed
// POS order (noun, verb, adjective, adverb); senses within a group keep
// database order. Unknown words yield an annotation with no groups.
func (db *DB) Annotate(word string, pos pipeline.POS) Annotation {
	ann := Annotation{Word: word}

	byPOS, ok := db.entries[strings.ToLower(word)]
	if !ok {
		return ann
	}

	for _, p := range posOrder {
		if pos != "" && p != pos {
			continue
		}
		if ss := byPOS[p]; len(ss) > 0 {
			ann.Groups = append(ann.Groups, Group{POS: p, Senses: ss})
		}
	}
	return ann
}

// Len returns the number of lemmas in the database.
func (db *DB) Len() int { return len(db.entries) }

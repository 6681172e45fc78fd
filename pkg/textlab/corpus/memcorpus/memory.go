package memcorpus

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognitext/textlab/pkg/textlab/corpus"
	"github.com/cognitext/textlab/pkg/textlab/internalerr"
)

// Store is an in-memory implementation of corpus.Store for tests.
type Store struct {
	mu   sync.RWMutex
	docs map[string]string
}

// New creates a new in-memory corpus.
func New() *Store {
	return &Store{docs: make(map[string]string)}
}

// Put adds or replaces a document.
func (s *Store) Put(id, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = text
}

// Get implements corpus.Store.
func (s *Store) Get(ctx context.Context, id string) (corpus.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	text, ok := s.docs[id]
	if !ok {
		return corpus.Document{}, fmt.Errorf("%w: %q", internalerr.ErrDocumentNotFound, id)
	}
	return corpus.Document{ID: id, Text: text}, nil
}

// IDs implements corpus.Store. Identifiers are returned sorted.
func (s *Store) IDs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

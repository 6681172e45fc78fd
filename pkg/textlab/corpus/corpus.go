package corpus

import "context"

// Document is a raw text document loaded from a corpus.
// Documents are created on load and never mutated.
type Document struct {
	ID   string
	Text string
}

// Store is the corpus loader contract. Get returns the raw text of the
// document with the given identifier or an error wrapping
// internalerr.ErrDocumentNotFound. IDs lists the available identifiers.
type Store interface {
	Get(ctx context.Context, id string) (Document, error)
	IDs(ctx context.Context) ([]string, error)
}

// Package dircorpus loads corpus documents from a directory.
//
// Plain .txt files are returned verbatim. Files with an .html or .htm
// extension are parsed and reduced to their text content before being
// returned, so downstream stages always see plain text.
package dircorpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognitext/textlab/pkg/textlab/corpus"
	"github.com/cognitext/textlab/pkg/textlab/internalerr"
)

// extensions recognized as corpus documents.
var extensions = map[string]bool{
	".txt":  true,
	".html": true,
	".htm":  true,
}

// Store serves documents from a single flat directory.
// The document identifier is the file name, including extension.
type Store struct {
	dir string
}

// New creates a directory-backed corpus. The directory must exist.
func New(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("corpus directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("corpus path %q is not a directory", dir)
	}
	return &Store{dir: dir}, nil
}

// Get implements corpus.Store.
func (s *Store) Get(ctx context.Context, id string) (corpus.Document, error) {
	// Reject path traversal: identifiers are bare file names.
	if id == "" || id != filepath.Base(id) {
		return corpus.Document{}, fmt.Errorf("%w: %q", internalerr.ErrDocumentNotFound, id)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, id))
	if err != nil {
		if os.IsNotExist(err) {
			return corpus.Document{}, fmt.Errorf("%w: %q", internalerr.ErrDocumentNotFound, id)
		}
		return corpus.Document{}, fmt.Errorf("read document %q: %w", id, err)
	}

	text := string(data)
	ext := strings.ToLower(filepath.Ext(id))
	if ext == ".html" || ext == ".htm" {
		text = stripHTML(text)
	}

	return corpus.Document{ID: id, Text: text}, nil
}

// IDs implements corpus.Store. Identifiers are returned sorted.
func (s *Store) IDs(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list corpus directory: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if extensions[strings.ToLower(filepath.Ext(e.Name()))] {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// stripHTML reduces an HTML document to its visible text content.
// Script and style elements are dropped entirely.
func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to raw string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}

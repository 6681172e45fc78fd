package sentiment

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cognitext/textlab/pkg/textlab/data"
	"github.com/cognitext/textlab/pkg/textlab/internalerr"
)

// Lexicon maps word forms to polarity values. Read-only after load.
type Lexicon struct {
	values map[string]float64
}

// ParseLexicon reads tab-separated "word<TAB>value" lines. Blank lines
// and lines starting with # are skipped. A malformed line is a load
// error: a corrupt lexicon must fail loudly, not silently score every
// token as zero.
func ParseLexicon(raw string) (*Lexicon, error) {
	values := make(map[string]float64, 128)
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: sentiment lexicon line %d: missing value", internalerr.ErrResourceLoad, i+1)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: sentiment lexicon line %d: %v", internalerr.ErrResourceLoad, i+1, err)
		}
		values[strings.TrimSpace(parts[0])] = v
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: sentiment lexicon is empty", internalerr.ErrResourceLoad)
	}
	return &Lexicon{values: values}, nil
}

// DefaultLexicon parses the embedded lexicon.
func DefaultLexicon() (*Lexicon, error) {
	return ParseLexicon(data.SentimentLexicon)
}

// LoadLexicon reads a lexicon from a file.
func LoadLexicon(path string) (*Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: sentiment lexicon %q: %v", internalerr.ErrResourceLoad, path, err)
	}
	return ParseLexicon(string(raw))
}

// Value returns the polarity of a word and whether the word is present.
// Absence from a loaded lexicon is a normal outcome and scores zero.
func (l *Lexicon) Value(word string) (float64, bool) {
	v, ok := l.values[word]
	return v, ok
}

// Len returns the number of lexicon entries.
func (l *Lexicon) Len() int { return len(l.values) }

// Package config loads analysis configuration from YAML files and
// constructs the pipeline components it describes.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognitext/textlab/pkg/textlab/data"
	"github.com/cognitext/textlab/pkg/textlab/internalerr"
	"github.com/cognitext/textlab/pkg/textlab/pipeline"
)

// Analysis names accepted in Config.Analyses.
const (
	AnalysisFrequency  = "frequency"
	AnalysisLexical    = "lexical"
	AnalysisContextual = "contextual"
	AnalysisSynsets    = "synsets"
)

// Config selects pipeline and analysis behavior. Resource paths are
// optional; the embedded defaults are used when they are empty.
type Config struct {
	Mode              string   `yaml:"mode"`
	MinTokenLength    int      `yaml:"min_token_length"`
	MinTextLength     int      `yaml:"min_text_length"` // 0 disables the check
	Analyses          []string `yaml:"analyses"`
	StoplistPath      string   `yaml:"stoplist"`
	LexiconPath       string   `yaml:"lexicon"`
	SensesPath        string   `yaml:"senses"`
	SnowballStopwords bool     `yaml:"snowball_stopwords"`
}

// Default returns the default configuration: lemma mode, minimum token
// length 2, all analyses enabled, embedded resources.
func Default() Config {
	return Config{
		Mode:           string(pipeline.ModeLemma),
		MinTokenLength: pipeline.DefaultMinTokenLength,
		Analyses: []string{
			AnalysisFrequency,
			AnalysisLexical,
			AnalysisContextual,
			AnalysisSynsets,
		},
	}
}

// Load reads a YAML config file over the defaults and validates it.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects invalid modes, thresholds, and analysis names.
// Validation happens before any pipeline stage runs.
func (c Config) Validate() error {
	switch pipeline.Mode(c.Mode) {
	case pipeline.ModeLemma, pipeline.ModeStem:
	default:
		return fmt.Errorf("%w: unknown mode %q", internalerr.ErrInvalidConfig, c.Mode)
	}

	if c.MinTokenLength < 1 {
		return fmt.Errorf("%w: min_token_length must be >= 1, got %d",
			internalerr.ErrInvalidConfig, c.MinTokenLength)
	}
	if c.MinTextLength < 0 {
		return fmt.Errorf("%w: min_text_length must be >= 0, got %d",
			internalerr.ErrInvalidConfig, c.MinTextLength)
	}

	for _, a := range c.Analyses {
		switch a {
		case AnalysisFrequency, AnalysisLexical, AnalysisContextual, AnalysisSynsets:
		default:
			return fmt.Errorf("%w: unknown analysis %q", internalerr.ErrInvalidConfig, a)
		}
	}
	return nil
}

// HasAnalysis reports whether the named analysis is enabled.
func (c Config) HasAnalysis(name string) bool {
	for _, a := range c.Analyses {
		if a == name {
			return true
		}
	}
	return false
}

// Stoplist is the stopword list file format.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: stoplist %q: %v", internalerr.ErrResourceLoad, path, err)
	}

	var sl Stoplist
	if err := yaml.Unmarshal(raw, &sl); err != nil {
		return nil, fmt.Errorf("%w: stoplist %q: %v", internalerr.ErrResourceLoad, path, err)
	}
	return &sl, nil
}

// DefaultStopwords returns the embedded stopword list.
func DefaultStopwords() []string {
	var terms []string
	for _, line := range strings.Split(data.Stopwords, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	return terms
}

package config

import (
	"fmt"

	"github.com/cognitext/textlab/pkg/textlab/pipeline"
	"github.com/cognitext/textlab/pkg/textlab/senses"
	"github.com/cognitext/textlab/pkg/textlab/sentiment"
)

// Components holds the constructed pipeline and analysis components.
type Components struct {
	Config    Config
	Tokenizer *pipeline.ProseTokenizer
	Pipeline  *pipeline.Pipeline
	Scorer    *sentiment.Scorer // nil unless a sentiment analysis is enabled
	Senses    *senses.DB        // nil unless the synsets analysis is enabled
}

// Loader builds components from a configuration, loading external
// resource files where paths are set and embedded defaults otherwise.
// Resource load failures abort construction: no stage can produce
// meaningful output without its resource.
type Loader struct {
	Config Config
}

// Load validates the configuration and constructs all components it
// requires.
func (l Loader) Load() (*Components, error) {
	cfg := l.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	terms := DefaultStopwords()
	if cfg.StoplistPath != "" {
		sl, err := LoadStoplist(cfg.StoplistPath)
		if err != nil {
			return nil, err
		}
		terms = sl.Terms
	}
	stops := pipeline.NewStopSet(terms)
	if cfg.SnowballStopwords {
		stops.EnableSnowballFallback()
	}

	mode := pipeline.Mode(cfg.Mode)

	// Tagging is only needed to pick parts of speech for lemmatization.
	tokenizer := pipeline.NewProseTokenizer(mode == pipeline.ModeLemma)

	var lem pipeline.Lemmatizer
	if mode == pipeline.ModeLemma {
		g, err := pipeline.NewGolemLemmatizer()
		if err != nil {
			return nil, err
		}
		lem = g
	}
	morph, err := pipeline.NewMorph(mode, lem, pipeline.SnowballStemmer{})
	if err != nil {
		return nil, err
	}

	comp := &Components{
		Config:    cfg,
		Tokenizer: tokenizer,
		Pipeline:  pipeline.New(tokenizer, pipeline.NewFilter(stops, cfg.MinTokenLength), morph),
	}

	if cfg.HasAnalysis(AnalysisLexical) || cfg.HasAnalysis(AnalysisContextual) {
		lexicon, err := loadLexicon(cfg.LexiconPath)
		if err != nil {
			return nil, err
		}
		scorer, err := sentiment.NewScorer(lexicon, tokenizer)
		if err != nil {
			return nil, err
		}
		comp.Scorer = scorer
	}

	if cfg.HasAnalysis(AnalysisSynsets) {
		db, err := loadSenses(cfg.SensesPath)
		if err != nil {
			return nil, err
		}
		comp.Senses = db
	}

	return comp, nil
}

func loadLexicon(path string) (*sentiment.Lexicon, error) {
	if path != "" {
		return sentiment.LoadLexicon(path)
	}
	lex, err := sentiment.DefaultLexicon()
	if err != nil {
		return nil, fmt.Errorf("embedded sentiment lexicon: %w", err)
	}
	return lex, nil
}

func loadSenses(path string) (*senses.DB, error) {
	if path != "" {
		return senses.Load(path)
	}
	db, err := senses.Default()
	if err != nil {
		return nil, fmt.Errorf("embedded senses database: %w", err)
	}
	return db, nil
}

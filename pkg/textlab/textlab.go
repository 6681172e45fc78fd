// Package textlab is the analysis facade: it runs the cleaning pipeline
// over corpus documents and bundles the requested analyses (frequency,
// lexical and contextual sentiment, sense annotation) into reports.
package textlab

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/cognitext/textlab/pkg/textlab/config"
	"github.com/cognitext/textlab/pkg/textlab/corpus"
	"github.com/cognitext/textlab/pkg/textlab/freq"
	"github.com/cognitext/textlab/pkg/textlab/internalerr"
	"github.com/cognitext/textlab/pkg/textlab/pipeline"
	"github.com/cognitext/textlab/pkg/textlab/senses"
	"github.com/cognitext/textlab/pkg/textlab/sentiment"
)

// Analyzer runs the cleaning pipeline and the configured analyses over
// documents. Each document's run is independent and side-effect-free;
// the only shared state is the read-only lexical resources.
type Analyzer struct {
	corpus corpus.Store
	cfg    config.Config
	pipe   *pipeline.Pipeline
	scorer *sentiment.Scorer
	senses *senses.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Options configures an Analyzer. Components is required; Corpus is only
// needed for AnalyzeDocument and AnalyzeCorpus.
type Options struct {
	Corpus     corpus.Store
	Components *config.Components
}

// New creates an Analyzer.
func New(opts Options) (*Analyzer, error) {
	if opts.Components == nil || opts.Components.Pipeline == nil {
		return nil, fmt.Errorf("%w: pipeline components required", internalerr.ErrInvalidConfig)
	}
	return &Analyzer{
		corpus:  opts.Corpus,
		cfg:     opts.Components.Config,
		pipe:    opts.Components.Pipeline,
		scorer:  opts.Components.Scorer,
		senses:  opts.Components.Senses,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// DocumentReport bundles the analyses requested for one document.
// Sections for disabled analyses are nil.
type DocumentReport struct {
	RunID     string                  `json:"run_id"`
	DocID     string                  `json:"doc_id"`
	Cleaning  pipeline.CleaningResult `json:"cleaning"`
	Frequency *freq.Profile           `json:"frequency,omitempty"`
	Zipf      *freq.ZipfFit           `json:"zipf,omitempty"`
	Metrics   *freq.Metrics           `json:"metrics,omitempty"`
	Sentiment *sentiment.Score        `json:"sentiment,omitempty"`
	Senses    []senses.Annotation     `json:"senses,omitempty"`
}

// SkippedDoc records a document that failed during a corpus run, with a
// human-readable reason.
type SkippedDoc struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// CorpusReport is the result of analyzing every document in a corpus.
type CorpusReport struct {
	RunID   string           `json:"run_id"`
	Docs    []DocumentReport `json:"docs"`
	Skipped []SkippedDoc     `json:"skipped,omitempty"`
}

func (a *Analyzer) newRunID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ulid.MustNew(ulid.Now(), a.entropy).String()
}

// AnalyzeText runs the pipeline and the configured analyses over raw
// text under the given identifier.
func (a *Analyzer) AnalyzeText(id, text string) (DocumentReport, error) {
	if min := a.cfg.MinTextLength; min > 0 && len(strings.TrimSpace(text)) < min {
		return DocumentReport{}, fmt.Errorf("document %q shorter than %d characters", id, min)
	}

	cleaning, err := a.pipe.Run(text)
	if err != nil {
		return DocumentReport{}, err
	}

	rep := DocumentReport{
		RunID:    a.newRunID(),
		DocID:    id,
		Cleaning: cleaning,
	}

	if a.cfg.HasAnalysis(config.AnalysisFrequency) {
		profile := freq.Build(cleaning.Tokens)
		fit := profile.Zipf()
		metrics := freq.ComputeMetrics(cleaning.Tokens)
		rep.Frequency = &profile
		rep.Zipf = &fit
		rep.Metrics = &metrics
	}

	lexOn := a.cfg.HasAnalysis(config.AnalysisLexical)
	ctxOn := a.cfg.HasAnalysis(config.AnalysisContextual)
	if (lexOn || ctxOn) && a.scorer != nil {
		var score sentiment.Score
		if lexOn {
			score.Lexical, score.Matched = a.scorer.Lexical(cleaning.Tokens)
		}
		if ctxOn {
			compound, n, err := a.scorer.Compound(text)
			if err != nil {
				return DocumentReport{}, err
			}
			score.Compound = compound
			score.Sentences = n
		}
		rep.Sentiment = &score
	}

	if a.cfg.HasAnalysis(config.AnalysisSynsets) && a.senses != nil {
		rep.Senses = a.annotate(cleaning)
	}

	return rep, nil
}

// AnalyzeDocument loads one corpus document and analyzes it.
func (a *Analyzer) AnalyzeDocument(ctx context.Context, id string) (DocumentReport, error) {
	if a.corpus == nil {
		return DocumentReport{}, fmt.Errorf("%w: no corpus configured", internalerr.ErrInvalidConfig)
	}
	doc, err := a.corpus.Get(ctx, id)
	if err != nil {
		return DocumentReport{}, err
	}
	return a.AnalyzeText(doc.ID, doc.Text)
}

// AnalyzeCorpus analyzes every document in the corpus. Per-document
// failures are recorded as skipped with a reason and never abort the
// run; resource failures (missing lexicon, unavailable tokenizer) abort
// immediately, since every remaining document would fail the same way.
func (a *Analyzer) AnalyzeCorpus(ctx context.Context) (CorpusReport, error) {
	if a.corpus == nil {
		return CorpusReport{}, fmt.Errorf("%w: no corpus configured", internalerr.ErrInvalidConfig)
	}

	ids, err := a.corpus.IDs(ctx)
	if err != nil {
		return CorpusReport{}, err
	}

	rep := CorpusReport{RunID: a.newRunID()}
	for _, id := range ids {
		doc, err := a.corpus.Get(ctx, id)
		if err != nil {
			rep.Skipped = append(rep.Skipped, SkippedDoc{ID: id, Reason: err.Error()})
			continue
		}

		docRep, err := a.AnalyzeText(doc.ID, doc.Text)
		if err != nil {
			if errors.Is(err, internalerr.ErrResourceLoad) || errors.Is(err, internalerr.ErrTokenization) {
				return CorpusReport{}, err
			}
			rep.Skipped = append(rep.Skipped, SkippedDoc{ID: id, Reason: err.Error()})
			continue
		}
		rep.Docs = append(rep.Docs, docRep)
	}

	return rep, nil
}

// annotate looks up senses for each distinct surviving token. In lemma
// mode the lookup is restricted to the token's tagged part of speech;
// in stem mode no POS filter applies. Words without senses are omitted.
func (a *Analyzer) annotate(res pipeline.CleaningResult) []senses.Annotation {
	seen := make(map[string]struct{}, len(res.Tokens))
	var anns []senses.Annotation

	for i, form := range res.Tokens {
		if _, ok := seen[form]; ok {
			continue
		}
		seen[form] = struct{}{}

		var pos pipeline.POS
		if res.Mode == pipeline.ModeLemma && i < len(res.Kept) {
			pos = pipeline.POSFromTag(res.Kept[i].Tag)
		}

		ann := a.senses.Annotate(form, pos)
		if len(ann.Groups) > 0 {
			anns = append(anns, ann)
		}
	}
	return anns
}

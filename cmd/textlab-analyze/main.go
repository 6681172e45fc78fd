package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognitext/textlab/pkg/textlab"
	"github.com/cognitext/textlab/pkg/textlab/config"
	"github.com/cognitext/textlab/pkg/textlab/corpus"
	"github.com/cognitext/textlab/pkg/textlab/corpus/dircorpus"
)

func main() {
	var (
		corpusDir  = flag.String("corpus", "", "Directory of .txt/.html documents (required)")
		docID      = flag.String("doc", "", "Analyze a single document instead of the whole corpus")
		configPath = flag.String("config", "", "Optional YAML config file")
		mode       = flag.String("mode", "", "Override normalization mode: lemma or stem")
		minLen     = flag.Int("min-len", 0, "Override minimum token length")
		analyses   = flag.String("analyses", "", "Override enabled analyses (comma separated)")
		list       = flag.Bool("list", false, "List document IDs and word counts, then exit")
	)
	flag.Parse()

	if *corpusDir == "" {
		log.Fatal("--corpus required")
	}

	ctx := context.Background()

	store, err := dircorpus.New(*corpusDir)
	if err != nil {
		log.Fatalf("open corpus: %v", err)
	}

	if *list {
		if err := listDocs(ctx, store); err != nil {
			log.Fatalf("list corpus: %v", err)
		}
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *minLen > 0 {
		cfg.MinTokenLength = *minLen
	}
	if *analyses != "" {
		cfg.Analyses = splitCSV(*analyses)
	}

	components, err := config.Loader{Config: cfg}.Load()
	if err != nil {
		log.Fatalf("load components: %v", err)
	}

	analyzer, err := textlab.New(textlab.Options{
		Corpus:     store,
		Components: components,
	})
	if err != nil {
		log.Fatalf("init analyzer: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if *docID != "" {
		rep, err := analyzer.AnalyzeDocument(ctx, *docID)
		if err != nil {
			log.Fatalf("analyze %s: %v", *docID, err)
		}
		if err := enc.Encode(rep); err != nil {
			log.Fatalf("encode report: %v", err)
		}
		return
	}

	rep, err := analyzer.AnalyzeCorpus(ctx)
	if err != nil {
		log.Fatalf("analyze corpus: %v", err)
	}
	for _, s := range rep.Skipped {
		log.Printf("skipped %s: %s", s.ID, s.Reason)
	}
	if err := enc.Encode(rep); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}

func listDocs(ctx context.Context, store corpus.Store) error {
	ids, err := store.IDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		doc, err := store.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%d words\n", doc.ID, len(strings.Fields(doc.Text)))
	}
	return nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

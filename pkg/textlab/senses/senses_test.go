package senses

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/cognitext/textlab/pkg/textlab/internalerr"
	"github.com/cognitext/textlab/pkg/textlab/pipeline"
)

func TestParse(t *testing.T) {
	raw := `# comment
bank|n|bank.n.01|bank|sloping land beside a body of water
bank|n|bank.n.02|bank,depository_financial_institution|a financial institution
bank|v|bank.v.01|bank|do business with a bank
`
	db, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if db.Len() != 1 {
		t.Fatalf("Len = %d, want 1", db.Len())
	}

	ann := db.Annotate("bank", "")
	if len(ann.Groups) != 2 {
		t.Fatalf("groups = %d, want 2 (noun, verb)", len(ann.Groups))
	}
	if ann.Groups[0].POS != pipeline.Noun || ann.Groups[1].POS != pipeline.Verb {
		t.Fatalf("group order = %q, %q, want n, v", ann.Groups[0].POS, ann.Groups[1].POS)
	}
	if len(ann.Groups[0].Senses) != 2 {
		t.Fatalf("noun senses = %d, want 2", len(ann.Groups[0].Senses))
	}
	if got := ann.Groups[0].Senses[0].ID; got != "bank.n.01" {
		t.Errorf("first noun sense = %q, want database order", got)
	}
	members := ann.Groups[0].Senses[1].Members
	if len(members) != 2 || members[1] != "depository_financial_institution" {
		t.Errorf("members = %v", members)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"wrong field count", "bank|n|bank.n.01|bank\n"},
		{"unknown pos", "bank|x|bank.x.01|bank|gloss\n"},
		{"empty", "# nothing\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.raw); !errors.Is(err, internalerr.ErrResourceLoad) {
				t.Fatalf("err = %v, want ErrResourceLoad", err)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	db, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if db.Len() == 0 {
		t.Fatal("embedded database is empty")
	}

	ann := db.Annotate("love", "")
	if len(ann.Groups) == 0 {
		t.Fatal("no senses for love")
	}
}

func TestAnnotatePOSFilter(t *testing.T) {
	db, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	verbs := db.Annotate("love", pipeline.Verb)
	if len(verbs.Groups) != 1 || verbs.Groups[0].POS != pipeline.Verb {
		t.Fatalf("verb filter returned %+v", verbs.Groups)
	}

	// A POS the word has no senses for yields no groups, like an
	// unknown word.
	adverbs := db.Annotate("love", pipeline.Adverb)
	if len(adverbs.Groups) != 0 {
		t.Fatalf("adverb filter returned %+v", adverbs.Groups)
	}
}

func TestAnnotateUnknownWord(t *testing.T) {
	db, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	ann := db.Annotate("zzzxyznotaword", "")
	if ann.Word != "zzzxyznotaword" || len(ann.Groups) != 0 {
		t.Fatalf("unknown word annotation = %+v, want empty groups", ann)
	}
}

func TestAnnotateCaseInsensitive(t *testing.T) {
	db, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if ann := db.Annotate("LOVE", ""); len(ann.Groups) == 0 {
		t.Fatal("uppercase lookup found nothing")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	if _, err := Load(path); !errors.Is(err, internalerr.ErrResourceLoad) {
		t.Fatalf("err = %v, want ErrResourceLoad", err)
	}
}

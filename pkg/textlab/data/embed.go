// Package data embeds the default linguistic resource bundle:
// stopword list, sentiment lexicon, and word-sense database.
package data

import _ "embed"

//go:embed stopwords.txt
var Stopwords string

//go:embed sentiment_lexicon.tsv
var SentimentLexicon string

//go:embed senses.txt
var Senses string

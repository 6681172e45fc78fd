package pipeline

import (
	"regexp"
	"strings"
	"unicode"
)

// Cleaning patterns, applied after lowercasing and before punctuation
// removal. Tags use a conservative pattern so stray < or > in prose
// survives untouched.
var (
	reURL     = regexp.MustCompile(`https?://[^\s]+`)
	reEmail   = regexp.MustCompile(`\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)
	reMention = regexp.MustCompile(`@\w+`)
	reHashtag = regexp.MustCompile(`#\w+`)
	reTag     = regexp.MustCompile(`<[^<>]+>`)
)

// contractions expands common English clitics so negations and
// auxiliaries survive punctuation stripping as separate words.
// Whole-word forms come before the generic clitic rules so that
// "can't" becomes "cannot" rather than "ca not".
var contractions = []struct{ from, to string }{
	{"can't", "cannot"},
	{"won't", "will not"},
	{"it's", "it is"},
	{"that's", "that is"},
	{"what's", "what is"},
	{"n't", " not"},
	{"'re", " are"},
	{"'ve", " have"},
	{"'ll", " will"},
	{"'d", " would"},
	{"'m", " am"},
}

// Normalize cleans raw text in a fixed order: lowercase, strip URLs,
// emails, mentions, hashtags and HTML-like tags, expand contractions,
// strip punctuation (keeping word-internal apostrophes and hyphens),
// collapse whitespace, and trim. It is a pure function: empty input
// yields empty output, and normalizing already-normalized text returns
// an identical string.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(s)

	s = reURL.ReplaceAllString(s, "")
	s = reEmail.ReplaceAllString(s, "")
	s = reMention.ReplaceAllString(s, "")
	s = reHashtag.ReplaceAllString(s, "")
	s = reTag.ReplaceAllString(s, "")

	for _, c := range contractions {
		s = strings.ReplaceAll(s, c.from, c.to)
	}

	s = stripPunctuation(s)

	fields := strings.Fields(s)
	cleaned := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'-")
		if f != "" {
			cleaned = append(cleaned, f)
		}
	}
	return strings.Join(cleaned, " ")
}

// stripPunctuation replaces every rune that is not a letter, digit,
// whitespace, apostrophe, or hyphen with a space. Apostrophes and
// hyphens survive here and are trimmed from word edges afterwards, so
// only word-internal ones remain.
func stripPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '\'' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

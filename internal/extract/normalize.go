package extract

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Stop words trimmed from captured place names so "the beautiful paris"
// and "paris" resolve to the same destination.
var placeStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "to": true, "in": true,
	"for": true, "this": true, "next": true, "beautiful": true,
	"lovely": true, "amazing": true, "city": true, "of": true,
}

// Trailing phrases that leak into captures from assistant echo text.
// Normalization strips them uniformly instead of patching call sites.
var trailingPhrases = []string{
	" is a great choice",
	" sounds great",
	" sounds good",
	" would be nice",
	" please",
}

// NormalizePlace cleans a raw captured place name: cut at sentence
// punctuation, drop stop words and duplicate tokens, then title-case.
func NormalizePlace(raw string) string {
	cleaned := strings.ToLower(strings.TrimSpace(raw))

	for _, sep := range []string{",", ".", "!", "?", ";", " and ", " with ", " for ", " in ", " during "} {
		if idx := strings.Index(cleaned, sep); idx >= 0 {
			cleaned = cleaned[:idx]
		}
	}

	for _, phrase := range trailingPhrases {
		cleaned = strings.TrimSuffix(cleaned, phrase)
	}

	tokens := lo.Filter(strings.Fields(cleaned), func(tok string, _ int) bool {
		return !placeStopWords[tok]
	})
	tokens = lo.Uniq(tokens)
	if len(tokens) == 0 {
		return ""
	}

	return titleCaser.String(strings.Join(tokens, " "))
}

// TitleCase exposes consistent English title-casing for display text.
func TitleCase(s string) string {
	return titleCaser.String(s)
}

package pipeline

import (
	"strings"
	"unicode"

	"github.com/hostops-ai/hostops/internal/config"
)

// stopWords are articles, auxiliary verbs, pronouns and conjunctions
// that carry no retrieval signal.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "can": {},
	"i": {}, "you": {}, "we": {}, "they": {}, "he": {}, "she": {}, "it": {},
	"this": {}, "that": {}, "these": {}, "those": {},
}

// ExtractKeywords lower-cases the text, strips punctuation, and returns
// up to max unique tokens in order of first appearance. Tokens shorter
// than config.MinKeywordLen and stop-words are discarded.
func ExtractKeywords(text string, max int) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		if unicode.IsSpace(r) {
			return r
		}
		// punctuation is dropped, not turned into a separator
		return -1
	}, text)

	keywords := make([]string, 0, max)
	seen := make(map[string]struct{})
	for _, token := range strings.Fields(cleaned) {
		if len([]rune(token)) < config.MinKeywordLen {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
		if len(keywords) == max {
			break
		}
	}
	return keywords
}

package usecase

import (
	"strings"

	"github.com/retrofy/backend/internal/domain"
)

// MatchesQuery interprets a raw free-text query against one product. The
// strategies below form one ordered decision list; each either decides the
// match or falls through to the next. The order is load-bearing: a query
// that satisfies an earlier, looser strategy never reaches a later, stricter
// one.
func MatchesQuery(query string, product domain.Product) bool {
	q := strings.TrimSpace(Normalize(query))
	if q == "" {
		return true
	}

	words := strings.Fields(q)
	blob := searchBlob(product)

	// Single word: canonical terms go through the smart matcher, anything
	// else is a plain substring check over title+brand+description.
	if len(words) == 1 {
		if isCanonicalTerm(words[0]) {
			return SmartCategoryMatch(words[0], product)
		}
		return strings.Contains(blob, words[0])
	}

	// Whole query is a registered multi-word phrase, e.g. "platform boot".
	phrase := strings.Join(words, " ")
	if isCanonicalTerm(phrase) {
		return SmartCategoryMatch(phrase, product)
	}

	// Brand + category decomposition: first word as candidate brand, the
	// remainder as candidate category. Both conditions are required.
	candidateBrand := words[0]
	remainder := strings.Join(words[1:], " ")
	if strings.Contains(Normalize(product.Brand), candidateBrand) ||
		strings.Contains(Normalize(product.Title), candidateBrand) {
		if SmartCategoryMatch(remainder, product) {
			return true
		}
	}

	// "platform <shoe type>" shorthand for the platform-shoe space: the
	// literal word must appear in the searchable text and the second word
	// must smart-match on its own.
	if candidateBrand == "platform" && len(words) == 2 {
		if strings.Contains(blob, "platform") && SmartCategoryMatch(words[1], product) {
			return true
		}
	}

	// Per-word canonical fallback: any single registered word that
	// smart-matches carries the whole query (OR semantics).
	for _, word := range words {
		if isCanonicalTerm(word) && SmartCategoryMatch(word, product) {
			return true
		}
	}

	// Final fallback: every word must appear somewhere in the searchable
	// text, in any order.
	for _, word := range words {
		if !strings.Contains(blob, word) {
			return false
		}
	}
	return true
}

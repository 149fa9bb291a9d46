package usecase

import (
	"strings"

	"github.com/retrofy/backend/internal/domain"
)

// SmartCategoryMatch decides whether one canonical search term matches one
// product, expanding the term through the synonym taxonomy instead of relying
// on literal substring equality alone.
//
// An empty term matches unconditionally (the no-filter case). A registered
// canonical term matches iff any of its synonym substrings appears anywhere
// in the product's searchable text; an unregistered term falls back to plain
// substring containment.
func SmartCategoryMatch(term string, product domain.Product) bool {
	key := strings.TrimSpace(Normalize(term))
	if key == "" {
		return true
	}

	haystack := categoryHaystack(product)

	if syns, ok := synonymsFor(key); ok {
		for _, syn := range syns {
			if strings.Contains(haystack, syn) {
				return true
			}
		}
		return false
	}

	return strings.Contains(haystack, key)
}

// categoryHaystack builds the searchable text used by the smart matcher:
// normalized title, description and category. Absent fields contribute
// nothing.
func categoryHaystack(product domain.Product) string {
	return NormalizeJoin(product.Title, product.Description, product.Category)
}

// searchBlob builds the searchable text used by the free-text query planner:
// normalized title, brand and description. Brand names often appear only in
// the title, so both fields are searched.
func searchBlob(product domain.Product) string {
	return NormalizeJoin(product.Title, product.Brand, product.Description)
}

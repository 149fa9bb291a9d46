package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/retrofy/backend/internal/domain"
)

// SearchConfig holds configuration for the search service
type SearchConfig struct {
	DefaultLimit       int
	MaxLimit           int
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// SearchService runs the filter/sort/paginate pipeline over the catalog.
// It is stateless per invocation: each request reads one snapshot of the
// product set plus the static synonym taxonomy, so concurrent searches need
// no locking.
type SearchService struct {
	repo               domain.ProductRepository
	cache              domain.CatalogCache
	defaultLimit       int
	maxLimit           int
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewSearchService creates a search service with the given configuration
func NewSearchService(repo domain.ProductRepository, cache domain.CatalogCache, config SearchConfig) *SearchService {
	defaultLimit := config.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = 50
	}

	maxLimit := config.MaxLimit
	if maxLimit < defaultLimit {
		maxLimit = 200
	}

	ttl := config.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &SearchService{
		repo:               repo,
		cache:              cache,
		defaultLimit:       defaultLimit,
		maxLimit:           maxLimit,
		cacheTTL:           ttl,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// DefaultLimit returns the limit applied when a request does not specify one.
func (s *SearchService) DefaultLimit() int {
	return s.defaultLimit
}

// Search applies the filter bag to the full catalog and returns the surviving
// products, sorted and truncated. Each stage only narrows the candidate set;
// structured filters combine with AND semantics. Matching never mutates a
// product and never errors; only snapshot loading can fail.
func (s *SearchService) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Product, error) {
	if filters.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidRequest)
	}
	if !domain.ValidSortKey(filters.SortBy) {
		return nil, fmt.Errorf("%w: unknown sort key %q", domain.ErrInvalidRequest, filters.SortBy)
	}

	products, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if s.enableDebugLogging {
		log.Printf("[SEARCH] candidates in: %d", len(products))
	}

	// Work on a copy; the snapshot is shared across requests.
	matched := make([]domain.Product, len(products))
	copy(matched, products)

	for _, st := range filterStages(filters) {
		if !st.active {
			continue
		}
		kept := matched[:0]
		for _, p := range matched {
			if st.keep(p) {
				kept = append(kept, p)
			}
		}
		matched = kept
		if s.enableDebugLogging {
			log.Printf("[SEARCH] surviving %s filter: %d", st.name, len(matched))
		}
	}

	sortProducts(matched, filters.SortBy)

	limit := filters.Limit
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	if limit < len(matched) {
		matched = matched[:limit]
	}

	if s.enableDebugLogging {
		log.Printf("[SEARCH] final count: %d (sort=%q limit=%d)", len(matched), filters.SortBy, limit)
	}

	return matched, nil
}

// snapshot returns one consistent view of the catalog for the duration of a
// request, via the cache when fresh, falling back to a bulk fetch.
func (s *SearchService) snapshot(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if products, err := s.cache.Get(ctx); err == nil {
			return products, nil
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			return nil, err
		}
	}

	products, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, products, s.cacheTTL); err != nil && s.enableDebugLogging {
			log.Printf("[SEARCH] snapshot cache set failed: %v", err)
		}
	}

	return products, nil
}

// filterStage is one narrowing step of the pipeline. Stages combine with
// AND semantics; their order only affects how much work the later, more
// expensive matchers see.
type filterStage struct {
	name   string
	active bool
	keep   func(domain.Product) bool
}

// filterStages builds the ordered stage list for one request. Absent fields
// on a record are treated as empty strings / zero price, never as errors.
func filterStages(filters domain.SearchFilters) []filterStage {
	return []filterStage{
		{
			// Brand names often only appear in the title, so the brand
			// filter searches both fields.
			name:   "brand",
			active: filters.Brand != "",
			keep: func(p domain.Product) bool {
				brand := Normalize(filters.Brand)
				return strings.Contains(Normalize(p.Brand), brand) ||
					strings.Contains(Normalize(p.Title), brand)
			},
		},
		{
			name:   "query",
			active: filters.Query != "",
			keep: func(p domain.Product) bool {
				return MatchesQuery(filters.Query, p)
			},
		},
		{
			name:   "category",
			active: filters.Category != "",
			keep: func(p domain.Product) bool {
				return SmartCategoryMatch(filters.Category, p)
			},
		},
		{
			name:   "price",
			active: filters.MinPrice != nil || filters.MaxPrice != nil,
			keep: func(p domain.Product) bool {
				if filters.MinPrice != nil && p.Price < *filters.MinPrice {
					return false
				}
				if filters.MaxPrice != nil && p.Price > *filters.MaxPrice {
					return false
				}
				return true
			},
		},
		{
			name:   "color",
			active: filters.Color != "",
			keep: func(p domain.Product) bool {
				return strings.Contains(Normalize(p.Color), Normalize(filters.Color))
			},
		},
		{
			name:   "platform",
			active: filters.PlatformName != "",
			keep: func(p domain.Product) bool {
				return strings.Contains(Normalize(p.PlatformName), Normalize(filters.PlatformName))
			},
		},
	}
}

// sortProducts stably sorts in place by the requested key. The default key
// preserves the store's native order. Brand sorting lowercases but keeps
// accents; absent brands sort first.
func sortProducts(products []domain.Product, sortBy string) {
	switch sortBy {
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case domain.SortBrand:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Brand) < strings.ToLower(products[j].Brand)
		})
	}
}

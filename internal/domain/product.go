package domain

// Product represents one secondhand listing aggregated from a resale platform.
// Text fields may be empty; matching code treats empty and absent the same.
type Product struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Color        string  `json:"color"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
	PlatformName string  `json:"platform_name"`
	ProductURL   string  `json:"product_url"`
}

// ProductCreate is the ingestion payload for one listing (no ID yet).
type ProductCreate struct {
	Title        string  `json:"title"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Color        string  `json:"color"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
	PlatformName string  `json:"platform_name"`
	ProductURL   string  `json:"product_url"`
}

// Sort keys accepted by the search pipeline.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortBrand     = "brand"
	SortDefault   = "" // preserve store order
)

// SearchFilters is the per-request filter bag. Empty strings mean "no
// constraint"; nil price bounds are unbounded.
type SearchFilters struct {
	Brand        string
	Category     string
	Query        string
	Color        string
	PlatformName string
	MinPrice     *float64
	MaxPrice     *float64
	SortBy       string
	Limit        int
}

// ValidSortKey reports whether s is one of the recognized sort keys.
func ValidSortKey(s string) bool {
	switch s {
	case SortPriceAsc, SortPriceDesc, SortBrand, SortDefault:
		return true
	}
	return false
}

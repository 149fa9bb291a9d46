package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/retrofy/backend/internal/domain"
	"github.com/retrofy/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search *usecase.SearchService
	repo   domain.ProductRepository
	cache  domain.CatalogCache
}

// NewHandler creates a new HTTP handler
func NewHandler(search *usecase.SearchService, repo domain.ProductRepository, cache domain.CatalogCache) *Handler {
	return &Handler{
		search: search,
		repo:   repo,
		cache:  cache,
	}
}

// Root returns the welcome message
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Hello from Retrofy Studio!",
	})
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "retrofy-backend",
		"version": "1.0.0",
	})
}

// SearchProducts handles GET /products. All filter parameters are optional;
// malformed numeric parameters are rejected here so the engine only ever sees
// valid values.
func (h *Handler) SearchProducts(c *gin.Context) {
	filters := domain.SearchFilters{
		Brand:        c.Query("brand"),
		Category:     c.Query("category"),
		Query:        c.Query("q"),
		Color:        c.Query("color"),
		PlatformName: c.Query("platform_name"),
		SortBy:       c.Query("sort_by"),
		Limit:        h.search.DefaultLimit(),
	}

	if !domain.ValidSortKey(filters.SortBy) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort_by must be one of price_asc, price_desc, brand"})
		return
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_price must be a number"})
			return
		}
		filters.MinPrice = &v
	}

	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_price must be a number"})
			return
		}
		filters.MaxPrice = &v
	}

	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		filters.Limit = v
	}

	products, err := h.search.Search(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	// An empty result is a valid outcome, not an error; return [] not null.
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID handles GET /products/:id
func (h *Handler) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id must be an integer"})
		return
	}

	product, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// SeedProducts handles POST /seed_products, the ingestion interface the
// scrapers feed.
func (h *Handler) SeedProducts(c *gin.Context) {
	var payload []domain.ProductCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON array of products"})
		return
	}

	count, err := h.repo.CreateBatch(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed products"})
		return
	}

	h.invalidateCatalog(c)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Products seeded successfully!",
		"count":   count,
	})
}

// DeleteAllProducts handles DELETE /products
func (h *Handler) DeleteAllProducts(c *gin.Context) {
	deleted, err := h.repo.DeleteAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete products"})
		return
	}

	h.invalidateCatalog(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products deleted.",
		"deleted": deleted,
	})
}

// DeleteProduct handles DELETE /products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id must be an integer"})
		return
	}

	if err := h.repo.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	h.invalidateCatalog(c)

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully!"})
}

func (h *Handler) invalidateCatalog(c *gin.Context) {
	if h.cache != nil {
		_ = h.cache.Invalidate(c.Request.Context())
	}
}

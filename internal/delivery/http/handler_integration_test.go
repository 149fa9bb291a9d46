package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/retrofy/backend/config"
	"github.com/retrofy/backend/internal/domain"
	"github.com/retrofy/backend/internal/infrastructure/cache"
	"github.com/retrofy/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	exitCode := m.Run()

	os.Exit(exitCode)
}

// stubRepo is an in-memory ProductRepository for endpoint tests.
type stubRepo struct {
	products []domain.Product
	nextID   int
}

func newStubRepo(products []domain.Product) *stubRepo {
	next := 1
	for _, p := range products {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return &stubRepo{products: products, nextID: next}
}

func (s *stubRepo) FetchAll(ctx context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *stubRepo) CreateBatch(ctx context.Context, products []domain.ProductCreate) (int, error) {
	for _, p := range products {
		s.products = append(s.products, domain.Product{
			ID: s.nextID, Title: p.Title, Brand: p.Brand, Category: p.Category,
			Color: p.Color, Description: p.Description, Price: p.Price,
			ImageURL: p.ImageURL, PlatformName: p.PlatformName, ProductURL: p.ProductURL,
		})
		s.nextID++
	}
	return len(products), nil
}

func (s *stubRepo) DeleteAll(ctx context.Context) (int64, error) {
	n := int64(len(s.products))
	s.products = nil
	return n, nil
}

func (s *stubRepo) DeleteByID(ctx context.Context, id int) error {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Brand: "Chanel", Title: "Chanel Classic Flap", Category: "handbags", Price: 5200},
		{ID: 2, Brand: "Gucci", Title: "Gucci Ace Sneaker", Category: "shoes", Price: 650},
	}
}

// setupTestRouter creates a test router over a stub repository.
func setupTestRouter(repo domain.ProductRepository) (*gin.Engine, *cache.MemoryCatalog) {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Search: config.SearchConfig{
			DefaultLimit: 50,
			MaxLimit:     200,
			CacheTTL:     time.Minute,
		},
	}

	catalogCache := cache.NewMemoryCatalog()
	searchService := usecase.NewSearchService(repo, catalogCache, usecase.SearchConfig{
		DefaultLimit: cfg.Search.DefaultLimit,
		MaxLimit:     cfg.Search.MaxLimit,
		CacheTTL:     cfg.Search.CacheTTL,
	})

	handler := NewHandler(searchService, repo, catalogCache)
	return SetupRouter(cfg, handler), catalogCache
}

func doRequest(router *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheckEndpoint(t *testing.T) {
	router, _ := setupTestRouter(newStubRepo(nil))

	w := doRequest(router, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", response["status"])
	}
	if response["service"] != "retrofy-backend" {
		t.Errorf("service = %v, want retrofy-backend", response["service"])
	}
}

func TestSearchProductsEndpoint(t *testing.T) {
	t.Run("free text query filters the catalog", func(t *testing.T) {
		router, _ := setupTestRouter(newStubRepo(testProducts()))

		w := doRequest(router, "GET", "/products?q=sneaker", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
		}

		var got []domain.Product
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if len(got) != 1 || got[0].Brand != "Gucci" {
			t.Errorf("result = %+v, want only the Gucci sneaker", got)
		}
	})

	t.Run("structured filters combine", func(t *testing.T) {
		router, _ := setupTestRouter(newStubRepo(testProducts()))

		w := doRequest(router, "GET", "/products?brand=chanel&min_price=1000", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var got []domain.Product
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if len(got) != 1 || got[0].ID != 1 {
			t.Errorf("result = %+v, want only the Chanel flap", got)
		}
	})

	t.Run("no matches is an empty array not null", func(t *testing.T) {
		router, _ := setupTestRouter(newStubRepo(testProducts()))

		w := doRequest(router, "GET", "/products?q=balenciaga", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		if body := strings.TrimSpace(w.Body.String()); body != "[]" {
			t.Errorf("body = %q, want []", body)
		}
	})

	t.Run("malformed min_price is rejected", func(t *testing.T) {
		router, _ := setupTestRouter(newStubRepo(testProducts()))

		w := doRequest(router, "GET", "/products?min_price=cheap", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("malformed limit is rejected", func(t *testing.T) {
		router, _ := setupTestRouter(newStubRepo(testProducts()))

		for _, limit := range []string{"ten", "-5", "1.5"} {
			w := doRequest(router, "GET", "/products?limit="+limit, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("limit=%s: Status = %d, want %d", limit, w.Code, http.StatusBadRequest)
			}
		}
	})

	t.Run("unknown sort key is rejected", func(t *testing.T) {
		router, _ := setupTestRouter(newStubRepo(testProducts()))

		w := doRequest(router, "GET", "/products?sort_by=alphabetical", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("limit zero returns an empty array", func(t *testing.T) {
		router, _ := setupTestRouter(newStubRepo(testProducts()))

		w := doRequest(router, "GET", "/products?limit=0", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		if body := strings.TrimSpace(w.Body.String()); body != "[]" {
			t.Errorf("body = %q, want []", body)
		}
	})
}

func TestGetProductByIDEndpoint(t *testing.T) {
	router, _ := setupTestRouter(newStubRepo(testProducts()))

	t.Run("existing id", func(t *testing.T) {
		w := doRequest(router, "GET", "/products/1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var got domain.Product
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if got.Title != "Chanel Classic Flap" {
			t.Errorf("Title = %q, want Chanel Classic Flap", got.Title)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		w := doRequest(router, "GET", "/products/999", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := doRequest(router, "GET", "/products/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestSeedProductsEndpoint(t *testing.T) {
	repo := newStubRepo(nil)
	router, catalogCache := setupTestRouter(repo)

	body := `[{"title":"Dior Saddle Bag","brand":"Dior","category":"handbags","price":2800,"platform_name":"Vestiaire"}]`
	w := doRequest(router, "POST", "/seed_products", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("Status = %d, want %d (body: %s)", w.Code, http.StatusCreated, w.Body.String())
	}

	if len(repo.products) != 1 {
		t.Errorf("repo has %d products, want 1", len(repo.products))
	}

	// Seeding invalidates the snapshot so the next search sees the new data.
	if _, err := catalogCache.Get(context.Background()); err == nil {
		t.Error("catalog cache should be empty after seeding")
	}

	t.Run("malformed body is rejected", func(t *testing.T) {
		w := doRequest(router, "POST", "/seed_products", `{"not":"an array"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestDeleteEndpoints(t *testing.T) {
	t.Run("delete all reports the count", func(t *testing.T) {
		router, _ := setupTestRouter(newStubRepo(testProducts()))

		w := doRequest(router, "DELETE", "/products", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response["deleted"] != float64(2) {
			t.Errorf("deleted = %v, want 2", response["deleted"])
		}
	})

	t.Run("delete one then 404 on repeat", func(t *testing.T) {
		router, _ := setupTestRouter(newStubRepo(testProducts()))

		w := doRequest(router, "DELETE", "/products/2", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		w = doRequest(router, "DELETE", "/products/2", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestStaleSnapshotAfterSeed(t *testing.T) {
	// The search pipeline caches the catalog; mutating endpoints must
	// invalidate so results never serve deleted products.
	repo := newStubRepo(testProducts())
	router, _ := setupTestRouter(repo)

	// Prime the snapshot.
	doRequest(router, "GET", "/products", "")

	// Remove everything, then search again.
	doRequest(router, "DELETE", "/products", "")
	w := doRequest(router, "GET", "/products", "")
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("post-delete search body = %q, want []", body)
	}
}

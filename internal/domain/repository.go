package domain

import (
	"context"
	"time"
)

// ProductRepository defines the interface the search layer expects from the
// persistent product store. The search engine only reads; the mutating
// operations belong to the ingestion/CRUD surface.
type ProductRepository interface {
	FetchAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	CreateBatch(ctx context.Context, products []ProductCreate) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
	DeleteByID(ctx context.Context, id int) error
}

// CatalogCache defines the interface for caching a full catalog snapshot
// between requests, so each search reads one consistent product set without
// a store round trip.
type CatalogCache interface {
	Get(ctx context.Context) ([]Product, error)
	Set(ctx context.Context, products []Product, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

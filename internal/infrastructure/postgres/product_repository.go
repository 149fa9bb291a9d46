package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/retrofy/backend/internal/domain"
)

const productColumns = `id,
	COALESCE(title, ''), COALESCE(brand, ''), COALESCE(category, ''),
	COALESCE(color, ''), COALESCE(description, ''), COALESCE(price, 0),
	COALESCE(image_url, ''), COALESCE(platform_name, ''), COALESCE(product_url, '')`

// ProductRepository is the Postgres-backed product store.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a repository over an existing connection pool.
// The pool is owned by the caller.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// EnsureSchema creates the products table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id            SERIAL PRIMARY KEY,
			title         TEXT,
			brand         TEXT,
			category      TEXT,
			color         TEXT,
			description   TEXT,
			price         DOUBLE PRECISION,
			image_url     TEXT,
			platform_name TEXT,
			product_url   TEXT
		)`)
	if err != nil {
		return fmt.Errorf("ensuring products schema: %w", err)
	}
	return nil
}

func scanProduct(scan func(...interface{}) error) (*domain.Product, error) {
	p := &domain.Product{}
	err := scan(&p.ID, &p.Title, &p.Brand, &p.Category, &p.Color,
		&p.Description, &p.Price, &p.ImageURL, &p.PlatformName, &p.ProductURL)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FetchAll returns the full catalog in insertion (id) order. One query, so
// each search request sees a consistent snapshot.
func (r *ProductRepository) FetchAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}
	return products, nil
}

// GetByID returns one product or ErrProductNotFound.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying product %d: %w", id, err)
	}
	return p, nil
}

// CreateBatch inserts the seed payload in one transaction and returns the
// number of rows inserted. The whole batch rolls back on any failure.
func (r *ProductRepository) CreateBatch(ctx context.Context, products []domain.ProductCreate) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products
		  (title, brand, category, color, description, price, image_url, platform_name, product_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`)
	if err != nil {
		return 0, fmt.Errorf("preparing seed insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.ExecContext(ctx, p.Title, p.Brand, p.Category, p.Color,
			p.Description, p.Price, p.ImageURL, p.PlatformName, p.ProductURL); err != nil {
			return 0, fmt.Errorf("inserting product %q: %w", p.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing seed transaction: %w", err)
	}
	return len(products), nil
}

// DeleteAll clears the table and returns how many rows were removed.
func (r *ProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, fmt.Errorf("deleting products: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted products: %w", err)
	}
	return n, nil
}

// DeleteByID removes one product, returning ErrProductNotFound for unknown ids.
func (r *ProductRepository) DeleteByID(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting product %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("counting deleted rows: %w", err)
	}
	if n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

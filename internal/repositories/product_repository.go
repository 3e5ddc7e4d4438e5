package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"agrimach/internal/models"
)

// ProductRepository resolves catalog entries by display name from Postgres.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) ResolveProduct(name string) (*models.Product, error) {
	query := `
        SELECT id, name, category, stock_status
        FROM products
        WHERE lower(name) = lower($1)
        LIMIT 1
    `
	product := &models.Product{}
	err := r.db.QueryRow(query, strings.TrimSpace(name)).Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.StockStatus,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve product by name: %w", err)
	}
	return product, nil
}

func (r *ProductRepository) List() ([]*models.Product, error) {
	rows, err := r.db.Query(`SELECT id, name, category, stock_status FROM products ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.StockStatus); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

// MemoryProductRepository serves the catalog from a seeded map. Used when no
// database is configured and in tests.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	byName   map[string]*models.Product
	products []*models.Product
}

func NewMemoryProductRepository(products []*models.Product) *MemoryProductRepository {
	repo := &MemoryProductRepository{byName: make(map[string]*models.Product, len(products))}
	for _, p := range products {
		copied := *p
		repo.byName[strings.ToLower(p.Name)] = &copied
		repo.products = append(repo.products, &copied)
	}
	return repo
}

func (r *MemoryProductRepository) ResolveProduct(name string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, nil
	}
	copied := *product
	return &copied, nil
}

func (r *MemoryProductRepository) List() ([]*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Product, 0, len(r.products))
	for _, p := range r.products {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

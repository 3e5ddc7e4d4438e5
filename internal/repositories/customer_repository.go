package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"agrimach/internal/models"
)

// CustomerRepository resolves customers by display name from Postgres.
type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) ResolveCustomer(name string) (*models.Customer, error) {
	query := `
        SELECT id, name, region_id, address, contact_info, created_at
        FROM customers
        WHERE lower(name) = lower($1)
        ORDER BY created_at DESC
        LIMIT 1
    `
	customer := &models.Customer{}
	err := r.db.QueryRow(query, strings.TrimSpace(name)).Scan(
		&customer.ID,
		&customer.Name,
		&customer.RegionID,
		&customer.Address,
		&customer.ContactInfo,
		&customer.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve customer by name: %w", err)
	}
	return customer, nil
}

// MemoryCustomerRepository serves customers from a seeded map.
type MemoryCustomerRepository struct {
	mu     sync.RWMutex
	byName map[string]*models.Customer
}

func NewMemoryCustomerRepository(customers []*models.Customer) *MemoryCustomerRepository {
	repo := &MemoryCustomerRepository{byName: make(map[string]*models.Customer, len(customers))}
	for _, c := range customers {
		copied := *c
		repo.byName[strings.ToLower(c.Name)] = &copied
	}
	return repo
}

func (r *MemoryCustomerRepository) ResolveCustomer(name string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, nil
	}
	copied := *customer
	return &copied, nil
}

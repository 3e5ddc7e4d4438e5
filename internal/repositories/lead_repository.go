package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"agrimach/internal/models"
)

// LeadRepository resolves leads by display name from Postgres. Leads are the
// fallback when a deal's customer reference matches no customer.
type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) ResolveLead(name string) (*models.Lead, error) {
	query := `
        SELECT id, name, region_id, source, contact_info, created_at
        FROM leads
        WHERE lower(name) = lower($1)
        ORDER BY created_at DESC
        LIMIT 1
    `
	lead := &models.Lead{}
	err := r.db.QueryRow(query, strings.TrimSpace(name)).Scan(
		&lead.ID,
		&lead.Name,
		&lead.RegionID,
		&lead.Source,
		&lead.ContactInfo,
		&lead.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve lead by name: %w", err)
	}
	return lead, nil
}

// MemoryLeadRepository serves leads from a seeded map.
type MemoryLeadRepository struct {
	mu     sync.RWMutex
	byName map[string]*models.Lead
}

func NewMemoryLeadRepository(leads []*models.Lead) *MemoryLeadRepository {
	repo := &MemoryLeadRepository{byName: make(map[string]*models.Lead, len(leads))}
	for _, l := range leads {
		copied := *l
		repo.byName[strings.ToLower(l.Name)] = &copied
	}
	return repo
}

func (r *MemoryLeadRepository) ResolveLead(name string) (*models.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lead, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, nil
	}
	copied := *lead
	return &copied, nil
}

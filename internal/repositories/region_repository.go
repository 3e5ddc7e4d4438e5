package repositories

import (
	"database/sql"
	"fmt"
	"sync"

	"agrimach/internal/models"
)

// RegionRepository serves the administrative hierarchy used by the delivery
// address pickers: province, regency, district, village. The pipeline core
// never fetches these itself; it treats picker selections as already
// resolved.
type RegionRepository struct {
	db *sql.DB
}

func NewRegionRepository(db *sql.DB) *RegionRepository {
	return &RegionRepository{db: db}
}

func (r *RegionRepository) ListProvinces() ([]*models.Province, error) {
	rows, err := r.db.Query(`SELECT id, name FROM provinces ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list provinces: %w", err)
	}
	defer rows.Close()

	var items []*models.Province
	for rows.Next() {
		var p models.Province
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan province: %w", err)
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

func (r *RegionRepository) ListRegencies(provinceID string) ([]*models.Regency, error) {
	rows, err := r.db.Query(`SELECT id, province_id, name FROM regencies WHERE province_id = $1 ORDER BY name ASC`, provinceID)
	if err != nil {
		return nil, fmt.Errorf("list regencies: %w", err)
	}
	defer rows.Close()

	var items []*models.Regency
	for rows.Next() {
		var reg models.Regency
		if err := rows.Scan(&reg.ID, &reg.ProvinceID, &reg.Name); err != nil {
			return nil, fmt.Errorf("scan regency: %w", err)
		}
		items = append(items, &reg)
	}
	return items, rows.Err()
}

func (r *RegionRepository) ListDistricts(regencyID string) ([]*models.District, error) {
	rows, err := r.db.Query(`SELECT id, regency_id, name FROM districts WHERE regency_id = $1 ORDER BY name ASC`, regencyID)
	if err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}
	defer rows.Close()

	var items []*models.District
	for rows.Next() {
		var d models.District
		if err := rows.Scan(&d.ID, &d.RegencyID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan district: %w", err)
		}
		items = append(items, &d)
	}
	return items, rows.Err()
}

func (r *RegionRepository) ListVillages(districtID string) ([]*models.Village, error) {
	rows, err := r.db.Query(`SELECT id, district_id, name FROM villages WHERE district_id = $1 ORDER BY name ASC`, districtID)
	if err != nil {
		return nil, fmt.Errorf("list villages: %w", err)
	}
	defer rows.Close()

	var items []*models.Village
	for rows.Next() {
		var v models.Village
		if err := rows.Scan(&v.ID, &v.DistrictID, &v.Name); err != nil {
			return nil, fmt.Errorf("scan village: %w", err)
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}

// MemoryRegionRepository serves the hierarchy from the in-process seed.
type MemoryRegionRepository struct {
	mu        sync.RWMutex
	provinces []*models.Province
	regencies []*models.Regency
	districts []*models.District
	villages  []*models.Village
}

func NewMemoryRegionRepository(seed RegionSeed) *MemoryRegionRepository {
	return &MemoryRegionRepository{
		provinces: seed.Provinces,
		regencies: seed.Regencies,
		districts: seed.Districts,
		villages:  seed.Villages,
	}
}

func (r *MemoryRegionRepository) ListProvinces() ([]*models.Province, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Province, len(r.provinces))
	copy(out, r.provinces)
	return out, nil
}

func (r *MemoryRegionRepository) ListRegencies(provinceID string) ([]*models.Regency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Regency
	for _, reg := range r.regencies {
		if reg.ProvinceID == provinceID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (r *MemoryRegionRepository) ListDistricts(regencyID string) ([]*models.District, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.District
	for _, d := range r.districts {
		if d.RegencyID == regencyID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *MemoryRegionRepository) ListVillages(districtID string) ([]*models.Village, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Village
	for _, v := range r.villages {
		if v.DistrictID == districtID {
			out = append(out, v)
		}
	}
	return out, nil
}

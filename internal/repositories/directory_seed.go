package repositories

import (
	"time"

	"agrimach/internal/models"
)

// Seed customers and leads used when no database is configured. Region ids
// reference the region seed in region_seed.go.
func DefaultCustomers() []*models.Customer {
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return []*models.Customer{
		{ID: 1, Name: "Pak Slamet Riyadi", RegionID: "35", Address: "Desa Sumberagung, Ngawi", ContactInfo: "+62 812-3456-1001", CreatedAt: created},
		{ID: 2, Name: "CV Tani Makmur", RegionID: "33", Address: "Jl. Raya Solo-Sragen KM 12", ContactInfo: "+62 812-3456-1002", CreatedAt: created},
		{ID: 3, Name: "Gapoktan Subur Jaya", RegionID: "32", Address: "Kec. Jatiwangi, Majalengka", ContactInfo: "+62 812-3456-1003", CreatedAt: created},
	}
}

func DefaultLeads() []*models.Lead {
	created := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	return []*models.Lead{
		{ID: 1, Name: "Bu Sri Wahyuni", RegionID: "33", Source: "walk-in", ContactInfo: "+62 813-9900-2001", CreatedAt: created},
		{ID: 2, Name: "Koperasi Harapan Tani", RegionID: "35", Source: "expo", ContactInfo: "+62 813-9900-2002", CreatedAt: created},
		{ID: 3, Name: "PT Agro Lestari", RegionID: "18", Source: "referral", ContactInfo: "+62 813-9900-2003", CreatedAt: created},
	}
}

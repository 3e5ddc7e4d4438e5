package models

import "time"

// Customer represents a counterparty with a delivery history.
type Customer struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	RegionID    string    `json:"region_id"`
	Address     string    `json:"address"`
	ContactInfo string    `json:"contact_info"`
	CreatedAt   time.Time `json:"created_at"`
}

// Lead is a prospect that has not been converted to a customer yet. Deals may
// reference either a customer or a lead by display name.
type Lead struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	RegionID    string    `json:"region_id"`
	Source      string    `json:"source"`
	ContactInfo string    `json:"contact_info"`
	CreatedAt   time.Time `json:"created_at"`
}

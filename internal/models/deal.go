package models

import (
	"time"
)

// StockStatus is frozen on the deal at creation time from the product
// catalog; it does not track later inventory changes.
type StockStatus string

const (
	StockReady  StockStatus = "READY"
	StockIndent StockStatus = "INDENT"
)

// StagePayload is the validated data captured when a deal entered a stage.
type StagePayload map[string]any

// Deal is a sales opportunity moving through the pipeline. CustomerName and
// ProductName are weak references resolved against the directories on demand.
type Deal struct {
	ID           string                   `json:"id"`
	Title        string                   `json:"title"`
	CustomerName string                   `json:"customer_name"`
	ProductName  string                   `json:"product_name"`
	Value        int64                    `json:"value"`
	Stage        StageID                  `json:"stage"`
	Probability  int                      `json:"probability"`
	StockStatus  StockStatus              `json:"stock_status"`
	LastActivity string                   `json:"last_activity"`
	StageHistory map[StageID]StagePayload `json:"stage_history"`
	CreatedAt    time.Time                `json:"created_at"`
}

// DealSpec is a deal creation request.
type DealSpec struct {
	Title        string  `json:"title"`
	CustomerName string  `json:"customer_name"`
	ProductName  string  `json:"product_name"`
	Value        int64   `json:"value"`
	Stage        StageID `json:"stage"`
	Probability  *int    `json:"probability"`
}

// DealFilter narrows the deal set before listing or forecasting. Zero values
// (and the literal "ALL") are pass-through, not predicates.
type DealFilter struct {
	Category ProductCategory `json:"category"`
	RegionID string          `json:"region_id"`
}

package models

// ProductCategory groups catalog items for filtering.
type ProductCategory string

const (
	CategoryTractor   ProductCategory = "TRACTOR"
	CategoryHarvester ProductCategory = "COMBINE_HARVESTER"
	CategoryRiceMill  ProductCategory = "RICE_MILL"
	CategoryImplement ProductCategory = "IMPLEMENT"
)

// Product is a catalog entry. Deals reference products by display name.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	StockStatus StockStatus     `json:"stock_status"`
}

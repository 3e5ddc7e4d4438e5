package repositories

import "agrimach/internal/models"

// DefaultProducts is the distributor's machinery catalog used when no
// database is configured.
func DefaultProducts() []*models.Product {
	return []*models.Product{
		{ID: 1, Name: "Kubota M9540 Tractor", Category: models.CategoryTractor, StockStatus: models.StockReady},
		{ID: 2, Name: "Kubota L4018 Tractor", Category: models.CategoryTractor, StockStatus: models.StockReady},
		{ID: 3, Name: "Yanmar EF494T Tractor", Category: models.CategoryTractor, StockStatus: models.StockIndent},
		{ID: 4, Name: "Kubota DC70 Combine Harvester", Category: models.CategoryHarvester, StockStatus: models.StockReady},
		{ID: 5, Name: "Yanmar AW70V Combine Harvester", Category: models.CategoryHarvester, StockStatus: models.StockIndent},
		{ID: 6, Name: "Satake Rice Milling Unit", Category: models.CategoryRiceMill, StockStatus: models.StockIndent},
		{ID: 7, Name: "Rotary Tiller RX220", Category: models.CategoryImplement, StockStatus: models.StockReady},
		{ID: 8, Name: "Disc Plough DP300", Category: models.CategoryImplement, StockStatus: models.StockReady},
	}
}

package models

// StageForecast is the per-stage slice of a revenue forecast.
type StageForecast struct {
	Stage    StageID `json:"stage"`
	Label    string  `json:"label"`
	Count    int     `json:"count"`
	Total    int64   `json:"total"`
	Weighted int64   `json:"weighted"`
}

// Forecast is the three-scenario revenue projection over a deal set.
// Conservative counts only deals at probability 70 or higher; weighted
// discounts every deal by its probability; optimistic sums everything.
type Forecast struct {
	Conservative   int64           `json:"conservative"`
	Weighted       int64           `json:"weighted"`
	Optimistic     int64           `json:"optimistic"`
	StageBreakdown []StageForecast `json:"stage_breakdown"`
}

package services

import (
	"time"

	"agrimach/internal/models"
	"agrimach/internal/pdf"
)

// Deals at or above this probability count toward the conservative scenario.
const conservativeThreshold = 70

// ForecastService derives revenue scenarios from the current deal set. It
// never mutates the store; the same deal set always yields the same forecast.
type ForecastService struct {
	Deals  *DealService
	PDFGen pdf.Generator
}

func NewForecastService(deals *DealService, pdfGen pdf.Generator) *ForecastService {
	return &ForecastService{Deals: deals, PDFGen: pdfGen}
}

// Forecast computes the three scenarios and the per-stage breakdown, in
// catalog order with empty stages omitted, over the filtered deal set.
func (s *ForecastService) Forecast(filter models.DealFilter) (*models.Forecast, error) {
	deals, err := s.Deals.List(filter)
	if err != nil {
		return nil, err
	}
	return computeForecast(deals), nil
}

func computeForecast(deals []*models.Deal) *models.Forecast {
	forecast := &models.Forecast{StageBreakdown: []models.StageForecast{}}

	byStage := make(map[models.StageID]*models.StageForecast)
	for _, deal := range deals {
		weighted := deal.Value * int64(deal.Probability) / 100
		forecast.Optimistic += deal.Value
		forecast.Weighted += weighted
		if deal.Probability >= conservativeThreshold {
			forecast.Conservative += deal.Value
		}

		slot, ok := byStage[deal.Stage]
		if !ok {
			slot = &models.StageForecast{Stage: deal.Stage}
			byStage[deal.Stage] = slot
		}
		slot.Count++
		slot.Total += deal.Value
		slot.Weighted += weighted
	}

	for _, stage := range pipelineStages {
		slot, ok := byStage[stage.ID]
		if !ok {
			continue
		}
		slot.Label = stage.Label
		forecast.StageBreakdown = append(forecast.StageBreakdown, *slot)
	}
	return forecast
}

// GenerateReport renders the current forecast as a PDF file and returns its
// path.
func (s *ForecastService) GenerateReport(filter models.DealFilter) (string, error) {
	forecast, err := s.Forecast(filter)
	if err != nil {
		return "", err
	}
	deals, err := s.Deals.List(filter)
	if err != nil {
		return "", err
	}
	return s.PDFGen.GenerateForecastReport(pdf.ForecastReportData{
		GeneratedAt:  time.Now(),
		Category:     string(filter.Category),
		RegionID:     filter.RegionID,
		DealCount:    len(deals),
		Conservative: forecast.Conservative,
		Weighted:     forecast.Weighted,
		Optimistic:   forecast.Optimistic,
		Stages:       reportStages(forecast),
	})
}

func reportStages(forecast *models.Forecast) []pdf.ForecastReportStage {
	out := make([]pdf.ForecastReportStage, 0, len(forecast.StageBreakdown))
	for _, s := range forecast.StageBreakdown {
		out = append(out, pdf.ForecastReportStage{
			Label:    s.Label,
			Count:    s.Count,
			Total:    s.Total,
			Weighted: s.Weighted,
		})
	}
	return out
}

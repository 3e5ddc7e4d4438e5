package services

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"agrimach/internal/models"
	"agrimach/internal/repositories"
)

func newTestDealService() *DealService {
	products := repositories.NewMemoryProductRepository([]*models.Product{
		{ID: 1, Name: "Kubota M9540 Tractor", Category: models.CategoryTractor, StockStatus: models.StockReady},
		{ID: 2, Name: "Kubota DC70 Combine Harvester", Category: models.CategoryHarvester, StockStatus: models.StockIndent},
	})
	customers := repositories.NewMemoryCustomerRepository([]*models.Customer{
		{ID: 1, Name: "Pak Slamet Riyadi", RegionID: "35"},
		{ID: 2, Name: "CV Tani Makmur", RegionID: "33"},
	})
	leads := repositories.NewMemoryLeadRepository([]*models.Lead{
		{ID: 1, Name: "Bu Sri Wahyuni", RegionID: "33"},
	})
	return NewDealService(repositories.NewDealRepository(), products, customers, leads)
}

func mustCreate(t *testing.T, s *DealService, spec *models.DealSpec) *models.Deal {
	t.Helper()
	deal, err := s.Create(spec)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return deal
}

func TestCreateDefaults(t *testing.T) {
	s := newTestDealService()
	deal := mustCreate(t, s, &models.DealSpec{
		Title:        "Tractor for Paron rice fields",
		CustomerName: "Pak Slamet Riyadi",
		ProductName:  "Kubota M9540 Tractor",
		Value:        450000000,
	})

	if deal.ID == "" {
		t.Error("deal id not assigned")
	}
	if deal.Stage != models.StageInquiry {
		t.Errorf("stage = %s, want INQUIRY", deal.Stage)
	}
	if deal.Probability != 10 {
		t.Errorf("probability = %d, want catalog default 10", deal.Probability)
	}
	if deal.StockStatus != models.StockReady {
		t.Errorf("stock status = %s, want READY from catalog", deal.StockStatus)
	}
	if len(deal.StageHistory) != 0 {
		t.Errorf("creation must not populate stage history, got %v", deal.StageHistory)
	}
}

func TestCreateValidation(t *testing.T) {
	probability := 150

	tests := []struct {
		name string
		spec models.DealSpec
	}{
		{name: "missing title", spec: models.DealSpec{CustomerName: "x", ProductName: "y", Value: 1}},
		{name: "missing customer", spec: models.DealSpec{Title: "t", ProductName: "y", Value: 1}},
		{name: "missing product", spec: models.DealSpec{Title: "t", CustomerName: "x", Value: 1}},
		{name: "negative value", spec: models.DealSpec{Title: "t", CustomerName: "x", ProductName: "y", Value: -1}},
		{name: "probability out of range", spec: models.DealSpec{Title: "t", CustomerName: "x", ProductName: "y", Value: 1, Probability: &probability}},
	}

	s := newTestDealService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(&tt.spec)
			var specErr *models.InvalidDealSpecError
			if !errors.As(err, &specErr) {
				t.Fatalf("got %v, want InvalidDealSpecError", err)
			}
		})
	}
}

func TestCreateProbabilityOverrideAndStage(t *testing.T) {
	s := newTestDealService()
	probability := 55
	deal := mustCreate(t, s, &models.DealSpec{
		Title:        "Harvester repeat order",
		CustomerName: "CV Tani Makmur",
		ProductName:  "Kubota DC70 Combine Harvester",
		Value:        320000000,
		Stage:        models.StageDemoUnit,
		Probability:  &probability,
	})

	if deal.Stage != models.StageDemoUnit {
		t.Errorf("stage = %s, want DEMO_UNIT", deal.Stage)
	}
	if deal.Probability != 55 {
		t.Errorf("probability = %d, want override 55", deal.Probability)
	}
	if deal.StockStatus != models.StockIndent {
		t.Errorf("stock status = %s, want INDENT from catalog", deal.StockStatus)
	}
}

func TestCreateUnresolvedProductIsIndent(t *testing.T) {
	s := newTestDealService()
	deal := mustCreate(t, s, &models.DealSpec{
		Title:        "Custom import order",
		CustomerName: "Pak Slamet Riyadi",
		ProductName:  "Discontinued Thresher",
		Value:        10000000,
	})
	if deal.StockStatus != models.StockIndent {
		t.Errorf("stock status = %s, want INDENT for unresolved product", deal.StockStatus)
	}
}

func TestAdvanceStageHappyPath(t *testing.T) {
	s := newTestDealService()
	deal := mustCreate(t, s, &models.DealSpec{
		Title:        "Tractor for Paron rice fields",
		CustomerName: "Pak Slamet Riyadi",
		ProductName:  "Kubota M9540 Tractor",
		Value:        450000000,
	})

	updated, err := s.AdvanceStage(deal.ID, models.StageDemoUnit, completeDemoPayload())
	if err != nil {
		t.Fatalf("AdvanceStage: %v", err)
	}

	if updated.Stage != models.StageDemoUnit {
		t.Errorf("stage = %s, want DEMO_UNIT", updated.Stage)
	}
	if updated.Probability != 40 {
		t.Errorf("probability = %d, want 40", updated.Probability)
	}
	if updated.LastActivity != "Stage update: DEMO_UNIT" {
		t.Errorf("last activity = %q", updated.LastActivity)
	}
	if len(updated.StageHistory) != 1 {
		t.Fatalf("history has %d entries, want 1", len(updated.StageHistory))
	}
	if updated.StageHistory[models.StageDemoUnit]["demo_date"] != "2025-06-12" {
		t.Errorf("history payload = %v", updated.StageHistory[models.StageDemoUnit])
	}
}

func TestAdvanceStageRejectionMutatesNothing(t *testing.T) {
	s := newTestDealService()
	deal := mustCreate(t, s, &models.DealSpec{
		Title:        "Tractor for Paron rice fields",
		CustomerName: "Pak Slamet Riyadi",
		ProductName:  "Kubota M9540 Tractor",
		Value:        450000000,
	})
	if _, err := s.AdvanceStage(deal.ID, models.StageDemoUnit, completeDemoPayload()); err != nil {
		t.Fatalf("AdvanceStage: %v", err)
	}

	before, err := s.GetByID(deal.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	// Omit the required bank field.
	_, err = s.AdvanceStage(deal.ID, models.StageLeasingKUR, map[string]any{
		"tenor_months":       36,
		"application_number": "KUR-2025-0099",
	})
	got := fieldNames(err)
	if !reflect.DeepEqual(got, []string{"bank"}) {
		t.Fatalf("offending fields = %v, want [bank]", got)
	}

	after, err := s.GetByID(deal.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("rejected transition mutated the deal:\nbefore %+v\nafter  %+v", before, after)
	}
	if after.Stage != models.StageDemoUnit || after.Probability != 40 {
		t.Errorf("deal moved to %s/%d, want DEMO_UNIT/40", after.Stage, after.Probability)
	}
}

func TestAdvanceStageErrorOrder(t *testing.T) {
	s := newTestDealService()
	deal := mustCreate(t, s, &models.DealSpec{
		Title:        "Tractor for Paron rice fields",
		CustomerName: "Pak Slamet Riyadi",
		ProductName:  "Kubota M9540 Tractor",
		Value:        450000000,
	})

	if _, err := s.AdvanceStage("missing-id", models.StageDemoUnit, nil); !errors.Is(err, models.ErrDealNotFound) {
		t.Errorf("unknown deal: got %v, want ErrDealNotFound", err)
	}

	var stageErr *models.InvalidStageError
	if _, err := s.AdvanceStage(deal.ID, "SHIPPED", nil); !errors.As(err, &stageErr) {
		t.Errorf("unknown stage: got %v, want InvalidStageError", err)
	}
}

func TestAdvanceStageResetToInquiry(t *testing.T) {
	s := newTestDealService()
	deal := mustCreate(t, s, &models.DealSpec{
		Title:        "Tractor for Paron rice fields",
		CustomerName: "Pak Slamet Riyadi",
		ProductName:  "Kubota M9540 Tractor",
		Value:        450000000,
	})
	if _, err := s.AdvanceStage(deal.ID, models.StageDemoUnit, completeDemoPayload()); err != nil {
		t.Fatalf("AdvanceStage: %v", err)
	}

	// Sending back to INQUIRY needs no payload at all.
	reset, err := s.AdvanceStage(deal.ID, models.StageInquiry, nil)
	if err != nil {
		t.Fatalf("reset to INQUIRY: %v", err)
	}
	if reset.Stage != models.StageInquiry || reset.Probability != 10 {
		t.Errorf("reset landed at %s/%d, want INQUIRY/10", reset.Stage, reset.Probability)
	}
	// The DEMO_UNIT audit record survives the reset.
	if _, ok := reset.StageHistory[models.StageDemoUnit]; !ok {
		t.Error("reset erased the DEMO_UNIT history entry")
	}
}

func TestAdvanceStageReentryOverwritesOnlyThatStage(t *testing.T) {
	s := newTestDealService()
	deal := mustCreate(t, s, &models.DealSpec{
		Title:        "Tractor for Paron rice fields",
		CustomerName: "Pak Slamet Riyadi",
		ProductName:  "Kubota M9540 Tractor",
		Value:        450000000,
	})

	first := completeDemoPayload()
	if _, err := s.AdvanceStage(deal.ID, models.StageDemoUnit, first); err != nil {
		t.Fatalf("AdvanceStage: %v", err)
	}
	if _, err := s.AdvanceStage(deal.ID, models.StageLeasingKUR, map[string]any{
		"bank":               "BRI",
		"tenor_months":       36,
		"application_number": "KUR-2025-0099",
	}); err != nil {
		t.Fatalf("AdvanceStage: %v", err)
	}

	second := completeDemoPayload()
	second["location"] = "Balai Desa Tempuran"
	updated, err := s.AdvanceStage(deal.ID, models.StageDemoUnit, second)
	if err != nil {
		t.Fatalf("re-entry: %v", err)
	}

	if got := updated.StageHistory[models.StageDemoUnit]["location"]; got != "Balai Desa Tempuran" {
		t.Errorf("DEMO_UNIT history not overwritten, location = %v", got)
	}
	if got := updated.StageHistory[models.StageLeasingKUR]["bank"]; got != "BRI" {
		t.Errorf("LEASING_KUR history disturbed by re-entry, bank = %v", got)
	}
	if len(updated.StageHistory) != 2 {
		t.Errorf("history has %d entries, want 2", len(updated.StageHistory))
	}
}

func TestListFilters(t *testing.T) {
	s := newTestDealService()
	tractor := mustCreate(t, s, &models.DealSpec{
		Title: "Tractor deal", CustomerName: "Pak Slamet Riyadi", ProductName: "Kubota M9540 Tractor", Value: 100,
	})
	harvester := mustCreate(t, s, &models.DealSpec{
		Title: "Harvester deal", CustomerName: "CV Tani Makmur", ProductName: "Kubota DC70 Combine Harvester", Value: 200,
	})
	leadDeal := mustCreate(t, s, &models.DealSpec{
		Title: "Lead deal", CustomerName: "Bu Sri Wahyuni", ProductName: "Kubota M9540 Tractor", Value: 300,
	})
	orphan := mustCreate(t, s, &models.DealSpec{
		Title: "Orphan deal", CustomerName: "Unknown Farmer", ProductName: "Mystery Machine", Value: 400,
	})

	tests := []struct {
		name   string
		filter models.DealFilter
		want   []string
	}{
		{
			name:   "no filter passes everything through",
			filter: models.DealFilter{},
			want:   []string{tractor.ID, harvester.ID, leadDeal.ID, orphan.ID},
		},
		{
			name:   "ALL is pass-through, not a predicate",
			filter: models.DealFilter{Category: "ALL", RegionID: "ALL"},
			want:   []string{tractor.ID, harvester.ID, leadDeal.ID, orphan.ID},
		},
		{
			name:   "category filter excludes unresolved products",
			filter: models.DealFilter{Category: models.CategoryTractor},
			want:   []string{tractor.ID, leadDeal.ID},
		},
		{
			name:   "region filter resolves customers then leads",
			filter: models.DealFilter{RegionID: "33"},
			want:   []string{harvester.ID, leadDeal.ID},
		},
		{
			name:   "filters compose with AND",
			filter: models.DealFilter{Category: models.CategoryTractor, RegionID: "33"},
			want:   []string{leadDeal.ID},
		},
		{
			name:   "region matching nothing yields empty",
			filter: models.DealFilter{RegionID: "99"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deals, err := s.List(tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			got := make([]string, 0, len(deals))
			for _, d := range deals {
				got = append(got, d.ID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("List ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvanceStageConcurrentTransitionsStayConsistent(t *testing.T) {
	s := newTestDealService()
	deal := mustCreate(t, s, &models.DealSpec{
		Title: "Contested deal", CustomerName: "Pak Slamet Riyadi", ProductName: "Kubota M9540 Tractor", Value: 100,
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.AdvanceStage(deal.ID, models.StageDemoUnit, completeDemoPayload())
		}()
		go func() {
			defer wg.Done()
			_, _ = s.AdvanceStage(deal.ID, models.StageLeasingKUR, map[string]any{
				"bank":               "Mandiri",
				"tenor_months":       24,
				"application_number": "KUR-2025-0001",
			})
		}()
	}
	wg.Wait()

	// Whichever transition won, the deal must not interleave two targets:
	// probability matches the catalog default of the final stage and the
	// final stage has a history entry.
	final, err := s.GetByID(deal.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	wantProb, err := DefaultProbability(final.Stage)
	if err != nil {
		t.Fatalf("final stage %s unknown: %v", final.Stage, err)
	}
	if final.Probability != wantProb {
		t.Errorf("probability %d does not match catalog default %d for %s", final.Probability, wantProb, final.Stage)
	}
	if _, ok := final.StageHistory[final.Stage]; !ok {
		t.Errorf("no history entry for final stage %s", final.Stage)
	}
	if final.LastActivity != "Stage update: "+string(final.Stage) {
		t.Errorf("last activity %q does not match final stage %s", final.LastActivity, final.Stage)
	}
}

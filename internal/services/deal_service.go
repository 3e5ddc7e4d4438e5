package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"agrimach/internal/models"
	"agrimach/internal/repositories"
)

// ProductDirectory resolves a product reference. A nil result with nil error
// means the reference matched nothing.
type ProductDirectory interface {
	ResolveProduct(name string) (*models.Product, error)
}

// CustomerDirectory resolves a customer reference.
type CustomerDirectory interface {
	ResolveCustomer(name string) (*models.Customer, error)
}

// LeadDirectory resolves a lead reference.
type LeadDirectory interface {
	ResolveLead(name string) (*models.Lead, error)
}

// DealService owns the pipeline: deal creation, stage-gated progression and
// the filter layer over the deal set. All stage mutations go through
// AdvanceStage so the validate-then-commit contract holds.
type DealService struct {
	Repo      *repositories.DealRepository
	Products  ProductDirectory
	Customers CustomerDirectory
	Leads     LeadDirectory
}

func NewDealService(repo *repositories.DealRepository, products ProductDirectory, customers CustomerDirectory, leads LeadDirectory) *DealService {
	return &DealService{Repo: repo, Products: products, Customers: customers, Leads: leads}
}

// Create registers a new deal. The stage defaults to INQUIRY and the creator
// may override the probability; every later probability change comes from the
// stage catalog. Stock status is frozen from the product catalog at this
// moment and never tracks later inventory changes.
func (s *DealService) Create(spec *models.DealSpec) (*models.Deal, error) {
	if strings.TrimSpace(spec.Title) == "" {
		return nil, &models.InvalidDealSpecError{Reason: "title is required"}
	}
	if strings.TrimSpace(spec.CustomerName) == "" {
		return nil, &models.InvalidDealSpecError{Reason: "customer reference is required"}
	}
	if strings.TrimSpace(spec.ProductName) == "" {
		return nil, &models.InvalidDealSpecError{Reason: "product reference is required"}
	}
	if spec.Value < 0 {
		return nil, &models.InvalidDealSpecError{Reason: "value must be non-negative"}
	}

	stageID := spec.Stage
	if stageID == "" {
		stageID = models.StageInquiry
	}
	stage, err := StageByID(stageID)
	if err != nil {
		return nil, err
	}

	probability := stage.DefaultProbability
	if spec.Probability != nil {
		if *spec.Probability < 0 || *spec.Probability > 100 {
			return nil, &models.InvalidDealSpecError{Reason: "probability must be between 0 and 100"}
		}
		probability = *spec.Probability
	}

	deal := &models.Deal{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(spec.Title),
		CustomerName: strings.TrimSpace(spec.CustomerName),
		ProductName:  strings.TrimSpace(spec.ProductName),
		Value:        spec.Value,
		Stage:        stage.ID,
		Probability:  probability,
		StockStatus:  s.stockStatusFor(spec.ProductName),
		LastActivity: "Deal created",
		StageHistory: map[models.StageID]models.StagePayload{},
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *DealService) stockStatusFor(productName string) models.StockStatus {
	product, err := s.Products.ResolveProduct(productName)
	if err != nil || product == nil {
		// Unresolved references are treated as to-order stock.
		return models.StockIndent
	}
	return product.StockStatus
}

// AdvanceStage moves a deal to the target stage. The payload is validated
// against the target stage's requirements first; a rejected transition leaves
// the deal untouched. On success stage, probability, last activity and the
// stage history entry change as one commit.
func (s *DealService) AdvanceStage(dealID string, target models.StageID, payload map[string]any) (*models.Deal, error) {
	if _, err := s.Repo.GetByID(dealID); err != nil {
		return nil, err
	}
	stage, err := StageByID(target)
	if err != nil {
		return nil, err
	}
	validated, err := ValidateTransition(target, payload)
	if err != nil {
		return nil, err
	}
	return s.Repo.CommitStage(dealID, stage.ID, stage.DefaultProbability, "Stage update: "+string(stage.ID), validated)
}

func (s *DealService) GetByID(id string) (*models.Deal, error) {
	return s.Repo.GetByID(id)
}

// List returns deals in creation order, narrowed by the filter. The category
// filter resolves each deal's product reference; deals whose reference cannot
// be resolved are excluded only while that filter is active. The region
// filter resolves the customer reference against customers first, then
// leads. Both filters compose with AND; empty or "ALL" means pass-through.
func (s *DealService) List(filter models.DealFilter) ([]*models.Deal, error) {
	deals, err := s.Repo.List()
	if err != nil {
		return nil, err
	}

	category := filter.Category
	if category == "ALL" {
		category = ""
	}
	regionID := filter.RegionID
	if regionID == "ALL" {
		regionID = ""
	}
	if category == "" && regionID == "" {
		return deals, nil
	}

	out := make([]*models.Deal, 0, len(deals))
	for _, deal := range deals {
		if category != "" {
			product, err := s.Products.ResolveProduct(deal.ProductName)
			if err != nil {
				return nil, err
			}
			if product == nil || product.Category != category {
				continue
			}
		}
		if regionID != "" {
			dealRegion, err := s.regionFor(deal.CustomerName)
			if err != nil {
				return nil, err
			}
			if dealRegion != regionID {
				continue
			}
		}
		out = append(out, deal)
	}
	return out, nil
}

// regionFor resolves a deal's customer reference to a region id, customers
// first, leads second. Empty means the reference resolved to neither.
func (s *DealService) regionFor(customerName string) (string, error) {
	customer, err := s.Customers.ResolveCustomer(customerName)
	if err != nil {
		return "", err
	}
	if customer != nil {
		return customer.RegionID, nil
	}
	lead, err := s.Leads.ResolveLead(customerName)
	if err != nil {
		return "", err
	}
	if lead != nil {
		return lead.RegionID, nil
	}
	return "", nil
}

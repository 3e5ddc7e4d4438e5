package repositories

import (
	"sync"

	"agrimach/internal/models"
)

// DealRepository holds the live deal set in memory and is the sole mutator of
// stage, probability and stage history. A stage commit is one critical
// section, so two concurrent transitions on the same deal serialize and no
// reader ever observes a half-applied transition. Reads hand out deep copies.
type DealRepository struct {
	mu    sync.RWMutex
	deals map[string]*models.Deal
	order []string
}

func NewDealRepository() *DealRepository {
	return &DealRepository{deals: make(map[string]*models.Deal)}
}

// Create stores a copy of the deal. The id must already be assigned.
func (r *DealRepository) Create(deal *models.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deals[deal.ID] = cloneDeal(deal)
	r.order = append(r.order, deal.ID)
	return nil
}

// GetByID returns a copy of the deal or models.ErrDealNotFound.
func (r *DealRepository) GetByID(id string) (*models.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	deal, ok := r.deals[id]
	if !ok {
		return nil, models.ErrDealNotFound
	}
	return cloneDeal(deal), nil
}

// List returns copies of all deals in creation order.
func (r *DealRepository) List() ([]*models.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Deal, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneDeal(r.deals[id]))
	}
	return out, nil
}

// CommitStage applies a validated transition as one atomic step: stage,
// probability, last activity and the history entry for the target stage
// change together or not at all. Re-entering a stage overwrites only that
// stage's history record.
func (r *DealRepository) CommitStage(id string, stage models.StageID, probability int, activity string, payload models.StagePayload) (*models.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	deal, ok := r.deals[id]
	if !ok {
		return nil, models.ErrDealNotFound
	}
	deal.Stage = stage
	deal.Probability = probability
	deal.LastActivity = activity
	if deal.StageHistory == nil {
		deal.StageHistory = make(map[models.StageID]models.StagePayload)
	}
	deal.StageHistory[stage] = clonePayload(payload)
	return cloneDeal(deal), nil
}

func cloneDeal(d *models.Deal) *models.Deal {
	out := *d
	if d.StageHistory != nil {
		out.StageHistory = make(map[models.StageID]models.StagePayload, len(d.StageHistory))
		for stage, payload := range d.StageHistory {
			out.StageHistory[stage] = clonePayload(payload)
		}
	}
	return &out
}

func clonePayload(p models.StagePayload) models.StagePayload {
	if p == nil {
		return nil
	}
	out := make(models.StagePayload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

package services

import (
	"agrimach/internal/models"
)

// Pipeline stage catalog. Order is the business sequence; probability is the
// default applied when a deal enters the stage. Required fields gate the
// transition into the stage (INQUIRY has none and doubles as the send-back
// target).
var pipelineStages = []models.Stage{
	{
		ID:                 models.StageInquiry,
		Label:              "Inquiry",
		DefaultProbability: 10,
		RequiredFields:     nil,
	},
	{
		ID:                 models.StageDemoUnit,
		Label:              "Demo Unit",
		DefaultProbability: 40,
		RequiredFields: []models.FieldDescriptor{
			{Name: "demo_date", Label: "Demo date", Kind: models.FieldDate},
			{Name: "location", Label: "Demo location", Kind: models.FieldText},
			{Name: "operator_present", Label: "Operator present", Kind: models.FieldSelect, Choices: []string{"yes", "no"}},
		},
	},
	{
		ID:                 models.StageLeasingKUR,
		Label:              "Leasing / KUR",
		DefaultProbability: 60,
		RequiredFields: []models.FieldDescriptor{
			{Name: "bank", Label: "Financing bank", Kind: models.FieldSelect, Choices: []string{"BRI", "Mandiri", "BNI", "BSI"}},
			{Name: "tenor_months", Label: "Tenor (months)", Kind: models.FieldNumber},
			{Name: "application_number", Label: "Application number", Kind: models.FieldText},
		},
	},
	{
		ID:                 models.StageDownPayment,
		Label:              "Down Payment",
		DefaultProbability: 80,
		RequiredFields: []models.FieldDescriptor{
			{Name: "amount", Label: "Down payment amount", Kind: models.FieldNumber},
			{Name: "payment_method", Label: "Payment method", Kind: models.FieldSelect, Choices: []string{"transfer", "cash", "giro"}},
			{Name: "receipt_number", Label: "Receipt number", Kind: models.FieldText},
		},
	},
	{
		ID:                 models.StageDelivery,
		Label:              "Delivery",
		DefaultProbability: 90,
		RequiredFields: []models.FieldDescriptor{
			{Name: "province", Label: "Province", Kind: models.FieldSelect},
			{Name: "regency", Label: "Regency / City", Kind: models.FieldSelect, Parent: "province"},
			{Name: "district", Label: "District", Kind: models.FieldSelect, Parent: "regency"},
			{Name: "village", Label: "Village", Kind: models.FieldSelect, Parent: "district"},
			{Name: "street_address", Label: "Street address", Kind: models.FieldText},
			{Name: "delivery_date", Label: "Delivery date", Kind: models.FieldDate},
		},
	},
	{
		ID:                 models.StageHandoverTraining,
		Label:              "Handover & Training",
		DefaultProbability: 100,
		RequiredFields: []models.FieldDescriptor{
			{Name: "handover_date", Label: "Handover date", Kind: models.FieldDate},
			{Name: "operator_name", Label: "Trained operator", Kind: models.FieldText},
			{Name: "training_completed", Label: "Training completed", Kind: models.FieldSelect, Choices: []string{"yes", "no"}},
		},
	},
}

var stageIndex = func() map[models.StageID]*models.Stage {
	idx := make(map[models.StageID]*models.Stage, len(pipelineStages))
	for i := range pipelineStages {
		idx[pipelineStages[i].ID] = &pipelineStages[i]
	}
	return idx
}()

// AllStages returns the catalog in pipeline order.
func AllStages() []models.Stage {
	out := make([]models.Stage, len(pipelineStages))
	copy(out, pipelineStages)
	return out
}

// StageByID resolves a catalog entry. Unknown ids are caller misuse.
func StageByID(id models.StageID) (*models.Stage, error) {
	stage, ok := stageIndex[id]
	if !ok {
		return nil, &models.InvalidStageError{ID: id}
	}
	return stage, nil
}

// DefaultProbability returns the probability applied on entering a stage.
func DefaultProbability(id models.StageID) (int, error) {
	stage, err := StageByID(id)
	if err != nil {
		return 0, err
	}
	return stage.DefaultProbability, nil
}

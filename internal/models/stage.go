package models

// StageID identifies one step of the sales pipeline.
type StageID string

const (
	StageInquiry          StageID = "INQUIRY"
	StageDemoUnit         StageID = "DEMO_UNIT"
	StageLeasingKUR       StageID = "LEASING_KUR"
	StageDownPayment      StageID = "DOWN_PAYMENT"
	StageDelivery         StageID = "DELIVERY"
	StageHandoverTraining StageID = "HANDOVER_TRAINING"
)

// FieldKind is the data kind of a stage requirement field.
type FieldKind string

const (
	FieldText   FieldKind = "text"
	FieldNumber FieldKind = "number"
	FieldDate   FieldKind = "date"
	FieldSelect FieldKind = "select"
)

// FieldDescriptor describes one field a transition into a stage must supply.
// Select fields with an empty Choices list take their option set from an
// external provider (the region hierarchy). Parent names another field of the
// same stage that must be filled in before this one may be set, which models
// the province/regency/district/village cascade on delivery addresses.
type FieldDescriptor struct {
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Choices []string  `json:"choices,omitempty"`
	Parent  string    `json:"parent,omitempty"`
}

// Stage is one entry of the pipeline catalog. Entries are immutable and
// loaded at process start.
type Stage struct {
	ID                 StageID           `json:"id"`
	Label              string            `json:"label"`
	DefaultProbability int               `json:"default_probability"`
	RequiredFields     []FieldDescriptor `json:"required_fields"`
}

package services

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"agrimach/internal/models"
)

// RequiredFields returns the ordered field descriptors a transition into the
// stage must supply. Consumed by the validator and by form-rendering callers.
func RequiredFields(stageID models.StageID) ([]models.FieldDescriptor, error) {
	stage, err := StageByID(stageID)
	if err != nil {
		return nil, err
	}
	out := make([]models.FieldDescriptor, len(stage.RequiredFields))
	copy(out, stage.RequiredFields)
	return out, nil
}

// ValidateTransition checks a payload against the target stage's required
// fields and returns the validated payload to archive. INQUIRY always
// succeeds with an empty payload; it is the designated send-back stage.
// Failures list every offending field, not just the first.
func ValidateTransition(stageID models.StageID, payload map[string]any) (models.StagePayload, error) {
	stage, err := StageByID(stageID)
	if err != nil {
		return nil, err
	}
	if stage.ID == models.StageInquiry {
		return models.StagePayload{}, nil
	}

	var fieldErrs []models.FieldError
	validated := models.StagePayload{}

	for _, field := range stage.RequiredFields {
		value, present := fieldValue(payload, field.Name)
		if !present {
			fieldErrs = append(fieldErrs, models.FieldError{Field: field.Name, Reason: "required"})
			continue
		}
		// Cascade rule: a child level may never be saved without its parent,
		// even when the child's own value would otherwise be fine.
		if field.Parent != "" {
			if _, parentSet := fieldValue(payload, field.Parent); !parentSet {
				fieldErrs = append(fieldErrs, models.FieldError{
					Field:  field.Name,
					Reason: "requires " + field.Parent + " to be set first",
				})
				continue
			}
		}
		if reason := checkFieldValue(field, value); reason != "" {
			fieldErrs = append(fieldErrs, models.FieldError{Field: field.Name, Reason: reason})
			continue
		}
		validated[field.Name] = value
	}

	if len(fieldErrs) > 0 {
		return nil, &models.ValidationError{Stage: stageID, Fields: fieldErrs}
	}
	return validated, nil
}

// fieldValue reports whether a payload key is present and non-empty.
// Missing key, nil and blank strings all count as absent.
func fieldValue(payload map[string]any, name string) (any, bool) {
	value, ok := payload[name]
	if !ok || value == nil {
		return nil, false
	}
	if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return value, true
}

func checkFieldValue(field models.FieldDescriptor, value any) string {
	switch field.Kind {
	case models.FieldSelect:
		s, ok := value.(string)
		if !ok {
			return "must be a string choice"
		}
		// Region cascade levels declare no inline choices; their option sets
		// come from the region hierarchy provider and arrive pre-resolved.
		if len(field.Choices) == 0 {
			return ""
		}
		for _, choice := range field.Choices {
			if s == choice {
				return ""
			}
		}
		return "must be one of: " + strings.Join(field.Choices, ", ")
	case models.FieldNumber:
		switch v := value.(type) {
		case float64, int, int64:
			return ""
		case json.Number:
			if _, err := v.Float64(); err != nil {
				return "must be a number"
			}
			return ""
		case string:
			if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
				return "must be a number"
			}
			return ""
		default:
			return "must be a number"
		}
	case models.FieldDate:
		s, ok := value.(string)
		if !ok {
			return "must be a date in YYYY-MM-DD format"
		}
		if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
			return "must be a date in YYYY-MM-DD format"
		}
		return ""
	default:
		// Free text: presence already checked.
		return ""
	}
}

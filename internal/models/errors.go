package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDealNotFound is returned on reads and transitions with an unknown deal id.
var ErrDealNotFound = errors.New("deal not found")

// InvalidStageError marks the use of a stage id outside the pipeline catalog.
// It indicates caller misuse, not user input to correct.
type InvalidStageError struct {
	ID StageID
}

func (e *InvalidStageError) Error() string {
	return fmt.Sprintf("unknown pipeline stage %q", e.ID)
}

// InvalidDealSpecError marks a malformed deal creation request.
type InvalidDealSpecError struct {
	Reason string
}

func (e *InvalidDealSpecError) Error() string {
	return "invalid deal spec: " + e.Reason
}

// FieldError is one missing or invalid field in a transition payload.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries every offending field of a rejected transition so
// the caller can present a complete correction list in one round trip.
type ValidationError struct {
	Stage  StageID      `json:"stage"`
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return fmt.Sprintf("transition to %s rejected: %s", e.Stage, strings.Join(parts, "; "))
}

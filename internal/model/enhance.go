package model

import "github.com/google/uuid"

// EnhanceStatus is the per-record state inside a batch.
type EnhanceStatus string

const (
	EnhancePending    EnhanceStatus = "pending"
	EnhanceProcessing EnhanceStatus = "processing"
	EnhanceSuccess    EnhanceStatus = "success"
	EnhanceError      EnhanceStatus = "error"
)

// FieldsAll selects every missing enhanceable field.
const FieldsAll = "all"

type EnhanceBatchRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
	// Fields is a subset of enhanceable field names, or ["all"].
	Fields []string `json:"fields" validate:"required,min=1"`
}

// EnhanceRecordResult is the terminal state of one record in a batch.
// Records are reported in input order.
type EnhanceRecordResult struct {
	VocabID uuid.UUID     `json:"id"`
	Status  EnhanceStatus `json:"status"`
	Error   string        `json:"error,omitempty"`
}

// EnhanceSummary aggregates a finished batch.
type EnhanceSummary struct {
	Total     int                   `json:"total"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
	Results   []EnhanceRecordResult `json:"results"`
}

type PreviewRequest struct {
	ID     uuid.UUID `json:"id" validate:"required"`
	Fields []string  `json:"fields" validate:"required,min=1"`
}

// ApplyRequest persists previewed (possibly user-edited) data verbatim.
// Data keys are field names; values are whatever the preview (or the user)
// produced and are not re-validated against the schema.
type ApplyRequest struct {
	ID   uuid.UUID              `json:"id" validate:"required"`
	Data map[string]interface{} `json:"data" validate:"required,min=1"`
}

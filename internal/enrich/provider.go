// Package enrich holds the clients for the external LLM enrichment
// providers. Both providers accept a vocabulary record plus the field names
// to fill and return a JSON object containing only those fields.
package enrich

import (
	"context"
	"time"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
)

// Enricher is one interchangeable enrichment provider.
type Enricher interface {
	// Name identifies the provider in logs and summaries.
	Name() string
	// Delay is the fixed pause inserted between records in a batch.
	Delay() time.Duration
	// Enhance requests values for the given fields of the record. The result
	// maps field names to proposed values; it is not persisted here.
	Enhance(ctx context.Context, vocab *model.Vocabulary, fields []model.FieldName) (map[string]interface{}, error)
}

package interfaces

import (
	"context"

	"github.com/secmon-lab/argos/pkg/domain/model"
)

// VendorSource supplies the vendor questionnaire table.
// A missing data source yields an empty table, not an error.
type VendorSource interface {
	Load(ctx context.Context) ([]model.VendorRecord, error)
}

// ReportWriter persists a batch of assessment results
type ReportWriter interface {
	Write(ctx context.Context, results []*model.AssessmentResult) error
}

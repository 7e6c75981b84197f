package usecase

import (
	"context"

	"github.com/secmon-lab/argos/pkg/domain/model"
	"github.com/secmon-lab/argos/pkg/utils/logging"
)

// RunBatch assesses every vendor of the table, preserving input order.
// A failure on one row is logged and counted but never aborts the batch.
func (uc *UseCases) RunBatch(ctx context.Context, records []model.VendorRecord) *model.BatchResult {
	logger := logging.From(ctx)
	batch := &model.BatchResult{}

	for _, record := range records {
		name := record.Name
		if name == "" {
			name = "Unknown"
		}

		result, err := uc.Assess(ctx, name, record.Fields)
		if err != nil {
			logger.Error("Failed to assess vendor, skipping",
				"vendor", name,
				"error", err.Error(),
			)
			batch.Skipped++
			continue
		}

		batch.Results = append(batch.Results, result)
	}

	logger.Info("Completed vendor assessments",
		"assessed", len(batch.Results),
		"skipped", batch.Skipped,
	)
	return batch
}

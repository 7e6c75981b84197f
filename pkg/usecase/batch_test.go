package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/argos/pkg/domain/model"
	"github.com/secmon-lab/argos/pkg/domain/model/config"
	"github.com/secmon-lab/argos/pkg/usecase"
)

func TestRunBatch(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	uc := usecase.New(config.Default(), usecase.WithClock(fixedClock(now)))
	ctx := context.Background()

	record := func(name string, answer string) model.VendorRecord {
		fields := map[string]model.Answer{}
		for _, q := range config.Questions("security_controls") {
			fields[q] = model.TextAnswer(answer)
		}
		return model.VendorRecord{Name: name, Fields: fields}
	}

	t.Run("input order is preserved", func(t *testing.T) {
		records := []model.VendorRecord{
			record("Alpha", "yes"),
			record("Bravo", "no"),
			record("Charlie", "partial"),
		}

		batch := uc.RunBatch(ctx, records)
		gt.Array(t, batch.Results).Length(3)
		gt.Number(t, batch.Skipped).Equal(0)
		gt.Value(t, batch.Results[0].VendorName).Equal("Alpha")
		gt.Value(t, batch.Results[1].VendorName).Equal("Bravo")
		gt.Value(t, batch.Results[2].VendorName).Equal("Charlie")
	})

	t.Run("corrupted row is skipped without affecting others", func(t *testing.T) {
		clean := uc.RunBatch(ctx, []model.VendorRecord{
			record("Alpha", "yes"),
			record("Charlie", "partial"),
		})

		corrupted := uc.RunBatch(ctx, []model.VendorRecord{
			record("Alpha", "yes"),
			{Name: "Broken", Fields: nil},
			record("Charlie", "partial"),
		})

		gt.Array(t, corrupted.Results).Length(2)
		gt.Number(t, corrupted.Skipped).Equal(1)

		gt.Value(t, corrupted.Results[0].VendorName).Equal("Alpha")
		gt.Value(t, corrupted.Results[0].OverallScore).Equal(clean.Results[0].OverallScore)
		gt.Value(t, corrupted.Results[1].VendorName).Equal("Charlie")
		gt.Value(t, corrupted.Results[1].OverallScore).Equal(clean.Results[1].OverallScore)
	})

	t.Run("missing vendor name defaults to Unknown", func(t *testing.T) {
		batch := uc.RunBatch(ctx, []model.VendorRecord{
			{Fields: map[string]model.Answer{}},
		})
		gt.Array(t, batch.Results).Length(1)
		gt.Value(t, batch.Results[0].VendorName).Equal("Unknown")
	})

	t.Run("empty table yields empty batch", func(t *testing.T) {
		batch := uc.RunBatch(ctx, nil)
		gt.Array(t, batch.Results).Length(0)
		gt.Number(t, batch.Skipped).Equal(0)
	})
}

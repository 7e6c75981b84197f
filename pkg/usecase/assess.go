package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argos/pkg/domain/model"
	"github.com/secmon-lab/argos/pkg/domain/types"
	"github.com/secmon-lab/argos/pkg/utils/logging"
)

const dateFormat = "2006-01-02"

// Assess conducts a complete risk assessment for a single vendor
func (uc *UseCases) Assess(ctx context.Context, vendorName string, fields map[string]model.Answer) (*model.AssessmentResult, error) {
	if fields == nil {
		return nil, goerr.Wrap(ErrNoResponses, "cannot assess vendor", goerr.V("vendor", vendorName))
	}

	logging.From(ctx).Info("Assessing vendor", "vendor", vendorName)

	overall, level, categoryScores := uc.ScoreOverall(fields)
	now := uc.clock()

	return &model.AssessmentResult{
		ID:                 uuid.NewString(),
		VendorName:         vendorName,
		AssessmentDate:     now.Format(dateFormat),
		OverallScore:       overall,
		RiskLevel:          level,
		CategoryScores:     categoryScores,
		Recommendations:    uc.recommendations(categoryScores, level),
		NextAssessmentDate: now.AddDate(0, 0, level.ReviewAfterDays()).Format(dateFormat),
	}, nil
}

// recommendations builds the per-category advisories plus one general
// recommendation for the assigned risk level. Category advisories reuse
// the overall thresholds rather than category-specific ones.
func (uc *UseCases) recommendations(categoryScores map[types.Category]float64, level types.RiskLevel) []string {
	var recommendations []string
	thresholds := uc.cfg.Thresholds

	for _, category := range types.AllCategories() {
		score, ok := categoryScores[category]
		if !ok {
			continue
		}
		if score < thresholds.Medium {
			recommendations = append(recommendations, "Immediate attention required for "+category.Title())
		} else if score < thresholds.Low {
			recommendations = append(recommendations, "Monitor and improve "+category.Title())
		}
	}

	switch level {
	case types.RiskLevelCritical:
		recommendations = append(recommendations, "Consider alternative vendors or require immediate remediation")
	case types.RiskLevelHigh:
		recommendations = append(recommendations, "Develop detailed risk mitigation plan before engagement")
	case types.RiskLevelMedium:
		recommendations = append(recommendations, "Implement additional monitoring and controls")
	}

	if len(recommendations) == 0 {
		return []string{"Vendor meets acceptable risk standards"}
	}
	return recommendations
}

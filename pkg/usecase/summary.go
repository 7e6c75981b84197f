package usecase

import (
	"sort"

	"github.com/google/uuid"
	"github.com/secmon-lab/argos/pkg/domain/model"
	"github.com/secmon-lab/argos/pkg/domain/types"
)

const highestRiskLimit = 5

// Summarize aggregates a batch of assessment results into portfolio
// statistics. An empty result set yields a zero-valued report, not an error.
func (uc *UseCases) Summarize(results []*model.AssessmentResult, skipped int) *model.SummaryReport {
	report := &model.SummaryReport{
		ReportID:         uuid.NewString(),
		SkippedVendors:   skipped,
		RiskDistribution: make(map[types.RiskLevel]int, 4),
		AssessmentDate:   uc.clock().Format(dateFormat),
	}
	for _, level := range types.AllRiskLevels() {
		report.RiskDistribution[level] = 0
	}

	if len(results) == 0 {
		return report
	}

	report.TotalVendorsAssessed = len(results)
	scores := make([]float64, 0, len(results))
	for _, result := range results {
		report.RiskDistribution[result.RiskLevel]++
		scores = append(scores, result.OverallScore)
	}

	report.AverageRiskScore = round2(mean(scores))
	report.MedianRiskScore = round2(median(scores))

	// Lowest score means highest risk. The sort is stable so ties keep
	// their input order.
	ranked := make([]*model.AssessmentResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallScore < ranked[j].OverallScore
	})

	limit := highestRiskLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}
	for _, result := range ranked[:limit] {
		report.HighestRiskVendors = append(report.HighestRiskVendors, model.VendorRanking{
			Name:  result.VendorName,
			Score: result.OverallScore,
			Level: result.RiskLevel,
		})
	}

	return report
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

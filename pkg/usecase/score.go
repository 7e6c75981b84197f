package usecase

import (
	"math"
	"strings"

	"github.com/secmon-lab/argos/pkg/domain/model"
	"github.com/secmon-lab/argos/pkg/domain/model/config"
	"github.com/secmon-lab/argos/pkg/domain/types"
)

var (
	affirmativeAnswers = map[string]struct{}{
		"yes": {}, "true": {}, "1": {}, "compliant": {}, "implemented": {},
	}
	partialAnswers = map[string]struct{}{
		"partial": {}, "limited": {}, "in-progress": {},
	}
)

// MapResponse converts one raw questionnaire answer into a point value of
// the scoring matrix. The mapping is total: negative, unrecognized and
// absent answers all score as worst case rather than failing.
func (uc *UseCases) MapResponse(answer model.Answer) int {
	matrix := uc.cfg.Matrix

	switch answer.Kind() {
	case model.AnswerText:
		text, _ := answer.Text()
		normalized := strings.ToLower(strings.TrimSpace(text))
		if _, ok := affirmativeAnswers[normalized]; ok {
			return matrix.Critical
		}
		if _, ok := partialAnswers[normalized]; ok {
			return matrix.Medium
		}
		return matrix.Low

	case model.AnswerNumber:
		value, _ := answer.Number()
		switch {
		case value >= 90:
			return matrix.Critical
		case value >= 70:
			return matrix.High
		case value >= 50:
			return matrix.Medium
		default:
			return matrix.Low
		}

	default:
		return matrix.Low
	}
}

// ScoreCategory aggregates a vendor's answers for one risk category into a
// percentage in [0, 100]. Questions absent from the record contribute zero.
func (uc *UseCases) ScoreCategory(fields map[string]model.Answer, category types.Category) float64 {
	questions := config.Questions(category)
	totalPossible := len(questions) * uc.cfg.Matrix.Critical
	if totalPossible == 0 {
		return 0
	}

	actual := 0
	for _, question := range questions {
		if answer, ok := fields[question]; ok {
			actual += uc.MapResponse(answer)
		}
	}

	return round2(float64(actual) / float64(totalPossible) * 100)
}

// ScoreOverall combines all configured category scores into one weighted
// overall score and the matching risk level.
func (uc *UseCases) ScoreOverall(fields map[string]model.Answer) (float64, types.RiskLevel, map[types.Category]float64) {
	var weighted float64
	categoryScores := make(map[types.Category]float64, len(uc.cfg.Weights))

	for _, category := range types.AllCategories() {
		weight, ok := uc.cfg.Weights[category]
		if !ok {
			continue
		}
		score := uc.ScoreCategory(fields, category)
		categoryScores[category] = score
		weighted += score * weight
	}

	overall := round2(weighted)
	return overall, uc.riskLevel(overall), categoryScores
}

// riskLevel scans the threshold bands in strict descending order
func (uc *UseCases) riskLevel(score float64) types.RiskLevel {
	thresholds := uc.cfg.Thresholds
	switch {
	case score >= thresholds.Low:
		return types.RiskLevelLow
	case score >= thresholds.Medium:
		return types.RiskLevelMedium
	case score >= thresholds.High:
		return types.RiskLevelHigh
	default:
		return types.RiskLevelCritical
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

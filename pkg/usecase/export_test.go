package usecase

import "github.com/secmon-lab/argos/pkg/domain/types"

// RiskLevelOf exposes threshold band selection for tests
func (uc *UseCases) RiskLevelOf(score float64) types.RiskLevel {
	return uc.riskLevel(score)
}

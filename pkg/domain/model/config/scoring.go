package config

import (
	"github.com/secmon-lab/argos/pkg/domain/types"
)

// ScoringMatrix maps qualitative answer tiers to point values.
// Invariant: Critical > High > Medium > Low >= 0.
type ScoringMatrix struct {
	Critical int
	High     int
	Medium   int
	Low      int
}

// RiskThresholds holds the minimum overall-score cutoff of each tier.
// Invariant: Low > Medium > High >= Critical, defining four half-open bands.
type RiskThresholds struct {
	Low      float64
	Medium   float64
	High     float64
	Critical float64
}

// ScoringConfig holds all scoring-related configuration.
// It is immutable after load.
type ScoringConfig struct {
	Weights    map[types.Category]float64
	Matrix     ScoringMatrix
	Thresholds RiskThresholds
}

// Default returns the built-in scoring configuration used when no
// configuration file is available.
func Default() *ScoringConfig {
	return &ScoringConfig{
		Weights: map[types.Category]float64{
			types.CategorySecurityControls:    0.25,
			types.CategoryCompliance:          0.20,
			types.CategoryDataGovernance:      0.20,
			types.CategoryBusinessContinuity:  0.15,
			types.CategoryOperationalSecurity: 0.10,
			types.CategoryContractLegal:       0.10,
		},
		Matrix: ScoringMatrix{
			Critical: 4,
			High:     3,
			Medium:   2,
			Low:      1,
		},
		Thresholds: RiskThresholds{
			Low:      85,
			Medium:   70,
			High:     55,
			Critical: 0,
		},
	}
}

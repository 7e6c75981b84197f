package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// RiskLevel represents the risk tier assigned to a vendor
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "Low"
	RiskLevelMedium   RiskLevel = "Medium"
	RiskLevelHigh     RiskLevel = "High"
	RiskLevelCritical RiskLevel = "Critical"
)

// AllRiskLevels returns all valid risk levels ordered from worst to best
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{
		RiskLevelCritical,
		RiskLevelHigh,
		RiskLevelMedium,
		RiskLevelLow,
	}
}

// IsValid checks if the risk level is valid
func (x RiskLevel) IsValid() bool {
	switch x {
	case RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh,
		RiskLevelCritical:
		return true
	default:
		return false
	}
}

// Rank returns the severity order of the risk level. Lower is worse:
// Critical=0, High=1, Medium=2, Low=3.
func (x RiskLevel) Rank() int {
	switch x {
	case RiskLevelCritical:
		return 0
	case RiskLevelHigh:
		return 1
	case RiskLevelMedium:
		return 2
	default:
		return 3
	}
}

// ReviewAfterDays returns the re-assessment cadence for the risk level.
// Riskier vendors are reviewed more often.
func (x RiskLevel) ReviewAfterDays() int {
	switch x {
	case RiskLevelCritical:
		return 30
	case RiskLevelHigh:
		return 90
	case RiskLevelMedium:
		return 180
	default:
		return 365
	}
}

// String returns the string representation of the risk level
func (x RiskLevel) String() string {
	return string(x)
}

// ParseRiskLevel parses a string into a RiskLevel
func ParseRiskLevel(s string) (RiskLevel, error) {
	level := RiskLevel(s)
	if !level.IsValid() {
		return "", goerr.New("invalid risk level", goerr.V("level", s))
	}
	return level, nil
}

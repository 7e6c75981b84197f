package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/secmon-lab/argos/pkg/domain/model/config"
	"github.com/secmon-lab/argos/pkg/domain/types"
)

// AppConfig represents the scoring configuration file
type AppConfig struct {
	RiskCategories map[string]float64 `toml:"risk_categories"`
	ScoringMatrix  ScoringMatrix      `toml:"scoring_matrix"`
	RiskThresholds RiskThresholds     `toml:"risk_thresholds"`
}

// ScoringMatrix represents the qualitative tier point values
type ScoringMatrix struct {
	Critical int `toml:"critical"`
	High     int `toml:"high"`
	Medium   int `toml:"medium"`
	Low      int `toml:"low"`
}

// Validate checks the tier point ordering
func (s *ScoringMatrix) Validate() error {
	if s.Low < 0 {
		return goerr.New("scoring matrix values must not be negative", goerr.V("low", s.Low))
	}
	if !(s.Critical > s.High && s.High > s.Medium && s.Medium > s.Low) {
		return goerr.New("scoring matrix must be strictly ordered critical > high > medium > low",
			goerr.V("critical", s.Critical),
			goerr.V("high", s.High),
			goerr.V("medium", s.Medium),
			goerr.V("low", s.Low),
		)
	}
	return nil
}

// RiskThresholds represents the minimum overall-score cutoff of each tier
type RiskThresholds struct {
	Low      float64 `toml:"low"`
	Medium   float64 `toml:"medium"`
	High     float64 `toml:"high"`
	Critical float64 `toml:"critical"`
}

// Validate checks the threshold band ordering
func (t *RiskThresholds) Validate() error {
	if t.Critical < 0 {
		return goerr.New("critical threshold must not be negative", goerr.V("critical", t.Critical))
	}
	if !(t.Low > t.Medium && t.Medium > t.High && t.High >= t.Critical) {
		return goerr.New("risk thresholds must be ordered low > medium > high >= critical",
			goerr.V("low", t.Low),
			goerr.V("medium", t.Medium),
			goerr.V("high", t.High),
			goerr.V("critical", t.Critical),
		)
	}
	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	if len(a.RiskCategories) == 0 {
		return goerr.New("risk_categories is required")
	}

	for name, weight := range a.RiskCategories {
		if _, err := types.ParseCategory(name); err != nil {
			return goerr.Wrap(err, "unknown risk category in configuration")
		}
		if weight < 0 || weight > 1 {
			return goerr.New("category weight must be within [0, 1]",
				goerr.V("category", name),
				goerr.V("weight", weight),
			)
		}
	}

	if err := a.ScoringMatrix.Validate(); err != nil {
		return goerr.Wrap(err, "invalid scoring matrix")
	}

	if err := a.RiskThresholds.Validate(); err != nil {
		return goerr.Wrap(err, "invalid risk thresholds")
	}

	return nil
}

// Load reads and validates the scoring configuration from a TOML file
func Load(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V("path", path))
	}

	return &config, nil
}

// ToScoringConfig converts AppConfig to the domain scoring configuration
func (a *AppConfig) ToScoringConfig() *domainConfig.ScoringConfig {
	weights := make(map[types.Category]float64, len(a.RiskCategories))
	for name, weight := range a.RiskCategories {
		weights[types.Category(name)] = weight
	}

	return &domainConfig.ScoringConfig{
		Weights: weights,
		Matrix: domainConfig.ScoringMatrix{
			Critical: a.ScoringMatrix.Critical,
			High:     a.ScoringMatrix.High,
			Medium:   a.ScoringMatrix.Medium,
			Low:      a.ScoringMatrix.Low,
		},
		Thresholds: domainConfig.RiskThresholds{
			Low:      a.RiskThresholds.Low,
			Medium:   a.RiskThresholds.Medium,
			High:     a.RiskThresholds.High,
			Critical: a.RiskThresholds.Critical,
		},
	}
}

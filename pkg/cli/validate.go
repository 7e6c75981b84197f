package cli

import (
	"context"
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argos/pkg/cli/config"
	"github.com/secmon-lab/argos/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a scoring configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Scoring configuration file (TOML)",
				Value:       "configs/settings.toml",
				Sources:     cli.EnvVars("ARGOS_CONFIG"),
				Destination: &configPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			appCfg, err := config.Load(configPath)
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}

			scoringCfg := appCfg.ToScoringConfig()

			var weightSum float64
			for _, weight := range scoringCfg.Weights {
				weightSum += weight
			}

			logger.Info("Configuration validation passed",
				"path", configPath,
				"categories", len(scoringCfg.Weights),
				"weight_sum", weightSum,
			)
			if math.Abs(weightSum-1.0) > 1e-9 {
				logger.Warn("Category weights do not sum to 1.0, overall scores may leave [0, 100]",
					"weight_sum", weightSum,
				)
			}

			return nil
		},
	}
}

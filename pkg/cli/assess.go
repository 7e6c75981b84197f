package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argos/pkg/cli/config"
	"github.com/secmon-lab/argos/pkg/domain/interfaces"
	domainConfig "github.com/secmon-lab/argos/pkg/domain/model/config"
	"github.com/secmon-lab/argos/pkg/service/dataset"
	"github.com/secmon-lab/argos/pkg/service/report"
	"github.com/secmon-lab/argos/pkg/usecase"
	"github.com/secmon-lab/argos/pkg/utils/errutil"
	"github.com/secmon-lab/argos/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdAssess() *cli.Command {
	var configPath string
	var inputPath string
	var outputPath string

	return &cli.Command{
		Name:    "assess",
		Aliases: []string{"a"},
		Usage:   "Run a batch risk assessment over a vendor questionnaire table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Scoring configuration file (TOML)",
				Value:       "configs/settings.toml",
				Sources:     cli.EnvVars("ARGOS_CONFIG"),
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Vendor questionnaire table (CSV)",
				Value:       "data/vendors_sample.csv",
				Sources:     cli.EnvVars("ARGOS_INPUT"),
				Destination: &inputPath,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Assessment result output file (JSON)",
				Value:       "data/risk_scores.json",
				Sources:     cli.EnvVars("ARGOS_OUTPUT"),
				Destination: &outputPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			// A broken or missing configuration falls back to the
			// built-in defaults; only the log surfaces it.
			scoringCfg := domainConfig.Default()
			if appCfg, err := config.Load(configPath); err != nil {
				logger.Error("Failed to load configuration, using defaults",
					"path", configPath,
					"error", err.Error(),
				)
			} else {
				scoringCfg = appCfg.ToScoringConfig()
				logger.Info("Configuration loaded", "path", configPath)
			}

			var source interfaces.VendorSource = dataset.New(inputPath)
			records, err := source.Load(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load vendor data", goerr.V("path", inputPath))
			}
			if len(records) == 0 {
				return goerr.New("no vendor data available for assessment", goerr.V("path", inputPath))
			}

			uc := usecase.New(scoringCfg)
			batch := uc.RunBatch(ctx, records)

			// Persistence failure must not block the in-memory summary.
			var writer interfaces.ReportWriter = report.NewWriter(outputPath)
			if err := writer.Write(ctx, batch.Results); err != nil {
				_ = errutil.Handle(ctx, err, "Failed to save assessment results")
			}

			summary := uc.Summarize(batch.Results, batch.Skipped)
			report.RenderSummary(os.Stdout, summary)

			return nil
		},
	}
}

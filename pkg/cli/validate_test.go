package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/argos/pkg/cli"
)

func TestRun_ValidateCommand_ValidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.toml")
	gt.NoError(t, os.WriteFile(configPath, []byte(testConfig), 0o600)).Required()

	err := cli.Run(context.Background(), []string{"argos", "validate", "--config", configPath}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.toml")

	// Inverted scoring matrix must be rejected
	content := `
[risk_categories]
security_controls = 1.0

[scoring_matrix]
critical = 1
high = 2
medium = 3
low = 4

[risk_thresholds]
low = 85.0
medium = 70.0
high = 55.0
critical = 0.0
`
	gt.NoError(t, os.WriteFile(configPath, []byte(content), 0o600)).Required()

	err := cli.Run(context.Background(), []string{"argos", "validate", "--config", configPath}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_ValidateCommand_MissingConfig(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"argos", "validate", "--config", filepath.Join(t.TempDir(), "nope.toml"),
	}, "test")
	gt.Value(t, err).NotNil()
}

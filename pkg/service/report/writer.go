package report

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argos/pkg/domain/model"
	"github.com/secmon-lab/argos/pkg/utils/logging"
)

// Writer persists assessment results as a JSON document
type Writer struct {
	path string
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (x *Writer) Write(ctx context.Context, results []*model.AssessmentResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal assessment results")
	}

	if err := os.WriteFile(x.path, data, 0600); err != nil {
		return goerr.Wrap(err, "failed to write assessment results", goerr.V("path", x.path))
	}

	logging.From(ctx).Info("Assessment results saved", "path", x.path, "count", len(results))
	return nil
}

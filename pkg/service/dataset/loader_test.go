package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/argos/pkg/domain/model"
	"github.com/secmon-lab/argos/pkg/service/dataset"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vendors.csv")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func assertText(t *testing.T, answer model.Answer, want string) {
	t.Helper()
	gt.Value(t, answer.Kind()).Equal(model.AnswerText)
	text, ok := answer.Text()
	gt.Bool(t, ok).True()
	gt.Value(t, text).Equal(want)
}

func assertNumber(t *testing.T, answer model.Answer, want float64) {
	t.Helper()
	gt.Value(t, answer.Kind()).Equal(model.AnswerNumber)
	value, ok := answer.Number()
	gt.Bool(t, ok).True()
	gt.Value(t, value).Equal(want)
}

func TestLoader(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file yields empty table without error", func(t *testing.T) {
		records, err := dataset.New(filepath.Join(t.TempDir(), "nope.csv")).Load(ctx)
		gt.NoError(t, err)
		gt.Array(t, records).Length(0)
	})

	t.Run("empty file yields empty table", func(t *testing.T) {
		records, err := dataset.New(writeCSV(t, "")).Load(ctx)
		gt.NoError(t, err)
		gt.Array(t, records).Length(0)
	})

	t.Run("rows map to vendor records", func(t *testing.T) {
		csv := "vendor_name,mfa_enforced,uptime_sla\n" +
			"Acme Corp,yes,99.9\n" +
			"Globex,no,95\n"

		records, err := dataset.New(writeCSV(t, csv)).Load(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(2)

		gt.Value(t, records[0].Name).Equal("Acme Corp")
		assertText(t, records[0].Fields["mfa_enforced"], "yes")
		assertNumber(t, records[0].Fields["uptime_sla"], 99.9)

		gt.Value(t, records[1].Name).Equal("Globex")
		assertNumber(t, records[1].Fields["uptime_sla"], 95)

		// vendor_name is not a questionnaire field
		_, ok := records[0].Fields["vendor_name"]
		gt.Bool(t, ok).False()
	})

	t.Run("numeric literal in a text column stays textual", func(t *testing.T) {
		csv := "vendor_name,mfa_enforced\n" +
			"Acme Corp,1\n" +
			"Globex,no\n"

		records, err := dataset.New(writeCSV(t, csv)).Load(ctx)
		gt.NoError(t, err).Required()

		// "1" is an affirmative answer, not the number one, because the
		// column is not fully numeric.
		assertText(t, records[0].Fields["mfa_enforced"], "1")
	})

	t.Run("fully numeric column is typed as numbers", func(t *testing.T) {
		csv := "vendor_name,uptime_sla\n" +
			"Acme Corp,1\n" +
			"Globex,99.5\n"

		records, err := dataset.New(writeCSV(t, csv)).Load(ctx)
		gt.NoError(t, err).Required()
		assertNumber(t, records[0].Fields["uptime_sla"], 1)
	})

	t.Run("empty cell loads as absent answer", func(t *testing.T) {
		csv := "vendor_name,mfa_enforced,soc2_certified\n" +
			"Acme Corp,,yes\n"

		records, err := dataset.New(writeCSV(t, csv)).Load(ctx)
		gt.NoError(t, err).Required()

		answer, ok := records[0].Fields["mfa_enforced"]
		gt.Bool(t, ok).True()
		gt.Value(t, answer.Kind()).Equal(model.AnswerAbsent)
	})

	t.Run("short row leaves trailing columns out of the field map", func(t *testing.T) {
		csv := "vendor_name,mfa_enforced,soc2_certified\n" +
			"Acme Corp,yes\n"

		records, err := dataset.New(writeCSV(t, csv)).Load(ctx)
		gt.NoError(t, err).Required()

		_, ok := records[0].Fields["soc2_certified"]
		gt.Bool(t, ok).False()
	})

	t.Run("missing vendor name column leaves the name empty", func(t *testing.T) {
		csv := "mfa_enforced\nyes\n"

		records, err := dataset.New(writeCSV(t, csv)).Load(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, records[0].Name).Equal("")
	})
}

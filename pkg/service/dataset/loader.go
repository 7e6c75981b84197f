package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argos/pkg/domain/model"
	"github.com/secmon-lab/argos/pkg/utils/logging"
	"github.com/secmon-lab/argos/pkg/utils/safe"
)

const vendorNameColumn = "vendor_name"

// Loader reads the vendor questionnaire table from a CSV file
type Loader struct {
	path string
}

func New(path string) *Loader {
	return &Loader{path: path}
}

// Load parses the vendor table. A missing file is not an error: it yields
// an empty table and a log line, matching the recoverable-boundary policy.
func (x *Loader) Load(ctx context.Context) ([]model.VendorRecord, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	f, err := os.Open(x.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.From(ctx).Error("Vendor data file not found", "path", x.path)
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to open vendor data file", goerr.V("path", x.path))
	}
	defer safe.Close(ctx, f)

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read CSV header", goerr.V("path", x.path))
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read CSV row", goerr.V("path", x.path))
		}
		rows = append(rows, row)
	}

	records := buildRecords(header, rows)
	logging.From(ctx).Info("Vendor data loaded", "path", x.path, "vendors", len(records))
	return records, nil
}

// buildRecords converts the raw table into vendor records. Answer typing is
// inferred per column, like a tabular data frame: a column is numeric only
// when every non-empty cell parses as a number. This keeps a "1" in a
// yes/no column textual so it classifies as an affirmative answer.
func buildRecords(header []string, rows [][]string) []model.VendorRecord {
	numeric := numericColumns(header, rows)

	var records []model.VendorRecord
	for _, row := range rows {
		record := model.VendorRecord{
			Fields: make(map[string]model.Answer, len(header)),
		}

		for i, key := range header {
			if i >= len(row) {
				// Short rows leave trailing columns absent from the field
				// map, so they contribute zero to category totals.
				break
			}
			cell := strings.TrimSpace(row[i])
			if key == vendorNameColumn {
				record.Name = cell
				continue
			}
			record.Fields[key] = parseCell(cell, numeric[i])
		}

		records = append(records, record)
	}

	return records
}

// numericColumns reports, per column index, whether all non-empty cells
// parse as numbers.
func numericColumns(header []string, rows [][]string) []bool {
	numeric := make([]bool, len(header))
	seen := make([]bool, len(header))
	for i := range numeric {
		numeric[i] = true
	}

	for _, row := range rows {
		for i := 0; i < len(header) && i < len(row); i++ {
			cell := strings.TrimSpace(row[i])
			if cell == "" {
				continue
			}
			seen[i] = true
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric[i] = false
			}
		}
	}

	for i := range numeric {
		if !seen[i] {
			numeric[i] = false
		}
	}
	return numeric
}

// parseCell classifies a raw CSV cell. An empty cell is an absent answer,
// which still maps to the worst-case score when the question is present.
func parseCell(cell string, isNumeric bool) model.Answer {
	if cell == "" {
		return model.AbsentAnswer()
	}
	if isNumeric {
		if value, err := strconv.ParseFloat(cell, 64); err == nil {
			return model.NumberAnswer(value)
		}
	}
	return model.TextAnswer(cell)
}

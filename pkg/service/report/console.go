package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/secmon-lab/argos/pkg/domain/model"
	"github.com/secmon-lab/argos/pkg/domain/types"
)

var levelColors = map[types.RiskLevel]*color.Color{
	types.RiskLevelCritical: color.New(color.FgRed, color.Bold),
	types.RiskLevelHigh:     color.New(color.FgYellow),
	types.RiskLevelMedium:   color.New(color.FgCyan),
	types.RiskLevelLow:      color.New(color.FgGreen),
}

func colorLevel(level types.RiskLevel) string {
	if c, ok := levelColors[level]; ok {
		return c.Sprint(level.String())
	}
	return level.String()
}

// RenderSummary writes the human-readable portfolio summary
func RenderSummary(w io.Writer, summary *model.SummaryReport) {
	divider := strings.Repeat("=", 50)

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "THIRD-PARTY RISK ASSESSMENT SUMMARY")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Total Vendors Assessed: %d\n", summary.TotalVendorsAssessed)
	if summary.SkippedVendors > 0 {
		fmt.Fprintf(w, "Skipped Vendors: %d\n", summary.SkippedVendors)
	}
	fmt.Fprintf(w, "Average Risk Score: %.2f%%\n", summary.AverageRiskScore)
	fmt.Fprintf(w, "Median Risk Score: %.2f%%\n", summary.MedianRiskScore)

	fmt.Fprintln(w, "\nRisk Distribution:")
	for _, level := range types.AllRiskLevels() {
		fmt.Fprintf(w, "  %s: %d vendors\n", colorLevel(level), summary.RiskDistribution[level])
	}

	fmt.Fprintln(w, "\nHighest Risk Vendors:")
	for _, vendor := range summary.HighestRiskVendors {
		fmt.Fprintf(w, "  %s: %.2f%% (%s Risk)\n", vendor.Name, vendor.Score, colorLevel(vendor.Level))
	}
	fmt.Fprintln(w, divider)
}

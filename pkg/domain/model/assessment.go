package model

import (
	"github.com/secmon-lab/argos/pkg/domain/types"
)

// AssessmentResult is the complete scored output for one vendor.
// It is immutable once produced by the assessment builder.
type AssessmentResult struct {
	ID                 string                     `json:"assessment_id"`
	VendorName         string                     `json:"vendor_name"`
	AssessmentDate     string                     `json:"assessment_date"`
	OverallScore       float64                    `json:"overall_score"`
	RiskLevel          types.RiskLevel            `json:"risk_level"`
	CategoryScores     map[types.Category]float64 `json:"category_scores"`
	Recommendations    []string                   `json:"recommendations"`
	NextAssessmentDate string                     `json:"next_assessment_date"`
}

// BatchResult holds the outcome of assessing one vendor table
type BatchResult struct {
	Results []*AssessmentResult
	Skipped int
}

// VendorRanking is one entry of the highest-risk vendor list
type VendorRanking struct {
	Name  string          `json:"name"`
	Score float64         `json:"score"`
	Level types.RiskLevel `json:"level"`
}

// SummaryReport aggregates a batch of assessment results into
// portfolio-level statistics. It is recomputed fresh each run.
type SummaryReport struct {
	ReportID             string                  `json:"report_id"`
	TotalVendorsAssessed int                     `json:"total_vendors_assessed"`
	SkippedVendors       int                     `json:"skipped_vendors"`
	RiskDistribution     map[types.RiskLevel]int `json:"risk_distribution"`
	AverageRiskScore     float64                 `json:"average_risk_score"`
	MedianRiskScore      float64                 `json:"median_risk_score"`
	HighestRiskVendors   []VendorRanking         `json:"highest_risk_vendors"`
	AssessmentDate       string                  `json:"assessment_date"`
}

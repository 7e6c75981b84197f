package config

import (
	"github.com/secmon-lab/argos/pkg/domain/types"
)

// questionSchema is the fixed questionnaire schema: the ordered question
// keys belonging to each risk category.
var questionSchema = map[types.Category][]string{
	types.CategorySecurityControls: {
		"data_encryption_at_rest", "data_encryption_in_transit", "mfa_enforced",
		"rbac_implemented", "vulnerability_scanning", "patch_management",
		"incident_response_plan", "security_team_dedicated",
	},
	types.CategoryCompliance: {
		"soc2_certified", "iso27001_certified", "pci_compliant", "gdpr_compliant",
		"hipaa_compliant", "regular_audits", "penetration_testing",
	},
	types.CategoryDataGovernance: {
		"data_retention_policy", "data_deletion_procedures", "data_portability",
		"cross_border_safeguards", "privacy_impact_assessments", "data_subject_rights",
	},
	types.CategoryBusinessContinuity: {
		"uptime_sla", "redundant_systems", "geographic_distribution",
		"backup_procedures", "disaster_recovery_plan", "vendor_stability",
	},
	types.CategoryOperationalSecurity: {
		"background_checks", "security_training", "physical_security",
		"secure_disposal", "insider_threat_monitoring",
	},
	types.CategoryContractLegal: {
		"comprehensive_sla", "dpa_executed", "liability_clauses",
		"termination_procedures", "legal_jurisdiction", "ip_protection",
	},
}

// Questions returns the question keys of the given category.
// Unknown categories yield an empty list.
func Questions(category types.Category) []string {
	return questionSchema[category]
}

package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category represents one weighted dimension of vendor risk
type Category string

const (
	CategorySecurityControls    Category = "security_controls"
	CategoryCompliance          Category = "compliance"
	CategoryDataGovernance      Category = "data_governance"
	CategoryBusinessContinuity  Category = "business_continuity"
	CategoryOperationalSecurity Category = "operational_security"
	CategoryContractLegal       Category = "contract_legal"
)

// AllCategories returns all risk categories in their canonical order
func AllCategories() []Category {
	return []Category{
		CategorySecurityControls,
		CategoryCompliance,
		CategoryDataGovernance,
		CategoryBusinessContinuity,
		CategoryOperationalSecurity,
		CategoryContractLegal,
	}
}

// IsValid checks if the category is valid
func (x Category) IsValid() bool {
	switch x {
	case CategorySecurityControls,
		CategoryCompliance,
		CategoryDataGovernance,
		CategoryBusinessContinuity,
		CategoryOperationalSecurity,
		CategoryContractLegal:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category
func (x Category) String() string {
	return string(x)
}

// Title returns a human-readable name for the category,
// e.g. "data_governance" -> "Data Governance".
func (x Category) Title() string {
	// cases.Caser is stateful, so build one per call
	return cases.Title(language.English).String(strings.ReplaceAll(string(x), "_", " "))
}

// ParseCategory parses a string into a Category
func ParseCategory(s string) (Category, error) {
	category := Category(s)
	if !category.IsValid() {
		return "", goerr.New("invalid risk category", goerr.V("category", s))
	}
	return category, nil
}

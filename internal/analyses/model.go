package analyses

import (
	"advisorpilot/internal/analyses/opportunities"
	"advisorpilot/internal/analyses/recommendations"
	"advisorpilot/internal/catalog"
)

// Request is one stack analysis.
type Request struct {
	Industry         string                          `json:"industry"`
	CompanySize      string                          `json:"companySize"`
	SelectedSoftware []string                        `json:"selectedSoftware"`
	Statuses         map[string]opportunities.Status `json:"integrationStatuses"`
	IncludeInsights  bool                            `json:"includeInsights"`
}

// Result is the full analysis. TotalSavings always equals the sum of the
// recommendation savings.
type Result struct {
	Industry                 string                           `json:"industry"`
	CurrentStack             []catalog.SoftwareProfile        `json:"current_stack"`
	Recommendations          []recommendations.Recommendation `json:"recommendations"`
	TotalSavings             int                              `json:"total_savings"`
	IntegrationOpportunities opportunities.Opportunities      `json:"integration_opportunities"`
	InsightsSource           string                           `json:"insights_source,omitempty"`
}

// MatrixRequest selects the products for an integration matrix.
type MatrixRequest struct {
	SelectedSoftware []string `json:"selectedSoftware"`
}

// Resolution is the answer to a name lookup.
type Resolution struct {
	Input    string                   `json:"input"`
	Found    bool                     `json:"found"`
	Resolved string                   `json:"resolved,omitempty"`
	Profile  *catalog.SoftwareProfile `json:"profile,omitempty"`
}

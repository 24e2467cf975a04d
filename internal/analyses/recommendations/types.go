package recommendations

import (
	"advisorpilot/internal/analyses/opportunities"
	"advisorpilot/internal/catalog"
)

// Priority tiers, highest first.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Categories with a fixed rank. Anything else ranks lowest.
const (
	CategoryCurrentValue = "Current Value"
	CategoryExpansion    = "Expansion Opportunity"
	CategoryQuickWin     = "Quick Win Integration"
	CategoryGap          = "Integration Gap"
	CategoryAutomation   = "Automation"
	CategoryIntegration  = "Integration"
	CategoryComm         = "Communication"
)

// CategoryAIInsight marks model-generated advice. It is unranked and carries
// no savings.
const CategoryAIInsight = "AI Insight"

// Company-size brackets.
const (
	BracketSmall = "1-50"
	BracketMid   = "51-200"
	BracketLarge = "200+"
)

// IntegrationDetails is the optional implementation block of a recommendation.
type IntegrationDetails struct {
	Difficulty         string   `json:"difficulty"`
	SetupTime          string   `json:"setup_time"`
	MiddlewareRequired bool     `json:"middleware_required"`
	SpecificBenefits   []string `json:"specific_benefits"`
}

// Recommendation is one ranked suggestion. IDs are unique within a single result.
type Recommendation struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	Priority           Priority            `json:"priority"`
	Category           string              `json:"category"`
	EstimatedSavings   int                 `json:"estimated_savings"`
	SoftwareInvolved   []string            `json:"software_involved"`
	IntegrationDetails *IntegrationDetails `json:"integration_details,omitempty"`
}

// Input carries everything the rules read.
type Input struct {
	Software      []catalog.SoftwareProfile
	CompanySize   string
	Opportunities opportunities.Opportunities
	Statuses      map[string]opportunities.Status
}

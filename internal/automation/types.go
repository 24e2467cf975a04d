package automation

import (
	"fmt"
	"strings"
)

// Difficulty of an automation.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyMedium   Difficulty = "Medium"
	DifficultyAdvanced Difficulty = "Advanced"
)

// Category of workflow an opportunity automates.
type Category string

const (
	CategoryDataSync       Category = "Data Sync"
	CategoryLeadManagement Category = "Lead Management"
	CategoryReporting      Category = "Reporting"
	CategoryCommunication  Category = "Communication"
	CategoryDocuments      Category = "Document Management"
)

// Opportunity is one automatable workflow.
type Opportunity struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Difficulty        Difficulty `json:"difficulty"`
	EstimatedSavings  int        `json:"estimated_savings"`
	SetupTime         string     `json:"setup_time"`
	SoftwareInvolved  []string   `json:"software_involved"`
	WorkflowSteps     []string   `json:"workflow_steps"`
	Category          Category   `json:"category"`
	IntegrationExists bool       `json:"integration_exists"`
}

// Analysis is the detector's full output.
type Analysis struct {
	HasAutomationPlatform  bool          `json:"has_automation_platform"`
	DetectedPlatforms      []string      `json:"detected_platforms"`
	MissingPlatforms       []string      `json:"missing_platforms"`
	Opportunities          []Opportunity `json:"automation_opportunities"`
	PotentialAnnualSavings int           `json:"potential_annual_savings"`
	MaturityScore          int           `json:"automation_maturity_score"`
	CompanySize            string        `json:"company_size,omitempty"`
}

// categorize checks the combined function list against each keyword group in
// priority order.
func categorize(a, b []string) Category {
	all := make([]string, 0, len(a)+len(b))
	for _, f := range a {
		all = append(all, strings.ToLower(f))
	}
	for _, f := range b {
		all = append(all, strings.ToLower(f))
	}
	groups := []struct {
		category Category
		keywords []string
	}{
		{CategoryLeadManagement, []string{"crm", "lead", "sales"}},
		{CategoryCommunication, []string{"communication", "email", "message"}},
		{CategoryReporting, []string{"report", "analytic", "dashboard"}},
		{CategoryDocuments, []string{"document", "file", "content"}},
	}
	for _, g := range groups {
		for _, f := range all {
			for _, kw := range g.keywords {
				if strings.Contains(f, kw) {
					return g.category
				}
			}
		}
	}
	return CategoryDataSync
}

func describe(a, b string, category Category) string {
	switch category {
	case CategoryLeadManagement:
		return fmt.Sprintf("Sync leads and contacts between %s and %s. Automatically update records, assign tasks, and trigger follow-up actions.", a, b)
	case CategoryCommunication:
		return fmt.Sprintf("Streamline communication workflows between %s and %s. Auto-send notifications, sync messages, and coordinate responses.", a, b)
	case CategoryReporting:
		return fmt.Sprintf("Combine data from %s and %s for unified reporting. Generate automatic insights and dashboard updates.", a, b)
	case CategoryDocuments:
		return fmt.Sprintf("Sync documents and files between %s and %s. Automate approvals, version control, and access management.", a, b)
	default:
		return fmt.Sprintf("Automatically sync data between %s and %s. Eliminate manual data entry and ensure information consistency.", a, b)
	}
}

func workflowSteps(a, b string, category Category) []string {
	switch category {
	case CategoryLeadManagement:
		return []string{
			fmt.Sprintf("New lead enters %s", a),
			fmt.Sprintf("Automatically create contact in %s", b),
			"Sync lead scoring and status updates",
			"Trigger follow-up tasks and reminders",
		}
	case CategoryCommunication:
		return []string{
			fmt.Sprintf("Message received in %s", a),
			fmt.Sprintf("Notification sent via %s", b),
			"Route to appropriate team member",
			"Track response and follow-up",
		}
	default:
		return []string{
			fmt.Sprintf("Connect %s and %s", a, b),
			"Map data fields between systems",
			"Configure sync settings",
			"Test automation workflow",
		}
	}
}

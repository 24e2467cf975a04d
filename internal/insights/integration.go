package insights

import (
	"context"
	"fmt"
	"strings"

	"advisorpilot/internal/llm"
)

// IntegrationRequest describes the company behind an integration roadmap.
type IntegrationRequest struct {
	SelectedSoftware []string `json:"selectedSoftware"`
	Company          string   `json:"company"`
	EmployeeCount    int      `json:"employeeCount"`
	CompanySize      string   `json:"companySize"`
}

// Workflow is one recommended automation.
type Workflow struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	SoftwareInvolved   []string `json:"software_involved"`
	AutomationType     string   `json:"automation_type"`
	Difficulty         string   `json:"difficulty"`
	EstimatedSavings   int      `json:"estimated_savings"`
	ImplementationTime string   `json:"implementation_time"`
	StepByStep         []string `json:"step_by_step"`
	ROITimeline        string   `json:"roi_timeline"`
}

// Phase is one step of the implementation roadmap.
type Phase struct {
	Phase           string   `json:"phase"`
	Duration        string   `json:"duration"`
	FocusArea       string   `json:"focus_area"`
	KeyDeliverables []string `json:"key_deliverables"`
	EstimatedCost   string   `json:"estimated_cost"`
	ExpectedROI     string   `json:"expected_roi"`
}

// CostBenefit summarises the economics of the roadmap.
type CostBenefit struct {
	TotalPotentialSavings      int    `json:"total_potential_savings"`
	ImplementationCostEstimate string `json:"implementation_cost_estimate"`
	PaybackPeriod              string `json:"payback_period"`
	RiskAssessment             string `json:"risk_assessment"`
}

// IntegrationAnalysis is the full integration roadmap report.
type IntegrationAnalysis struct {
	ExecutiveSummary      string      `json:"executive_summary"`
	IntegrationScore      int         `json:"integration_score"`
	AutomationReadiness   string      `json:"automation_readiness"`
	RecommendedWorkflows  []Workflow  `json:"recommended_workflows"`
	ImplementationRoadmap []Phase     `json:"implementation_roadmap"`
	CostBenefitAnalysis   CostBenefit `json:"cost_benefit_analysis"`
	NextSteps             []string    `json:"next_steps"`
	Source                string      `json:"source"`
}

// integrationReply mirrors IntegrationAnalysis with every field optional so
// that absent keys can be told apart from zero values.
type integrationReply struct {
	ExecutiveSummary      *string      `json:"executive_summary"`
	IntegrationScore      *int         `json:"integration_score"`
	AutomationReadiness   *string      `json:"automation_readiness"`
	RecommendedWorkflows  []Workflow   `json:"recommended_workflows"`
	ImplementationRoadmap []Phase      `json:"implementation_roadmap"`
	CostBenefitAnalysis   *CostBenefit `json:"cost_benefit_analysis"`
	NextSteps             []string     `json:"next_steps"`
}

// AnalyzeIntegration produces the roadmap report for the selected stack.
func (s *Service) AnalyzeIntegration(ctx context.Context, req IntegrationRequest) (IntegrationAnalysis, error) {
	if len(req.SelectedSoftware) == 0 {
		return IntegrationAnalysis{}, fmt.Errorf("%w: selectedSoftware must not be empty", ErrInvalidRequest)
	}
	res := execute[integrationReply](ctx, s, llm.Request{
		Name:        "integration_analysis",
		System:      "You are an expert technology integration consultant specializing in business automation and API integrations. Always respond with valid JSON matching the requested format.",
		Prompt:      s.integrationPrompt(req),
		Temperature: 0.7,
		MaxTokens:   3000,
		JSON:        true,
	})
	if !res.Ok() {
		return integrationFallback(), nil
	}
	return withIntegrationDefaults(res.Value), nil
}

// withIntegrationDefaults fills each absent or empty field independently.
func withIntegrationDefaults(r integrationReply) IntegrationAnalysis {
	out := IntegrationAnalysis{
		ExecutiveSummary:      "Analysis generated successfully.",
		IntegrationScore:      75,
		AutomationReadiness:   "Medium",
		RecommendedWorkflows:  r.RecommendedWorkflows,
		ImplementationRoadmap: r.ImplementationRoadmap,
		CostBenefitAnalysis: CostBenefit{
			TotalPotentialSavings:      50000,
			ImplementationCostEstimate: "$10,000 - $25,000",
			PaybackPeriod:              "3-6 months",
			RiskAssessment:             "Low to moderate risk with high potential reward",
		},
		NextSteps: r.NextSteps,
		Source:    SourceLLM,
	}
	if r.ExecutiveSummary != nil && *r.ExecutiveSummary != "" {
		out.ExecutiveSummary = *r.ExecutiveSummary
	}
	if r.IntegrationScore != nil && *r.IntegrationScore != 0 {
		out.IntegrationScore = max(0, min(100, *r.IntegrationScore))
	}
	if r.AutomationReadiness != nil && *r.AutomationReadiness != "" {
		out.AutomationReadiness = *r.AutomationReadiness
	}
	if r.CostBenefitAnalysis != nil {
		out.CostBenefitAnalysis = *r.CostBenefitAnalysis
	}
	if out.RecommendedWorkflows == nil {
		out.RecommendedWorkflows = []Workflow{}
	}
	if out.ImplementationRoadmap == nil {
		out.ImplementationRoadmap = []Phase{}
	}
	if out.NextSteps == nil {
		out.NextSteps = []string{
			"Contact integration specialist",
			"Assess current workflow pain points",
			"Begin with highest-ROI automation",
		}
	}
	return out
}

func integrationFallback() IntegrationAnalysis {
	return IntegrationAnalysis{
		ExecutiveSummary:      "Your software stack shows strong automation potential. Multiple integration opportunities identified with significant ROI potential.",
		IntegrationScore:      75,
		AutomationReadiness:   "High",
		RecommendedWorkflows:  []Workflow{},
		ImplementationRoadmap: []Phase{},
		CostBenefitAnalysis: CostBenefit{
			TotalPotentialSavings:      50000,
			ImplementationCostEstimate: "$10,000 - $25,000",
			PaybackPeriod:              "4-6 months",
			RiskAssessment:             "Low risk with proven automation platforms",
		},
		NextSteps: []string{
			"Schedule integration assessment call",
			"Identify highest-priority workflow automations",
			"Begin with Zapier/Make platform evaluation",
		},
		Source: SourceFallback,
	}
}

// softwareBlock renders catalog detail for each resolvable product.
func (s *Service) softwareBlock(selected []string) string {
	var b strings.Builder
	for _, raw := range selected {
		_, profile, ok := s.catalog.ResolvedProfile(raw)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		partners := profile.IntegratesWith
		shown := partners[:min(8, len(partners))]
		more := ""
		if len(partners) > 8 {
			more = fmt.Sprintf(" (+%d more)", len(partners)-8)
		}
		fmt.Fprintf(&b, "- %s\n    Functions: %s\n    Current Integrations Available: %s%s\n    Industries: %s",
			raw,
			strings.Join(profile.MainFunctions, ", "),
			strings.Join(shown, ", "), more,
			strings.Join(profile.BestUsedFor, ", "))
	}
	return b.String()
}

package insights

import (
	"fmt"
	"strings"

	"advisorpilot/internal/catalog"
)

func list(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func stackPrompt(req StackRequest) string {
	return fmt.Sprintf(`You are an enterprise software integration expert. Analyze this business software stack:

Selected Software: %s
Custom Software: %s
Industry: %s
Pain Points: %s

Respond with a JSON object containing:

1. "hasVoIP": boolean. Do they already have a VoIP/cloud phone system?
2. "voipProvider": string. If they have VoIP, which provider?
3. "missingIntegrations": array of strings. Integration opportunities between their current software.
4. "customSoftwareInsights": array. For any custom or unknown software, categorize it and suggest integrations.
5. "contextualRecommendations": array of strings. Recommendations that consider what they already have.

Format each customSoftwareInsight as:
{
  "softwareName": "Custom CRM",
  "category": "Customer Relationship Management",
  "suggestedIntegrations": ["Email marketing tools", "Accounting software"],
  "industryRelevance": "High - CRMs are essential for insurance agencies"
}

Be specific about integration opportunities and avoid recommending what they already have.`,
		list(req.SelectedSoftware), list(req.CustomSoftware), req.Industry, list(req.PainPoints))
}

func customSoftwarePrompt(name, industry string, stack []string) string {
	return fmt.Sprintf(`Analyze this custom or unknown software: %q

Industry Context: %s
Existing Software Stack: %s

Determine:
1. What category of software this likely is
2. What it probably integrates with
3. How relevant it is to the %s industry
4. Specific integration opportunities with their existing stack

Respond with a JSON object:
{
  "softwareName": %q,
  "category": "Best guess category",
  "suggestedIntegrations": ["Specific software from their stack or common tools"],
  "industryRelevance": "Explanation of relevance to %s"
}`, name, industry, list(stack), industry, name, industry)
}

func contextualPrompt(analysis StackAnalysis, industry, companySize string) string {
	voip := fmt.Sprintf("%t", analysis.HasVoIP)
	if analysis.VoIPProvider != "" {
		voip += " (" + analysis.VoIPProvider + ")"
	}
	custom := make([]string, 0, len(analysis.CustomSoftwareInsights))
	for _, c := range analysis.CustomSoftwareInsights {
		custom = append(custom, c.SoftwareName)
	}
	if companySize == "" {
		companySize = "unknown"
	}
	return fmt.Sprintf(`Based on this software analysis, generate 3-5 specific, actionable recommendations:

Industry: %s
Company Size: %s
Has VoIP: %s
Custom Software: %s

Guidelines:
- If they have VoIP, focus on integrations, not VoIP upgrades
- Be specific about their actual software stack
- Prioritize high-impact, low-effort wins
- Consider their industry needs
- Avoid generic advice

Respond with a JSON object: {"recommendations": ["Specific recommendation 1", "Specific recommendation 2"]}`,
		industry, companySize, voip, list(custom))
}

func (s *Service) integrationPrompt(req IntegrationRequest) string {
	company := req.Company
	if company == "" {
		company = "Undisclosed"
	}
	return fmt.Sprintf(`Analyze this %s-employee company's software stack and provide detailed automation recommendations.

COMPANY PROFILE:
- Company: %s
- Size: %d employees (%s)
- Industry focus: based on software selection

CURRENT SOFTWARE STACK:
%s

Respond with a JSON object with these keys:
- "executive_summary": 2-3 sentences on overall integration potential, key opportunity areas and expected business impact
- "integration_score": 0-100 rating of current integration maturity
- "automation_readiness": one of Low, Medium, High, Enterprise
- "recommended_workflows": 3-5 objects with id, title, description, software_involved, automation_type (Zapier, Make, Native API, Custom Integration), difficulty (Easy, Medium, Advanced), estimated_savings (annual dollars as a number), implementation_time, step_by_step (4-5 steps), roi_timeline
- "implementation_roadmap": 3-4 objects with phase, duration, focus_area, key_deliverables (3-4 items), estimated_cost, expected_roi
- "cost_benefit_analysis": object with total_potential_savings (number), implementation_cost_estimate, payback_period, risk_assessment
- "next_steps": 3-5 immediate action items

Focus on actionable recommendations with specific dollar amounts and timeframes. Keep estimates realistic for the company size. Prioritize high-impact, low-effort wins first.`,
		req.CompanySize, company, req.EmployeeCount, req.CompanySize, s.softwareBlock(req.SelectedSoftware))
}

func industryPrompt(industry string, software []catalog.IndustrySoftware, frictions []string) string {
	var b strings.Builder
	for _, sw := range software {
		fmt.Fprintf(&b, "- %s (%s; %d known integrations)\n", sw.Name, list(sw.MainFunctions), sw.IntegrationCount)
	}
	return fmt.Sprintf(`Write a brief (under 150 words, plain prose, no markdown) on the software landscape of the %s industry for a small or mid-sized firm.

Common software:
%s
Known pain points: %s

Name the systems that act as integration hubs and the automations that remove the listed pain points.`,
		industry, b.String(), list(frictions))
}

func pairPrompt(a, b string) string {
	return fmt.Sprintf(`Check if %[1]s and %[2]s can integrate via Zapier or similar automation platforms.

Respond with a JSON object:
{
  "integrations": [
    {"app1": %[1]q, "app2": %[2]q, "description": "Sync contacts from %[1]s to %[2]s", "popularity": 85}
  ]
}

popularity is 0-100. If no direct integration exists, suggest workflows through common middle-ground apps like Google Sheets, Webhooks, or Email.`, a, b)
}

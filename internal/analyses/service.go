// Package analyses assembles the stack analysis: the realised current stack,
// integration opportunities and the ranked recommendation list.
package analyses

import (
	"context"
	"fmt"

	"advisorpilot/internal/analyses/opportunities"
	"advisorpilot/internal/analyses/recommendations"
	"advisorpilot/internal/catalog"
	"advisorpilot/internal/insights"
	"advisorpilot/internal/shared/metrics"
	"advisorpilot/internal/shared/telemetry"
)

const defaultFunction = "Business Software"

// Advisor supplies optional model-generated recommendations.
type Advisor interface {
	RecommendForStack(ctx context.Context, industry, companySize string, selected []string) ([]string, string)
}

// Service runs analyses against a catalog.
type Service struct {
	Catalog *catalog.Store
	Advisor Advisor
	Log     telemetry.Logger
}

// NewService wires a service. advisor may be nil, which disables insights.
func NewService(cat *catalog.Store, advisor Advisor, log telemetry.Logger) *Service {
	if log == nil {
		log = telemetry.NewNoOpLogger()
	}
	return &Service{Catalog: cat, Advisor: advisor, Log: log}
}

// Analyze runs the finder and the recommendation generator over the selection.
// Unknown products and industries degrade to defaults; the deterministic part
// never fails.
func (s *Service) Analyze(ctx context.Context, req Request) (Result, error) {
	stack := s.CurrentStack(req.SelectedSoftware)
	opps := opportunities.Find(s.Catalog, req.SelectedSoftware, req.Statuses)
	recs := recommendations.Generate(recommendations.Input{
		Software:      stack,
		CompanySize:   req.CompanySize,
		Opportunities: opps,
		Statuses:      req.Statuses,
	})
	metrics.IncAnalysis("stack")

	res := Result{
		Industry:                 req.Industry,
		CurrentStack:             stack,
		IntegrationOpportunities: opps,
	}

	if req.IncludeInsights && s.Advisor != nil && req.Industry != "" {
		texts, source := s.Advisor.RecommendForStack(ctx, req.Industry, req.CompanySize, req.SelectedSoftware)
		res.InsightsSource = source
		if source == insights.SourceLLM {
			recs = append(recs, insightRecommendations(texts)...)
			recommendations.Sort(recs)
		}
	}

	res.Recommendations = recs
	res.TotalSavings = recommendations.TotalSavings(recs)
	s.Log.Info("stack analysed", map[string]any{
		"industry":        req.Industry,
		"company_size":    req.CompanySize,
		"software_count":  len(req.SelectedSoftware),
		"recommendations": len(recs),
		"total_savings":   res.TotalSavings,
	})
	return res, nil
}

// CurrentStack realises each selected name against the catalog. The name is
// kept as given; unresolved products get a generic function and no partners.
func (s *Service) CurrentStack(selected []string) []catalog.SoftwareProfile {
	stack := make([]catalog.SoftwareProfile, 0, len(selected))
	for _, raw := range selected {
		_, profile, ok := s.Catalog.ResolvedProfile(raw)
		if !ok {
			profile = catalog.SoftwareProfile{IntegratesWith: []string{}, BestUsedFor: []string{}}
		}
		profile.Name = raw
		if len(profile.MainFunctions) == 0 {
			profile.MainFunctions = []string{defaultFunction}
		}
		stack = append(stack, profile)
	}
	return stack
}

// Matrix builds the integration matrix for the selection.
func (s *Service) Matrix(selected []string) map[string]opportunities.MatrixEntry {
	metrics.IncAnalysis("matrix")
	return opportunities.Matrix(s.Catalog, selected)
}

// Resolve looks a free-text name up in the catalog.
func (s *Service) Resolve(name string) Resolution {
	key, profile, ok := s.Catalog.ResolvedProfile(name)
	if !ok {
		return Resolution{Input: name}
	}
	return Resolution{Input: name, Found: true, Resolved: key, Profile: &profile}
}

func insightRecommendations(texts []string) []recommendations.Recommendation {
	out := make([]recommendations.Recommendation, 0, len(texts))
	for i, text := range texts {
		out = append(out, recommendations.Recommendation{
			ID:               fmt.Sprintf("ai-insight-%d", i),
			Title:            "AI Insight",
			Description:      text,
			Priority:         recommendations.PriorityLow,
			Category:         recommendations.CategoryAIInsight,
			EstimatedSavings: 0,
			SoftwareInvolved: []string{},
		})
	}
	return out
}

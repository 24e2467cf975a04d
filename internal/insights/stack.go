package insights

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"advisorpilot/internal/llm"
)

var voipProviders = []string{"RingCentral", "Zoom Phone", "8x8", "Vonage", "Dialpad"}

// StackRequest describes the stack to analyse.
type StackRequest struct {
	SelectedSoftware []string `json:"selectedSoftware"`
	CustomSoftware   []string `json:"customSoftware"`
	Industry         string   `json:"industry"`
	PainPoints       []string `json:"painPoints"`
	CompanySize      string   `json:"companySize"`
}

// CustomSoftwareInsight categorises a product the catalog does not know.
type CustomSoftwareInsight struct {
	SoftwareName          string   `json:"softwareName"`
	Category              string   `json:"category"`
	SuggestedIntegrations []string `json:"suggestedIntegrations"`
	IndustryRelevance     string   `json:"industryRelevance"`
}

// StackAnalysis is the merged stack review.
type StackAnalysis struct {
	HasVoIP                   bool                    `json:"hasVoIP"`
	VoIPProvider              string                  `json:"voipProvider,omitempty"`
	MissingIntegrations       []string                `json:"missingIntegrations"`
	CustomSoftwareInsights    []CustomSoftwareInsight `json:"customSoftwareInsights"`
	ContextualRecommendations []string                `json:"contextualRecommendations"`
	Source                    string                  `json:"source"`
}

// AnalyzeStack runs the stack review, a categorisation per custom product and
// the contextual recommendations, then merges them.
func (s *Service) AnalyzeStack(ctx context.Context, req StackRequest) (StackAnalysis, error) {
	if strings.TrimSpace(req.Industry) == "" {
		return StackAnalysis{}, ErrIndustryRequired
	}

	res := execute[StackAnalysis](ctx, s, llm.Request{
		Name:        "stack_analysis",
		System:      "You are an expert software integration consultant. Always respond with valid JSON.",
		Prompt:      stackPrompt(req),
		Temperature: 0.3,
		MaxTokens:   2000,
		JSON:        true,
	})
	analysis := res.Value
	if !res.Ok() {
		analysis = stackFallback(req)
	}
	analysis.Source = sourceOf(res.Ok())
	analysis.MissingIntegrations = orEmpty(analysis.MissingIntegrations)
	analysis.ContextualRecommendations = orEmpty(analysis.ContextualRecommendations)
	if analysis.CustomSoftwareInsights == nil {
		analysis.CustomSoftwareInsights = []CustomSoftwareInsight{}
	}

	custom := make([]CustomSoftwareInsight, len(req.CustomSoftware))
	var wg sync.WaitGroup
	for i, name := range req.CustomSoftware {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			custom[i] = s.CategorizeCustom(ctx, name, req.Industry, req.SelectedSoftware)
		}(i, name)
	}
	wg.Wait()
	analysis.CustomSoftwareInsights = append(analysis.CustomSoftwareInsights, custom...)

	recs, _ := s.ContextualRecommendations(ctx, analysis, req.Industry, req.CompanySize)
	analysis.ContextualRecommendations = append(analysis.ContextualRecommendations, recs...)
	return analysis, nil
}

// CategorizeCustom guesses what an unknown product is and what it should
// connect to.
func (s *Service) CategorizeCustom(ctx context.Context, name, industry string, stack []string) CustomSoftwareInsight {
	res := execute[CustomSoftwareInsight](ctx, s, llm.Request{
		Name:        "custom_software",
		System:      "You are a software categorization expert. Always respond with valid JSON.",
		Prompt:      customSoftwarePrompt(name, industry, stack),
		Temperature: 0.3,
		MaxTokens:   800,
		JSON:        true,
	})
	if !res.Ok() {
		return CustomSoftwareInsight{
			SoftwareName:          name,
			Category:              "Business Software",
			SuggestedIntegrations: slices.Clone(stack[:min(3, len(stack))]),
			IndustryRelevance:     fmt.Sprintf("Requires manual analysis for %s industry", industry),
		}
	}
	out := res.Value
	if strings.TrimSpace(out.SoftwareName) == "" {
		out.SoftwareName = name
	}
	out.SuggestedIntegrations = orEmpty(out.SuggestedIntegrations)
	return out
}

type recommendationList struct {
	Recommendations []string `json:"recommendations"`
}

// ContextualRecommendations asks for 3-5 recommendations that account for
// what the stack already has.
func (s *Service) ContextualRecommendations(ctx context.Context, analysis StackAnalysis, industry, companySize string) ([]string, string) {
	res := execute[recommendationList](ctx, s, llm.Request{
		Name:        "contextual_recommendations",
		System:      "You are a business technology consultant. Always respond with valid JSON.",
		Prompt:      contextualPrompt(analysis, industry, companySize),
		Temperature: 0.4,
		MaxTokens:   1500,
		JSON:        true,
	})
	if !res.Ok() {
		return []string{"Enable AI analysis for personalized recommendations"}, SourceFallback
	}
	return orEmpty(res.Value.Recommendations), SourceLLM
}

func stackFallback(req StackRequest) StackAnalysis {
	out := StackAnalysis{
		MissingIntegrations:       []string{},
		CustomSoftwareInsights:    make([]CustomSoftwareInsight, 0, len(req.CustomSoftware)),
		ContextualRecommendations: []string{"Enable AI analysis with OpenAI API key"},
	}
	for _, sw := range req.SelectedSoftware {
		if slices.Contains(voipProviders, sw) {
			out.HasVoIP = true
			out.VoIPProvider = sw
			break
		}
	}
	for _, sw := range req.CustomSoftware {
		out.CustomSoftwareInsights = append(out.CustomSoftwareInsights, CustomSoftwareInsight{
			SoftwareName:          sw,
			Category:              "Unknown",
			SuggestedIntegrations: []string{"CRM", "Email", "Calendar"},
			IndustryRelevance:     "Requires analysis",
		})
	}
	return out
}

// RecommendForStack runs only the contextual recommendations for a selection,
// without the full stack review.
func (s *Service) RecommendForStack(ctx context.Context, industry, companySize string, selected []string) ([]string, string) {
	basis := stackFallback(StackRequest{SelectedSoftware: selected})
	return s.ContextualRecommendations(ctx, basis, industry, companySize)
}

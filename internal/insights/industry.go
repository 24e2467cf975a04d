package insights

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"advisorpilot/internal/catalog"
	"advisorpilot/internal/llm"
)

// IndustryBrief is a short narrative about an industry's software landscape.
type IndustryBrief struct {
	Industry string `json:"industry"`
	Summary  string `json:"summary"`
	Source   string `json:"source"`
}

// BriefIndustry writes the narrative for a catalog industry.
func (s *Service) BriefIndustry(ctx context.Context, industry string) (IndustryBrief, error) {
	if strings.TrimSpace(industry) == "" {
		return IndustryBrief{}, ErrIndustryRequired
	}
	if !slices.Contains(s.catalog.Industries(), industry) {
		return IndustryBrief{}, fmt.Errorf("%w: %s", ErrUnknownIndustry, industry)
	}

	software := s.catalog.SoftwareWithIntegrationCounts(industry)
	frictions := s.catalog.FrictionsForIndustry(industry)

	res := executeText(ctx, s, llm.Request{
		Name:        "industry_brief",
		System:      "You are a business technology analyst writing for small and mid-sized firms.",
		Prompt:      industryPrompt(industry, software, frictions),
		Temperature: 0.5,
		MaxTokens:   600,
	})
	if !res.Ok() {
		return IndustryBrief{Industry: industry, Summary: industryFallback(industry, software, frictions), Source: SourceFallback}, nil
	}
	return IndustryBrief{Industry: industry, Summary: res.Value, Source: SourceLLM}, nil
}

// industryFallback builds the brief from catalog data alone.
func industryFallback(industry string, software []catalog.IndustrySoftware, frictions []string) string {
	var b strings.Builder
	if len(software) == 0 {
		fmt.Fprintf(&b, "No reference software is catalogued for %s yet.", industry)
	} else {
		names := make([]string, 0, len(software))
		for _, sw := range software {
			names = append(names, sw.Name)
		}
		fmt.Fprintf(&b, "%s firms typically run %s.", industry, strings.Join(names, ", "))

		ranked := slices.Clone(software)
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].IntegrationCount > ranked[j].IntegrationCount
		})
		if top := ranked[0]; top.IntegrationCount > 0 {
			fmt.Fprintf(&b, " %s is the best connected, with %d known integrations, and is the natural hub for automation.", top.Name, top.IntegrationCount)
		}
	}
	if len(frictions) > 0 {
		fmt.Fprintf(&b, " Common friction points: %s.", strings.Join(frictions, "; "))
	}
	return b.String()
}

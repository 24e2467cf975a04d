package insights

import (
	"context"
	"fmt"
	"strings"

	"advisorpilot/internal/llm"
)

// PairIntegration is one way two apps can be connected.
type PairIntegration struct {
	App1        string `json:"app1"`
	App2        string `json:"app2"`
	Description string `json:"description"`
	Popularity  int    `json:"popularity"`
}

// PairLookup lists automation-platform integrations between two apps.
type PairLookup struct {
	Integrations []PairIntegration `json:"integrations"`
	Source       string            `json:"source"`
}

type pairReply struct {
	Integrations []PairIntegration `json:"integrations"`
}

// LookupPair asks which automation-platform workflows connect a and b.
func (s *Service) LookupPair(ctx context.Context, a, b string) (PairLookup, error) {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return PairLookup{}, fmt.Errorf("%w: both apps are required", ErrInvalidRequest)
	}
	res := execute[pairReply](ctx, s, llm.Request{
		Name:        "pair_lookup",
		System:      "You are a Zapier integration expert. Always respond with valid JSON.",
		Prompt:      pairPrompt(a, b),
		Temperature: 0.2,
		MaxTokens:   1000,
		JSON:        true,
	})
	if !res.Ok() {
		return PairLookup{Integrations: []PairIntegration{}, Source: SourceFallback}, nil
	}
	out := PairLookup{Integrations: res.Value.Integrations, Source: SourceLLM}
	if out.Integrations == nil {
		out.Integrations = []PairIntegration{}
	}
	for i := range out.Integrations {
		out.Integrations[i].Popularity = max(0, min(100, out.Integrations[i].Popularity))
	}
	return out, nil
}

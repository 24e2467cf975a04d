// Package insights produces the model-generated narrative around a software
// stack. Every operation degrades to a deterministic fallback when the model
// is unavailable or answers with something unparseable.
package insights

import (
	"context"
	"errors"
	"time"

	"advisorpilot/internal/catalog"
	"advisorpilot/internal/llm"
	"advisorpilot/internal/shared/metrics"
	"advisorpilot/internal/shared/telemetry"
)

// Source reports where a result came from.
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

var (
	ErrIndustryRequired = errors.New("industry is required")
	ErrUnknownIndustry  = errors.New("unknown industry")
	ErrInvalidRequest   = errors.New("invalid request")
)

// Catalog is the reference data the prompts draw on.
type Catalog interface {
	Industries() []string
	ResolvedProfile(raw string) (string, catalog.SoftwareProfile, bool)
	SoftwareWithIntegrationCounts(industry string) []catalog.IndustrySoftware
	FrictionsForIndustry(industry string) []string
}

// Service runs the insight prompts.
type Service struct {
	llm     llm.Client
	catalog Catalog
	log     telemetry.Logger
}

// NewService wires a service. A nil client behaves as an unconfigured provider.
func NewService(client llm.Client, cat Catalog, log telemetry.Logger) *Service {
	if client == nil {
		client = llm.PlaceholderClient{}
	}
	if log == nil {
		log = telemetry.NewNoOpLogger()
	}
	return &Service{llm: client, catalog: cat, log: log}
}

// execute completes one JSON prompt and records its outcome.
func execute[T any](ctx context.Context, s *Service, req llm.Request) llm.Result[T] {
	return observe(s, req, func() llm.Result[T] { return llm.Run[T](ctx, s.llm, req) })
}

func executeText(ctx context.Context, s *Service, req llm.Request) llm.Result[string] {
	return observe(s, req, func() llm.Result[string] { return llm.RunText(ctx, s.llm, req) })
}

// observe times fn and counts its outcome. Failures are logged at warn level;
// callers substitute their fallback.
func observe[T any](s *Service, req llm.Request, fn func() llm.Result[T]) llm.Result[T] {
	start := time.Now()
	res := fn()
	outcome := "ok"
	if !res.Ok() {
		outcome = "error"
		if errors.Is(res.Err, llm.ErrNotConfigured) {
			outcome = "not_configured"
		}
		s.log.Warn("llm prompt failed, using fallback", map[string]any{
			"prompt": req.Name,
			"err":    res.Err,
		})
		metrics.IncFallback(req.Name)
	}
	metrics.ObserveLLM(req.Name, outcome, time.Since(start))
	return res
}

func sourceOf(ok bool) string {
	if ok {
		return SourceLLM
	}
	return SourceFallback
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

package health

import (
	"context"
	"sort"
	"time"
)

const (
	StatusUp       = "up"
	StatusDown     = "down"
	StatusDisabled = "disabled"
)

// Checker probes one dependency.
type Checker func(ctx context.Context) error

// Report is the health payload.
type Report struct {
	OK           bool              `json:"ok"`
	Dependencies map[string]string `json:"dependencies"`
	LLM          string            `json:"llm"`
}

// Service encapsulates health-related checks.
type Service struct {
	checks   map[string]Checker
	disabled []string
	llm      string
	timeout  time.Duration
}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{checks: map[string]Checker{}, llm: StatusDisabled, timeout: 2 * time.Second}
}

// Register adds a dependency probe. A nil checker marks the dependency as
// disabled, which does not fail the overall status.
func (s *Service) Register(name string, check Checker) *Service {
	if check == nil {
		s.disabled = append(s.disabled, name)
		return s
	}
	s.checks[name] = check
	return s
}

// WithLLM records which model provider is active.
func (s *Service) WithLLM(provider string) *Service {
	if provider != "" {
		s.llm = provider
	}
	return s
}

// Status runs every probe and reports the aggregate.
func (s *Service) Status(ctx context.Context) Report {
	report := Report{OK: true, Dependencies: map[string]string{}, LLM: s.llm}
	for _, name := range s.disabled {
		report.Dependencies[name] = StatusDisabled
	}
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err := s.checks[name](checkCtx)
		cancel()
		if err != nil {
			report.OK = false
			report.Dependencies[name] = StatusDown
			continue
		}
		report.Dependencies[name] = StatusUp
	}
	return report
}

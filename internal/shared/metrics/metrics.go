package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_http_requests_total",
			Help: "HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_analyses_total",
			Help: "Deterministic analyses run, by kind",
		},
		[]string{"kind"},
	)

	LLMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_llm_requests_total",
			Help: "LLM prompt executions by prompt and outcome",
		},
		[]string{"prompt", "outcome"},
	)

	LLMFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_llm_fallbacks_total",
			Help: "Times a static fallback replaced LLM output",
		},
		[]string{"prompt"},
	)

	LLMDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_llm_duration_seconds",
			Help:    "LLM completion latency in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"prompt"},
	)

	LeadsCapturedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_leads_captured_total",
			Help: "Leads captured by company size bracket",
		},
		[]string{"company_size"},
	)
)

// IncAnalysis counts one deterministic analysis of the given kind.
func IncAnalysis(kind string) {
	AnalysesTotal.WithLabelValues(kind).Inc()
}

// ObserveLLM records one prompt execution.
func ObserveLLM(prompt, outcome string, elapsed time.Duration) {
	LLMRequestsTotal.WithLabelValues(prompt, outcome).Inc()
	LLMDuration.WithLabelValues(prompt).Observe(elapsed.Seconds())
}

// IncFallback counts a fallback substitution.
func IncFallback(prompt string) {
	LLMFallbacksTotal.WithLabelValues(prompt).Inc()
}

// IncLead counts a captured lead.
func IncLead(companySize string) {
	LeadsCapturedTotal.WithLabelValues(companySize).Inc()
}

// Handler exposes the default registry in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

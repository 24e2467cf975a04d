package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advisorpilot/internal/analyses"
	"advisorpilot/internal/automation"
	"advisorpilot/internal/insights"
	"advisorpilot/internal/leads"
	"advisorpilot/internal/roi"
	"advisorpilot/internal/services/health"
	"advisorpilot/internal/shared/config"
	"advisorpilot/internal/shared/metrics"
	"advisorpilot/internal/shared/server/middleware"
	"advisorpilot/internal/shared/server/respond"
)

// RouterDeps carries the handlers the API exposes. Nil handlers are skipped.
type RouterDeps struct {
	Config            config.Config
	Health            *health.Service
	AnalysisHandler   *analyses.Handler
	ROIHandler        *roi.Handler
	AutomationHandler *automation.Handler
	InsightsHandler   *insights.Handler
	LeadsHandler      *leads.Handler
	RateLimiter       *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	cfg := deps.Config
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		GroupFor: middleware.GroupByPrefix(middleware.LLMRateLimitGroup, "/api/v1/insights"),
		Limiter:  deps.RateLimiter,
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":                    {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
			middleware.LLMRateLimitGroup: {Rate: cfg.LLMRateLimitRPS, Burst: cfg.LLMRateLimitBurst},
		},
	}))

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}
	api.GET("/health", func(c *gin.Context) {
		report := healthSvc.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})

	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.ROIHandler != nil {
		deps.ROIHandler.RegisterRoutes(api)
	}
	if deps.AutomationHandler != nil {
		deps.AutomationHandler.RegisterRoutes(api)
	}
	if deps.InsightsHandler != nil {
		deps.InsightsHandler.RegisterRoutes(api)
	}
	if deps.LeadsHandler != nil {
		deps.LeadsHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

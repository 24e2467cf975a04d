package insights

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"advisorpilot/internal/shared/server/respond"
	"advisorpilot/internal/shared/validation"
)

var (
	stackSchema = validation.MustCompile(`{
		"type": "object",
		"properties": {
			"selectedSoftware": {"type": "array", "items": {"type": "string"}},
			"customSoftware": {"type": "array", "items": {"type": "string"}, "maxItems": 10},
			"industry": {"type": "string"},
			"painPoints": {"type": "array", "items": {"type": "string"}},
			"companySize": {"type": "string"}
		}
	}`)
	integrationSchema = validation.MustCompile(`{
		"type": "object",
		"required": ["selectedSoftware"],
		"properties": {
			"selectedSoftware": {"type": "array", "items": {"type": "string"}, "minItems": 1},
			"company": {"type": "string"},
			"employeeCount": {"type": "integer", "minimum": 0},
			"companySize": {"type": "string"}
		}
	}`)
	industrySchema = validation.MustCompile(`{
		"type": "object",
		"required": ["industry"],
		"properties": {"industry": {"type": "string", "minLength": 1}}
	}`)
	pairSchema = validation.MustCompile(`{
		"type": "object",
		"required": ["app1", "app2"],
		"properties": {
			"app1": {"type": "string", "minLength": 1},
			"app2": {"type": "string", "minLength": 1}
		}
	}`)
)

// Handler wires HTTP handlers to the insights service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches insight routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/insights/stack", h.stack)
	rg.POST("/insights/integration", h.integration)
	rg.POST("/insights/industry", h.industry)
	rg.POST("/insights/pair", h.pair)
}

func decode(c *gin.Context, schema *validation.Schema, dst any) bool {
	raw, err := c.GetRawData()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read request body", nil)
		return false
	}
	if err := schema.Decode(raw, dst); err != nil {
		respond.Invalid(c, err)
		return false
	}
	return true
}

func (h *Handler) stack(c *gin.Context) {
	var req StackRequest
	if !decode(c, stackSchema, &req) {
		return
	}
	out, err := h.Svc.AnalyzeStack(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("insightsSource", out.Source)
	respond.OK(c, gin.H{"success": true, "data": out})
}

func (h *Handler) integration(c *gin.Context) {
	var req IntegrationRequest
	if !decode(c, integrationSchema, &req) {
		return
	}
	out, err := h.Svc.AnalyzeIntegration(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("insightsSource", out.Source)
	respond.OK(c, out)
}

func (h *Handler) industry(c *gin.Context) {
	var req struct {
		Industry string `json:"industry"`
	}
	if !decode(c, industrySchema, &req) {
		return
	}
	out, err := h.Svc.BriefIndustry(c.Request.Context(), req.Industry)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("insightsSource", out.Source)
	respond.OK(c, out)
}

func (h *Handler) pair(c *gin.Context) {
	var req struct {
		App1 string `json:"app1"`
		App2 string `json:"app2"`
	}
	if !decode(c, pairSchema, &req) {
		return
	}
	out, err := h.Svc.LookupPair(c.Request.Context(), req.App1, req.App2)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("insightsSource", out.Source)
	respond.OK(c, out)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrIndustryRequired):
		respond.Error(c, http.StatusBadRequest, "validation_error", "Industry is required", []map[string]string{
			{"field": "industry", "issue": "required"},
		})
	case errors.Is(err, ErrUnknownIndustry):
		respond.Error(c, http.StatusNotFound, "not_found", "industry not found", nil)
	case errors.Is(err, ErrInvalidRequest):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "insight generation failed", nil)
	}
}

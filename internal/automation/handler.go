package automation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advisorpilot/internal/shared/metrics"
	"advisorpilot/internal/shared/server/respond"
	"advisorpilot/internal/shared/validation"
)

var requestSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["selectedSoftware"],
	"properties": {
		"selectedSoftware": {"type": "array", "items": {"type": "string"}},
		"companySize": {"type": "string"},
		"employeeCount": {"type": ["integer", "null"], "minimum": 0}
	}
}`)

// Request asks for an automation analysis.
type Request struct {
	SelectedSoftware []string `json:"selectedSoftware"`
	CompanySize      string   `json:"companySize"`
	EmployeeCount    *int     `json:"employeeCount"`
}

// Handler serves the automation detector.
type Handler struct {
	Detector *Detector
}

// NewHandler constructs a Handler.
func NewHandler(d *Detector) *Handler {
	return &Handler{Detector: d}
}

// RegisterRoutes attaches the automation route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/automation", h.detect)
}

func (h *Handler) detect(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read request body", nil)
		return
	}
	var req Request
	if err := requestSchema.Decode(raw, &req); err != nil {
		respond.Invalid(c, err)
		return
	}
	metrics.IncAnalysis("automation")
	respond.OK(c, h.Detector.Detect(req.SelectedSoftware, req.CompanySize, req.EmployeeCount))
}

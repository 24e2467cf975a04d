package roi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advisorpilot/internal/shared/metrics"
	"advisorpilot/internal/shared/server/respond"
	"advisorpilot/internal/shared/validation"
)

// Slider bounds for the weekly-hours inputs.
var inputSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["weeklyHours"],
	"properties": {
		"weeklyHours": {
			"type": "object",
			"required": ["manual", "dataEntry", "reporting"],
			"properties": {
				"manual": {"type": "integer", "minimum": 0, "maximum": 30},
				"dataEntry": {"type": "integer", "minimum": 0, "maximum": 40},
				"reporting": {"type": "integer", "minimum": 0, "maximum": 20}
			}
		},
		"employeeCount": {"type": ["integer", "null"], "minimum": 0},
		"selectedSoftwareCount": {"type": "integer", "minimum": 0}
	}
}`)

// Handler serves the ROI calculator.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches the ROI route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/roi", h.score)
}

func (h *Handler) score(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read request body", nil)
		return
	}
	var in Input
	if err := inputSchema.Decode(raw, &in); err != nil {
		respond.Invalid(c, err)
		return
	}
	metrics.IncAnalysis("roi")
	respond.OK(c, Score(in))
}

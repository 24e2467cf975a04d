package analyses

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"advisorpilot/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches catalog and analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/industries", h.listIndustries)
	rg.GET("/industries/:industry/software", h.industrySoftware)
	rg.GET("/industries/:industry/frictions", h.industryFrictions)
	rg.GET("/software/resolve", h.resolve)
	rg.POST("/analyze", h.analyze)
	rg.POST("/integrations/matrix", h.matrix)
}

func (h *Handler) listIndustries(c *gin.Context) {
	respond.OK(c, gin.H{"industries": h.Svc.Catalog.Industries()})
}

func (h *Handler) industrySoftware(c *gin.Context) {
	industry := c.Param("industry")
	respond.OK(c, gin.H{
		"industry": industry,
		"software": h.Svc.Catalog.SoftwareWithIntegrationCounts(industry),
	})
}

func (h *Handler) industryFrictions(c *gin.Context) {
	industry := c.Param("industry")
	respond.OK(c, gin.H{
		"industry":  industry,
		"frictions": h.Svc.Catalog.FrictionsForIndustry(industry),
	})
}

func (h *Handler) resolve(c *gin.Context) {
	name := c.Query("name")
	if strings.TrimSpace(name) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", []map[string]string{
			{"field": "name", "issue": "required"},
		})
		return
	}
	respond.OK(c, h.Svc.Resolve(name))
}

func (h *Handler) analyze(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read request body", nil)
		return
	}
	var req Request
	if err := analyzeSchema.Decode(raw, &req); err != nil {
		respond.Invalid(c, err)
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze stack", nil)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) matrix(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read request body", nil)
		return
	}
	var req MatrixRequest
	if err := matrixSchema.Decode(raw, &req); err != nil {
		respond.Invalid(c, err)
		return
	}
	respond.OK(c, gin.H{"matrix": h.Svc.Matrix(req.SelectedSoftware)})
}

package leads

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"advisorpilot/internal/shared/server/respond"
	"advisorpilot/internal/shared/validation"
)

var captureSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["name", "email", "company", "companySize"],
	"properties": {
		"name": {"type": "string", "minLength": 1, "maxLength": 200},
		"email": {"type": "string", "format": "email", "maxLength": 320},
		"company": {"type": "string", "minLength": 1, "maxLength": 200},
		"phone": {"type": "string", "maxLength": 40},
		"companySize": {"type": "string", "enum": ["1-50", "51-200", "200+"]},
		"employeeCount": {"type": ["integer", "null"], "minimum": 0},
		"industry": {"type": "string", "maxLength": 200}
	}
}`)

// Handler serves lead capture.
type Handler struct {
	Svc *Service
	// ReadGuard runs before GET /leads/:id when set.
	ReadGuard gin.HandlerFunc
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches lead routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/leads", h.capture)
	if h.ReadGuard != nil {
		rg.GET("/leads/:id", h.ReadGuard, h.get)
		return
	}
	rg.GET("/leads/:id", h.get)
}

func (h *Handler) capture(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read request body", nil)
		return
	}
	var in CaptureInput
	if err := captureSchema.Decode(raw, &in); err != nil {
		respond.Invalid(c, err)
		return
	}
	lead, err := h.Svc.Capture(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to capture lead", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, lead)
}

func (h *Handler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "id must be a UUID", nil)
		return
	}
	lead, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "lead not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load lead", nil)
		return
	}
	respond.OK(c, lead)
}

package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"advisorpilot/internal/shared/telemetry"
	"advisorpilot/internal/shared/validation"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if status >= http.StatusInternalServerError {
		telemetry.Error("http.error", fields)
	} else {
		telemetry.Warn("http.error", fields)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Invalid maps a body decoding failure to a 400 validation_error, carrying
// per-field details when the schema rejected the body.
func Invalid(c *gin.Context, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		Error(c, http.StatusBadRequest, "validation_error", "request body failed validation", verr.Fields)
		return
	}
	Error(c, http.StatusBadRequest, "validation_error", "request body must be valid JSON", nil)
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"advisorpilot/internal/shared/auth"
	"advisorpilot/internal/shared/server/respond"
)

const operatorKey = "operator"

// RequireRole guards a route with a bearer token carrying role.
func RequireRole(signer *auth.Signer, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(header, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		claims, err := signer.RequireRole(token, role)
		if err != nil {
			if errors.Is(err, auth.ErrForbidden) {
				respond.Error(c, http.StatusForbidden, "forbidden", "insufficient permissions", nil)
				return
			}
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		c.Set(operatorKey, claims.Subject)
		c.Next()
	}
}

// OperatorFromContext returns the subject stored by RequireRole.
func OperatorFromContext(c *gin.Context) string {
	return c.GetString(operatorKey)
}

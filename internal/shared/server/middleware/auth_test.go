package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"advisorpilot/internal/shared/auth"
)

func setupGuardedRouter(signer *auth.Signer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/leads/:id", RequireRole(signer, auth.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, OperatorFromContext(c))
	})
	return r
}

func TestRequireRole(t *testing.T) {
	signer := auth.NewSigner("test-secret")
	admin, err := signer.Sign("ops@example.com", auth.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	viewer, err := signer.Sign("viewer@example.com", "viewer", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	r := setupGuardedRouter(signer)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"wrong role", "Bearer " + viewer, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/leads/123", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, resp.Code)
		}
		if tc.want == http.StatusOK && resp.Body.String() != "ops@example.com" {
			t.Fatalf("expected operator in context, got %q", resp.Body.String())
		}
	}
}

package leads

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func setupLeadRouter(t *testing.T) (*gin.Engine, *recordingMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mailer := &recordingMailer{}
	router := gin.New()
	NewHandler(newTestService(t, mailer, nil)).RegisterRoutes(router.Group("/api/v1"))
	return router, mailer
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCaptureLeadCreated(t *testing.T) {
	router, mailer := setupLeadRouter(t)

	resp := doRequest(router, http.MethodPost, "/api/v1/leads",
		`{"name":"Dana Reyes","email":"dana@acme.test","company":"Acme","companySize":"1-50","employeeCount":12}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var lead Lead
	if err := json.NewDecoder(resp.Body).Decode(&lead); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if lead.ID == uuid.Nil || lead.EmployeeCount == nil || *lead.EmployeeCount != 12 {
		t.Fatalf("unexpected lead: %+v", lead)
	}
	if len(mailer.subjects) != 1 {
		t.Fatalf("expected one email, got %d", len(mailer.subjects))
	}

	get := doRequest(router, http.MethodGet, "/api/v1/leads/"+lead.ID.String(), "")
	if get.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", get.Code)
	}
}

func TestCaptureLeadSchemaErrors(t *testing.T) {
	router, mailer := setupLeadRouter(t)

	cases := map[string]string{
		"missing fields": `{"name":"Dana"}`,
		"bad email":      `{"name":"Dana","email":"nope","company":"Acme","companySize":"1-50"}`,
		"bad size":       `{"name":"Dana","email":"dana@acme.test","company":"Acme","companySize":"huge"}`,
		"not json":       `{"name":`,
	}
	for name, body := range cases {
		resp := doRequest(router, http.MethodPost, "/api/v1/leads", body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", name, resp.Code)
		}
		var env struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("%s: decode: %v", name, err)
		}
		if env.Error.Code != "validation_error" {
			t.Fatalf("%s: expected validation_error, got %q", name, env.Error.Code)
		}
	}
	if len(mailer.subjects) != 0 {
		t.Fatalf("expected no emails, got %d", len(mailer.subjects))
	}
}

func TestGetLeadErrors(t *testing.T) {
	router, _ := setupLeadRouter(t)

	if resp := doRequest(router, http.MethodGet, "/api/v1/leads/not-a-uuid", ""); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if resp := doRequest(router, http.MethodGet, "/api/v1/leads/"+uuid.NewString(), ""); resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

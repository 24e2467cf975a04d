package analyses

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupAnalysisRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(newTestService(t, nil)).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	switch p := payload.(type) {
	case nil:
		body = bytes.NewReader(nil)
	case string:
		body = bytes.NewReader([]byte(p))
	default:
		raw, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

type errorEnvelope struct {
	Error struct {
		Code    string              `json:"code"`
		Details []map[string]string `json:"details"`
	} `json:"error"`
}

func TestListIndustries(t *testing.T) {
	resp := doJSON(t, setupAnalysisRouter(t), http.MethodGet, "/api/v1/industries", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var body struct {
		Industries []string `json:"industries"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Industries) == 0 || body.Industries[0] != "Accounting" {
		t.Fatalf("expected sorted industries starting with Accounting, got %v", body.Industries)
	}
}

func TestIndustrySoftwareUnknownIsEmpty(t *testing.T) {
	resp := doJSON(t, setupAnalysisRouter(t), http.MethodGet, "/api/v1/industries/Aerospace/software", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var body struct {
		Software []json.RawMessage `json:"software"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Software == nil || len(body.Software) != 0 {
		t.Fatalf("expected empty software list, got %v", body.Software)
	}
}

func TestIndustryFrictions(t *testing.T) {
	resp := doJSON(t, setupAnalysisRouter(t), http.MethodGet, "/api/v1/industries/Insurance/frictions", nil)
	var body struct {
		Frictions []string `json:"frictions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Frictions) == 0 {
		t.Fatalf("expected Insurance frictions")
	}
}

func TestResolveRequiresName(t *testing.T) {
	router := setupAnalysisRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/software/resolve", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/software/resolve?name=quickbooks", nil)
	var body Resolution
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Found || body.Resolved != "QuickBooks" {
		t.Fatalf("expected QuickBooks, got %+v", body)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	resp := doJSON(t, setupAnalysisRouter(t), http.MethodPost, "/api/v1/analyze", map[string]any{
		"industry":         "Insurance",
		"companySize":      "51-200",
		"selectedSoftware": []string{"Salesforce", "QuickBooks"},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		TotalSavings    int `json:"total_savings"`
		Recommendations []struct {
			EstimatedSavings int `json:"estimated_savings"`
		} `json:"recommendations"`
		Opportunities struct {
			QuickWins []json.RawMessage `json:"quick_wins"`
		} `json:"integration_opportunities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	sum := 0
	for _, r := range body.Recommendations {
		sum += r.EstimatedSavings
	}
	if body.TotalSavings != 118000 || sum != body.TotalSavings {
		t.Fatalf("expected total 118000 matching the sum, got total=%d sum=%d", body.TotalSavings, sum)
	}
	if len(body.Opportunities.QuickWins) != 1 {
		t.Fatalf("expected 1 quick win, got %d", len(body.Opportunities.QuickWins))
	}
}

func TestAnalyzeValidation(t *testing.T) {
	router := setupAnalysisRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/analyze", map[string]any{"selectedSoftware": "Salesforce"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Error.Code != "validation_error" || len(env.Error.Details) == 0 {
		t.Fatalf("expected validation_error with details, got %+v", env.Error)
	}
	if env.Error.Details[0]["field"] != "selectedSoftware" {
		t.Fatalf("expected selectedSoftware field error, got %v", env.Error.Details)
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/analyze", `{"selectedSoftware": [`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed body, got %d", resp.Code)
	}
}

func TestMatrixEndpoint(t *testing.T) {
	resp := doJSON(t, setupAnalysisRouter(t), http.MethodPost, "/api/v1/integrations/matrix", map[string]any{
		"selectedSoftware": []string{"Salesforce", "QuickBooks", "Homegrown ERP"},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var body struct {
		Matrix map[string]struct {
			IntegratesWith     []string `json:"integrates_with"`
			MissingConnections []string `json:"missing_connections"`
		} `json:"matrix"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := body.Matrix["Homegrown ERP"]; ok {
		t.Fatalf("unresolvable products have no matrix entry")
	}
	sf, ok := body.Matrix["Salesforce"]
	if !ok || len(sf.IntegratesWith) != 1 || sf.IntegratesWith[0] != "QuickBooks" {
		t.Fatalf("unexpected Salesforce entry: %+v", sf)
	}
}

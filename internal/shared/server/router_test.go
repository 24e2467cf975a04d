package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"advisorpilot/internal/roi"
	"advisorpilot/internal/services/health"
	"advisorpilot/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		CORSAllowOrigin:   []string{"http://localhost:5173"},
		RateLimitRPS:      100,
		RateLimitBurst:    100,
		LLMRateLimitRPS:   1,
		LLMRateLimitBurst: 1,
	}
}

func TestHealthReportsDependencies(t *testing.T) {
	hs := health.NewService().Register("redis", nil)
	r := NewRouter(RouterDeps{Config: testConfig(), Health: hs})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var report health.Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !report.OK || report.Dependencies["redis"] != health.StatusDisabled {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestHealthUnavailableWhenDependencyDown(t *testing.T) {
	hs := health.NewService().Register("db", func(context.Context) error { return errors.New("down") })
	r := NewRouter(RouterDeps{Config: testConfig(), Health: hs})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestMetricsServedAtRoot(t *testing.T) {
	r := NewRouter(RouterDeps{Config: testConfig(), ROIHandler: roi.NewHandler()})

	body := `{"weeklyHours":{"manual":5,"dataEntry":5,"reporting":5}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/roi", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "advisor_http_requests_total") {
		t.Fatalf("expected http counter in metrics output")
	}
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	r := NewRouter(RouterDeps{Config: testConfig()})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"not_found"`) {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9090": ":9090", ":7000": ":7000"}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}

package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"advisorpilot/internal/llm"
)

type recorder struct {
	mu     sync.Mutex
	bodies []map[string]any
	auth   []string
}

func (r *recorder) record(t *testing.T, req *http.Request) int {
	t.Helper()
	defer req.Body.Close()
	var payload map[string]any
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		t.Errorf("decode request: %v", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bodies = append(r.bodies, payload)
	r.auth = append(r.auth, req.Header.Get("Authorization"))
	return len(r.bodies)
}

func newTestClient(t *testing.T, model string, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient("test-key", model, Options{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestCompleteSendsRequestShape(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, "gpt-4o-mini", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		rec.record(t, r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" {\"ok\":true} "}}]}`))
	})

	out, err := client.Complete(context.Background(), llm.Request{
		System:      "Always respond with valid JSON.",
		Prompt:      "analyze",
		Temperature: 0.3,
		MaxTokens:   2000,
		JSON:        true,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != `{"ok":true}` {
		t.Fatalf("unexpected content %q", out)
	}

	body := rec.bodies[0]
	if rec.auth[0] != "Bearer test-key" {
		t.Fatalf("unexpected auth header %q", rec.auth[0])
	}
	if body["model"] != "gpt-4o-mini" {
		t.Fatalf("unexpected model %v", body["model"])
	}
	if temp, ok := body["temperature"].(float64); !ok || temp < 0.29 || temp > 0.31 {
		t.Fatalf("expected temperature 0.3, got %v", body["temperature"])
	}
	if body["max_tokens"] != float64(2000) {
		t.Fatalf("expected max_tokens 2000, got %v", body["max_tokens"])
	}
	format, _ := body["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Fatalf("expected json_object response format, got %v", body["response_format"])
	}
	messages, _ := body["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(messages))
	}
}

func TestCompleteTextModeOmitsResponseFormat(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, "gpt-4o-mini", func(w http.ResponseWriter, r *http.Request) {
		rec.record(t, r)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"A brief."}}]}`))
	})

	out, err := client.Complete(context.Background(), llm.Request{Prompt: "brief"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != "A brief." {
		t.Fatalf("unexpected content %q", out)
	}
	if _, ok := rec.bodies[0]["response_format"]; ok {
		t.Fatalf("expected no response_format in text mode")
	}
	if messages, _ := rec.bodies[0]["messages"].([]any); len(messages) != 1 {
		t.Fatalf("expected only the user message, got %d", len(messages))
	}
}

func TestCompleteGPT5OmitsTemperature(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, "gpt-5-mini", func(w http.ResponseWriter, r *http.Request) {
		rec.record(t, r)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{}"}}]}`))
	})

	if _, err := client.Complete(context.Background(), llm.Request{Prompt: "p", Temperature: 0.4, MaxTokens: 800}); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if _, ok := rec.bodies[0]["temperature"]; ok {
		t.Fatalf("expected temperature to be omitted for gpt-5 models")
	}
	if rec.bodies[0]["max_completion_tokens"] != float64(800) {
		t.Fatalf("expected max_completion_tokens 800, got %v", rec.bodies[0]["max_completion_tokens"])
	}
}

func TestCompleteRetriesWithoutTemperature(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, "gpt-4o-mini", func(w http.ResponseWriter, r *http.Request) {
		call := rec.record(t, r)
		if call == 1 {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Unsupported value: 'temperature' does not support 0.3 with this model.","type":"invalid_request_error"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{}"}}]}`))
	})

	if _, err := client.Complete(context.Background(), llm.Request{Prompt: "p", Temperature: 0.3}); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if len(rec.bodies) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(rec.bodies))
	}
	if _, ok := rec.bodies[0]["temperature"]; !ok {
		t.Fatalf("expected first request to include temperature")
	}
	if _, ok := rec.bodies[1]["temperature"]; ok {
		t.Fatalf("expected retry request to omit temperature")
	}
}

func TestCompleteNoInfiniteRetry(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, "gpt-4o-mini", func(w http.ResponseWriter, r *http.Request) {
		rec.record(t, r)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Unsupported value: 'temperature'","type":"invalid_request_error"}}`))
	})

	if _, err := client.Complete(context.Background(), llm.Request{Prompt: "p"}); err == nil {
		t.Fatalf("expected error on repeated rejection")
	}
	if len(rec.bodies) != 2 {
		t.Fatalf("expected 2 requests (one retry), got %d", len(rec.bodies))
	}
}

func TestCompleteErrors(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		body      string
		wantEmpty bool
	}{
		{name: "server_error", status: http.StatusInternalServerError, body: `upstream exploded`},
		{name: "api_error", status: http.StatusUnauthorized, body: `{"error":{"message":"bad key","type":"auth"}}`},
		{name: "no_choices", status: http.StatusOK, body: `{"choices":[]}`, wantEmpty: true},
		{name: "blank_content", status: http.StatusOK, body: `{"choices":[{"message":{"content":"   "}}]}`, wantEmpty: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, "gpt-4o-mini", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			_, err := client.Complete(context.Background(), llm.Request{Prompt: "p"})
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.wantEmpty && !errors.Is(err, llm.ErrEmptyResponse) {
				t.Fatalf("expected ErrEmptyResponse, got %v", err)
			}
		})
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("key", "", Options{}); err == nil {
		t.Fatalf("expected error for missing model")
	}
	_, err := NewClient("", "gpt-4o-mini", Options{})
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Request is one chat completion: an optional system message plus the user
// prompt. Name labels the prompt in logs and metrics. JSON asks the provider
// for a JSON object response.
type Request struct {
	Name        string
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
	JSON        bool
}

// Client abstracts LLM providers.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

var (
	// ErrNotConfigured is returned when no provider credentials are set.
	ErrNotConfigured = errors.New("llm provider not configured")
	// ErrEmptyResponse is returned when the provider answers with no content.
	ErrEmptyResponse = errors.New("llm returned empty response")
)

// PlaceholderClient stands in when no provider is configured.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}

// Result is either a parsed value or the error that prevented one.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok reports whether Value is usable.
func (r Result[T]) Ok() bool {
	return r.Err == nil
}

// StripFences removes a surrounding markdown code fence, with or without a
// language tag.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseJSON decodes a completion into T after stripping code fences.
func ParseJSON[T any](raw string) Result[T] {
	var out T
	cleaned := StripFences(raw)
	if cleaned == "" {
		return Result[T]{Err: ErrEmptyResponse}
	}
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return Result[T]{Err: fmt.Errorf("parse llm output: %w", err)}
	}
	return Result[T]{Value: out}
}

// Run completes req and parses the answer into T.
func Run[T any](ctx context.Context, c Client, req Request) Result[T] {
	raw, err := c.Complete(ctx, req)
	if err != nil {
		return Result[T]{Err: err}
	}
	return ParseJSON[T](raw)
}

// RunText completes req and returns the trimmed free-text answer.
func RunText(ctx context.Context, c Client, req Request) Result[string] {
	raw, err := c.Complete(ctx, req)
	if err != nil {
		return Result[string]{Err: err}
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return Result[string]{Err: ErrEmptyResponse}
	}
	return Result[string]{Value: text}
}

package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: ` {"a":1} `, want: `{"a":1}`},
		{name: "json_fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare_fence", in: "```\n[1,2]\n```", want: `[1,2]`},
		{name: "single_line", in: "```json{\"a\":1}```", want: `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripFences(tc.in))
		})
	}
}

func TestParseJSON(t *testing.T) {
	type payload struct {
		Score int `json:"score"`
	}

	ok := ParseJSON[payload]("```json\n{\"score\": 42}\n```")
	require.True(t, ok.Ok())
	assert.Equal(t, 42, ok.Value.Score)

	bad := ParseJSON[payload]("not json")
	assert.False(t, bad.Ok())

	empty := ParseJSON[payload]("  ")
	assert.ErrorIs(t, empty.Err, ErrEmptyResponse)
}

type stubClient struct {
	out   string
	err   error
	calls int
}

func (s *stubClient) Complete(ctx context.Context, req Request) (string, error) {
	s.calls++
	return s.out, s.err
}

func TestRun(t *testing.T) {
	got := Run[[]string](context.Background(), &stubClient{out: `["a","b"]`}, Request{Prompt: "p"})
	require.True(t, got.Ok())
	assert.Equal(t, []string{"a", "b"}, got.Value)

	failed := Run[[]string](context.Background(), &stubClient{err: errors.New("boom")}, Request{})
	assert.EqualError(t, failed.Err, "boom")
}

func TestPlaceholderClient(t *testing.T) {
	_, err := PlaceholderClient{}.Complete(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestRunText(t *testing.T) {
	got := RunText(context.Background(), &stubClient{out: "  Insurance agencies run on Applied Epic.\n"}, Request{})
	require.True(t, got.Ok())
	assert.Equal(t, "Insurance agencies run on Applied Epic.", got.Value)

	blank := RunText(context.Background(), &stubClient{out: " "}, Request{})
	assert.ErrorIs(t, blank.Err, ErrEmptyResponse)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp isolates Load from any .env or config.yaml in the package dir.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 24*time.Hour, cfg.LLMCacheTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowOrigin)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAIBaseURL)
	assert.False(t, cfg.LLMEnabled())
	assert.True(t, cfg.IsDevLike())
	assert.True(t, cfg.LeadReadsOpen())
}

func TestLeadReadsOpen(t *testing.T) {
	assert.False(t, Config{Env: "dev", AdminJWTSecret: "s"}.LeadReadsOpen())
	assert.False(t, Config{Env: "production"}.LeadReadsOpen())
	assert.True(t, Config{Env: "local"}.LeadReadsOpen())
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "prod")
	t.Setenv("DATABASE_URL", "postgres://localhost/advisor")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("SALES_EMAILS", "sales@example.com")
	t.Setenv("OPENAI_API_KEY", " sk-test ")
	t.Setenv("OPENAI_BASE_URL", "http://proxy.local/v1/")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigin)
	assert.Equal(t, []string{"sales@example.com"}, cfg.SalesEmails)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "http://proxy.local/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 3, cfg.RateLimitBurst)
	assert.True(t, cfg.LLMEnabled())
	assert.False(t, cfg.IsDevLike())
}

func TestLoadProductionRequiresDatabase(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("llm_model: gpt-5-mini\nredis_addr: localhost:6379\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gpt-5-mini", cfg.LLMModel)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=DEBUG\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":        "production",
		"Production":  "production",
		"staging":     "staging",
		"local":       "local",
		"development": "dev",
		"":            "dev",
		"weird":       "dev",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeEnv(in), in)
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string        `mapstructure:"port"`
	Env             string        `mapstructure:"env"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	CORSAllowOrigin []string `mapstructure:"-"`

	DatabaseURL   string `mapstructure:"database_url"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`

	OpenAIAPIKey  string        `mapstructure:"openai_api_key"`
	OpenAIBaseURL string        `mapstructure:"openai_base_url"`
	LLMModel      string        `mapstructure:"llm_model"`
	LLMTimeout    time.Duration `mapstructure:"llm_timeout"`
	LLMCacheTTL   time.Duration `mapstructure:"llm_cache_ttl"`

	RateLimitRPS      float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst    int     `mapstructure:"rate_limit_burst"`
	LLMRateLimitRPS   float64 `mapstructure:"llm_rate_limit_rps"`
	LLMRateLimitBurst int     `mapstructure:"llm_rate_limit_burst"`

	AWSRegion     string   `mapstructure:"aws_region"`
	SESFromEmail  string   `mapstructure:"ses_from_email"`
	SalesEmails   []string `mapstructure:"-"`
	LeadsTopicARN string   `mapstructure:"leads_topic_arn"`

	// AdminJWTSecret signs operator tokens for reading captured leads.
	AdminJWTSecret string `mapstructure:"admin_jwt_secret"`

	IndustryDataPath    string `mapstructure:"industry_data_path"`
	IntegrationDataPath string `mapstructure:"integration_data_path"`
}

var defaults = map[string]any{
	"port":                  "8080",
	"env":                   "dev",
	"log_level":             "info",
	"log_format":            "json",
	"shutdown_timeout":      "10s",
	"cors_allow_origins":    "http://localhost:5173",
	"database_url":          "",
	"redis_addr":            "",
	"redis_password":        "",
	"redis_db":              0,
	"openai_api_key":        "",
	"openai_base_url":       "https://api.openai.com/v1",
	"llm_model":             "gpt-4o-mini",
	"llm_timeout":           "60s",
	"llm_cache_ttl":         "24h",
	"rate_limit_rps":        10.0,
	"rate_limit_burst":      20,
	"llm_rate_limit_rps":    0.5,
	"llm_rate_limit_burst":  5,
	"aws_region":            "us-east-1",
	"ses_from_email":        "",
	"sales_emails":          "",
	"leads_topic_arn":       "",
	"admin_jwt_secret":      "",
	"industry_data_path":    "",
	"integration_data_path": "",
}

// Load reads configuration from an optional .env file, an optional
// config.yaml (./configs or .) and the environment, in increasing priority.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	for _, path := range []string{".env", "cmd/.env"} {
		_ = godotenv.Load(path)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.CORSAllowOrigin = splitAndTrim(v.GetString("cors_allow_origins"))
	cfg.SalesEmails = splitAndTrim(v.GetString("sales_emails"))
	normalize(&cfg)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad is Load for entrypoints that cannot continue without config.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// IsDevLike reports whether missing infrastructure may fall back to memory.
func (c Config) IsDevLike() bool {
	return c.Env == "dev" || c.Env == "local"
}

// LLMEnabled reports whether a real model provider is configured.
func (c Config) LLMEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// LeadReadsOpen reports whether GET /leads/:id is served without a token.
// Only dev-like environments without a configured secret qualify.
func (c Config) LeadReadsOpen() bool {
	return c.AdminJWTSecret == "" && c.IsDevLike()
}

func normalize(cfg *Config) {
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.RedisAddr = strings.TrimSpace(cfg.RedisAddr)
	cfg.OpenAIAPIKey = strings.TrimSpace(cfg.OpenAIAPIKey)
	cfg.OpenAIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.OpenAIBaseURL), "/")
	cfg.LLMModel = strings.TrimSpace(cfg.LLMModel)
	cfg.AdminJWTSecret = strings.TrimSpace(cfg.AdminJWTSecret)
}

func validate(cfg Config) error {
	if cfg.Env == "production" && cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required in production")
	}
	if cfg.RateLimitRPS < 0 || cfg.LLMRateLimitRPS < 0 {
		return errors.New("rate limits must not be negative")
	}
	if cfg.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive, got %s", cfg.LLMTimeout)
	}
	return nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrUnknownNewsProvider = errors.New("news_provider must be 'serper' or 'finnhub'")
	ErrUnknownLLMProvider  = errors.New("llm_provider must be 'openai' or 'anthropic'")
	ErrInvalidMaxArticles  = errors.New("max_articles must be at least 1")
	ErrInvalidTimeout      = errors.New("generation_timeout must be at least 1 second")
	ErrInvalidLogLevel     = errors.New("log_level must be one of: debug, info, warn, error")
)

type Config struct {
	// Secrets, env only. Missing keys are not validated up front and
	// surface as failures from the respective API calls.
	SerperAPIKey    string
	FinnhubAPIKey   string
	OpenAIAPIKey    string
	AnthropicAPIKey string

	NewsProvider   string `yaml:"news_provider"`
	LLMProvider    string `yaml:"llm_provider"`
	OpenAIModel    string `yaml:"openai_model"`
	OpenAIBaseURL  string `yaml:"openai_base_url"`
	AnthropicModel string `yaml:"anthropic_model"`
	ServerAddr     string `yaml:"server_addr"`
	FrontendURL    string `yaml:"frontend_url"`
	LogLevel       string `yaml:"log_level"`

	MaxArticles           int `yaml:"max_articles"`
	GenerationTimeoutSecs int `yaml:"generation_timeout"`
}

// Load builds the configuration: defaults, then the optional YAML file
// named by NEWSLENS_CONFIG, then the environment. Environment wins.
// The file never carries secrets.
func Load() (*Config, error) {
	cfg := &Config{
		NewsProvider:          "serper",
		LLMProvider:           "openai",
		ServerAddr:            ":8080",
		LogLevel:              "info",
		MaxArticles:           5,
		GenerationTimeoutSecs: 60,
	}

	if path := os.Getenv("NEWSLENS_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.SerperAPIKey = os.Getenv("SERPER_API_KEY")
	cfg.FinnhubAPIKey = os.Getenv("FINNHUB_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")

	overrideString(&cfg.NewsProvider, "NEWS_PROVIDER")
	overrideString(&cfg.LLMProvider, "LLM_PROVIDER")
	overrideString(&cfg.OpenAIModel, "OPENAI_MODEL")
	overrideString(&cfg.OpenAIBaseURL, "OPENAI_BASE_URL")
	overrideString(&cfg.AnthropicModel, "ANTHROPIC_MODEL")
	overrideString(&cfg.ServerAddr, "SERVER_ADDR")
	overrideString(&cfg.FrontendURL, "FRONTEND_URL")
	overrideString(&cfg.LogLevel, "LOG_LEVEL")
	if err := overrideInt(&cfg.MaxArticles, "MAX_ARTICLES"); err != nil {
		return nil, err
	}
	if err := overrideInt(&cfg.GenerationTimeoutSecs, "GENERATION_TIMEOUT"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.NewsProvider {
	case "serper", "finnhub":
	default:
		return ErrUnknownNewsProvider
	}

	switch c.LLMProvider {
	case "openai", "anthropic":
	default:
		return ErrUnknownLLMProvider
	}

	if c.MaxArticles < 1 {
		return ErrInvalidMaxArticles
	}

	if c.GenerationTimeoutSecs < 1 {
		return ErrInvalidTimeout
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	return nil
}

func (c *Config) GenerationTimeout() time.Duration {
	return time.Duration(c.GenerationTimeoutSecs) * time.Second
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = parsed
	return nil
}

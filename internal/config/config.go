package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Environment string `json:"environment"`
	LogLevel    string `json:"log_level"`

	// CORS
	CORSOrigins []string `json:"cors_origins"`

	// Rate Limiting
	RateLimitPerMinute int `json:"rate_limit_per_minute"`

	// Dataset
	DatasetPath   string `json:"dataset_path"`
	MaxResultRows int    `json:"max_result_rows"`

	// Providers
	OpenAIAPIKey     string `json:"openai_api_key"`
	OpenAIModel      string `json:"openai_model"`
	OpenAIBaseURL    string `json:"openai_base_url"`
	AnthropicAPIKey  string `json:"anthropic_api_key"`
	AnthropicModel   string `json:"anthropic_model"`
	AnthropicBaseURL string `json:"anthropic_base_url"` // override for custom proxy
	OllamaURL        string `json:"ollama_url"`
	OllamaModel      string `json:"ollama_model"`

	ProviderTimeoutSeconds int `json:"provider_timeout_seconds"`
}

// ProviderTimeout is the per-adapter generation deadline.
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeoutSeconds) * time.Second
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:                   DefaultHost,
		Port:                   DefaultPort,
		Environment:            DefaultEnvironment,
		LogLevel:               DefaultLogLevel,
		CORSOrigins:            DefaultCORSOrigins,
		RateLimitPerMinute:     DefaultRateLimitPerMinute,
		DatasetPath:            DefaultDatasetPath,
		MaxResultRows:          DefaultMaxResultRows,
		OpenAIModel:            DefaultOpenAIModel,
		AnthropicModel:         DefaultAnthropicModel,
		OllamaURL:              DefaultOllamaURL,
		OllamaModel:            DefaultOllamaModel,
		ProviderTimeoutSeconds: DefaultProviderTimeoutSeconds,
	}

	// Load from JSON config file if specified
	if path := getEnv("PROMPTVIZ_CONFIG", ""); path != "" {
		if err := loadJSON(path, cfg); err != nil {
			return nil, err
		}
	}

	// Environment overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

func loadJSON(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v := getEnv("PROMPTVIZ_HOST", ""); v != "" {
		cfg.Host = v
	}
	if v := getEnv("PROMPTVIZ_PORT", ""); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := getEnv("PROMPTVIZ_ENV", ""); v != "" {
		cfg.Environment = v
	}
	if v := getEnv("LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getEnv("CORS_ORIGINS", ""); v != "" {
		cfg.CORSOrigins = strings.Split(v, ",")
	}
	if v := getEnv("RATE_LIMIT_PER_MINUTE", ""); v != "" {
		if r, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitPerMinute = r
		}
	}
	if v := getEnv("DATASET_PATH", ""); v != "" {
		cfg.DatasetPath = v
	}
	if v := getEnv("MAX_RESULT_ROWS", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxResultRows = n
		}
	}
	if v := getEnv("OPENAI_API_KEY", ""); v != "" {
		cfg.OpenAIAPIKey = v
	}
	if v := getEnv("OPENAI_MODEL", ""); v != "" {
		cfg.OpenAIModel = v
	}
	if v := getEnv("OPENAI_BASE_URL", ""); v != "" {
		cfg.OpenAIBaseURL = v
	}
	if v := getEnv("ANTHROPIC_API_KEY", ""); v != "" {
		cfg.AnthropicAPIKey = v
	}
	if v := getEnv("ANTHROPIC_MODEL", ""); v != "" {
		cfg.AnthropicModel = v
	}
	if v := getEnv("ANTHROPIC_BASE_URL", ""); v != "" {
		cfg.AnthropicBaseURL = v
	}
	if v := getEnv("OLLAMA_URL", ""); v != "" {
		cfg.OllamaURL = v
	}
	if v := getEnv("OLLAMA_MODEL", ""); v != "" {
		cfg.OllamaModel = v
	}
	if v := getEnv("PROVIDER_TIMEOUT_SECONDS", ""); v != "" {
		if t, err := strconv.Atoi(v); err == nil && t > 0 {
			cfg.ProviderTimeoutSeconds = t
		}
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
